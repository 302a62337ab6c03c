package domain

// Activity represents one extracurricular offering in the directory.
// The activity's name lives in the directory key, not on the record.
type Activity struct {
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// IsEnrolled reports whether the email already appears on the roster.
func (a Activity) IsEnrolled(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
