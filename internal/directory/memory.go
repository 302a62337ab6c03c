// Package directory holds the in-memory activity directory.
package directory

import (
	"context"
	"slices"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemory stores activities in memory, seeded at construction. The process
// owns a single instance; restarting resets it to the seed data.
//
// Every lookup-check-mutate sequence runs under the mutex, so two concurrent
// signups for the same email cannot both pass the membership check.
type InMemory struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemory constructs the directory populated with the school's offerings.
func NewInMemory() *InMemory {
	d := &InMemory{activities: make(map[string]domain.Activity)}
	d.seed()
	return d
}

func (d *InMemory) seed() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.activities["Chess Club"] = domain.Activity{
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	}
	d.activities["Programming Class"] = domain.Activity{
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	}
	d.activities["Gym Class"] = domain.Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	}
}

// Snapshot returns a copy of every activity keyed by name. Callers may mutate
// the result freely.
func (d *InMemory) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]domain.Activity, len(d.activities))
	for name, activity := range d.activities {
		activity.Participants = slices.Clone(activity.Participants)
		out[name] = activity
	}
	return out, nil
}

// SignUp appends the email to the activity roster. There is no capacity
// check: rosters can grow past MaxParticipants.
func (d *InMemory) SignUp(ctx context.Context, name, email string) (domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if activity.IsEnrolled(email) {
		return domain.Activity{}, domain.ErrAlreadySignedUp
	}

	activity.Participants = append(slices.Clone(activity.Participants), email)
	d.activities[name] = activity

	activity.Participants = slices.Clone(activity.Participants)
	return activity, nil
}

// Unregister removes the email from the activity roster, preserving the
// order of the remaining entries.
func (d *InMemory) Unregister(ctx context.Context, name, email string) (domain.Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}

	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.Activity{}, domain.ErrNotRegistered
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), idx, idx+1)
	d.activities[name] = activity

	activity.Participants = slices.Clone(activity.Participants)
	return activity, nil
}
