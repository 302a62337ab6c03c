package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/signup/internal/events"
)

type stubDirectory struct {
	snapshot  map[string]Activity
	signUpErr error
	removeErr error
}

func (s *stubDirectory) Snapshot(ctx context.Context) (map[string]Activity, error) {
	return s.snapshot, nil
}

func (s *stubDirectory) SignUp(ctx context.Context, activity, email string) (Activity, error) {
	if s.signUpErr != nil {
		return Activity{}, s.signUpErr
	}
	return Activity{MaxParticipants: 12, Participants: []string{"existing@mergington.edu", email}}, nil
}

func (s *stubDirectory) Unregister(ctx context.Context, activity, email string) (Activity, error) {
	if s.removeErr != nil {
		return Activity{}, s.removeErr
	}
	return Activity{MaxParticipants: 12, Participants: []string{"existing@mergington.edu"}}, nil
}

type recordingPublisher struct {
	published []events.RosterChanged
	err       error
}

func (p *recordingPublisher) PublishRosterChange(ctx context.Context, event events.RosterChanged) error {
	p.published = append(p.published, event)
	return p.err
}

func TestSignUpPublishesRosterEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	service := NewService(&stubDirectory{}, publisher)

	updated, err := service.SignUp(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Len(t, updated.Participants, 2)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0]
	require.Equal(t, events.ActionSignUp, event.Action)
	require.Equal(t, "Chess Club", event.Activity)
	require.Equal(t, "newstudent@mergington.edu", event.Email)
	require.Equal(t, 2, event.RosterSize)
	require.False(t, event.OccurredAt.IsZero())

	_, err = uuid.Parse(event.EventID)
	require.NoError(t, err)
}

func TestUnregisterPublishesRosterEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	service := NewService(&stubDirectory{}, publisher)

	_, err := service.Unregister(context.Background(), "Chess Club", "gone@mergington.edu")
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	require.Equal(t, events.ActionUnregister, publisher.published[0].Action)
	require.Equal(t, 1, publisher.published[0].RosterSize)
}

func TestSignUpFailureDoesNotPublish(t *testing.T) {
	publisher := &recordingPublisher{}
	service := NewService(&stubDirectory{signUpErr: ErrAlreadySignedUp}, publisher)

	_, err := service.SignUp(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, ErrAlreadySignedUp)
	require.Empty(t, publisher.published)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker unreachable")}
	service := NewService(&stubDirectory{}, publisher)

	_, err := service.SignUp(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
}

func TestNilPublisherDefaultsToNop(t *testing.T) {
	service := NewService(&stubDirectory{}, nil)

	_, err := service.SignUp(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
}

func TestListActivitiesSnapshots(t *testing.T) {
	store := &stubDirectory{snapshot: map[string]Activity{
		"Chess Club": {Description: "Learn strategies and compete in chess tournaments"},
	}}
	service := NewService(store, nil)

	activities, err := service.ListActivities(context.Background())
	require.NoError(t, err)
	require.Contains(t, activities, "Chess Club")
}
