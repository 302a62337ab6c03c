// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"example.com/signup/internal/events"
	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotRegistered indicates the email is not on the activity roster.
	ErrNotRegistered = errors.New("student not registered for this activity")
)

// Directory captures the store operations the service needs.
type Directory interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	SignUp(ctx context.Context, activity, email string) (Activity, error)
	Unregister(ctx context.Context, activity, email string) (Activity, error)
}

// Service orchestrates roster mutations against the directory.
type Service struct {
	directory Directory
	publisher events.Publisher
}

// NewService constructs a Service. A nil publisher disables roster events.
func NewService(directory Directory, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{directory: directory, publisher: publisher}
}

// ListActivities returns a copy of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.directory.Snapshot(ctx)
}

// SignUp adds the email to the activity roster and returns the updated record.
func (s *Service) SignUp(ctx context.Context, activity, email string) (Activity, error) {
	updated, err := s.directory.SignUp(ctx, activity, email)
	if err != nil {
		return Activity{}, err
	}

	observability.RecordSignUp(activity, len(updated.Participants))
	s.publish(ctx, activity, email, events.ActionSignUp, len(updated.Participants))
	return updated, nil
}

// Unregister removes the email from the activity roster and returns the
// updated record.
func (s *Service) Unregister(ctx context.Context, activity, email string) (Activity, error) {
	updated, err := s.directory.Unregister(ctx, activity, email)
	if err != nil {
		return Activity{}, err
	}

	observability.RecordUnregister(activity, len(updated.Participants))
	s.publish(ctx, activity, email, events.ActionUnregister, len(updated.Participants))
	return updated, nil
}

// publish emits a roster event best-effort. A publish failure is logged and
// never rolls back the mutation or surfaces to the caller.
func (s *Service) publish(ctx context.Context, activity, email, action string, size int) {
	event := events.RosterChanged{
		EventID:    uuid.NewString(),
		Activity:   activity,
		Email:      email,
		Action:     action,
		RosterSize: size,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRosterChange(ctx, event); err != nil {
		log.Printf("failed to publish roster event for %q: %v", activity, err)
	}
}
