// Package events defines roster-change event payloads and publishers.
package events

import (
	"context"
	"time"
)

// EventTypeRosterChanged is the header value attached to every roster message.
const EventTypeRosterChanged = "roster.changed"

// Roster actions.
const (
	ActionSignUp     = "signup"
	ActionUnregister = "unregister"
)

// RosterChanged represents the message emitted when an activity roster is
// mutated.
type RosterChanged struct {
	EventID    string    `json:"event_id"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	Action     string    `json:"action"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits roster events to downstream consumers.
type Publisher interface {
	PublishRosterChange(ctx context.Context, event RosterChanged) error
}

// NopPublisher discards every event. Wired when roster events are disabled.
type NopPublisher struct{}

// PublishRosterChange implements Publisher.
func (NopPublisher) PublishRosterChange(ctx context.Context, event RosterChanged) error {
	return nil
}
