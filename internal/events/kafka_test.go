package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	occurred := time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)
	event := RosterChanged{
		EventID:    "evt-1",
		Activity:   "Chess Club",
		Email:      "newstudent@mergington.edu",
		Action:     ActionSignUp,
		RosterSize: 3,
		OccurredAt: occurred,
	}

	msg, err := buildMessage(event)
	require.NoError(t, err)

	require.Equal(t, []byte("Chess Club"), msg.Key)
	require.Equal(t, occurred, msg.Time)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	require.Equal(t, EventTypeRosterChanged, headers["event_type"])
	require.Equal(t, "evt-1", headers["event_id"])

	var decoded RosterChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, event, decoded)
}

func TestNopPublisher(t *testing.T) {
	err := NopPublisher{}.PublishRosterChange(context.Background(), RosterChanged{})
	require.NoError(t, err)
}

func TestKafkaPublisherCloseWithoutPublish(t *testing.T) {
	publisher := NewKafkaPublisher([]string{"kafka:9092"}, "roster_events")
	require.NoError(t, publisher.Close())
}
