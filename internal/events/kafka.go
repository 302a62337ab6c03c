package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes roster events to a single topic, creating the writer
// on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic}
}

// PublishRosterChange implements Publisher.
func (p *KafkaPublisher) PublishRosterChange(ctx context.Context, event RosterChanged) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	return p.writerHandle().WriteMessages(ctx, msg)
}

// buildMessage serializes the event, keyed by activity so all mutations of
// one roster land on the same partition in order.
func buildMessage(event RosterChanged) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeRosterChanged)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}, nil
}

func (p *KafkaPublisher) writerHandle() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer, if one was created.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
