package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/INFIxChatnify/mercur/internal/port"
)

// envelope is the wire format of every emitted event.
type envelope struct {
	Name       string          `json:"name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type KafkaEmitter struct {
	writer *kafka.Writer
}

func NewKafkaEmitter(brokers []string, topic string) (*KafkaEmitter, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("brokers are empty")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is empty")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaEmitter{writer: writer}, nil
}

// Emit publishes one event, keyed by name so events of a kind stay ordered
// within a partition. Delivery is at-most-once from the caller's perspective:
// callers treat failures as non-fatal.
func (e *KafkaEmitter) Emit(ctx context.Context, name string, payload any) error {
	if name == "" {
		return fmt.Errorf("name is empty")
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal payload: %w", err)
	}

	value, err := json.Marshal(envelope{
		Name:       name,
		OccurredAt: time.Now().UTC(),
		Payload:    encoded,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal envelope: %w", err)
	}

	if err := e.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(name),
		Value: value,
	}); err != nil {
		return fmt.Errorf("writer.WriteMessages: %w", err)
	}

	return nil
}

func (e *KafkaEmitter) Close() error {
	return e.writer.Close()
}

var _ port.EventEmitter = (*KafkaEmitter)(nil)
