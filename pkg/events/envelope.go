package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope is the wire form of a domain event: metadata plus the
// JSON-encoded event body.
type Envelope struct {
	OccurredAt    time.Time       `json:"occurred_at"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	Data          json.RawMessage `json:"data"`
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
}

// NewEnvelope wraps event in an Envelope.
func NewEnvelope(event DomainEvent) (Envelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}
	return Envelope{
		EventID:       event.EventID(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		OccurredAt:    event.OccurredAt(),
		Data:          data,
	}, nil
}

// Marshal encodes event as a JSON envelope.
func Marshal(event DomainEvent) ([]byte, error) {
	env, err := NewEnvelope(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}
