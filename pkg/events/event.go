// Package events defines the domain event contract and its JSON envelope.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the contract every published event satisfies.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
}

// metadata identifies an event and the aggregate that raised it.
type metadata struct {
	at            time.Time
	kind          string
	aggregateKind string
	id            uuid.UUID
	aggregateID   uuid.UUID
}

// BaseEvent carries event metadata. Concrete events embed it; the metadata
// is unexported so that only the event's own fields form its JSON body.
type BaseEvent struct {
	meta metadata
}

// NewBaseEvent stamps a fresh event id and the current UTC time.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string) BaseEvent {
	return BaseEvent{meta: metadata{
		at:            time.Now().UTC(),
		kind:          eventType,
		aggregateKind: aggregateType,
		id:            uuid.New(),
		aggregateID:   aggregateID,
	}}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.meta.id }
func (e BaseEvent) EventType() string      { return e.meta.kind }
func (e BaseEvent) AggregateID() uuid.UUID { return e.meta.aggregateID }
func (e BaseEvent) AggregateType() string  { return e.meta.aggregateKind }
func (e BaseEvent) OccurredAt() time.Time  { return e.meta.at }
