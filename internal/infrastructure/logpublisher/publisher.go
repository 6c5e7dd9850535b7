// Package logpublisher writes domain events to the service log. It stands in
// for the broker when none is configured.
package logpublisher

import (
	"context"
	"log/slog"

	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/pkg/events"
)

// Publisher implements port.EventPublisher.
type Publisher struct {
	logger *slog.Logger
}

// New returns a Publisher logging at info level through logger.
func New(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Publish logs one line per event carrying the full envelope.
func (p *Publisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	for _, evt := range evts {
		env, err := events.NewEnvelope(evt)
		if err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "domain event",
			"event_type", env.EventType,
			"event_id", env.EventID,
			"aggregate_id", env.AggregateID,
			"occurred_at", env.OccurredAt,
			"data", env.Data,
		)
	}
	return nil
}
