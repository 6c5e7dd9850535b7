package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/pkg/events"
	pkgkafka "github.com/bibbank/eligibility-service/pkg/kafka"
)

// MessageProducer is satisfied by *pkgkafka.Producer.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// EventPublisher implements port.EventPublisher by writing events to Kafka.
type EventPublisher struct {
	producer MessageProducer
	topic    string
	logger   *slog.Logger
}

// NewEventPublisher creates a publisher targeting the given producer and topic.
func NewEventPublisher(producer MessageProducer, topic string, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises events into envelopes keyed by aggregate id and sends
// them in one batch.
func (p *EventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := events.Marshal(evt)
		if err != nil {
			return err
		}

		p.logger.DebugContext(ctx, "publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"topic", p.topic,
			"payload_size", len(payload),
		)

		messages = append(messages, pkgkafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event_type":   evt.EventType(),
				"event_id":     evt.EventID().String(),
				"content_type": "application/json",
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}
	return nil
}
