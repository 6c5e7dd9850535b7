package port

import (
	"context"

	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Reference data ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ReferenceDataSource loads the product catalog and the validation rule set
// as one consistent snapshot. Both are read once at startup and never mutated
// afterwards.
type ReferenceDataSource interface {
	Load(ctx context.Context) (model.Catalog, model.ValidationRules, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Telemetry port
// ---------------------------------------------------------------------------

// DecisionRecorder records evaluation outcomes for monitoring.
type DecisionRecorder interface {
	RecordEvaluation(ctx context.Context, productID string, resp model.EligibilityResponse)
	RecordValidationFailures(ctx context.Context, productID string, errs model.FieldErrors)
}
