package telemetry

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

// Recorder implements port.DecisionRecorder with OpenTelemetry instruments.
type Recorder struct {
	evaluations        metric.Int64Counter
	likelihood         metric.Int64Histogram
	validationFailures metric.Int64Counter
}

// NewRecorder registers the eligibility instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	evaluations, err := meter.Int64Counter("eligibility.evaluations",
		metric.WithDescription("Completed eligibility evaluations."),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: evaluations counter: %w", err)
	}

	likelihood, err := meter.Int64Histogram("eligibility.approval_likelihood",
		metric.WithDescription("Approval likelihood score of completed evaluations."),
		metric.WithExplicitBucketBoundaries(20, 40, 60, 80, 90, 98),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: likelihood histogram: %w", err)
	}

	failures, err := meter.Int64Counter("eligibility.validation_failures",
		metric.WithDescription("Fields rejected by input validation."),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: validation failures counter: %w", err)
	}

	return &Recorder{
		evaluations:        evaluations,
		likelihood:         likelihood,
		validationFailures: failures,
	}, nil
}

// RecordEvaluation counts one evaluation and observes its score.
func (r *Recorder) RecordEvaluation(ctx context.Context, productID string, resp model.EligibilityResponse) {
	product := attribute.String("product_id", productID)
	r.evaluations.Add(ctx, 1, metric.WithAttributes(
		product,
		attribute.String("eligible", strconv.FormatBool(resp.Decision.Eligible)),
		attribute.String("risk_category", resp.Decision.RiskCategory.String()),
	))
	r.likelihood.Record(ctx, int64(resp.Decision.ApprovalLikelihood), metric.WithAttributes(product))
}

// RecordValidationFailures counts each rejected field once.
func (r *Recorder) RecordValidationFailures(ctx context.Context, productID string, errs model.FieldErrors) {
	for _, field := range errs.Fields() {
		r.validationFailures.Add(ctx, 1, metric.WithAttributes(
			attribute.String("product_id", productID),
			attribute.String("field", field),
		))
	}
}
