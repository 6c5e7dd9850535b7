package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/valueobject"
	"github.com/bibbank/eligibility-service/internal/infrastructure/telemetry"
)

func newRecorder(t *testing.T) (*telemetry.Recorder, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := telemetry.NewRecorder(provider.Meter("test"))
	require.NoError(t, err)
	return rec, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestRecorder_RecordEvaluation(t *testing.T) {
	rec, reader := newRecorder(t)
	ctx := context.Background()

	approved := model.EligibilityResponse{Decision: model.Decision{
		Eligible: true, ApprovalLikelihood: 98, RiskCategory: valueobject.RiskCategoryLow,
	}}
	declined := model.EligibilityResponse{Decision: model.Decision{
		Eligible: false, ApprovalLikelihood: 48, RiskCategory: valueobject.RiskCategoryHigh,
	}}
	rec.RecordEvaluation(ctx, "personal_loan", approved)
	rec.RecordEvaluation(ctx, "personal_loan", approved)
	rec.RecordEvaluation(ctx, "vehicle_loan", declined)

	metrics := collect(t, reader)

	sum, ok := metrics["eligibility.evaluations"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)
	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		product, _ := dp.Attributes.Value(attribute.Key("product_id"))
		eligible, _ := dp.Attributes.Value(attribute.Key("eligible"))
		counts[product.AsString()+"/"+eligible.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"personal_loan/true": 2, "vehicle_loan/false": 1}, counts)

	hist, ok := metrics["eligibility.approval_likelihood"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	var total uint64
	for _, dp := range hist.DataPoints {
		total += dp.Count
	}
	assert.Equal(t, uint64(3), total)
}

func TestRecorder_RecordValidationFailures(t *testing.T) {
	rec, reader := newRecorder(t)

	rec.RecordValidationFailures(context.Background(), "personal_loan", model.FieldErrors{
		"age":             "Age must be between 18 and 65",
		"monthlyExpenses": "Monthly expenses must be lower than monthly income",
	})

	sum, ok := collect(t, reader)["eligibility.validation_failures"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	fields := map[string]int64{}
	for _, dp := range sum.DataPoints {
		f, _ := dp.Attributes.Value(attribute.Key("field"))
		fields[f.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"age": 1, "monthlyExpenses": 1}, fields)
}
