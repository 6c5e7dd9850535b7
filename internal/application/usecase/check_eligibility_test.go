package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/application/usecase"
	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/service"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

// --- Mock implementations ---

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockDecisionRecorder struct {
	evaluations []model.EligibilityResponse
	failures    []model.FieldErrors
}

func (m *mockDecisionRecorder) RecordEvaluation(_ context.Context, _ string, resp model.EligibilityResponse) {
	m.evaluations = append(m.evaluations, resp)
}

func (m *mockDecisionRecorder) RecordValidationFailures(_ context.Context, _ string, errs model.FieldErrors) {
	m.failures = append(m.failures, errs)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCheckEligibility(publisher *mockEventPublisher, recorder *mockDecisionRecorder) *usecase.CheckEligibilityUseCase {
	return usecase.NewCheckEligibilityUseCase(
		testutil.Catalog(), testutil.Rules(), service.NewEligibilityEngine(),
		publisher, recorder, discardLogger(),
	)
}

// --- Tests ---

func validCheckRequest() dto.CheckEligibilityRequest {
	return dto.CheckEligibilityRequest{
		PersonalInfo: dto.PersonalInfo{Age: 35, EmploymentStatus: "employed", EmploymentDuration: 24},
		FinancialInfo: dto.FinancialInfo{
			MonthlyIncome:   decimal.NewFromInt(25_000),
			MonthlyExpenses: decimal.NewFromInt(10_000),
			ExistingDebt:    decimal.NewFromInt(3_000),
			CreditScore:     680,
		},
		LoanDetails: dto.LoanDetails{
			ProductID:       "personal_loan",
			RequestedAmount: decimal.NewFromInt(120_000),
			TermMonths:      24,
			Purpose:         "home_improvement",
		},
	}
}

func TestCheckEligibility_Execute(t *testing.T) {
	t.Run("evaluates a valid request and publishes the decision", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		recorder := &mockDecisionRecorder{}
		uc := newCheckEligibility(publisher, recorder)

		resp, err := uc.Execute(context.Background(), validCheckRequest())
		require.NoError(t, err)

		assert.True(t, resp.Valid)
		assert.Empty(t, resp.FieldErrors)
		require.NotNil(t, resp.Result)
		assert.True(t, resp.Result.Decision.Eligible)
		assert.Equal(t, "low", resp.Result.Decision.RiskCategory)
		assert.Equal(t, "excellent", resp.Result.Affordability.Tier)
		assert.Len(t, resp.Result.Schedule, 24)

		id, err := uuid.Parse(resp.EvaluationID)
		require.NoError(t, err)

		require.Len(t, publisher.publishedEvents, 1)
		evt, ok := publisher.publishedEvents[0].(event.EligibilityEvaluated)
		require.True(t, ok)
		assert.Equal(t, id, evt.AggregateID())
		assert.Equal(t, 98, evt.ApprovalLikelihood)

		assert.Len(t, recorder.evaluations, 1)
		assert.Empty(t, recorder.failures)
	})

	t.Run("returns field errors without evaluating", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		recorder := &mockDecisionRecorder{}
		uc := newCheckEligibility(publisher, recorder)

		req := validCheckRequest()
		req.PersonalInfo.Age = 16
		req.FinancialInfo.MonthlyExpenses = decimal.NewFromInt(30_000)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.False(t, resp.Valid)
		assert.Nil(t, resp.Result)
		assert.Empty(t, resp.EvaluationID)
		assert.Equal(t, "Age must be between 18 and 65", resp.FieldErrors["age"])
		assert.Equal(t, "Monthly expenses must be lower than monthly income", resp.FieldErrors["monthlyExpenses"])

		assert.Empty(t, publisher.publishedEvents)
		assert.Empty(t, recorder.evaluations)
		require.Len(t, recorder.failures, 1)
		assert.Equal(t, []string{"age", "monthlyExpenses"}, recorder.failures[0].Fields())
	})

	t.Run("product bounds apply to the selected product", func(t *testing.T) {
		uc := newCheckEligibility(&mockEventPublisher{}, &mockDecisionRecorder{})

		req := validCheckRequest()
		req.LoanDetails.ProductID = "vehicle_loan"
		req.LoanDetails.Purpose = "new_vehicle"
		req.LoanDetails.RequestedAmount = decimal.NewFromInt(20_000)

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Requested amount must be between R50,000 and R1,500,000", resp.FieldErrors["requestedAmount"])
	})

	t.Run("fails on unknown product", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := newCheckEligibility(publisher, &mockDecisionRecorder{})

		req := validCheckRequest()
		req.LoanDetails.ProductID = "mortgage"

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUnknownProduct)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("publish failure does not fail the evaluation", func(t *testing.T) {
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return errors.New("broker unavailable")
			},
		}
		recorder := &mockDecisionRecorder{}
		uc := newCheckEligibility(publisher, recorder)

		resp, err := uc.Execute(context.Background(), validCheckRequest())
		require.NoError(t, err)
		assert.True(t, resp.Valid)
		require.NotNil(t, resp.Result)
		assert.Len(t, recorder.evaluations, 1)
	})

	t.Run("ineligible applicant receives a counter-offer", func(t *testing.T) {
		uc := newCheckEligibility(&mockEventPublisher{}, &mockDecisionRecorder{})

		req := validCheckRequest()
		req.PersonalInfo.EmploymentStatus = "unemployed"
		req.FinancialInfo.CreditScore = 600

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.Result)
		assert.False(t, resp.Result.Decision.Eligible)
		assert.Equal(t, "high", resp.Result.Decision.RiskCategory)
		testutil.AssertDecimal(t, "84000", resp.Result.Recommendation.RecommendedAmount)
	})
}
