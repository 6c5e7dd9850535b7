package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/service"
)

// QuoteInterestRateUseCase prices a loan without running the decision.
type QuoteInterestRateUseCase struct {
	catalog model.Catalog
	engine  *service.EligibilityEngine
}

// NewQuoteInterestRateUseCase wires dependencies.
func NewQuoteInterestRateUseCase(catalog model.Catalog, engine *service.EligibilityEngine) *QuoteInterestRateUseCase {
	return &QuoteInterestRateUseCase{catalog: catalog, engine: engine}
}

// Execute derives the rate, payment and schedule for the request.
func (uc *QuoteInterestRateUseCase) Execute(
	ctx context.Context,
	req dto.QuoteInterestRateRequest,
) (dto.QuoteInterestRateResponse, error) {
	_, span := tracer.Start(ctx, "QuoteInterestRate")
	defer span.End()
	span.SetAttributes(
		attribute.String("product_id", req.ProductID),
		attribute.Int("term_months", req.TermMonths),
	)

	q, err := uc.engine.QuoteInterestRate(
		req.Amount.InexactFloat64(), req.TermMonths, req.CreditScore, req.ProductID, uc.catalog,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return dto.QuoteInterestRateResponse{}, fmt.Errorf("quote interest rate: %w", err)
	}

	return dto.QuoteInterestRateResponse{
		InterestRate:   q.InterestRate,
		MonthlyPayment: q.MonthlyPayment,
		TotalInterest:  q.TotalInterest,
		TotalRepayment: q.TotalRepayment,
		Schedule:       toScheduleResponse(q.Schedule),
	}, nil
}
