package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/domain/event"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/port"
	"github.com/bibbank/eligibility-service/internal/domain/service"
)

// CheckEligibilityUseCase validates an applicant profile and, when it is
// clean, evaluates it and announces the decision.
type CheckEligibilityUseCase struct {
	catalog   model.Catalog
	rules     model.ValidationRules
	engine    *service.EligibilityEngine
	publisher port.EventPublisher
	recorder  port.DecisionRecorder
	logger    *slog.Logger
}

// NewCheckEligibilityUseCase wires dependencies.
func NewCheckEligibilityUseCase(
	catalog model.Catalog,
	rules model.ValidationRules,
	engine *service.EligibilityEngine,
	publisher port.EventPublisher,
	recorder port.DecisionRecorder,
	logger *slog.Logger,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		catalog:   catalog,
		rules:     rules,
		engine:    engine,
		publisher: publisher,
		recorder:  recorder,
		logger:    logger,
	}
}

// Execute runs validation and, if it passes, the eligibility engine.
// Field errors are returned inside the response; only an unknown product or
// an engine failure produce an error.
func (uc *CheckEligibilityUseCase) Execute(
	ctx context.Context,
	req dto.CheckEligibilityRequest,
) (dto.CheckEligibilityResponse, error) {
	ctx, span := tracer.Start(ctx, "CheckEligibility")
	defer span.End()

	request := toDomainRequest(req)
	productID := request.Loan.ProductID
	span.SetAttributes(attribute.String("product_id", productID))

	// 1. Resolve the product whose bounds govern amount and term.
	product, ok := uc.catalog.Find(productID)
	if !ok {
		uc.logger.WarnContext(ctx, "eligibility check for unknown product", "product_id", productID)
		err := fmt.Errorf("%w: %q", service.ErrUnknownProduct, productID)
		span.SetStatus(codes.Error, err.Error())
		return dto.CheckEligibilityResponse{}, err
	}

	// 2. Validate.
	if errs := service.ValidateForProduct(request, uc.rules, product); errs.HasErrors() {
		uc.recorder.RecordValidationFailures(ctx, productID, errs)
		span.SetAttributes(attribute.StringSlice("invalid_fields", errs.Fields()))
		return dto.CheckEligibilityResponse{Valid: false, FieldErrors: errs}, nil
	}

	// 3. Evaluate.
	resp, err := uc.engine.Evaluate(request, uc.catalog)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return dto.CheckEligibilityResponse{}, fmt.Errorf("evaluate eligibility: %w", err)
	}

	evaluationID := uuid.New()
	span.SetAttributes(
		attribute.String("evaluation_id", evaluationID.String()),
		attribute.Bool("eligible", resp.Decision.Eligible),
		attribute.Int("approval_likelihood", resp.Decision.ApprovalLikelihood),
	)
	uc.recorder.RecordEvaluation(ctx, productID, resp)

	uc.logger.DebugContext(ctx, "eligibility evaluated",
		"evaluation_id", evaluationID,
		"product_id", productID,
		"eligible", resp.Decision.Eligible,
		"approval_likelihood", resp.Decision.ApprovalLikelihood,
	)

	// 4. Publish. The decision stands even if the broker is unavailable.
	evt := event.NewEligibilityEvaluated(evaluationID, request, resp)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		span.RecordError(err)
		uc.logger.ErrorContext(ctx, "failed to publish eligibility event",
			"evaluation_id", evaluationID,
			"error", err,
		)
	}

	return dto.CheckEligibilityResponse{
		EvaluationID: evaluationID.String(),
		Valid:        true,
		Result:       toResultResponse(resp),
	}, nil
}

