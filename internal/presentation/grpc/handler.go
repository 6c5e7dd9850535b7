package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/application/usecase"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/service"
)

// ---------------------------------------------------------------------------
// EligibilityHandler exposes the eligibility use cases over gRPC.
// ---------------------------------------------------------------------------

// EligibilityHandler is the gRPC handler for eligibility operations.
type EligibilityHandler struct {
	UnimplementedEligibilityServiceServer

	listProducts *usecase.ListProductsUseCase
	getRules     *usecase.GetValidationRulesUseCase
	quote        *usecase.QuoteInterestRateUseCase
	check        *usecase.CheckEligibilityUseCase
	logger       *slog.Logger
}

// NewEligibilityHandler creates a new handler with all use-case dependencies.
func NewEligibilityHandler(
	listProducts *usecase.ListProductsUseCase,
	getRules *usecase.GetValidationRulesUseCase,
	quote *usecase.QuoteInterestRateUseCase,
	check *usecase.CheckEligibilityUseCase,
	logger *slog.Logger,
) *EligibilityHandler {
	return &EligibilityHandler{
		listProducts: listProducts,
		getRules:     getRules,
		quote:        quote,
		check:        check,
		logger:       logger,
	}
}

// ListProducts returns the catalog in display order.
func (h *EligibilityHandler) ListProducts(
	ctx context.Context,
	req *dto.ListProductsRequest,
) (*dto.ListProductsResponse, error) {
	resp, err := h.listProducts.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "ListProducts", err)
	}
	return &resp, nil
}

// GetValidationRules returns the field rules a client should mirror.
func (h *EligibilityHandler) GetValidationRules(
	ctx context.Context,
	req *dto.GetValidationRulesRequest,
) (*dto.ValidationRulesResponse, error) {
	resp, err := h.getRules.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "GetValidationRules", err)
	}
	return &resp, nil
}

// QuoteInterestRate prices a loan without an eligibility decision.
func (h *EligibilityHandler) QuoteInterestRate(
	ctx context.Context,
	req *dto.QuoteInterestRateRequest,
) (*dto.QuoteInterestRateResponse, error) {
	if req.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	if !req.Amount.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}

	resp, err := h.quote.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "QuoteInterestRate", err)
	}
	return &resp, nil
}

// CheckEligibility validates and evaluates an applicant profile. Field
// errors come back in a successful response.
func (h *EligibilityHandler) CheckEligibility(
	ctx context.Context,
	req *dto.CheckEligibilityRequest,
) (*dto.CheckEligibilityResponse, error) {
	if req.LoanDetails.ProductID == "" {
		return nil, status.Error(codes.InvalidArgument, "loan_details.product_id is required")
	}

	resp, err := h.check.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CheckEligibility", err)
	}
	return &resp, nil
}

// toStatus maps application errors to gRPC status codes. Unexpected errors
// are logged and hidden behind Internal.
func (h *EligibilityHandler) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownProduct):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrNonPositiveTerm):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		h.logger.ErrorContext(ctx, "eligibility request failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
