package event

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	// EligibilityEvaluatedType is the event type of EligibilityEvaluated.
	EligibilityEvaluatedType = "eligibility.evaluation.completed"

	aggregateType = "EligibilityEvaluation"
)

// EligibilityEvaluated is raised once an eligibility decision is final.
type EligibilityEvaluated struct {
	events.BaseEvent
	ProductID          string          `json:"product_id"`
	Purpose            string          `json:"purpose"`
	RiskCategory       string          `json:"risk_category"`
	AffordabilityTier  string          `json:"affordability_tier"`
	RequestedAmount    decimal.Decimal `json:"requested_amount"`
	RecommendedAmount  decimal.Decimal `json:"recommended_amount"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TermMonths         int             `json:"term_months"`
	ApprovalLikelihood int             `json:"approval_likelihood"`
	Eligible           bool            `json:"eligible"`
}

// NewEligibilityEvaluated builds the event for one evaluation.
func NewEligibilityEvaluated(
	evaluationID uuid.UUID,
	req model.EligibilityRequest,
	resp model.EligibilityResponse,
) EligibilityEvaluated {
	return EligibilityEvaluated{
		BaseEvent:          events.NewBaseEvent(EligibilityEvaluatedType, evaluationID, aggregateType),
		ProductID:          req.Loan.ProductID,
		Purpose:            req.Loan.Purpose,
		RequestedAmount:    model.Cents(req.Loan.RequestedAmount),
		TermMonths:         req.Loan.TermMonths,
		Eligible:           resp.Decision.Eligible,
		ApprovalLikelihood: resp.Decision.ApprovalLikelihood,
		RiskCategory:       resp.Decision.RiskCategory.String(),
		AffordabilityTier:  resp.Affordability.Tier.String(),
		RecommendedAmount:  resp.Recommendation.RecommendedAmount,
		InterestRate:       resp.Recommendation.InterestRate,
	}
}
