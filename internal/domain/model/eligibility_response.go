package model

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/eligibility-service/internal/domain/valueobject"
)

// Decision is the verdict block of an evaluation.
type Decision struct {
	RiskCategory       valueobject.RiskCategory
	Reason             string
	ApprovalLikelihood int
	Eligible           bool
}

// Recommendation is the offer block of an evaluation.
type Recommendation struct {
	MaxAmount         decimal.Decimal
	RecommendedAmount decimal.Decimal
	InterestRate      decimal.Decimal
	MonthlyPayment    decimal.Decimal
	TotalRepayment    decimal.Decimal
}

// Affordability summarises how the payment fits the applicant's cash flow.
type Affordability struct {
	DisposableIncome  decimal.Decimal
	DebtToIncomeRatio decimal.Decimal
	LoanToIncomeRatio decimal.Decimal
	Tier              valueobject.AffordabilityTier
}

// EligibilityResponse is the immutable result of one evaluation.
type EligibilityResponse struct {
	Decision       Decision
	Recommendation Recommendation
	Affordability  Affordability
	Schedule       []PaymentScheduleItem
}

// InterestRateQuote is the pricing for an amount, term and credit score on a
// product.
type InterestRateQuote struct {
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalRepayment decimal.Decimal
	Schedule       []PaymentScheduleItem
}
