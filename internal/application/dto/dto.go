package dto

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// ListProductsRequest asks for the loan product catalog.
type ListProductsRequest struct{}

// GetValidationRulesRequest asks for the validation rule set.
type GetValidationRulesRequest struct{}

// PersonalInfo is the applicant section of an eligibility check.
type PersonalInfo struct {
	EmploymentStatus   string `json:"employment_status"`
	Age                int    `json:"age"`
	EmploymentDuration int    `json:"employment_duration"`
}

// FinancialInfo is the money section of an eligibility check.
type FinancialInfo struct {
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	ExistingDebt    decimal.Decimal `json:"existing_debt"`
	CreditScore     int             `json:"credit_score"`
}

// LoanDetails is the loan section of an eligibility check.
type LoanDetails struct {
	ProductID       string          `json:"product_id"`
	Purpose         string          `json:"purpose"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
}

// CheckEligibilityRequest carries a complete applicant profile.
type CheckEligibilityRequest struct {
	PersonalInfo  PersonalInfo  `json:"personal_info"`
	FinancialInfo FinancialInfo `json:"financial_info"`
	LoanDetails   LoanDetails   `json:"loan_details"`
}

// QuoteInterestRateRequest asks for pricing without an eligibility decision.
type QuoteInterestRateRequest struct {
	ProductID   string          `json:"product_id"`
	Amount      decimal.Decimal `json:"amount"`
	TermMonths  int             `json:"term_months"`
	CreditScore int             `json:"credit_score"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ProductResponse is the external representation of a loan product.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	MinAmount       decimal.Decimal `json:"min_amount"`
	MaxAmount       decimal.Decimal `json:"max_amount"`
	InterestRateMin decimal.Decimal `json:"interest_rate_min"`
	InterestRateMax decimal.Decimal `json:"interest_rate_max"`
	Purposes        []string        `json:"purposes"`
	MinTerm         int             `json:"min_term"`
	MaxTerm         int             `json:"max_term"`
}

// ListProductsResponse lists the catalog in display order.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ValidationRuleResponse is the external representation of one field rule.
type ValidationRuleResponse struct {
	Min          *decimal.Decimal `json:"min,omitempty"`
	Max          *decimal.Decimal `json:"max,omitempty"`
	Field        string           `json:"field"`
	ErrorMessage string           `json:"error_message"`
	Options      []string         `json:"options,omitempty"`
	Required     bool             `json:"required"`
}

// ValidationRulesResponse lists every field rule in form order.
type ValidationRulesResponse struct {
	CurrencySymbol string                   `json:"currency_symbol"`
	Rules          []ValidationRuleResponse `json:"rules"`
}

// ScheduleItemResponse represents a single amortization schedule entry.
type ScheduleItemResponse struct {
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
	Month     int             `json:"month"`
}

// DecisionResponse is the verdict block.
type DecisionResponse struct {
	RiskCategory       string `json:"risk_category"`
	Reason             string `json:"reason"`
	ApprovalLikelihood int    `json:"approval_likelihood"`
	Eligible           bool   `json:"eligible"`
}

// RecommendationResponse is the offer block.
type RecommendationResponse struct {
	MaxAmount         decimal.Decimal `json:"max_amount"`
	RecommendedAmount decimal.Decimal `json:"recommended_amount"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	TotalRepayment    decimal.Decimal `json:"total_repayment"`
}

// AffordabilityResponse is the affordability block.
type AffordabilityResponse struct {
	DisposableIncome  decimal.Decimal `json:"disposable_income"`
	DebtToIncomeRatio decimal.Decimal `json:"debt_to_income_ratio"`
	LoanToIncomeRatio decimal.Decimal `json:"loan_to_income_ratio"`
	Tier              string          `json:"tier"`
}

// EligibilityResultResponse is a full evaluation.
type EligibilityResultResponse struct {
	Decision       DecisionResponse       `json:"decision"`
	Recommendation RecommendationResponse `json:"recommendation"`
	Affordability  AffordabilityResponse  `json:"affordability"`
	Schedule       []ScheduleItemResponse `json:"schedule"`
}

// CheckEligibilityResponse carries either field errors or a result, never both.
type CheckEligibilityResponse struct {
	FieldErrors  map[string]string          `json:"field_errors,omitempty"`
	Result       *EligibilityResultResponse `json:"result,omitempty"`
	EvaluationID string                     `json:"evaluation_id,omitempty"`
	Valid        bool                       `json:"valid"`
}

// QuoteInterestRateResponse is the pricing for a quote request.
type QuoteInterestRateResponse struct {
	InterestRate   decimal.Decimal        `json:"interest_rate"`
	MonthlyPayment decimal.Decimal        `json:"monthly_payment"`
	TotalInterest  decimal.Decimal        `json:"total_interest"`
	TotalRepayment decimal.Decimal        `json:"total_repayment"`
	Schedule       []ScheduleItemResponse `json:"schedule"`
}
