package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// EligibilityEngine – pricing, affordability and approval decisioning
// ---------------------------------------------------------------------------

// ErrUnknownProduct is returned when the requested product is not in the catalog.
var ErrUnknownProduct = errors.New("unknown loan product")

// DefaultMaxAmountCeiling caps the recommendation when the product cannot be
// resolved a second time during recommendation.
const DefaultMaxAmountCeiling = 300_000.0

const (
	referenceCreditScore = 720.0
	creditScoreSpan      = 420.0
	termPenaltyDivisor   = 84.0
	maxTermPenalty       = 0.8

	baseScore            = 40.0
	strongCreditScore    = 650
	strongCreditPoints   = 25.0
	weakCreditPoints     = 8.0
	cashflowCoverage     = 1.3
	goodCashflowPoints   = 25.0
	weakCashflowPoints   = 6.0
	manageableDebtRatio  = 35.0
	manageableDebtPoints = 10.0
	unemployedPenalty    = 35.0
	minLikelihood        = 5.0
	maxLikelihood        = 98.0

	eligibleLikelihood   = 60
	minEmploymentMonths  = 3
	minApplicantAge      = 18
	maxApplicantAge      = 65
	counterOfferFraction = 0.7
	incomeCeilingMonths  = 24
)

const (
	reasonEligible   = "Income-to-expense ratio and debt level support this request"
	reasonIneligible = "Current affordability profile or risk score is below our simulated threshold"
)

// rateQuote is the unrounded-schedule, rounded-figure pricing used inside the
// engine before conversion to decimals.
type rateQuote struct {
	schedule       []model.PaymentScheduleItem
	interestRate   float64
	monthlyPayment float64
	totalInterest  float64
	totalRepayment float64
}

// EligibilityEngine evaluates validated requests. It holds no state and is
// safe for concurrent use.
type EligibilityEngine struct{}

// NewEligibilityEngine returns a new engine instance.
func NewEligibilityEngine() *EligibilityEngine {
	return &EligibilityEngine{}
}

// DeriveInterestRate prices a product for a credit score and term.
//
//	f       = clamp((720 - creditScore) / 420, 0, 1)
//	base    = rateMin + (rateMax - rateMin) * f
//	penalty = clamp((term - minTerm) / 84, 0, 0.8)
//	rate    = round2(base + penalty)
func DeriveInterestRate(product model.LoanProduct, creditScore, termMonths int) float64 {
	f := model.Clamp((referenceCreditScore-float64(creditScore))/creditScoreSpan, 0, 1)
	base := product.RateMin() + (product.RateMax()-product.RateMin())*f
	penalty := model.Clamp(float64(termMonths-product.MinTerm())/termPenaltyDivisor, 0, maxTermPenalty)
	return model.RoundToCents(base + penalty)
}

// QuoteInterestRate prices amount over termMonths for the product identified by
// productID.
func (e *EligibilityEngine) QuoteInterestRate(
	amount float64,
	termMonths, creditScore int,
	productID string,
	catalog model.Catalog,
) (model.InterestRateQuote, error) {
	q, err := e.quote(amount, termMonths, creditScore, productID, catalog)
	if err != nil {
		return model.InterestRateQuote{}, err
	}
	return model.InterestRateQuote{
		InterestRate:   model.Cents(q.interestRate),
		MonthlyPayment: model.Cents(q.monthlyPayment),
		TotalInterest:  model.Cents(q.totalInterest),
		TotalRepayment: model.Cents(q.totalRepayment),
		Schedule:       q.schedule,
	}, nil
}

func (e *EligibilityEngine) quote(
	amount float64,
	termMonths, creditScore int,
	productID string,
	catalog model.Catalog,
) (rateQuote, error) {
	product, ok := catalog.Find(productID)
	if !ok {
		return rateQuote{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}

	rate := DeriveInterestRate(product, creditScore, termMonths)

	payment, err := model.MonthlyPayment(amount, rate, termMonths)
	if err != nil {
		return rateQuote{}, fmt.Errorf("monthly payment: %w", err)
	}
	payment = model.RoundToCents(payment)

	schedule, err := model.BuildSchedule(amount, rate, termMonths)
	if err != nil {
		return rateQuote{}, fmt.Errorf("payment schedule: %w", err)
	}

	totalRepayment := model.RoundToCents(payment * float64(termMonths))
	return rateQuote{
		schedule:       schedule,
		interestRate:   rate,
		monthlyPayment: payment,
		totalRepayment: totalRepayment,
		totalInterest:  model.RoundToCents(totalRepayment - amount),
	}, nil
}

// Evaluate turns a validated request into a decision, a recommendation, an
// affordability analysis and the payment schedule.
func (e *EligibilityEngine) Evaluate(req model.EligibilityRequest, catalog model.Catalog) (model.EligibilityResponse, error) {
	q, err := e.quote(
		req.Loan.RequestedAmount,
		req.Loan.TermMonths,
		req.Financial.CreditScore,
		req.Loan.ProductID,
		catalog,
	)
	if err != nil {
		return model.EligibilityResponse{}, err
	}

	income := req.Financial.MonthlyIncome
	disposable := income - req.Financial.MonthlyExpenses
	dti := model.DebtToIncomeRatio(req.Financial.ExistingDebt, income)
	lti := model.LoanToIncomeRatio(req.Loan.RequestedAmount, income)
	tier := model.ClassifyAffordability(disposable, q.monthlyPayment)

	likelihood := ApprovalLikelihood(req, disposable, dti, q.monthlyPayment)
	eligible := likelihood >= eligibleLikelihood &&
		req.Personal.EmploymentDuration >= minEmploymentMonths &&
		req.Personal.Age >= minApplicantAge &&
		req.Personal.Age <= maxApplicantAge

	reason := reasonIneligible
	recommended := model.RoundToCents(req.Loan.RequestedAmount * counterOfferFraction)
	if eligible {
		reason = reasonEligible
		recommended = req.Loan.RequestedAmount
	}

	// The product was already resolved by quote; the fallback only applies if
	// the catalog lookup disagrees with itself.
	productMax := DefaultMaxAmountCeiling
	if product, ok := catalog.Find(req.Loan.ProductID); ok {
		productMax = product.MaxAmount()
	}
	maxAmount := math.Min(productMax, model.RoundToCents(income*incomeCeilingMonths))

	return model.EligibilityResponse{
		Decision: model.Decision{
			Eligible:           eligible,
			ApprovalLikelihood: likelihood,
			RiskCategory:       valueobject.RiskCategoryForLikelihood(likelihood),
			Reason:             reason,
		},
		Recommendation: model.Recommendation{
			MaxAmount:         model.Cents(maxAmount),
			RecommendedAmount: model.Cents(recommended),
			InterestRate:      model.Cents(q.interestRate),
			MonthlyPayment:    model.Cents(q.monthlyPayment),
			TotalRepayment:    model.Cents(q.totalRepayment),
		},
		Affordability: model.Affordability{
			DisposableIncome:  model.Cents(disposable),
			DebtToIncomeRatio: model.Cents(dti),
			LoanToIncomeRatio: model.Cents(lti),
			Tier:              tier,
		},
		Schedule: q.schedule,
	}, nil
}

// ApprovalLikelihood scores a request on a 5–98 scale.
//
//	40
//	+ 25 if creditScore >= 650, else 8
//	+ 25 if disposable >= 1.3 x payment, else 6
//	+ 10 if debt-to-income <= 35%
//	- 35 if unemployed
func ApprovalLikelihood(req model.EligibilityRequest, disposable, debtToIncome, monthlyPayment float64) int {
	score := baseScore

	if req.Financial.CreditScore >= strongCreditScore {
		score += strongCreditPoints
	} else {
		score += weakCreditPoints
	}

	if disposable >= monthlyPayment*cashflowCoverage {
		score += goodCashflowPoints
	} else {
		score += weakCashflowPoints
	}

	if debtToIncome <= manageableDebtRatio {
		score += manageableDebtPoints
	}

	if req.Personal.EmploymentStatus == valueobject.EmploymentStatusUnemployed.String() {
		score -= unemployedPenalty
	}

	return int(model.Clamp(math.Round(score), minLikelihood, maxLikelihood))
}
