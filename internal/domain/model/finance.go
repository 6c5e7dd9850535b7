package model

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/bibbank/eligibility-service/internal/domain/valueobject"
)

// SentinelRatio is reported for income-based ratios when income is not positive.
const SentinelRatio = 100.0

// Clamp saturates value into [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, value))
}

// RoundToCents rounds x to two decimal places, half away from zero.
// Non-finite values are returned unchanged.
func RoundToCents(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Cents converts a float amount into a decimal rounded to two places. It is the
// only path by which computed figures leave the domain. Non-finite input maps
// to zero.
func Cents(x float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x).Round(2)
}

// DebtToIncomeRatio returns existing debt as a percentage of monthly income.
func DebtToIncomeRatio(existingDebt, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return SentinelRatio
	}
	return existingDebt / monthlyIncome * 100
}

// LoanToIncomeRatio returns the requested amount as a percentage of annualised
// income.
func LoanToIncomeRatio(requestedAmount, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return SentinelRatio
	}
	return requestedAmount / (monthlyIncome * 12) * 100
}

// ClassifyAffordability places disposable income against the monthly payment.
//
//	disposable >= 2.0 x payment -> excellent
//	disposable >= 1.4 x payment -> good
//	disposable >= 1.0 x payment -> fair
//	otherwise                   -> poor
func ClassifyAffordability(disposableIncome, monthlyPayment float64) valueobject.AffordabilityTier {
	switch {
	case disposableIncome >= monthlyPayment*2:
		return valueobject.AffordabilityExcellent
	case disposableIncome >= monthlyPayment*1.4:
		return valueobject.AffordabilityGood
	case disposableIncome >= monthlyPayment:
		return valueobject.AffordabilityFair
	default:
		return valueobject.AffordabilityPoor
	}
}
