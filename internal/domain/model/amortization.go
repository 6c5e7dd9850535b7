package model

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNonPositiveTerm is returned when a payment is requested over zero or fewer months.
var ErrNonPositiveTerm = errors.New("term months must be positive")

// PaymentScheduleItem is an immutable value object representing one month in
// an amortization schedule. All amounts are rounded to cents.
type PaymentScheduleItem struct {
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
	Month     int
}

// monthlyRate converts an annual percentage (e.g. 12.5) to a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// MonthlyPayment computes the fixed monthly instalment that retires principal
// over months at the given annual rate:
//
//	r       = annualRatePercent / 100 / 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate splits the principal evenly. The result is not rounded.
func MonthlyPayment(principal, annualRatePercent float64, months int) (float64, error) {
	if months <= 0 {
		return 0, ErrNonPositiveTerm
	}

	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return principal / float64(months), nil
	}

	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1), nil
}

// BuildSchedule produces one entry per month. Interest accrues on the running
// balance and the balance is clamped at zero so rounding drift can never make
// it negative. Rounding is applied per item only; the running balance keeps
// full precision.
func BuildSchedule(principal, annualRatePercent float64, months int) ([]PaymentScheduleItem, error) {
	payment, err := MonthlyPayment(principal, annualRatePercent, months)
	if err != nil {
		return nil, err
	}

	r := monthlyRate(annualRatePercent)
	balance := principal
	schedule := make([]PaymentScheduleItem, 0, months)

	for month := 1; month <= months; month++ {
		interest := balance * r
		principalPaid := payment - interest
		balance = math.Max(0, balance-principalPaid)

		schedule = append(schedule, PaymentScheduleItem{
			Month:     month,
			Payment:   Cents(payment),
			Principal: Cents(principalPaid),
			Interest:  Cents(interest),
			Balance:   Cents(balance),
		})
	}

	return schedule, nil
}
