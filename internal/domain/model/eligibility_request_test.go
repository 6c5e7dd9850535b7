package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

func baseRequest() model.EligibilityRequest {
	return model.EligibilityRequest{
		Personal: model.PersonalInfo{Age: 30, EmploymentStatus: "employed", EmploymentDuration: 24},
		Financial: model.FinancialInfo{
			MonthlyIncome: 25_000, MonthlyExpenses: 12_000, ExistingDebt: 3_000, CreditScore: 680,
		},
		Loan: model.LoanDetails{
			ProductID: "personal_loan", RequestedAmount: 150_000, TermMonths: 24, Purpose: "home_improvement",
		},
	}
}

func TestEligibilityRequest_With(t *testing.T) {
	tests := []struct {
		field model.Field
		raw   string
		check func(t *testing.T, r model.EligibilityRequest)
	}{
		{model.FieldAge, "41", func(t *testing.T, r model.EligibilityRequest) { assert.Equal(t, 41, r.Personal.Age) }},
		{model.FieldEmploymentStatus, "retired", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, "retired", r.Personal.EmploymentStatus)
		}},
		{model.FieldEmploymentDuration, " 7 ", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 7, r.Personal.EmploymentDuration)
		}},
		{model.FieldMonthlyIncome, "31000.50", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 31_000.50, r.Financial.MonthlyIncome)
		}},
		{model.FieldMonthlyExpenses, "9000", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 9_000.0, r.Financial.MonthlyExpenses)
		}},
		{model.FieldExistingDebt, "0", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 0.0, r.Financial.ExistingDebt)
		}},
		{model.FieldCreditScore, "712", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 712, r.Financial.CreditScore)
		}},
		{model.FieldProductID, "vehicle_loan", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, "vehicle_loan", r.Loan.ProductID)
		}},
		{model.FieldRequestedAmount, "80000", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 80_000.0, r.Loan.RequestedAmount)
		}},
		{model.FieldLoanTerm, "36", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, 36, r.Loan.TermMonths)
		}},
		{model.FieldLoanPurpose, "medical", func(t *testing.T, r model.EligibilityRequest) {
			assert.Equal(t, "medical", r.Loan.Purpose)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			orig := baseRequest()
			next, err := orig.With(tt.field, tt.raw)
			require.NoError(t, err)
			tt.check(t, next)
			assert.Equal(t, baseRequest(), orig, "original must not change")
		})
	}
}

func TestEligibilityRequest_WithInvalid(t *testing.T) {
	orig := baseRequest()

	next, err := orig.With(model.FieldAge, "thirty")
	require.ErrorIs(t, err, model.ErrInvalidFieldValue)
	assert.Contains(t, err.Error(), "age")
	assert.Equal(t, orig, next)

	_, err = orig.With(model.FieldMonthlyIncome, "")
	assert.ErrorIs(t, err, model.ErrInvalidFieldValue)

	_, err = orig.With(model.Field(99), "1")
	assert.ErrorIs(t, err, model.ErrInvalidFieldValue)
}

func TestField_ErrorKey(t *testing.T) {
	assert.Equal(t, "monthlyExpenses", model.FieldMonthlyExpenses.ErrorKey())
	assert.Equal(t, "loanTerm", model.FieldLoanTerm.ErrorKey())
	assert.Equal(t, "Field(99)", model.Field(99).String())
}

func TestEligibilityRequest_ForProduct(t *testing.T) {
	t.Run("switching to vehicle finance clamps and resets purpose", func(t *testing.T) {
		req := baseRequest()
		req.Loan.RequestedAmount = 10_000
		req.Loan.TermMonths = 6

		next := req.ForProduct(vehicleLoan(t))
		assert.Equal(t, "vehicle_loan", next.Loan.ProductID)
		assert.Equal(t, 50_000.0, next.Loan.RequestedAmount)
		assert.Equal(t, 12, next.Loan.TermMonths)
		assert.Equal(t, "new_vehicle", next.Loan.Purpose)
	})

	t.Run("values already in bounds are kept", func(t *testing.T) {
		next := baseRequest().ForProduct(personalLoan(t))
		assert.Equal(t, 150_000.0, next.Loan.RequestedAmount)
		assert.Equal(t, 24, next.Loan.TermMonths)
		assert.Equal(t, "home_improvement", next.Loan.Purpose)
	})

	t.Run("upper bounds", func(t *testing.T) {
		req := baseRequest()
		req.Loan.RequestedAmount = 900_000
		req.Loan.TermMonths = 120
		next := req.ForProduct(personalLoan(t))
		assert.Equal(t, 300_000.0, next.Loan.RequestedAmount)
		assert.Equal(t, 60, next.Loan.TermMonths)
	})
}
