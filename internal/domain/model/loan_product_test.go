package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

func personalLoan(t *testing.T) model.LoanProduct {
	t.Helper()
	p, err := model.NewLoanProduct(
		"personal_loan", "Personal Loan", "Flexible personal financing for various needs",
		5_000, 300_000, 6, 60, 10.5, 18.5,
		[]string{"debt_consolidation", "home_improvement", "education", "medical", "other"},
	)
	require.NoError(t, err)
	return p
}

func vehicleLoan(t *testing.T) model.LoanProduct {
	t.Helper()
	p, err := model.NewLoanProduct(
		"vehicle_loan", "Vehicle Finance", "Financing for new and used vehicles",
		50_000, 1_500_000, 12, 72, 8.5, 15,
		[]string{"new_vehicle", "used_vehicle"},
	)
	require.NoError(t, err)
	return p
}

func TestNewLoanProduct(t *testing.T) {
	p := personalLoan(t)
	assert.Equal(t, "personal_loan", p.ID())
	assert.Equal(t, 300_000.0, p.MaxAmount())
	assert.Equal(t, 6, p.MinTerm())
	assert.Equal(t, "debt_consolidation", p.DefaultPurpose())
	assert.True(t, p.AllowsPurpose("medical"))
	assert.False(t, p.AllowsPurpose("new_vehicle"))

	purposes := p.Purposes()
	purposes[0] = "mutated"
	assert.Equal(t, "debt_consolidation", p.DefaultPurpose(), "purposes must not leak")
}

func TestNewLoanProduct_Invalid(t *testing.T) {
	purposes := []string{"other"}
	tests := []struct {
		name string
		make func() (model.LoanProduct, error)
	}{
		{"missing id", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("", "x", "", 1, 2, 1, 2, 1, 2, purposes)
		}},
		{"missing name", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("x", "", "", 1, 2, 1, 2, 1, 2, purposes)
		}},
		{"inverted amounts", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("x", "x", "", 10, 2, 1, 2, 1, 2, purposes)
		}},
		{"zero term", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("x", "x", "", 1, 2, 0, 2, 1, 2, purposes)
		}},
		{"inverted rates", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("x", "x", "", 1, 2, 1, 2, 5, 2, purposes)
		}},
		{"no purposes", func() (model.LoanProduct, error) {
			return model.NewLoanProduct("x", "x", "", 1, 2, 1, 2, 1, 2, nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.make()
			assert.Error(t, err)
		})
	}
}

func TestCatalog(t *testing.T) {
	catalog, err := model.NewCatalog(personalLoan(t), vehicleLoan(t))
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	products := catalog.Products()
	assert.Equal(t, "personal_loan", products[0].ID())
	assert.Equal(t, "vehicle_loan", products[1].ID())

	found, ok := catalog.Find("vehicle_loan")
	require.True(t, ok)
	assert.Equal(t, "Vehicle Finance", found.Name())

	_, ok = catalog.Find("mortgage")
	assert.False(t, ok)

	_, ok = model.Catalog{}.Find("personal_loan")
	assert.False(t, ok, "empty catalog finds nothing")
}

func TestCatalog_DuplicateIDs(t *testing.T) {
	_, err := model.NewCatalog(personalLoan(t), personalLoan(t))
	assert.ErrorIs(t, err, model.ErrDuplicateProduct)
}
