package testutil

import (
	"github.com/bibbank/eligibility-service/internal/domain/model"
)

// Reference products mirroring the embedded default catalog.
var (
	PersonalLoan = mustProduct(model.NewLoanProduct(
		"personal_loan", "Personal Loan", "Flexible personal financing for various needs",
		5_000, 300_000, 6, 60, 10.5, 18.5,
		[]string{"debt_consolidation", "home_improvement", "education", "medical", "other"},
	))
	VehicleLoan = mustProduct(model.NewLoanProduct(
		"vehicle_loan", "Vehicle Finance", "Financing for new and used vehicles",
		50_000, 1_500_000, 12, 72, 8.5, 15,
		[]string{"new_vehicle", "used_vehicle"},
	))
)

// Catalog returns the two reference products in display order.
func Catalog() model.Catalog {
	c, err := model.NewCatalog(PersonalLoan, VehicleLoan)
	if err != nil {
		panic(err)
	}
	return c
}

// Rules returns the reference validation rule set.
func Rules() model.ValidationRules {
	return model.ValidationRules{
		CurrencySymbol: "R",
		PersonalInfo: model.PersonalRules{
			Age: model.ValidationRule{
				Min: model.Float(18), Max: model.Float(65), Required: true,
				ErrorMessage: "Age must be between 18 and 65",
			},
			EmploymentStatus: model.ValidationRule{
				Required:     true,
				Options:      []string{"employed", "self_employed", "unemployed", "retired"},
				ErrorMessage: "Please select your employment status",
			},
			EmploymentDuration: model.ValidationRule{
				Min: model.Float(3), Required: true,
				ErrorMessage: "Minimum 3 months employment required",
			},
		},
		FinancialInfo: model.FinancialRules{
			MonthlyIncome: model.ValidationRule{
				Min: model.Float(5_000), Required: true,
				ErrorMessage: "Minimum monthly income of R5,000 required",
			},
			MonthlyExpenses: model.ValidationRule{
				Min: model.Float(0), Required: true,
				ErrorMessage: "Please enter your monthly expenses",
			},
			CreditScore: model.ValidationRule{
				Min: model.Float(300), Max: model.Float(850),
				ErrorMessage: "Credit score must be between 300 and 850",
			},
		},
		LoanDetails: model.LoanRules{
			RequestedAmount: model.ValidationRule{
				Min: model.Float(5_000), Max: model.Float(300_000), Required: true,
				ErrorMessage: "Loan amount must be between R5,000 and R300,000",
			},
			LoanTerm: model.ValidationRule{
				Min: model.Float(6), Max: model.Float(60), Required: true,
				ErrorMessage: "Loan term must be between 6 and 60 months",
			},
		},
	}
}

// ValidRequest is a personal-loan request that passes validation and is
// approved with the reference catalog.
func ValidRequest() model.EligibilityRequest {
	return model.EligibilityRequest{
		Personal: model.PersonalInfo{
			Age:                35,
			EmploymentStatus:   "employed",
			EmploymentDuration: 24,
		},
		Financial: model.FinancialInfo{
			MonthlyIncome:   25_000,
			MonthlyExpenses: 10_000,
			ExistingDebt:    3_000,
			CreditScore:     680,
		},
		Loan: model.LoanDetails{
			ProductID:       "personal_loan",
			RequestedAmount: 120_000,
			TermMonths:      24,
			Purpose:         "home_improvement",
		},
	}
}

func mustProduct(p model.LoanProduct, err error) model.LoanProduct {
	if err != nil {
		panic(err)
	}
	return p
}
