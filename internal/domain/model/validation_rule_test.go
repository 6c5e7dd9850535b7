package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

func TestValidationRules_SetAndRule(t *testing.T) {
	var rules model.ValidationRules

	for _, key := range model.RuleKeys {
		require.NoError(t, rules.Set(key, model.ValidationRule{ErrorMessage: key, Required: true}))
	}

	assert.Equal(t, "age", rules.PersonalInfo.Age.ErrorMessage)
	assert.Equal(t, "creditScore", rules.FinancialInfo.CreditScore.ErrorMessage)
	assert.Equal(t, "loanTerm", rules.LoanDetails.LoanTerm.ErrorMessage)

	r, ok := rules.Rule("monthlyExpenses")
	require.True(t, ok)
	assert.Equal(t, "monthlyExpenses", r.ErrorMessage)

	_, ok = rules.Rule("existingDebt")
	assert.False(t, ok)
	assert.ErrorIs(t, rules.Set("existingDebt", model.ValidationRule{}), model.ErrUnknownRuleField)
}

func TestFieldErrors(t *testing.T) {
	errs := model.FieldErrors{}
	assert.False(t, errs.HasErrors())

	errs["loanTerm"] = "x"
	errs["age"] = "y"
	assert.True(t, errs.HasErrors())
	assert.Equal(t, []string{"age", "loanTerm"}, errs.Fields())
}
