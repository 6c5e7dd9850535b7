package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/application/usecase"
	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

func TestListProducts_Execute(t *testing.T) {
	uc := usecase.NewListProductsUseCase(testutil.Catalog())

	resp, err := uc.Execute(context.Background(), dto.ListProductsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)

	personal := resp.Products[0]
	assert.Equal(t, "personal_loan", personal.ID)
	assert.Equal(t, "Personal Loan", personal.Name)
	testutil.AssertDecimal(t, "5000", personal.MinAmount)
	testutil.AssertDecimal(t, "300000", personal.MaxAmount)
	testutil.AssertDecimal(t, "10.5", personal.InterestRateMin)
	testutil.AssertDecimal(t, "18.5", personal.InterestRateMax)
	assert.Equal(t, 6, personal.MinTerm)
	assert.Equal(t, 60, personal.MaxTerm)
	assert.Len(t, personal.Purposes, 5)

	assert.Equal(t, "vehicle_loan", resp.Products[1].ID)
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	uc := usecase.NewListProductsUseCase(model.Catalog{})

	resp, err := uc.Execute(context.Background(), dto.ListProductsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
}

func TestGetValidationRules_Execute(t *testing.T) {
	uc := usecase.NewGetValidationRulesUseCase(testutil.Rules())

	resp, err := uc.Execute(context.Background(), dto.GetValidationRulesRequest{})
	require.NoError(t, err)

	assert.Equal(t, "R", resp.CurrencySymbol)
	require.Len(t, resp.Rules, len(model.RuleKeys))

	age := resp.Rules[0]
	assert.Equal(t, "age", age.Field)
	assert.True(t, age.Required)
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	testutil.AssertDecimal(t, "18", *age.Min)
	testutil.AssertDecimal(t, "65", *age.Max)

	status := resp.Rules[1]
	assert.Equal(t, "employmentStatus", status.Field)
	assert.Nil(t, status.Min)
	assert.Equal(t, []string{"employed", "self_employed", "unemployed", "retired"}, status.Options)

	credit := resp.Rules[5]
	assert.Equal(t, "creditScore", credit.Field)
	assert.False(t, credit.Required)
}
