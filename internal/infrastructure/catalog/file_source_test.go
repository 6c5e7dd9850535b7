package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/domain/model"
	"github.com/bibbank/eligibility-service/internal/infrastructure/catalog"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

func TestFileSource_EmbeddedDefaults(t *testing.T) {
	c, rules, err := catalog.NewFileSource("").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutil.Catalog(), c)
	assert.Equal(t, testutil.Rules(), rules)
}

func TestFileSource_ReadsFile(t *testing.T) {
	doc := `
currency_symbol: $
products:
  - id: student_loan
    name: Student Loan
    description: Tuition financing
    min_amount: 1000
    max_amount: 50000
    min_term: 12
    max_term: 120
    interest_rate: {min: 4, max: 9}
    purposes: [tuition]
validation_rules:
  age: {required: true, min: 18, error_message: too young}
  employmentStatus: {required: true, options: [employed], error_message: status}
  employmentDuration: {min: 0, error_message: duration}
  monthlyIncome: {min: 0, error_message: income}
  monthlyExpenses: {min: 0, error_message: expenses}
  creditScore: {min: 300, max: 850, error_message: score}
  requestedAmount: {min: 1000, max: 50000, error_message: amount}
  loanTerm: {min: 12, max: 120, error_message: term}
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, rules, err := catalog.NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, c.Len())
	p, ok := c.Find("student_loan")
	require.True(t, ok)
	assert.Equal(t, 120, p.MaxTerm())
	assert.Equal(t, 9.0, p.RateMax())
	assert.Equal(t, "$", rules.CurrencySymbol)
	assert.Equal(t, "too young", rules.PersonalInfo.Age.ErrorMessage)
	assert.Nil(t, rules.PersonalInfo.Age.Max)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, _, err := catalog.NewFileSource(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	testutil.AssertErrorContains(t, err, "read catalog")
}

func TestParse_Rejects(t *testing.T) {
	const rules = `
validation_rules:
  age: {error_message: a}
  employmentStatus: {error_message: b}
  employmentDuration: {error_message: c}
  monthlyIncome: {error_message: d}
  monthlyExpenses: {error_message: e}
  creditScore: {error_message: f}
  requestedAmount: {error_message: g}
  loanTerm: {error_message: h}
`
	const product = `
  - id: p
    name: P
    min_amount: 1
    max_amount: 2
    min_term: 1
    max_term: 2
    interest_rate: {min: 1, max: 2}
    purposes: [x]
`
	tests := []struct {
		name  string
		doc   string
		isErr error
		msg   string
	}{
		{name: "no products", doc: "products: []\n" + rules, isErr: catalog.ErrEmptyCatalog},
		{name: "duplicate ids", doc: "products:" + product + product + rules, isErr: model.ErrDuplicateProduct},
		{name: "unknown rule", doc: "products:" + product + rules + "  existingDebt: {error_message: z}\n", isErr: model.ErrUnknownRuleField},
		{name: "missing rule", doc: "products:" + product + "validation_rules:\n  age: {error_message: a}\n", msg: `missing validation rule "employmentStatus"`},
		{name: "unknown key", doc: "products:" + product + rules + "extra: true\n", msg: "decode catalog"},
		{name: "inverted amounts", doc: "products:\n  - {id: p, name: P, min_amount: 5, max_amount: 2, min_term: 1, max_term: 2, interest_rate: {min: 1, max: 2}, purposes: [x]}\n" + rules, msg: "product 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := catalog.Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.isErr != nil {
				assert.ErrorIs(t, err, tt.isErr)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
