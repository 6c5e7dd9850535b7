package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertDecimal checks a decimal against its expected string form, ignoring
// trailing zeros.
func AssertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		append([]interface{}{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

// AssertCents checks that d carries no more than two decimal places.
func AssertCents(t *testing.T, d decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d.Equal(d.Round(2)), "%s has sub-cent precision: %s", field, d.String())
}
