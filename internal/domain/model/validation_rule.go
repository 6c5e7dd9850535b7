package model

import (
	"errors"
	"fmt"
	"sort"
)

// ValidationRule is the contract for a single input field.
type ValidationRule struct {
	Min          *float64
	Max          *float64
	ErrorMessage string
	Options      []string
	Required     bool
}

// PersonalRules groups the rules for the personal section.
type PersonalRules struct {
	Age                ValidationRule
	EmploymentStatus   ValidationRule
	EmploymentDuration ValidationRule
}

// FinancialRules groups the rules for the financial section.
type FinancialRules struct {
	MonthlyIncome   ValidationRule
	MonthlyExpenses ValidationRule
	CreditScore     ValidationRule
}

// LoanRules holds the static loan rules. Requests are checked against the
// selected product's bounds instead; these serve as display defaults.
type LoanRules struct {
	RequestedAmount ValidationRule
	LoanTerm        ValidationRule
}

// ValidationRules is the process-wide rule set, loaded once at startup.
type ValidationRules struct {
	CurrencySymbol string
	PersonalInfo   PersonalRules
	FinancialInfo  FinancialRules
	LoanDetails    LoanRules
}

// ErrUnknownRuleField is returned when a rule is addressed by a key that has
// no slot in the rule set.
var ErrUnknownRuleField = errors.New("unknown rule field")

// RuleKeys lists the rule-governed field keys in section order.
var RuleKeys = []string{
	"age", "employmentStatus", "employmentDuration",
	"monthlyIncome", "monthlyExpenses", "creditScore",
	"requestedAmount", "loanTerm",
}

func (r *ValidationRules) slot(key string) *ValidationRule {
	switch key {
	case "age":
		return &r.PersonalInfo.Age
	case "employmentStatus":
		return &r.PersonalInfo.EmploymentStatus
	case "employmentDuration":
		return &r.PersonalInfo.EmploymentDuration
	case "monthlyIncome":
		return &r.FinancialInfo.MonthlyIncome
	case "monthlyExpenses":
		return &r.FinancialInfo.MonthlyExpenses
	case "creditScore":
		return &r.FinancialInfo.CreditScore
	case "requestedAmount":
		return &r.LoanDetails.RequestedAmount
	case "loanTerm":
		return &r.LoanDetails.LoanTerm
	}
	return nil
}

// Rule returns the rule stored under key.
func (r ValidationRules) Rule(key string) (ValidationRule, bool) {
	s := r.slot(key)
	if s == nil {
		return ValidationRule{}, false
	}
	return *s, true
}

// Set stores rule under key.
func (r *ValidationRules) Set(key string, rule ValidationRule) error {
	s := r.slot(key)
	if s == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRuleField, key)
	}
	*s = rule
	return nil
}

// FieldErrors maps a field key to a human-readable message. An empty map
// means the request is valid.
type FieldErrors map[string]string

// HasErrors reports whether any field failed.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }

// Fields returns the failing field keys in sorted order.
func (e FieldErrors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Float is a convenience for building optional rule bounds.
func Float(v float64) *float64 { return &v }
