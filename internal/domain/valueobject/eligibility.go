package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// EmploymentStatus – immutable value object
// ---------------------------------------------------------------------------

// EmploymentStatus describes how the applicant currently earns income.
type EmploymentStatus struct {
	value string
}

const (
	employmentEmployed     = "employed"
	employmentSelfEmployed = "self_employed"
	employmentUnemployed   = "unemployed"
	employmentRetired      = "retired"
)

var (
	EmploymentStatusEmployed     = EmploymentStatus{value: employmentEmployed}
	EmploymentStatusSelfEmployed = EmploymentStatus{value: employmentSelfEmployed}
	EmploymentStatusUnemployed   = EmploymentStatus{value: employmentUnemployed}
	EmploymentStatusRetired      = EmploymentStatus{value: employmentRetired}
)

var validEmploymentStatuses = map[string]EmploymentStatus{
	employmentEmployed:     EmploymentStatusEmployed,
	employmentSelfEmployed: EmploymentStatusSelfEmployed,
	employmentUnemployed:   EmploymentStatusUnemployed,
	employmentRetired:      EmploymentStatusRetired,
}

// NewEmploymentStatus creates an EmploymentStatus from a raw string.
func NewEmploymentStatus(s string) (EmploymentStatus, error) {
	v, ok := validEmploymentStatuses[s]
	if !ok {
		return EmploymentStatus{}, fmt.Errorf("%w: %q", ErrInvalidEmploymentStatus, s)
	}
	return v, nil
}

// EmploymentStatuses lists every known status in display order.
func EmploymentStatuses() []EmploymentStatus {
	return []EmploymentStatus{
		EmploymentStatusEmployed,
		EmploymentStatusSelfEmployed,
		EmploymentStatusUnemployed,
		EmploymentStatusRetired,
	}
}

// String returns the string representation of the status.
func (s EmploymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s EmploymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s EmploymentStatus) Equal(other EmploymentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// RiskCategory – immutable value object
// ---------------------------------------------------------------------------

// RiskCategory is a coarse classification of the approval likelihood.
type RiskCategory struct {
	value string
}

const (
	riskLow    = "low"
	riskMedium = "medium"
	riskHigh   = "high"
)

var (
	RiskCategoryLow    = RiskCategory{value: riskLow}
	RiskCategoryMedium = RiskCategory{value: riskMedium}
	RiskCategoryHigh   = RiskCategory{value: riskHigh}
)

var validRiskCategories = map[string]RiskCategory{
	riskLow:    RiskCategoryLow,
	riskMedium: RiskCategoryMedium,
	riskHigh:   RiskCategoryHigh,
}

// NewRiskCategory creates a RiskCategory from a raw string.
func NewRiskCategory(s string) (RiskCategory, error) {
	v, ok := validRiskCategories[s]
	if !ok {
		return RiskCategory{}, fmt.Errorf("%w: %q", ErrInvalidRiskCategory, s)
	}
	return v, nil
}

// RiskCategoryForLikelihood maps an approval likelihood onto a category.
//
//	likelihood >= 80 -> low
//	likelihood >= 60 -> medium
//	otherwise        -> high
func RiskCategoryForLikelihood(likelihood int) RiskCategory {
	switch {
	case likelihood >= 80:
		return RiskCategoryLow
	case likelihood >= 60:
		return RiskCategoryMedium
	default:
		return RiskCategoryHigh
	}
}

// String returns the string representation.
func (c RiskCategory) String() string { return c.value }

// IsZero returns true when not initialised.
func (c RiskCategory) IsZero() bool { return c.value == "" }

// Equal returns true when both categories match.
func (c RiskCategory) Equal(other RiskCategory) bool { return c.value == other.value }

// ---------------------------------------------------------------------------
// AffordabilityTier – immutable value object
// ---------------------------------------------------------------------------

// AffordabilityTier classifies how comfortably disposable income covers a
// monthly payment.
type AffordabilityTier struct {
	value string
}

const (
	tierExcellent = "excellent"
	tierGood      = "good"
	tierFair      = "fair"
	tierPoor      = "poor"
)

var (
	AffordabilityExcellent = AffordabilityTier{value: tierExcellent}
	AffordabilityGood      = AffordabilityTier{value: tierGood}
	AffordabilityFair      = AffordabilityTier{value: tierFair}
	AffordabilityPoor      = AffordabilityTier{value: tierPoor}
)

var validAffordabilityTiers = map[string]AffordabilityTier{
	tierExcellent: AffordabilityExcellent,
	tierGood:      AffordabilityGood,
	tierFair:      AffordabilityFair,
	tierPoor:      AffordabilityPoor,
}

// NewAffordabilityTier creates an AffordabilityTier from a raw string.
func NewAffordabilityTier(s string) (AffordabilityTier, error) {
	v, ok := validAffordabilityTiers[s]
	if !ok {
		return AffordabilityTier{}, fmt.Errorf("%w: %q", ErrInvalidAffordabilityTier, s)
	}
	return v, nil
}

// String returns the string representation.
func (t AffordabilityTier) String() string { return t.value }

// IsZero returns true when not initialised.
func (t AffordabilityTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers match.
func (t AffordabilityTier) Equal(other AffordabilityTier) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidEmploymentStatus  = errors.New("invalid employment status")
	ErrInvalidRiskCategory      = errors.New("invalid risk category")
	ErrInvalidAffordabilityTier = errors.New("invalid affordability tier")
)
