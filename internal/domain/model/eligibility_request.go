package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PersonalInfo is the applicant section of a request.
type PersonalInfo struct {
	EmploymentStatus   string
	Age                int
	EmploymentDuration int // months
}

// FinancialInfo is the money section of a request.
type FinancialInfo struct {
	MonthlyIncome   float64
	MonthlyExpenses float64
	ExistingDebt    float64
	CreditScore     int
}

// LoanDetails is the loan section of a request.
type LoanDetails struct {
	ProductID       string
	Purpose         string
	RequestedAmount float64
	TermMonths      int
}

// EligibilityRequest is a caller-owned value describing one evaluation.
type EligibilityRequest struct {
	Personal  PersonalInfo
	Financial FinancialInfo
	Loan      LoanDetails
}

// ---------------------------------------------------------------------------
// Field selector
// ---------------------------------------------------------------------------

// Field names one editable request field.
type Field int

const (
	FieldAge Field = iota + 1
	FieldEmploymentStatus
	FieldEmploymentDuration
	FieldMonthlyIncome
	FieldMonthlyExpenses
	FieldExistingDebt
	FieldCreditScore
	FieldProductID
	FieldRequestedAmount
	FieldLoanTerm
	FieldLoanPurpose
)

var fieldKeys = map[Field]string{
	FieldAge:                "age",
	FieldEmploymentStatus:   "employmentStatus",
	FieldEmploymentDuration: "employmentDuration",
	FieldMonthlyIncome:      "monthlyIncome",
	FieldMonthlyExpenses:    "monthlyExpenses",
	FieldExistingDebt:       "existingDebt",
	FieldCreditScore:        "creditScore",
	FieldProductID:          "productId",
	FieldRequestedAmount:    "requestedAmount",
	FieldLoanTerm:           "loanTerm",
	FieldLoanPurpose:        "loanPurpose",
}

// ErrInvalidFieldValue is returned when raw input cannot be parsed for a field.
var ErrInvalidFieldValue = errors.New("invalid field value")

// ErrorKey is the key under which validation reports problems with the field.
func (f Field) ErrorKey() string { return fieldKeys[f] }

// String returns the field key.
func (f Field) String() string {
	if k, ok := fieldKeys[f]; ok {
		return k
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// With returns a copy of the request with one field replaced by the parsed raw
// value. Numeric fields reject text that does not parse.
func (r EligibilityRequest) With(f Field, raw string) (EligibilityRequest, error) {
	next := r
	raw = strings.TrimSpace(raw)

	var err error
	switch f {
	case FieldAge:
		next.Personal.Age, err = parseInt(raw)
	case FieldEmploymentStatus:
		next.Personal.EmploymentStatus = raw
	case FieldEmploymentDuration:
		next.Personal.EmploymentDuration, err = parseInt(raw)
	case FieldMonthlyIncome:
		next.Financial.MonthlyIncome, err = parseFloat(raw)
	case FieldMonthlyExpenses:
		next.Financial.MonthlyExpenses, err = parseFloat(raw)
	case FieldExistingDebt:
		next.Financial.ExistingDebt, err = parseFloat(raw)
	case FieldCreditScore:
		next.Financial.CreditScore, err = parseInt(raw)
	case FieldProductID:
		next.Loan.ProductID = raw
	case FieldRequestedAmount:
		next.Loan.RequestedAmount, err = parseFloat(raw)
	case FieldLoanTerm:
		next.Loan.TermMonths, err = parseInt(raw)
	case FieldLoanPurpose:
		next.Loan.Purpose = raw
	default:
		return r, fmt.Errorf("%w: unknown field %s", ErrInvalidFieldValue, f)
	}
	if err != nil {
		return r, fmt.Errorf("%s: %w", f, err)
	}
	return next, nil
}

// ForProduct returns a copy aimed at product: the amount and term are pulled
// into the product's bounds and an unsupported purpose falls back to the
// product's first purpose.
func (r EligibilityRequest) ForProduct(p LoanProduct) EligibilityRequest {
	next := r
	next.Loan.ProductID = p.ID()
	next.Loan.RequestedAmount = Clamp(r.Loan.RequestedAmount, p.MinAmount(), p.MaxAmount())
	next.Loan.TermMonths = min(p.MaxTerm(), max(p.MinTerm(), r.Loan.TermMonths))
	if !p.AllowsPurpose(r.Loan.Purpose) {
		next.Loan.Purpose = p.DefaultPurpose()
	}
	return next
}

func parseInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidFieldValue, raw)
	}
	return v, nil
}

func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFieldValue, raw)
	}
	return v, nil
}
