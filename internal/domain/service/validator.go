package service

import (
	"math"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bibbank/eligibility-service/internal/domain/model"
)

const defaultCurrencySymbol = "R"

// fieldValue carries either a numeric or a string input to a rule.
type fieldValue struct {
	str     string
	num     float64
	numeric bool
}

func numericValue(v float64) fieldValue { return fieldValue{num: v, numeric: true} }
func stringValue(v string) fieldValue   { return fieldValue{str: v} }

func (v fieldValue) empty() bool {
	if v.numeric {
		return math.IsNaN(v.num)
	}
	return v.str == ""
}

// Validate checks a request against the rule set and the selected product's
// amount and term bounds. It never mutates its inputs; an empty result means
// the request is valid.
//
// Checks per rule-governed field run in order (required, numeric range,
// allowed options) and the first failure wins. Amount and term use the product
// bounds. Expenses at or above income always produce a monthlyExpenses error,
// replacing any earlier one.
func Validate(
	req model.EligibilityRequest,
	rules model.ValidationRules,
	minAmount, maxAmount float64,
	minTerm, maxTerm int,
) model.FieldErrors {
	errs := model.FieldErrors{}

	checkValue(errs, model.FieldAge, numericValue(float64(req.Personal.Age)), rules.PersonalInfo.Age)
	checkValue(errs, model.FieldEmploymentStatus, stringValue(req.Personal.EmploymentStatus), rules.PersonalInfo.EmploymentStatus)
	checkValue(errs, model.FieldEmploymentDuration, numericValue(float64(req.Personal.EmploymentDuration)), rules.PersonalInfo.EmploymentDuration)

	checkValue(errs, model.FieldMonthlyIncome, numericValue(req.Financial.MonthlyIncome), rules.FinancialInfo.MonthlyIncome)
	checkValue(errs, model.FieldMonthlyExpenses, numericValue(req.Financial.MonthlyExpenses), rules.FinancialInfo.MonthlyExpenses)
	checkValue(errs, model.FieldCreditScore, numericValue(float64(req.Financial.CreditScore)), rules.FinancialInfo.CreditScore)

	p := message.NewPrinter(language.English)
	symbol := rules.CurrencySymbol
	if symbol == "" {
		symbol = defaultCurrencySymbol
	}

	amount := req.Loan.RequestedAmount
	if math.IsNaN(amount) || amount < minAmount || amount > maxAmount {
		errs[model.FieldRequestedAmount.ErrorKey()] = p.Sprintf(
			"Requested amount must be between %s%v and %s%v",
			symbol, localeNumber(minAmount), symbol, localeNumber(maxAmount),
		)
	}

	if req.Loan.TermMonths < minTerm || req.Loan.TermMonths > maxTerm {
		errs[model.FieldLoanTerm.ErrorKey()] = p.Sprintf(
			"Loan term must be between %d and %d months", minTerm, maxTerm,
		)
	}

	if req.Financial.MonthlyExpenses >= req.Financial.MonthlyIncome {
		errs[model.FieldMonthlyExpenses.ErrorKey()] = "Monthly expenses must be lower than monthly income"
	}

	return errs
}

// ValidateForProduct is Validate with the bounds taken from product.
func ValidateForProduct(req model.EligibilityRequest, rules model.ValidationRules, product model.LoanProduct) model.FieldErrors {
	return Validate(req, rules,
		product.MinAmount(), product.MaxAmount(),
		product.MinTerm(), product.MaxTerm(),
	)
}

func checkValue(errs model.FieldErrors, f model.Field, v fieldValue, rule model.ValidationRule) {
	key := f.ErrorKey()

	if rule.Required && v.empty() {
		errs[key] = rule.ErrorMessage
		return
	}

	if v.numeric {
		if rule.Min != nil && v.num < *rule.Min {
			errs[key] = rule.ErrorMessage
			return
		}
		if rule.Max != nil && v.num > *rule.Max {
			errs[key] = rule.ErrorMessage
			return
		}
		return
	}

	if len(rule.Options) > 0 && !slices.Contains(rule.Options, v.str) {
		errs[key] = rule.ErrorMessage
	}
}

func localeNumber(v float64) number.Formatter {
	return number.Decimal(v, number.MaxFractionDigits(2))
}
