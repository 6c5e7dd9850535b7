package usecase

import (
	"context"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/domain/model"
)

// GetValidationRulesUseCase returns the rule set that CheckEligibility applies.
type GetValidationRulesUseCase struct {
	rules model.ValidationRules
}

// NewGetValidationRulesUseCase wires dependencies.
func NewGetValidationRulesUseCase(rules model.ValidationRules) *GetValidationRulesUseCase {
	return &GetValidationRulesUseCase{rules: rules}
}

// Execute returns the rules in form order.
func (uc *GetValidationRulesUseCase) Execute(_ context.Context, _ dto.GetValidationRulesRequest) (dto.ValidationRulesResponse, error) {
	resp := dto.ValidationRulesResponse{
		CurrencySymbol: uc.rules.CurrencySymbol,
		Rules:          make([]dto.ValidationRuleResponse, 0, len(model.RuleKeys)),
	}
	for _, key := range model.RuleKeys {
		rule, _ := uc.rules.Rule(key)
		resp.Rules = append(resp.Rules, toRuleResponse(key, rule))
	}
	return resp, nil
}
