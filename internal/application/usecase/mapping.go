package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/domain/model"
)

func toDomainRequest(req dto.CheckEligibilityRequest) model.EligibilityRequest {
	return model.EligibilityRequest{
		Personal: model.PersonalInfo{
			Age:                req.PersonalInfo.Age,
			EmploymentStatus:   req.PersonalInfo.EmploymentStatus,
			EmploymentDuration: req.PersonalInfo.EmploymentDuration,
		},
		Financial: model.FinancialInfo{
			MonthlyIncome:   req.FinancialInfo.MonthlyIncome.InexactFloat64(),
			MonthlyExpenses: req.FinancialInfo.MonthlyExpenses.InexactFloat64(),
			ExistingDebt:    req.FinancialInfo.ExistingDebt.InexactFloat64(),
			CreditScore:     req.FinancialInfo.CreditScore,
		},
		Loan: model.LoanDetails{
			ProductID:       req.LoanDetails.ProductID,
			RequestedAmount: req.LoanDetails.RequestedAmount.InexactFloat64(),
			TermMonths:      req.LoanDetails.TermMonths,
			Purpose:         req.LoanDetails.Purpose,
		},
	}
}

func toProductResponse(p model.LoanProduct) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID(),
		Name:            p.Name(),
		Description:     p.Description(),
		MinAmount:       model.Cents(p.MinAmount()),
		MaxAmount:       model.Cents(p.MaxAmount()),
		MinTerm:         p.MinTerm(),
		MaxTerm:         p.MaxTerm(),
		InterestRateMin: model.Cents(p.RateMin()),
		InterestRateMax: model.Cents(p.RateMax()),
		Purposes:        p.Purposes(),
	}
}

func toRuleResponse(field string, r model.ValidationRule) dto.ValidationRuleResponse {
	out := dto.ValidationRuleResponse{
		Field:        field,
		Required:     r.Required,
		ErrorMessage: r.ErrorMessage,
		Options:      append([]string(nil), r.Options...),
	}
	if r.Min != nil {
		v := decimal.NewFromFloat(*r.Min)
		out.Min = &v
	}
	if r.Max != nil {
		v := decimal.NewFromFloat(*r.Max)
		out.Max = &v
	}
	return out
}

func toScheduleResponse(items []model.PaymentScheduleItem) []dto.ScheduleItemResponse {
	out := make([]dto.ScheduleItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ScheduleItemResponse{
			Month:     it.Month,
			Payment:   it.Payment,
			Principal: it.Principal,
			Interest:  it.Interest,
			Balance:   it.Balance,
		})
	}
	return out
}

func toResultResponse(resp model.EligibilityResponse) *dto.EligibilityResultResponse {
	return &dto.EligibilityResultResponse{
		Decision: dto.DecisionResponse{
			Eligible:           resp.Decision.Eligible,
			ApprovalLikelihood: resp.Decision.ApprovalLikelihood,
			RiskCategory:       resp.Decision.RiskCategory.String(),
			Reason:             resp.Decision.Reason,
		},
		Recommendation: dto.RecommendationResponse{
			MaxAmount:         resp.Recommendation.MaxAmount,
			RecommendedAmount: resp.Recommendation.RecommendedAmount,
			InterestRate:      resp.Recommendation.InterestRate,
			MonthlyPayment:    resp.Recommendation.MonthlyPayment,
			TotalRepayment:    resp.Recommendation.TotalRepayment,
		},
		Affordability: dto.AffordabilityResponse{
			DisposableIncome:  resp.Affordability.DisposableIncome,
			DebtToIncomeRatio: resp.Affordability.DebtToIncomeRatio,
			LoanToIncomeRatio: resp.Affordability.LoanToIncomeRatio,
			Tier:              resp.Affordability.Tier.String(),
		},
		Schedule: toScheduleResponse(resp.Schedule),
	}
}
