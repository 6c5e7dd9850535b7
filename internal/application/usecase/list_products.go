package usecase

import (
	"context"

	"github.com/bibbank/eligibility-service/internal/application/dto"
	"github.com/bibbank/eligibility-service/internal/domain/model"
)

// ListProductsUseCase returns the loan product catalog.
type ListProductsUseCase struct {
	catalog model.Catalog
}

// NewListProductsUseCase wires dependencies.
func NewListProductsUseCase(catalog model.Catalog) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog}
}

// Execute returns every product in catalog order.
func (uc *ListProductsUseCase) Execute(_ context.Context, _ dto.ListProductsRequest) (dto.ListProductsResponse, error) {
	products := uc.catalog.Products()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return dto.ListProductsResponse{Products: out}, nil
}
