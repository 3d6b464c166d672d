package product

import (
	"context"
	"strings"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// ListProductsInput represents the input for listing products.
// A non-nil Query restricts the listing to a name search.
type ListProductsInput struct {
	Query *string
}

// ListProductsUseCase lists and searches products.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lists products newest first, or the ones whose name contains the query.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) ([]*entity.Product, error) {
	if input.Query == nil {
		products, err := uc.productRepo.List(ctx)
		if err != nil {
			return nil, wrapStoreError("list products", err)
		}
		return products, nil
	}

	query := strings.TrimSpace(*input.Query)
	if query == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeSearchQueryRequired,
			"Search query is required",
			domainerror.ErrSearchQueryRequired,
		)
	}

	products, err := uc.productRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, wrapStoreError("search products", err)
	}
	return products, nil
}
