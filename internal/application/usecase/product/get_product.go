package product

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// GetProductUseCase retrieves a single product.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute returns the product with the given ID.
func (uc *GetProductUseCase) Execute(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, wrapStoreError("find product", err)
	}
	return product, nil
}
