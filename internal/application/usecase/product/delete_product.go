package product

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID int64
}

// DeleteProductUseCase handles product deletion.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute removes the product. Ledger rows that referenced it stay, unlinked.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) error {
	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return wrapStoreError("delete product", err)
	}
	return nil
}
