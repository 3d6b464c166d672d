package product

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// UpdateProductInput represents the input for a partial product update.
type UpdateProductInput struct {
	ProductID int64
	Patch     entity.ProductPatch
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
	Entries entity.AutoEntries
}

// UpdateProductUseCase handles product updates and the quantity-driven ledger rows.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute applies the supplied fields. When the quantity grows, the cost and
// revenue of the added stock are appended to the ledger in the same transaction.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	if input.Patch.IsEmpty() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductMissingFields,
			"At least one field must be provided",
			domainerror.ErrProductMissingFields,
		)
	}

	product, entries, err := uc.productRepo.Update(ctx, input.ProductID, func(p *entity.Product) (entity.AutoEntries, error) {
		oldQuantity := p.Quantity
		input.Patch.Apply(p)
		if err := p.Validate(); err != nil {
			return entity.AutoEntries{}, err
		}
		return entriesForQuantityChange(p, oldQuantity), nil
	})
	if err != nil {
		return nil, wrapStoreError("update product", err)
	}

	return &UpdateProductOutput{
		Product: product,
		Entries: entries,
	}, nil
}
