package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name         string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     int64
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
	Entries entity.AutoEntries
}

// CreateProductUseCase handles product creation together with its auto ledger rows.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute validates and stores the product. The product row and its ledger rows
// are committed together or not at all.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	product := entity.NewProduct(input.Name, input.CostPrice, input.SellingPrice, input.Quantity)
	if err := product.Validate(); err != nil {
		return nil, err
	}

	entries, err := uc.productRepo.Create(ctx, product, entriesForNewProduct)
	if err != nil {
		return nil, wrapStoreError("create product", err)
	}

	return &CreateProductOutput{
		Product: product,
		Entries: entries,
	}, nil
}
