// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// DeriveOnCreate builds the ledger rows for a freshly inserted product (ID already assigned).
type DeriveOnCreate func(product *entity.Product) entity.AutoEntries

// ApplyOnUpdate mutates the loaded product and returns the ledger rows to append.
// Returning an error aborts the update without writing anything.
type ApplyOnUpdate func(product *entity.Product) (entity.AutoEntries, error)

// InventoryTotals represents aggregated inventory value.
type InventoryTotals struct {
	Count        int64
	TotalCost    decimal.Decimal
	TotalRevenue decimal.Decimal
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts the product and the ledger rows derived from it in one transaction.
	Create(ctx context.Context, product *entity.Product, derive DeriveOnCreate) (entity.AutoEntries, error)

	// Update loads the product, applies the change and appends the derived ledger rows in one transaction.
	Update(ctx context.Context, id int64, apply ApplyOnUpdate) (*entity.Product, entity.AutoEntries, error)

	// Delete removes a product and nulls product_id on the ledger rows that referenced it.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Exists checks whether a product with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// List retrieves all products, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// SearchByName retrieves products whose name contains query, newest first.
	SearchByName(ctx context.Context, query string) ([]*entity.Product, error)

	// Totals returns the product count and inventory value sums.
	Totals(ctx context.Context) (*InventoryTotals, error)

	// LowStock retrieves products with quantity below threshold, lowest first.
	LowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)

	// TopByRevenue retrieves the products with the highest total revenue.
	TopByRevenue(ctx context.Context, limit int) ([]*entity.Product, error)
}
