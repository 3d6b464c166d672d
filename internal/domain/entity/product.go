// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// ProductCostCategory is the expense category used for auto entries derived from inventory.
const ProductCostCategory = "product_cost"

// LowStockThreshold is the quantity under which a product is reported as low stock.
const LowStockThreshold = 10

// Product represents an inventory item.
// TotalCost and TotalRevenue are derived and always follow price × quantity.
type Product struct {
	ID           int64
	Name         string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     int64
	TotalCost    decimal.Decimal
	TotalRevenue decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProduct creates a new Product with derived totals computed.
func NewProduct(name string, costPrice, sellingPrice decimal.Decimal, quantity int64) *Product {
	now := time.Now().UTC()
	p := &Product{
		Name:         strings.TrimSpace(name),
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.Recompute()
	return p
}

// Recompute refreshes the derived totals from the current prices and quantity.
func (p *Product) Recompute() {
	qty := decimal.NewFromInt(p.Quantity)
	p.TotalCost = p.CostPrice.Mul(qty)
	p.TotalRevenue = p.SellingPrice.Mul(qty)
}

// Validate checks the product field constraints.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			"Product name is required",
			domainerror.ErrProductNameRequired,
		)
	}
	if p.CostPrice.IsNegative() || p.SellingPrice.IsNegative() || p.Quantity < 0 {
		return domainerror.NewProductError(
			domainerror.ErrCodeProductNegativeValue,
			"Prices and quantity must be non-negative",
			domainerror.ErrProductNegativeValue,
		)
	}
	return nil
}

// ProductPatch is a partial update of a product. Nil fields are left untouched.
type ProductPatch struct {
	Name         *string
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	Quantity     *int64
}

// IsEmpty reports whether the patch changes nothing.
func (pp ProductPatch) IsEmpty() bool {
	return pp.Name == nil && pp.CostPrice == nil && pp.SellingPrice == nil && pp.Quantity == nil
}

// Apply writes the supplied fields onto p and recomputes the derived totals.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = strings.TrimSpace(*pp.Name)
	}
	if pp.CostPrice != nil {
		p.CostPrice = *pp.CostPrice
	}
	if pp.SellingPrice != nil {
		p.SellingPrice = *pp.SellingPrice
	}
	if pp.Quantity != nil {
		p.Quantity = *pp.Quantity
	}
	p.UpdatedAt = time.Now().UTC()
	p.Recompute()
}

// AutoEntries holds the ledger rows generated by an inventory change.
// Either field may be nil when no entry is due.
type AutoEntries struct {
	Expense *Expense
	Income  *Income
}

// IsEmpty reports whether no ledger rows are due.
func (a AutoEntries) IsEmpty() bool {
	return a.Expense == nil && a.Income == nil
}

// ProductStats summarizes the current inventory.
type ProductStats struct {
	TotalProducts int64
	TotalCost     decimal.Decimal
	TotalRevenue  decimal.Decimal
	LowStock      []*Product
	TopByRevenue  []*Product
}
