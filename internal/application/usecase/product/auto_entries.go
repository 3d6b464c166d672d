// Package product contains inventory use cases and the auto ledger rules tied to them.
package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// entriesForNewProduct derives the auto ledger rows for a product that was just inserted.
// A stocked product books its full cost as an expense and its full value as income.
// A side whose amount is zero is skipped, since ledger amounts must be positive.
func entriesForNewProduct(p *entity.Product) entity.AutoEntries {
	var entries entity.AutoEntries
	if p.Quantity <= 0 {
		return entries
	}
	if p.TotalCost.IsPositive() {
		entries.Expense = entity.NewAutoExpense(fmt.Sprintf("Product cost for %s", p.Name), p.TotalCost, p.ID)
	}
	if p.TotalRevenue.IsPositive() {
		entries.Income = entity.NewAutoIncome(fmt.Sprintf("Product revenue for %s", p.Name), p.TotalRevenue, p.ID)
	}
	return entries
}

// entriesForQuantityChange derives the auto ledger rows appended when stock moves from
// oldQuantity to the product's current quantity. Only positive deltas are booked:
// a decrease produces no reversal entry.
func entriesForQuantityChange(p *entity.Product, oldQuantity int64) entity.AutoEntries {
	var entries entity.AutoEntries
	diff := p.Quantity - oldQuantity
	if diff == 0 {
		return entries
	}

	qty := decimal.NewFromInt(diff)
	if costDiff := p.CostPrice.Mul(qty); costDiff.IsPositive() {
		entries.Expense = entity.NewAutoExpense(fmt.Sprintf("Quantity update cost for %s", p.Name), costDiff, p.ID)
	}
	if revenueDiff := p.SellingPrice.Mul(qty); revenueDiff.IsPositive() {
		entries.Income = entity.NewAutoIncome(fmt.Sprintf("Quantity update revenue for %s", p.Name), revenueDiff, p.ID)
	}
	return entries
}
