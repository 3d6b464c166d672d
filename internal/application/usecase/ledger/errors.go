// Package ledger contains expense and income use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// TopEntriesLimit is how many entries the largest-amount rankings return.
const TopEntriesLimit = 10

func expenseNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeExpenseNotFound,
		"Expense not found",
		domainerror.ErrExpenseNotFound,
	)
}

func incomeNotFound() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeIncomeNotFound,
		"Income not found",
		domainerror.ErrIncomeNotFound,
	)
}

// wrapStoreError maps repository failures to ledger errors, keeping typed domain errors intact.
func wrapStoreError(action string, err error) error {
	var coded domainerror.Coded
	switch {
	case errors.As(err, &coded):
		return err
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		return expenseNotFound()
	case errors.Is(err, domainerror.ErrIncomeNotFound):
		return incomeNotFound()
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// validateEntry runs the shared ledger checks and verifies the product link, if any.
func validateEntry(ctx context.Context, productRepo adapter.ProductRepository, entry entity.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	productID := entry.LinkedProductID()
	if productID == nil {
		return nil
	}

	exists, err := productRepo.Exists(ctx, *productID)
	if err != nil {
		return fmt.Errorf("failed to check product existence: %w", err)
	}
	if !exists {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerInvalidProduct,
			"Invalid product ID",
			domainerror.ErrLedgerInvalidProduct,
		)
	}
	return nil
}
