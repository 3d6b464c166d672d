package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// ListExpensesUseCase lists expenses with optional filters.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the matching expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Expense, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, wrapStoreError("list expenses", err)
	}
	return expenses, nil
}

func validateFilter(filter entity.LedgerFilter) error {
	if filter.Type != nil && !filter.Type.IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerInvalidType,
			"Type must be either manual or auto",
			domainerror.ErrLedgerInvalidType,
		)
	}
	return ValidateDateRange(filter.Range)
}

// ValidateDateRange rejects a range whose start falls after its end.
func ValidateDateRange(dateRange entity.DateRange) error {
	if dateRange.Start != nil && dateRange.End != nil && dateRange.Start.After(*dateRange.End) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDateRange,
			"startDate must not be after endDate",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
