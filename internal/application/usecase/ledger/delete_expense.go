package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
)

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute removes the expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, expenseID int64) error {
	if err := uc.expenseRepo.Delete(ctx, expenseID); err != nil {
		return wrapStoreError("delete expense", err)
	}
	return nil
}
