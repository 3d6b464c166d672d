package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// GetExpenseUseCase retrieves a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the expense with the given ID.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, expenseID int64) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, wrapStoreError("find expense", err)
	}
	return expense, nil
}
