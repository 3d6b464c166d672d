package ledger

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update.
// Every editable field is replaced; a nil Category or ProductID clears it.
type UpdateExpenseInput struct {
	ExpenseID   int64
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
	Category    *string
	ProductID   *int64
}

// UpdateExpenseUseCase handles expense updates.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	productRepo adapter.ProductRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	productRepo adapter.ProductRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		productRepo: productRepo,
	}
}

// Execute replaces the editable fields of the expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, wrapStoreError("find expense", err)
	}

	expense.Description = strings.TrimSpace(input.Description)
	expense.Amount = input.Amount
	expense.Type = input.Type
	expense.Category = normalizeCategory(input.Category)
	expense.ProductID = input.ProductID
	if err := validateEntry(ctx, uc.productRepo, expense); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, wrapStoreError("update expense", err)
	}

	updated, err := uc.expenseRepo.FindByID(ctx, expense.ID)
	if err != nil {
		return nil, wrapStoreError("load expense", err)
	}
	return updated, nil
}
