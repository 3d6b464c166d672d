package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
	Category    *string
	ProductID   *int64
}

// CreateExpenseUseCase handles expense creation.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	productRepo adapter.ProductRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	productRepo adapter.ProductRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		productRepo: productRepo,
	}
}

// Execute validates and stores the expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	expense := &entity.Expense{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Type:        input.Type,
		Category:    normalizeCategory(input.Category),
		ProductID:   input.ProductID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := validateEntry(ctx, uc.productRepo, expense); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, wrapStoreError("create expense", err)
	}

	created, err := uc.expenseRepo.FindByID(ctx, expense.ID)
	if err != nil {
		return nil, wrapStoreError("load expense", err)
	}
	return created, nil
}

// normalizeCategory trims the category and treats a blank one as absent.
func normalizeCategory(category *string) *string {
	if category == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*category)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
