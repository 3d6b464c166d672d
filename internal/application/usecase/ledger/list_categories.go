package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
)

// ListCategoriesUseCase lists the expense categories in use.
type ListCategoriesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(expenseRepo adapter.ExpenseRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the distinct categories, sorted.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]string, error) {
	categories, err := uc.expenseRepo.Categories(ctx)
	if err != nil {
		return nil, wrapStoreError("list categories", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
