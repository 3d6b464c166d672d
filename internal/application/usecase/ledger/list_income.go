package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ListIncomeUseCase lists income entries with optional filters.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns the matching income entries, newest first. The category filter is ignored.
func (uc *ListIncomeUseCase) Execute(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Income, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	filter.Category = nil

	income, err := uc.incomeRepo.List(ctx, filter)
	if err != nil {
		return nil, wrapStoreError("list income", err)
	}
	return income, nil
}
