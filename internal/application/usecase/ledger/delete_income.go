package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
)

// DeleteIncomeUseCase handles income deletion.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute removes the income entry.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, incomeID int64) error {
	if err := uc.incomeRepo.Delete(ctx, incomeID); err != nil {
		return wrapStoreError("delete income", err)
	}
	return nil
}
