package ledger

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// GetIncomeUseCase retrieves a single income entry.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute returns the income entry with the given ID.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, incomeID int64) (*entity.Income, error) {
	income, err := uc.incomeRepo.FindByID(ctx, incomeID)
	if err != nil {
		return nil, wrapStoreError("find income", err)
	}
	return income, nil
}
