package ledger

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// UpdateIncomeInput represents the input for income update.
// Every editable field is replaced; a nil ProductID clears the link.
type UpdateIncomeInput struct {
	IncomeID    int64
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
	ProductID   *int64
}

// UpdateIncomeUseCase handles income updates.
type UpdateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	productRepo adapter.ProductRepository
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	productRepo adapter.ProductRepository,
) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:  incomeRepo,
		productRepo: productRepo,
	}
}

// Execute replaces the editable fields of the income entry.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*entity.Income, error) {
	income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
	if err != nil {
		return nil, wrapStoreError("find income", err)
	}

	income.Description = strings.TrimSpace(input.Description)
	income.Amount = input.Amount
	income.Type = input.Type
	income.ProductID = input.ProductID
	if err := validateEntry(ctx, uc.productRepo, income); err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Update(ctx, income); err != nil {
		return nil, wrapStoreError("update income", err)
	}

	updated, err := uc.incomeRepo.FindByID(ctx, income.ID)
	if err != nil {
		return nil, wrapStoreError("load income", err)
	}
	return updated, nil
}
