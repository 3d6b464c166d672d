package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
	ProductID   *int64
}

// CreateIncomeUseCase handles income creation.
type CreateIncomeUseCase struct {
	incomeRepo  adapter.IncomeRepository
	productRepo adapter.ProductRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	productRepo adapter.ProductRepository,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:  incomeRepo,
		productRepo: productRepo,
	}
}

// Execute validates and stores the income entry.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*entity.Income, error) {
	income := &entity.Income{
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Type:        input.Type,
		ProductID:   input.ProductID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := validateEntry(ctx, uc.productRepo, income); err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, wrapStoreError("create income", err)
	}

	created, err := uc.incomeRepo.FindByID(ctx, income.ID)
	if err != nil {
		return nil, wrapStoreError("load income", err)
	}
	return created, nil
}
