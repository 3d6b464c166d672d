package finance

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// GetOverviewUseCase computes the profit distribution over a date range.
type GetOverviewUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	partnerRepo adapter.PartnerRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	partnerRepo adapter.PartnerRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		partnerRepo: partnerRepo,
	}
}

// Execute sums income and expenses inside the range and splits the result across
// the donation and the partners, oldest partner first. It never writes.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, dateRange entity.DateRange) (*Distribution, error) {
	if err := ledger.ValidateDateRange(dateRange); err != nil {
		return nil, err
	}

	income, err := uc.incomeRepo.Sum(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("sum income", err)
	}

	expenses, err := uc.expenseRepo.Sum(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("sum expenses", err)
	}

	partners, err := uc.partnerRepo.ListOldestFirst(ctx)
	if err != nil {
		return nil, wrapStoreError("list partners", err)
	}

	d := ComputeDistribution(income, expenses, partners)
	return &d, nil
}
