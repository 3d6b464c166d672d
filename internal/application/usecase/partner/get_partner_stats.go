package partner

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// PartnerStats is the partner count plus the all-time distribution, largest share first.
type PartnerStats struct {
	TotalPartners int64
	Distribution  finance.Distribution
}

// GetPartnerStatsUseCase computes partner statistics.
type GetPartnerStatsUseCase struct {
	partnerRepo adapter.PartnerRepository
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetPartnerStatsUseCase creates a new GetPartnerStatsUseCase instance.
func NewGetPartnerStatsUseCase(
	partnerRepo adapter.PartnerRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetPartnerStatsUseCase {
	return &GetPartnerStatsUseCase{
		partnerRepo: partnerRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute returns the share totals and each partner's current all-time amount.
func (uc *GetPartnerStatsUseCase) Execute(ctx context.Context) (*PartnerStats, error) {
	count, err := uc.partnerRepo.Count(ctx)
	if err != nil {
		return nil, wrapStoreError("count partners", err)
	}

	partners, err := uc.partnerRepo.ListByShare(ctx)
	if err != nil {
		return nil, wrapStoreError("list partners", err)
	}

	allTime := entity.DateRange{}
	income, err := uc.incomeRepo.Sum(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("sum income", err)
	}
	expenses, err := uc.expenseRepo.Sum(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("sum expenses", err)
	}

	return &PartnerStats{
		TotalPartners: count,
		Distribution:  finance.ComputeDistribution(income, expenses, partners),
	}, nil
}
