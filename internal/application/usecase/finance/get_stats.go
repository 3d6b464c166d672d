package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// PeriodsInStats is how many period buckets the statistics return per series.
const PeriodsInStats = 12

// Stats is the all-time financial summary grouped by period and type.
type Stats struct {
	Granularity      entity.Granularity
	IncomeByPeriod   []entity.PeriodTotal
	ExpensesByPeriod []entity.PeriodTotal
	IncomeByType     []entity.AmountGroup
	ExpensesByType   []entity.AmountGroup
	TopIncome        []*entity.Income
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetProfit        decimal.Decimal
	ProfitMargin     decimal.Decimal
}

// GetStatsUseCase computes the financial statistics.
type GetStatsUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute returns the latest period totals, type breakdowns, top income and margin.
func (uc *GetStatsUseCase) Execute(ctx context.Context, granularity entity.Granularity) (*Stats, error) {
	allTime := entity.DateRange{}

	incomePoints, err := uc.incomeRepo.PointsSince(ctx, time.Time{})
	if err != nil {
		return nil, wrapStoreError("load income history", err)
	}
	expensePoints, err := uc.expenseRepo.PointsSince(ctx, time.Time{})
	if err != nil {
		return nil, wrapStoreError("load expense history", err)
	}

	incomeByType, err := uc.incomeRepo.SumByType(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("group income by type", err)
	}
	expensesByType, err := uc.expenseRepo.SumByType(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("group expenses by type", err)
	}

	topIncome, err := uc.incomeRepo.Top(ctx, ledger.TopEntriesLimit)
	if err != nil {
		return nil, wrapStoreError("rank income", err)
	}

	totalIncome, err := uc.incomeRepo.Sum(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("sum income", err)
	}
	totalExpenses, err := uc.expenseRepo.Sum(ctx, allTime)
	if err != nil {
		return nil, wrapStoreError("sum expenses", err)
	}
	netProfit := totalIncome.Sub(totalExpenses)

	return &Stats{
		Granularity:      granularity,
		IncomeByPeriod:   entity.BucketByPeriod(incomePoints, granularity, PeriodsInStats),
		ExpensesByPeriod: entity.BucketByPeriod(expensePoints, granularity, PeriodsInStats),
		IncomeByType:     incomeByType,
		ExpensesByType:   expensesByType,
		TopIncome:        topIncome,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetProfit:        netProfit,
		ProfitMargin:     ProfitMargin(totalIncome, netProfit),
	}, nil
}
