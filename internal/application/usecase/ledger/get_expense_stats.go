package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// MonthsInStats is how many monthly buckets the expense statistics return.
const MonthsInStats = 12

// ExpenseStats summarizes expenses.
type ExpenseStats struct {
	Total      decimal.Decimal
	ByType     []entity.AmountGroup
	ByCategory []entity.AmountGroup
	ByMonth    []entity.PeriodTotal
	Top        []*entity.Expense
}

// GetExpenseStatsUseCase computes expense statistics.
type GetExpenseStatsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseStatsUseCase creates a new GetExpenseStatsUseCase instance.
func NewGetExpenseStatsUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseStatsUseCase {
	return &GetExpenseStatsUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the total, type and category breakdowns inside the range,
// plus the latest monthly totals and the largest expenses over all time.
func (uc *GetExpenseStatsUseCase) Execute(ctx context.Context, dateRange entity.DateRange) (*ExpenseStats, error) {
	if err := ValidateDateRange(dateRange); err != nil {
		return nil, err
	}

	total, err := uc.expenseRepo.Sum(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("sum expenses", err)
	}

	byType, err := uc.expenseRepo.SumByType(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("group expenses by type", err)
	}

	byCategory, err := uc.expenseRepo.SumByCategory(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("group expenses by category", err)
	}

	points, err := uc.expenseRepo.PointsSince(ctx, time.Time{})
	if err != nil {
		return nil, wrapStoreError("load expense history", err)
	}

	top, err := uc.expenseRepo.Top(ctx, TopEntriesLimit)
	if err != nil {
		return nil, wrapStoreError("rank expenses", err)
	}

	return &ExpenseStats{
		Total:      total,
		ByType:     byType,
		ByCategory: byCategory,
		ByMonth:    entity.BucketByPeriod(points, entity.GranularityMonthly, MonthsInStats),
		Top:        top,
	}, nil
}
