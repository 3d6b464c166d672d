package finance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ProfitLoss is a profit and loss statement over a date range.
type ProfitLoss struct {
	Range              entity.DateRange
	Revenue            decimal.Decimal
	RevenueByType      []entity.AmountGroup
	Expenses           decimal.Decimal
	ExpensesByCategory []entity.AmountGroup
	GrossProfit        decimal.Decimal
	NetProfit          decimal.Decimal
	Margin             decimal.Decimal
}

// GetProfitLossUseCase builds the profit and loss statement.
type GetProfitLossUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute returns revenue by type, expenses by category and the resulting profit.
// Gross profit is the revenue itself; uncategorized expenses count toward the total only.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, dateRange entity.DateRange) (*ProfitLoss, error) {
	if err := ledger.ValidateDateRange(dateRange); err != nil {
		return nil, err
	}

	revenue, err := uc.incomeRepo.Sum(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("sum income", err)
	}
	revenueByType, err := uc.incomeRepo.SumByType(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("group income by type", err)
	}

	expenses, err := uc.expenseRepo.Sum(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("sum expenses", err)
	}
	expensesByCategory, err := uc.expenseRepo.SumByCategory(ctx, dateRange)
	if err != nil {
		return nil, wrapStoreError("group expenses by category", err)
	}

	netProfit := revenue.Sub(expenses)
	return &ProfitLoss{
		Range:              dateRange,
		Revenue:            revenue,
		RevenueByType:      revenueByType,
		Expenses:           expenses,
		ExpensesByCategory: expensesByCategory,
		GrossProfit:        revenue,
		NetProfit:          netProfit,
		Margin:             ProfitMargin(revenue, netProfit),
	}, nil
}
