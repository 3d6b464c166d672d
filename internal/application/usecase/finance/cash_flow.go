package finance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// MonthFlow is the money in and out during one calendar month.
type MonthFlow struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CashFlow is the monthly flow over a look-back window.
type CashFlow struct {
	Months        int
	Flows         []MonthFlow
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetCashFlow   decimal.Decimal
}

// GetCashFlowUseCase computes the monthly cash flow.
type GetCashFlowUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetCashFlowUseCase creates a new GetCashFlowUseCase instance.
func NewGetCashFlowUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetCashFlowUseCase {
	return &GetCashFlowUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute returns income, expenses and net per month for entries created during
// the last months months, newest month first. Zero months means the default window.
func (uc *GetCashFlowUseCase) Execute(ctx context.Context, months int) (*CashFlow, error) {
	months, err := NormalizeMonths(months)
	if err != nil {
		return nil, err
	}

	flows, err := LoadMonthlyFlows(ctx, uc.incomeRepo, uc.expenseRepo, entity.MonthsAgo(uc.now(), months))
	if err != nil {
		return nil, err
	}

	cf := &CashFlow{
		Months:        months,
		Flows:         flows,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetCashFlow:   decimal.Zero,
	}
	for _, f := range flows {
		cf.TotalIncome = cf.TotalIncome.Add(f.Income)
		cf.TotalExpenses = cf.TotalExpenses.Add(f.Expenses)
		cf.NetCashFlow = cf.NetCashFlow.Add(f.Net)
	}
	return cf, nil
}

// LoadMonthlyFlows merges income and expense entries created at or after since into
// per-month flows, newest month first. Months without entries are omitted.
func LoadMonthlyFlows(
	ctx context.Context,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	since time.Time,
) ([]MonthFlow, error) {
	incomePoints, err := incomeRepo.PointsSince(ctx, since)
	if err != nil {
		return nil, wrapStoreError("load income history", err)
	}
	expensePoints, err := expenseRepo.PointsSince(ctx, since)
	if err != nil {
		return nil, wrapStoreError("load expense history", err)
	}
	return MergeMonthlyFlows(
		entity.BucketByPeriod(incomePoints, entity.GranularityMonthly, 0),
		entity.BucketByPeriod(expensePoints, entity.GranularityMonthly, 0),
	), nil
}

// MergeMonthlyFlows joins two newest-first monthly series into flows, newest first.
func MergeMonthlyFlows(income, expenses []entity.PeriodTotal) []MonthFlow {
	flows := make([]MonthFlow, 0, len(income)+len(expenses))
	i, j := 0, 0
	for i < len(income) || j < len(expenses) {
		var f MonthFlow
		switch {
		case j >= len(expenses) || (i < len(income) && income[i].Period > expenses[j].Period):
			f = MonthFlow{Month: income[i].Period, Income: income[i].Total, Expenses: decimal.Zero}
			i++
		case i >= len(income) || expenses[j].Period > income[i].Period:
			f = MonthFlow{Month: expenses[j].Period, Income: decimal.Zero, Expenses: expenses[j].Total}
			j++
		default:
			f = MonthFlow{Month: income[i].Period, Income: income[i].Total, Expenses: expenses[j].Total}
			i++
			j++
		}
		f.Net = f.Income.Sub(f.Expenses)
		flows = append(flows, f)
	}
	return flows
}
