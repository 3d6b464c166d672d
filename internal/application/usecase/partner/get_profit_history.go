package partner

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// GetProfitHistoryInput represents the input for a partner's profit history.
type GetProfitHistoryInput struct {
	PartnerID *int64
	Months    int
}

// MonthShare is one month of a partner's profit history.
type MonthShare struct {
	Month         string
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	NetProfit     decimal.Decimal
	Donation      decimal.Decimal
	PartnerProfit decimal.Decimal
	PartnerShare  decimal.Decimal
}

// ProfitHistory is a partner's monthly share over a look-back window.
type ProfitHistory struct {
	Partner           *entity.Partner
	Months            int
	History           []MonthShare
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	TotalNetProfit    decimal.Decimal
	TotalPartnerShare decimal.Decimal
}

// GetProfitHistoryUseCase computes a partner's monthly profit share.
type GetProfitHistoryUseCase struct {
	partnerRepo adapter.PartnerRepository
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetProfitHistoryUseCase creates a new GetProfitHistoryUseCase instance.
func NewGetProfitHistoryUseCase(
	partnerRepo adapter.PartnerRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetProfitHistoryUseCase {
	return &GetProfitHistoryUseCase{
		partnerRepo: partnerRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute distributes each month's net profit with the partner's current share.
func (uc *GetProfitHistoryUseCase) Execute(ctx context.Context, input GetProfitHistoryInput) (*ProfitHistory, error) {
	if input.PartnerID == nil {
		return nil, domainerror.NewPartnerError(
			domainerror.ErrCodePartnerIDRequired,
			"Partner ID is required",
			domainerror.ErrPartnerIDRequired,
		)
	}

	months, err := finance.NormalizeMonths(input.Months)
	if err != nil {
		return nil, err
	}

	partner, err := uc.partnerRepo.FindByID(ctx, *input.PartnerID)
	if err != nil {
		return nil, wrapStoreError("find partner", err)
	}

	flows, err := finance.LoadMonthlyFlows(ctx, uc.incomeRepo, uc.expenseRepo, entity.MonthsAgo(uc.now(), months))
	if err != nil {
		return nil, err
	}

	history := &ProfitHistory{
		Partner:           partner,
		Months:            months,
		History:           make([]MonthShare, 0, len(flows)),
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		TotalNetProfit:    decimal.Zero,
		TotalPartnerShare: decimal.Zero,
	}
	for _, f := range flows {
		d := finance.ComputeDistribution(f.Income, f.Expenses, []*entity.Partner{partner})
		month := MonthShare{
			Month:         f.Month,
			Income:        d.Income,
			Expenses:      d.Expenses,
			NetProfit:     d.NetProfit,
			Donation:      d.Donation,
			PartnerProfit: d.PartnerProfit,
			PartnerShare:  d.Shares[0].ShareAmount,
		}
		history.History = append(history.History, month)
		history.TotalIncome = history.TotalIncome.Add(month.Income)
		history.TotalExpenses = history.TotalExpenses.Add(month.Expenses)
		history.TotalNetProfit = history.TotalNetProfit.Add(month.NetProfit)
		history.TotalPartnerShare = history.TotalPartnerShare.Add(month.PartnerShare)
	}
	return history, nil
}
