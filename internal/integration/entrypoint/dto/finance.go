package dto

import (
	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// StatsQuery selects the bucket size of the finance statistics.
type StatsQuery struct {
	Period string `form:"period"`
}

// MonthsQuery selects how many months of history to include.
type MonthsQuery struct {
	Months int `form:"months"`
}

// FinancialsResponse holds the profit split of a period.
type FinancialsResponse struct {
	Income        string `json:"income"`
	Expenses      string `json:"expenses"`
	NetProfit     string `json:"netProfit"`
	Donation      string `json:"donation"`
	PartnerProfit string `json:"partnerProfit"`
}

// PartnerShareResponse is a partner with the amount owed to them.
type PartnerShareResponse struct {
	PartnerResponse
	ShareAmount string `json:"share_amount"`
}

// OverviewResponse represents the finance overview.
type OverviewResponse struct {
	FinancialsResponse
	PartnerShares []PartnerShareResponse `json:"partnerShares"`
}

// ProfitSharingResponse represents the profit distribution across partners.
type ProfitSharingResponse struct {
	Period               PeriodResponse         `json:"period"`
	Financials           FinancialsResponse     `json:"financials"`
	Partners             []PartnerShareResponse `json:"partners"`
	TotalSharePercentage string                 `json:"totalSharePercentage"`
	RemainingShare       string                 `json:"remainingShare"`
}

// StatsSummaryResponse holds headline totals.
type StatsSummaryResponse struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	NetProfit     string `json:"netProfit"`
	ProfitMargin  string `json:"profitMargin"`
}

// FinanceStatsResponse represents the finance statistics.
type FinanceStatsResponse struct {
	Period           string                `json:"period"`
	IncomeByPeriod   []PeriodTotalResponse `json:"incomeByPeriod"`
	ExpensesByPeriod []PeriodTotalResponse `json:"expensesByPeriod"`
	IncomeByType     []AmountGroupResponse `json:"incomeByType"`
	ExpensesByType   []AmountGroupResponse `json:"expensesByType"`
	TopIncome        []IncomeResponse      `json:"topIncome"`
	Summary          StatsSummaryResponse  `json:"summary"`
}

// BreakdownResponse is a total with its grouped parts.
type BreakdownResponse struct {
	Total     string                `json:"total"`
	Breakdown []AmountGroupResponse `json:"breakdown"`
}

// ProfitResponse holds the profit figures of a profit and loss statement.
type ProfitResponse struct {
	Gross  string `json:"gross"`
	Net    string `json:"net"`
	Margin string `json:"margin"`
}

// ProfitLossResponse represents a profit and loss statement.
type ProfitLossResponse struct {
	Period   PeriodResponse    `json:"period"`
	Revenue  BreakdownResponse `json:"revenue"`
	Expenses BreakdownResponse `json:"expenses"`
	Profit   ProfitResponse    `json:"profit"`
}

// MonthFlowResponse is the cash movement of one month.
type MonthFlowResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// CashFlowSummaryResponse holds the cash flow totals.
type CashFlowSummaryResponse struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	NetCashFlow   string `json:"netCashFlow"`
}

// CashFlowResponse represents the monthly cash flow.
type CashFlowResponse struct {
	Months   int                     `json:"months"`
	CashFlow []MonthFlowResponse     `json:"cashFlow"`
	Summary  CashFlowSummaryResponse `json:"summary"`
}

// ToFinancialsResponse converts the profit split of a distribution.
func ToFinancialsResponse(d *finance.Distribution) FinancialsResponse {
	return FinancialsResponse{
		Income:        Money(d.Income),
		Expenses:      Money(d.Expenses),
		NetProfit:     Money(d.NetProfit),
		Donation:      Money(d.Donation),
		PartnerProfit: Money(d.PartnerProfit),
	}
}

// ToPartnerShareResponses converts the per-partner amounts.
func ToPartnerShareResponses(shares []finance.PartnerShare) []PartnerShareResponse {
	out := make([]PartnerShareResponse, len(shares))
	for i, s := range shares {
		out[i] = PartnerShareResponse{
			PartnerResponse: ToPartnerResponse(s.Partner),
			ShareAmount:     Money(s.ShareAmount),
		}
	}
	return out
}

// ToOverviewResponse converts a distribution to the overview payload.
func ToOverviewResponse(d *finance.Distribution) OverviewResponse {
	return OverviewResponse{
		FinancialsResponse: ToFinancialsResponse(d),
		PartnerShares:      ToPartnerShareResponses(d.Shares),
	}
}

// ToProfitSharingResponse converts a distribution to the profit sharing payload.
func ToProfitSharingResponse(r entity.DateRange, d *finance.Distribution) ProfitSharingResponse {
	return ProfitSharingResponse{
		Period:               ToPeriodResponse(r),
		Financials:           ToFinancialsResponse(d),
		Partners:             ToPartnerShareResponses(d.Shares),
		TotalSharePercentage: Money(d.TotalSharePercentage),
		RemainingShare:       Money(d.RemainingShare),
	}
}

// ToFinanceStatsResponse converts finance statistics.
func ToFinanceStatsResponse(s *finance.Stats) FinanceStatsResponse {
	return FinanceStatsResponse{
		Period:           string(s.Granularity),
		IncomeByPeriod:   ToPeriodTotalResponses(s.IncomeByPeriod),
		ExpensesByPeriod: ToPeriodTotalResponses(s.ExpensesByPeriod),
		IncomeByType:     ToAmountGroupResponses(s.IncomeByType),
		ExpensesByType:   ToAmountGroupResponses(s.ExpensesByType),
		TopIncome:        ToIncomeResponses(s.TopIncome),
		Summary: StatsSummaryResponse{
			TotalIncome:   Money(s.TotalIncome),
			TotalExpenses: Money(s.TotalExpenses),
			NetProfit:     Money(s.NetProfit),
			ProfitMargin:  Money(s.ProfitMargin),
		},
	}
}

// ToProfitLossResponse converts a profit and loss statement.
func ToProfitLossResponse(p *finance.ProfitLoss) ProfitLossResponse {
	return ProfitLossResponse{
		Period: ToPeriodResponse(p.Range),
		Revenue: BreakdownResponse{
			Total:     Money(p.Revenue),
			Breakdown: ToAmountGroupResponses(p.RevenueByType),
		},
		Expenses: BreakdownResponse{
			Total:     Money(p.Expenses),
			Breakdown: ToAmountGroupResponses(p.ExpensesByCategory),
		},
		Profit: ProfitResponse{
			Gross:  Money(p.GrossProfit),
			Net:    Money(p.NetProfit),
			Margin: Money(p.Margin),
		},
	}
}

// ToCashFlowResponse converts the monthly cash flow.
func ToCashFlowResponse(c *finance.CashFlow) CashFlowResponse {
	flows := make([]MonthFlowResponse, len(c.Flows))
	for i, f := range c.Flows {
		flows[i] = MonthFlowResponse{
			Month:    f.Month,
			Income:   Money(f.Income),
			Expenses: Money(f.Expenses),
			Net:      Money(f.Net),
		}
	}
	return CashFlowResponse{
		Months:   c.Months,
		CashFlow: flows,
		Summary: CashFlowSummaryResponse{
			TotalIncome:   Money(c.TotalIncome),
			TotalExpenses: Money(c.TotalExpenses),
			NetCashFlow:   Money(c.NetCashFlow),
		},
	}
}
