package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

// FinanceController handles the read-only financial report endpoints.
type FinanceController struct {
	overviewUseCase   *finance.GetOverviewUseCase
	statsUseCase      *finance.GetStatsUseCase
	profitLossUseCase *finance.GetProfitLossUseCase
	cashFlowUseCase   *finance.GetCashFlowUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	overviewUseCase *finance.GetOverviewUseCase,
	statsUseCase *finance.GetStatsUseCase,
	profitLossUseCase *finance.GetProfitLossUseCase,
	cashFlowUseCase *finance.GetCashFlowUseCase,
) *FinanceController {
	return &FinanceController{
		overviewUseCase:   overviewUseCase,
		statsUseCase:      statsUseCase,
		profitLossUseCase: profitLossUseCase,
		cashFlowUseCase:   cashFlowUseCase,
	}
}

// Overview handles GET /finance/overview requests.
func (c *FinanceController) Overview(ctx *gin.Context) {
	dateRange, ok := bindDateRange(ctx)
	if !ok {
		return
	}

	distribution, err := c.overviewUseCase.Execute(ctx.Request.Context(), dateRange)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(distribution))
}

// Stats handles GET /finance/stats requests.
func (c *FinanceController) Stats(ctx *gin.Context) {
	var query dto.StatsQuery
	_ = ctx.ShouldBindQuery(&query)

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), entity.ParseGranularity(query.Period))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFinanceStatsResponse(stats))
}

// ProfitLoss handles GET /finance/profit-loss requests.
func (c *FinanceController) ProfitLoss(ctx *gin.Context) {
	dateRange, ok := bindDateRange(ctx)
	if !ok {
		return
	}

	report, err := c.profitLossUseCase.Execute(ctx.Request.Context(), dateRange)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(report))
}

// CashFlow handles GET /finance/cash-flow requests.
func (c *FinanceController) CashFlow(ctx *gin.Context) {
	var query dto.MonthsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidMonths), err)
		return
	}

	flow, err := c.cashFlowUseCase.Execute(ctx.Request.Context(), query.Months)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(flow))
}

// bindDateRange reads the optional startDate/endDate query pair.
func bindDateRange(ctx *gin.Context) (entity.DateRange, bool) {
	var query dto.DateRangeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return entity.DateRange{}, false
	}
	dateRange, err := query.ToDateRange()
	if err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return entity.DateRange{}, false
	}
	return dateRange, true
}
