package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase     *ledger.CreateExpenseUseCase
	updateUseCase     *ledger.UpdateExpenseUseCase
	deleteUseCase     *ledger.DeleteExpenseUseCase
	getUseCase        *ledger.GetExpenseUseCase
	listUseCase       *ledger.ListExpensesUseCase
	statsUseCase      *ledger.GetExpenseStatsUseCase
	categoriesUseCase *ledger.ListCategoriesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *ledger.CreateExpenseUseCase,
	updateUseCase *ledger.UpdateExpenseUseCase,
	deleteUseCase *ledger.DeleteExpenseUseCase,
	getUseCase *ledger.GetExpenseUseCase,
	listUseCase *ledger.ListExpensesUseCase,
	statsUseCase *ledger.GetExpenseStatsUseCase,
	categoriesUseCase *ledger.ListCategoriesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		statsUseCase:      statsUseCase,
		categoriesUseCase: categoriesUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	var query dto.LedgerFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return
	}

	expenses, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{Expenses: dto.ToExpenseResponses(expenses)})
}

// Stats handles GET /expenses/stats/summary requests.
func (c *ExpenseController) Stats(ctx *gin.Context) {
	var query dto.DateRangeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return
	}
	dateRange, err := query.ToDateRange()
	if err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidDateRange), err)
		return
	}

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), dateRange)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseStatsResponse(stats))
}

// Categories handles GET /expenses/categories/list requests.
func (c *ExpenseController) Categories(ctx *gin.Context) {
	categories, err := c.categoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	expense, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExpenseEnvelope{Expense: dto.ToExpenseResponse(expense)})
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeLedgerMissingFields), err)
		return
	}

	expense, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ExpenseEnvelope{Expense: dto.ToExpenseResponse(expense)})
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeLedgerMissingFields), err)
		return
	}

	expense, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateInput(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExpenseEnvelope{Expense: dto.ToExpenseResponse(expense)})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := c.expenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

func (c *ExpenseController) expenseID(ctx *gin.Context) (int64, bool) {
	return parseIDParam(ctx, "id", "Invalid expense ID", string(domainerror.ErrCodeInvalidLedgerID))
}
