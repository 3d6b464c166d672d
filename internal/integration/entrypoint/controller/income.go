package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase *ledger.CreateIncomeUseCase
	updateUseCase *ledger.UpdateIncomeUseCase
	deleteUseCase *ledger.DeleteIncomeUseCase
	getUseCase    *ledger.GetIncomeUseCase
	listUseCase   *ledger.ListIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *ledger.CreateIncomeUseCase,
	updateUseCase *ledger.UpdateIncomeUseCase,
	deleteUseCase *ledger.DeleteIncomeUseCase,
	getUseCase *ledger.GetIncomeUseCase,
	listUseCase *ledger.ListIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /finance/income requests.
func (c *IncomeController) List(ctx *gin.Context) {
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
	// Income has no category.
	filter.Category = nil

	income, err := c.listUseCase.Execute(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.IncomeListResponse{Income: dto.ToIncomeResponses(income)})
}

// Get handles GET /finance/income/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	id, ok := c.incomeID(ctx)
	if !ok {
		return
	}

	income, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.IncomeEnvelope{Income: dto.ToIncomeResponse(income)})
}

// Create handles POST /finance/income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeLedgerMissingFields), err)
		return
	}

	income, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToCreateInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.IncomeEnvelope{Income: dto.ToIncomeResponse(income)})
}

// Update handles PUT /finance/income/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	id, ok := c.incomeID(ctx)
	if !ok {
		return
	}

	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeLedgerMissingFields), err)
		return
	}

	income, err := c.updateUseCase.Execute(ctx.Request.Context(), req.ToUpdateInput(id))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.IncomeEnvelope{Income: dto.ToIncomeResponse(income)})
}

// Delete handles DELETE /finance/income/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	id, ok := c.incomeID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Income deleted successfully"})
}

func (c *IncomeController) incomeID(ctx *gin.Context) (int64, bool) {
	return parseIDParam(ctx, "id", "Invalid income ID", string(domainerror.ErrCodeInvalidLedgerID))
}
