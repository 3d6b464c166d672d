package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/finance"
	"github.com/shop-ledger/backend/internal/application/usecase/partner"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

// PartnerController handles partner and profit sharing endpoints.
type PartnerController struct {
	createUseCase        *partner.CreatePartnerUseCase
	updateUseCase        *partner.UpdatePartnerUseCase
	deleteUseCase        *partner.DeletePartnerUseCase
	listUseCase          *partner.ListPartnersUseCase
	statsUseCase         *partner.GetPartnerStatsUseCase
	profitHistoryUseCase *partner.GetProfitHistoryUseCase
	overviewUseCase      *finance.GetOverviewUseCase
}

// NewPartnerController creates a new partner controller instance.
func NewPartnerController(
	createUseCase *partner.CreatePartnerUseCase,
	updateUseCase *partner.UpdatePartnerUseCase,
	deleteUseCase *partner.DeletePartnerUseCase,
	listUseCase *partner.ListPartnersUseCase,
	statsUseCase *partner.GetPartnerStatsUseCase,
	profitHistoryUseCase *partner.GetProfitHistoryUseCase,
	overviewUseCase *finance.GetOverviewUseCase,
) *PartnerController {
	return &PartnerController{
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		listUseCase:          listUseCase,
		statsUseCase:         statsUseCase,
		profitHistoryUseCase: profitHistoryUseCase,
		overviewUseCase:      overviewUseCase,
	}
}

// List handles GET /partners requests.
func (c *PartnerController) List(ctx *gin.Context) {
	partners, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PartnerListResponse{Partners: dto.ToPartnerResponses(partners)})
}

// Create handles POST /partners requests.
func (c *PartnerController) Create(ctx *gin.Context) {
	var req dto.CreatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodePartnerMissingFields), err)
		return
	}

	p, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.PartnerEnvelope{Partner: dto.ToPartnerResponse(p)})
}

// Update handles PUT /partners/:id requests.
func (c *PartnerController) Update(ctx *gin.Context) {
	id, ok := c.partnerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodePartnerMissingFields), err)
		return
	}

	p, err := c.updateUseCase.Execute(ctx.Request.Context(), partner.UpdatePartnerInput{
		PartnerID: id,
		Patch:     req.ToPatch(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.PartnerEnvelope{Partner: dto.ToPartnerResponse(p)})
}

// Delete handles DELETE /partners/:id requests.
func (c *PartnerController) Delete(ctx *gin.Context) {
	id, ok := c.partnerID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Partner deleted successfully"})
}

// ProfitSharing handles GET /partners/profit-sharing requests.
func (c *PartnerController) ProfitSharing(ctx *gin.Context) {
	dateRange, ok := bindDateRange(ctx)
	if !ok {
		return
	}

	distribution, err := c.overviewUseCase.Execute(ctx.Request.Context(), dateRange)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfitSharingResponse(dateRange, distribution))
}

// Stats handles GET /partners/stats/summary requests.
func (c *PartnerController) Stats(ctx *gin.Context) {
	stats, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPartnerStatsResponse(stats))
}

// ProfitHistory handles GET /partners/profit-history requests.
func (c *PartnerController) ProfitHistory(ctx *gin.Context) {
	var query dto.ProfitHistoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeInvalidPartnerID), err)
		return
	}

	history, err := c.profitHistoryUseCase.Execute(ctx.Request.Context(), partner.GetProfitHistoryInput{
		PartnerID: query.PartnerID,
		Months:    query.Months,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfitHistoryResponse(history))
}

func (c *PartnerController) partnerID(ctx *gin.Context) (int64, bool) {
	return parseIDParam(ctx, "id", "Invalid partner ID", string(domainerror.ErrCodeInvalidPartnerID))
}
