package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shop-ledger/backend/internal/application/usecase/product"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product endpoints.
type ProductController struct {
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
	getUseCase    *product.GetProductUseCase
	listUseCase   *product.ListProductsUseCase
	statsUseCase  *product.GetProductStatsUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	getUseCase *product.GetProductUseCase,
	listUseCase *product.ListProductsUseCase,
	statsUseCase *product.GetProductStatsUseCase,
) *ProductController {
	return &ProductController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		statsUseCase:  statsUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProductListResponse{Products: dto.ToProductResponses(products)})
}

// Search handles GET /products/search/query requests.
func (c *ProductController) Search(ctx *gin.Context) {
	var query dto.SearchProductsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeSearchQueryRequired), err)
		return
	}

	products, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{Query: &query.Query})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProductListResponse{Products: dto.ToProductResponses(products)})
}

// Stats handles GET /products/stats/summary requests.
func (c *ProductController) Stats(ctx *gin.Context) {
	stats, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProductStatsResponse(stats))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	id, ok := c.productID(ctx)
	if !ok {
		return
	}

	p, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProductEnvelope{Product: dto.ToProductResponse(p)})
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeProductMissingFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), req.ToInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ProductEnvelope{Product: dto.ToProductResponse(output.Product)})
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := c.productID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, string(domainerror.ErrCodeProductMissingFields), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), product.UpdateProductInput{
		ProductID: id,
		Patch:     req.ToPatch(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProductEnvelope{Product: dto.ToProductResponse(output.Product)})
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := c.productID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ProductID: id}); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
}

func (c *ProductController) productID(ctx *gin.Context) (int64, bool) {
	return parseIDParam(ctx, "id", "Invalid product ID", string(domainerror.ErrCodeInvalidProductID))
}
