package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/usecase/product"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name         string           `json:"name" binding:"required,notblank,max=255"`
	CostPrice    *decimal.Decimal `json:"cost_price" binding:"required"`
	SellingPrice *decimal.Decimal `json:"selling_price" binding:"required"`
	Quantity     *int64           `json:"quantity" binding:"required"`
}

// ToInput converts the request to the use case input.
func (r CreateProductRequest) ToInput() product.CreateProductInput {
	return product.CreateProductInput{
		Name:         r.Name,
		CostPrice:    *r.CostPrice,
		SellingPrice: *r.SellingPrice,
		Quantity:     *r.Quantity,
	}
}

// UpdateProductRequest represents the request body for product update. Absent fields are kept.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty" binding:"omitempty,notblank,max=255"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
}

// ToPatch converts the request to a product patch.
func (r UpdateProductRequest) ToPatch() entity.ProductPatch {
	return entity.ProductPatch{
		Name:         r.Name,
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Quantity:     r.Quantity,
	}
}

// SearchProductsQuery represents the product search query string.
type SearchProductsQuery struct {
	Query string `form:"query"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CostPrice    string    `json:"cost_price"`
	SellingPrice string    `json:"selling_price"`
	Quantity     int64     `json:"quantity"`
	TotalCost    string    `json:"total_cost"`
	TotalRevenue string    `json:"total_revenue"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductEnvelope wraps a single product.
type ProductEnvelope struct {
	Product ProductResponse `json:"product"`
}

// ProductListResponse wraps a product listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ProductStatsSummary holds the inventory totals.
type ProductStatsSummary struct {
	TotalProducts int64  `json:"totalProducts"`
	TotalCost     string `json:"totalCost"`
	TotalRevenue  string `json:"totalRevenue"`
}

// ProductStatsResponse represents the inventory statistics.
type ProductStatsResponse struct {
	Summary      ProductStatsSummary `json:"summary"`
	LowStock     []ProductResponse   `json:"lowStock"`
	TopByRevenue []ProductResponse   `json:"topByRevenue"`
}

// ToProductResponse converts a domain Product to a ProductResponse DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CostPrice:    Money(p.CostPrice),
		SellingPrice: Money(p.SellingPrice),
		Quantity:     p.Quantity,
		TotalCost:    Money(p.TotalCost),
		TotalRevenue: Money(p.TotalRevenue),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductResponses converts a product slice.
func ToProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// ToProductStatsResponse converts inventory statistics.
func ToProductStatsResponse(s *entity.ProductStats) ProductStatsResponse {
	return ProductStatsResponse{
		Summary: ProductStatsSummary{
			TotalProducts: s.TotalProducts,
			TotalCost:     Money(s.TotalCost),
			TotalRevenue:  Money(s.TotalRevenue),
		},
		LowStock:     ToProductResponses(s.LowStock),
		TopByRevenue: ToProductResponses(s.TopByRevenue),
	}
}
