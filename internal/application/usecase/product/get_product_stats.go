package product

import (
	"context"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// TopProductsLimit is how many products the revenue ranking returns.
const TopProductsLimit = 5

// GetProductStatsUseCase summarizes the inventory.
type GetProductStatsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductStatsUseCase creates a new GetProductStatsUseCase instance.
func NewGetProductStatsUseCase(productRepo adapter.ProductRepository) *GetProductStatsUseCase {
	return &GetProductStatsUseCase{
		productRepo: productRepo,
	}
}

// Execute returns inventory totals, low stock items and the top products by revenue.
func (uc *GetProductStatsUseCase) Execute(ctx context.Context) (*entity.ProductStats, error) {
	totals, err := uc.productRepo.Totals(ctx)
	if err != nil {
		return nil, wrapStoreError("sum inventory", err)
	}

	lowStock, err := uc.productRepo.LowStock(ctx, entity.LowStockThreshold)
	if err != nil {
		return nil, wrapStoreError("find low stock products", err)
	}

	top, err := uc.productRepo.TopByRevenue(ctx, TopProductsLimit)
	if err != nil {
		return nil, wrapStoreError("rank products", err)
	}

	return &entity.ProductStats{
		TotalProducts: totals.Count,
		TotalCost:     totals.TotalCost,
		TotalRevenue:  totals.TotalRevenue,
		LowStock:      lowStock,
		TopByRevenue:  top,
	}, nil
}
