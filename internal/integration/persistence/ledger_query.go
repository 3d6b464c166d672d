package persistence

import (
	"time"

	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/domain/entity"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// withDateRange restricts query to rows created inside dateRange.
func withDateRange(query *gorm.DB, dateRange entity.DateRange) *gorm.DB {
	if lower := dateRange.LowerBound(); lower != nil {
		query = query.Where("created_at >= ?", lower.UTC())
	}
	if upper := dateRange.UpperBound(); upper != nil {
		query = query.Where("created_at < ?", upper.UTC())
	}
	return query
}

// withLedgerFilter applies the type, product and date filters shared by expenses and income.
func withLedgerFilter(query *gorm.DB, filter entity.LedgerFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	return withDateRange(query, filter.Range)
}

func sumAmount(query *gorm.DB) (*model.AmountGroupRow, error) {
	var row model.AmountGroupRow
	if err := query.Select("COALESCE(SUM(amount), 0) as total, COUNT(*) as count").Scan(&row).Error; err != nil {
		return nil, err
	}
	row.Total = row.Total.Round(model.DecimalScale)
	return &row, nil
}

func groupAmounts(query *gorm.DB, column string, order string) ([]entity.AmountGroup, error) {
	var rows []model.AmountGroupRow
	result := query.
		Select(column + " as group_key, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Group(column).
		Order(order).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]entity.AmountGroup, len(rows))
	for i, row := range rows {
		groups[i] = row.ToEntity()
	}
	return groups, nil
}

func pointsSince(query *gorm.DB, since time.Time) ([]entity.LedgerPoint, error) {
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since.UTC())
	}

	var rows []model.LedgerPointRow
	if err := query.Select("amount, created_at").Order("created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	points := make([]entity.LedgerPoint, len(rows))
	for i, row := range rows {
		points[i] = entity.LedgerPoint{Amount: row.Amount, CreatedAt: row.CreatedAt}
	}
	return points, nil
}
