package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	if err := r.db.WithContext(ctx).Omit("Product").Create(incomeModel).Error; err != nil {
		return err
	}
	income.ID = incomeModel.ID
	return nil
}

// FindByID retrieves an income entry with its product name by ID.
func (r *incomeRepository) FindByID(ctx context.Context, id int64) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// Update replaces the editable fields of an existing income entry.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	result := r.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("id = ?", income.ID).
		Updates(map[string]interface{}{
			"description": income.Description,
			"amount":      income.Amount,
			"type":        string(income.Type),
			"product_id":  income.ProductID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// Delete removes an income entry from the database.
func (r *incomeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

// List retrieves income entries matching the filter, newest first.
func (r *incomeRepository) List(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Income, error) {
	query := withLedgerFilter(r.db.WithContext(ctx).Model(&model.IncomeModel{}), filter)

	var incomeModels []model.IncomeModel
	result := query.
		Preload("Product").
		Order("created_at DESC, id DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return incomeToEntities(incomeModels), nil
}

// Sum totals income amounts inside the date range.
func (r *incomeRepository) Sum(ctx context.Context, dateRange entity.DateRange) (decimal.Decimal, error) {
	row, err := sumAmount(withDateRange(r.db.WithContext(ctx).Model(&model.IncomeModel{}), dateRange))
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumByType groups income totals by entry type.
func (r *incomeRepository) SumByType(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error) {
	query := withDateRange(r.db.WithContext(ctx).Model(&model.IncomeModel{}), dateRange)
	return groupAmounts(query, "type", "type ASC")
}

// Top retrieves the largest income entries.
func (r *incomeRepository) Top(ctx context.Context, limit int) ([]*entity.Income, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Product").
		Order("amount DESC, id ASC").
		Limit(limit).
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return incomeToEntities(incomeModels), nil
}

// PointsSince retrieves amount and creation time of income entries created at or after since.
func (r *incomeRepository) PointsSince(ctx context.Context, since time.Time) ([]entity.LedgerPoint, error) {
	return pointsSince(r.db.WithContext(ctx).Model(&model.IncomeModel{}), since)
}

func incomeToEntities(incomeModels []model.IncomeModel) []*entity.Income {
	income := make([]*entity.Income, len(incomeModels))
	for i := range incomeModels {
		income[i] = incomeModels[i].ToEntity()
	}
	return income
}
