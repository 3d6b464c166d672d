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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	if err := r.db.WithContext(ctx).Omit("Product").Create(expenseModel).Error; err != nil {
		return err
	}
	expense.ID = expenseModel.ID
	return nil
}

// FindByID retrieves an expense with its product name by ID.
func (r *expenseRepository) FindByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// Update replaces the editable fields of an existing expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"description": expense.Description,
			"amount":      expense.Amount,
			"type":        string(expense.Type),
			"category":    expense.Category,
			"product_id":  expense.ProductID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// List retrieves expenses matching the filter, newest first.
func (r *expenseRepository) List(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Expense, error) {
	query := withLedgerFilter(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), filter)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("Product").
		Order("created_at DESC, id DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return expensesToEntities(expenseModels), nil
}

// Sum totals expense amounts inside the date range.
func (r *expenseRepository) Sum(ctx context.Context, dateRange entity.DateRange) (decimal.Decimal, error) {
	row, err := sumAmount(withDateRange(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), dateRange))
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumByType groups expense totals by entry type.
func (r *expenseRepository) SumByType(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error) {
	query := withDateRange(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), dateRange)
	return groupAmounts(query, "type", "type ASC")
}

// SumByCategory groups expense totals by category, largest first.
func (r *expenseRepository) SumByCategory(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error) {
	query := withDateRange(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), dateRange).
		Where("category IS NOT NULL AND category <> ''")
	return groupAmounts(query, "category", "total DESC")
}

// Top retrieves the largest expenses.
func (r *expenseRepository) Top(ctx context.Context, limit int) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Product").
		Order("amount DESC, id ASC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return expensesToEntities(expenseModels), nil
}

// Categories lists the distinct categories in use, sorted.
func (r *expenseRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// PointsSince retrieves amount and creation time of expenses created at or after since.
func (r *expenseRepository) PointsSince(ctx context.Context, since time.Time) ([]entity.LedgerPoint, error) {
	return pointsSince(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), since)
}

func expensesToEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses
}
