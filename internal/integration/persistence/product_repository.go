package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/application/adapter"
	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create inserts the product and its derived ledger rows atomically.
func (r *productRepository) Create(ctx context.Context, product *entity.Product, derive adapter.DeriveOnCreate) (entity.AutoEntries, error) {
	var entries entity.AutoEntries

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productModel := model.ProductFromEntity(product)
		if err := tx.Create(productModel).Error; err != nil {
			return err
		}
		*product = *productModel.ToEntity()

		if derive == nil {
			return nil
		}
		entries = derive(product)
		return insertAutoEntries(tx, entries)
	})
	if err != nil {
		return entity.AutoEntries{}, err
	}
	return entries, nil
}

// Update loads the product, lets apply mutate it, then saves it with any derived ledger rows.
func (r *productRepository) Update(ctx context.Context, id int64, apply adapter.ApplyOnUpdate) (*entity.Product, entity.AutoEntries, error) {
	var (
		updated *entity.Product
		entries entity.AutoEntries
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productModel model.ProductModel
		if err := tx.Where("id = ?", id).First(&productModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrProductNotFound
			}
			return err
		}

		product := productModel.ToEntity()
		var err error
		entries, err = apply(product)
		if err != nil {
			return err
		}

		saved := model.ProductFromEntity(product)
		if err := tx.Save(saved).Error; err != nil {
			return err
		}
		updated = saved.ToEntity()

		return insertAutoEntries(tx, entries)
	})
	if err != nil {
		return nil, entity.AutoEntries{}, err
	}
	return updated, entries, nil
}

func insertAutoEntries(tx *gorm.DB, entries entity.AutoEntries) error {
	if entries.Expense != nil {
		expenseModel := model.ExpenseFromEntity(entries.Expense)
		if err := tx.Omit("Product").Create(expenseModel).Error; err != nil {
			return err
		}
		entries.Expense.ID = expenseModel.ID
	}
	if entries.Income != nil {
		incomeModel := model.IncomeFromEntity(entries.Income)
		if err := tx.Omit("Product").Create(incomeModel).Error; err != nil {
			return err
		}
		entries.Income.ID = incomeModel.ID
	}
	return nil
}

// Delete removes a product, keeping the ledger rows that referenced it with product_id cleared.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ExpenseModel{}).Where("product_id = ?", id).Update("product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.IncomeModel{}).Where("product_id = ?", id).Update("product_id", nil).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.ProductModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrProductNotFound
		}
		return nil
	})
}

// FindByID retrieves a product by its ID.
func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// Exists checks whether a product with the given ID exists.
func (r *productRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List retrieves all products, newest first.
func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).Order("created_at DESC, id DESC"))
}

// SearchByName retrieves products whose name contains query, case-insensitively.
func (r *productRepository) SearchByName(ctx context.Context, query string) ([]*entity.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.find(r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at DESC, id DESC"))
}

// Totals returns the product count and inventory value sums.
func (r *productRepository) Totals(ctx context.Context) (*adapter.InventoryTotals, error) {
	var totals adapter.InventoryTotals
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COUNT(*) as count, COALESCE(SUM(total_cost), 0) as total_cost, COALESCE(SUM(total_revenue), 0) as total_revenue").
		Scan(&totals)
	if result.Error != nil {
		return nil, result.Error
	}
	totals.TotalCost = totals.TotalCost.Round(model.DecimalScale)
	totals.TotalRevenue = totals.TotalRevenue.Round(model.DecimalScale)
	return &totals, nil
}

// LowStock retrieves products with quantity below threshold, lowest first.
func (r *productRepository) LowStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC, id ASC"))
}

// TopByRevenue retrieves the products with the highest total revenue.
func (r *productRepository) TopByRevenue(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).
		Order("total_revenue DESC, id ASC").
		Limit(limit))
}

func (r *productRepository) find(query *gorm.DB) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products, nil
}
