package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/integration/persistence/model"
)

// AutoMigrate creates or updates every table owned by the repositories.
// Products come first so the ledger foreign keys can reference them.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ProductModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.PartnerModel{},
		&model.UserModel{},
	); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
