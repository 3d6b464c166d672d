package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// DecimalScale is the fractional digit count of every decimal column. Aggregates are
// rounded to it because sqlite sums NUMERIC columns as REAL.
const DecimalScale int32 = 2

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index;check:chk_expenses_type,type = 'manual' OR type = 'auto'"`
	Category    *string         `gorm:"type:varchar(100);index"`
	ProductID   *int64          `gorm:"index"`
	CreatedAt   time.Time       `gorm:"not null;index"`

	// Relationships
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	e := &entity.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.EntryType(m.Type),
		Category:    m.Category,
		ProductID:   m.ProductID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Product != nil {
		name := m.Product.Name
		e.ProductName = &name
	}
	return e
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Type:        string(e.Type),
		Category:    e.Category,
		ProductID:   e.ProductID,
		CreatedAt:   e.CreatedAt,
	}
}

// IncomeModel represents the income table in the database.
type IncomeModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Description string          `gorm:"type:varchar(500);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index;check:chk_income_type,type = 'manual' OR type = 'auto'"`
	ProductID   *int64          `gorm:"index"`
	CreatedAt   time.Time       `gorm:"not null;index"`

	// Relationships
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	i := &entity.Income{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.EntryType(m.Type),
		ProductID:   m.ProductID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Product != nil {
		name := m.Product.Name
		i.ProductName = &name
	}
	return i
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(i *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          i.ID,
		Description: i.Description,
		Amount:      i.Amount,
		Type:        string(i.Type),
		ProductID:   i.ProductID,
		CreatedAt:   i.CreatedAt,
	}
}

// AmountGroupRow is the scan target for grouped sums.
type AmountGroupRow struct {
	GroupKey string
	Total    decimal.Decimal
	Count    int64
}

// ToEntity converts the row to a domain AmountGroup.
func (r AmountGroupRow) ToEntity() entity.AmountGroup {
	return entity.AmountGroup{Key: r.GroupKey, Total: r.Total.Round(DecimalScale), Count: r.Count}
}

// LedgerPointRow is the scan target for bucketing projections.
type LedgerPointRow struct {
	Amount    decimal.Decimal
	CreatedAt time.Time
}
