package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	Name         string          `gorm:"type:varchar(255);not null;index"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity     int64           `gorm:"not null;default:0;index"`
	TotalCost    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalRevenue decimal.Decimal `gorm:"type:decimal(15,2);not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeSave keeps the stored totals equal to price × quantity on every write.
func (m *ProductModel) BeforeSave(_ *gorm.DB) error {
	qty := decimal.NewFromInt(m.Quantity)
	m.TotalCost = m.CostPrice.Mul(qty)
	m.TotalRevenue = m.SellingPrice.Mul(qty)
	return nil
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:           m.ID,
		Name:         m.Name,
		CostPrice:    m.CostPrice,
		SellingPrice: m.SellingPrice,
		Quantity:     m.Quantity,
		TotalCost:    m.TotalCost,
		TotalRevenue: m.TotalRevenue,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID:           p.ID,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		TotalCost:    p.TotalCost,
		TotalRevenue: p.TotalRevenue,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
