package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// PartnerModel represents the partners table in the database.
type PartnerModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(255);not null"`
	SharePercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PartnerModel.
func (PartnerModel) TableName() string {
	return "partners"
}

// ToEntity converts a PartnerModel to a domain Partner entity.
func (m *PartnerModel) ToEntity() *entity.Partner {
	return &entity.Partner{
		ID:              m.ID,
		Name:            m.Name,
		SharePercentage: m.SharePercentage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// PartnerFromEntity creates a PartnerModel from a domain Partner entity.
func PartnerFromEntity(p *entity.Partner) *PartnerModel {
	return &PartnerModel{
		ID:              p.ID,
		Name:            p.Name,
		SharePercentage: p.SharePercentage,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
