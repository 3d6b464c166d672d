package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// MaxTotalShare is the ceiling for the sum of all partner shares.
var MaxTotalShare = decimal.NewFromInt(100)

// ShareScale is the number of decimal places a share percentage is stored with.
const ShareScale int32 = 2

// Partner holds a percentage entitlement to the post-donation profit.
type Partner struct {
	ID              int64
	Name            string
	SharePercentage decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewPartner creates a new Partner.
func NewPartner(name string, share decimal.Decimal) *Partner {
	now := time.Now().UTC()
	return &Partner{
		Name:            strings.TrimSpace(name),
		SharePercentage: share.Round(ShareScale),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Validate checks the per-partner constraints. The cross-partner sum is checked by the caller.
func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domainerror.NewPartnerError(
			domainerror.ErrCodePartnerMissingFields,
			"Name and share percentage are required",
			domainerror.ErrPartnerMissingFields,
		)
	}
	if p.SharePercentage.IsNegative() || p.SharePercentage.GreaterThan(MaxTotalShare) {
		return domainerror.NewPartnerError(
			domainerror.ErrCodePartnerInvalidShare,
			"Share percentage must be between 0 and 100",
			domainerror.ErrPartnerInvalidShare,
		)
	}
	return nil
}

// PartnerPatch is a partial update of a partner. Nil fields are left untouched.
type PartnerPatch struct {
	Name            *string
	SharePercentage *decimal.Decimal
}

// Apply writes the supplied fields onto p.
func (pp PartnerPatch) Apply(p *Partner) {
	if pp.Name != nil {
		p.Name = strings.TrimSpace(*pp.Name)
	}
	if pp.SharePercentage != nil {
		p.SharePercentage = pp.SharePercentage.Round(ShareScale)
	}
	p.UpdatedAt = time.Now().UTC()
}
