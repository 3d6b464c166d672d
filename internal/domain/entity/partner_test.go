package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

func TestNewPartner_RoundsShare(t *testing.T) {
	p := NewPartner(" Alice ", decimal.RequireFromString("33.335"))

	assert.Equal(t, "Alice", p.Name)
	assert.True(t, decimal.RequireFromString("33.34").Equal(p.SharePercentage), "got %s", p.SharePercentage.String())
}

func TestPartnerPatch_ApplyRoundsShare(t *testing.T) {
	p := NewPartner("Alice", decimal.NewFromInt(10))
	share := decimal.RequireFromString("0.30000000000000004")

	PartnerPatch{SharePercentage: &share}.Apply(p)

	assert.True(t, decimal.RequireFromString("0.3").Equal(p.SharePercentage), "got %s", p.SharePercentage.String())
	assert.Equal(t, "Alice", p.Name)
}

func TestPartner_Validate(t *testing.T) {
	tests := []struct {
		name    string
		partner *Partner
		want    error
	}{
		{"valid", NewPartner("Alice", decimal.NewFromInt(50)), nil},
		{"full share", NewPartner("Alice", decimal.NewFromInt(100)), nil},
		{"blank name", NewPartner("  ", decimal.NewFromInt(10)), domainerror.ErrPartnerMissingFields},
		{"negative share", NewPartner("Alice", decimal.NewFromInt(-1)), domainerror.ErrPartnerInvalidShare},
		{"above hundred", NewPartner("Alice", decimal.RequireFromString("100.01")), domainerror.ErrPartnerInvalidShare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.partner.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
