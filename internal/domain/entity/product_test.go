package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

func TestNewProduct_ComputesTotals(t *testing.T) {
	p := NewProduct("  Widget ", decimal.NewFromInt(10), decimal.RequireFromString("15.50"), 4)

	assert.Equal(t, "Widget", p.Name)
	assert.True(t, decimal.NewFromInt(40).Equal(p.TotalCost))
	assert.True(t, decimal.NewFromInt(62).Equal(p.TotalRevenue))
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product *Product
		target  error
	}{
		{
			name:    "valid",
			product: NewProduct("Widget", decimal.NewFromInt(1), decimal.NewFromInt(2), 0),
		},
		{
			name:    "blank name",
			product: NewProduct("   ", decimal.NewFromInt(1), decimal.NewFromInt(2), 1),
			target:  domainerror.ErrProductNameRequired,
		},
		{
			name:    "negative cost",
			product: NewProduct("Widget", decimal.NewFromInt(-1), decimal.NewFromInt(2), 1),
			target:  domainerror.ErrProductNegativeValue,
		},
		{
			name:    "negative quantity",
			product: NewProduct("Widget", decimal.NewFromInt(1), decimal.NewFromInt(2), -3),
			target:  domainerror.ErrProductNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.target == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		})
	}
}

func TestProductPatch_Apply(t *testing.T) {
	p := NewProduct("Widget", decimal.NewFromInt(10), decimal.NewFromInt(15), 5)
	qty := int64(8)
	price := decimal.NewFromInt(20)

	patch := ProductPatch{Quantity: &qty, SellingPrice: &price}
	require.False(t, patch.IsEmpty())
	patch.Apply(p)

	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, int64(8), p.Quantity)
	assert.True(t, decimal.NewFromInt(80).Equal(p.TotalCost))
	assert.True(t, decimal.NewFromInt(160).Equal(p.TotalRevenue))
	assert.True(t, ProductPatch{}.IsEmpty())
}

func TestAutoEntries_IsEmpty(t *testing.T) {
	assert.True(t, AutoEntries{}.IsEmpty())
	assert.False(t, AutoEntries{Income: NewAutoIncome("x", decimal.NewFromInt(1), 1)}.IsEmpty())
}
