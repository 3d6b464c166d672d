package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

func TestExpense_Validate(t *testing.T) {
	valid := func() *Expense {
		return &Expense{Description: "Rent", Amount: decimal.NewFromInt(500), Type: EntryTypeManual}
	}

	assert.NoError(t, valid().Validate())

	blank := valid()
	blank.Description = "  "
	assert.True(t, errors.Is(blank.Validate(), domainerror.ErrLedgerMissingFields))

	badType := valid()
	badType.Type = "refund"
	assert.True(t, errors.Is(badType.Validate(), domainerror.ErrLedgerInvalidType))

	zero := valid()
	zero.Amount = decimal.Zero
	assert.True(t, errors.Is(zero.Validate(), domainerror.ErrLedgerInvalidAmount))
}

func TestNewAutoEntries(t *testing.T) {
	expense := NewAutoExpense("Product cost for Widget", decimal.NewFromInt(30), 7)
	assert.Equal(t, EntryTypeAuto, expense.Type)
	assert.Equal(t, ProductCostCategory, *expense.Category)
	assert.Equal(t, int64(7), *expense.ProductID)

	income := NewAutoIncome("Product revenue for Widget", decimal.NewFromInt(45), 7)
	assert.Equal(t, EntryTypeAuto, income.Type)
	assert.Equal(t, int64(7), *income.ProductID)
	assert.NoError(t, income.Validate())
}

func TestDateRange_Bounds(t *testing.T) {
	assert.True(t, DateRange{}.IsOpen())
	assert.Nil(t, DateRange{}.LowerBound())
	assert.Nil(t, DateRange{}.UpperBound())

	start := time.Date(2025, time.March, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 8, 0, 0, 0, time.UTC)
	r := DateRange{Start: &start, End: &end}

	assert.False(t, r.IsOpen())
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), *r.LowerBound())
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), *r.UpperBound())
}
