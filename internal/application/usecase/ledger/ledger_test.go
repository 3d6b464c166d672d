package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence"
	"github.com/shop-ledger/backend/internal/integration/persistence/testdb"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func seedProduct(t *testing.T, db *gorm.DB) *entity.Product {
	t.Helper()
	p := entity.NewProduct("Widget", dec("1"), dec("2"), 0)
	_, err := persistence.NewProductRepository(db).Create(context.Background(), p, nil)
	require.NoError(t, err)
	return p
}

func newCreateExpense(db *gorm.DB) *CreateExpenseUseCase {
	return NewCreateExpenseUseCase(persistence.NewExpenseRepository(db), persistence.NewProductRepository(db))
}

func TestCreateExpense(t *testing.T) {
	db := testdb.Open(t)
	product := seedProduct(t, db)
	uc := newCreateExpense(db)
	ctx := context.Background()

	expense, err := uc.Execute(ctx, CreateExpenseInput{
		Description: " Packaging ",
		Amount:      dec("12.50"),
		Type:        entity.EntryTypeManual,
		Category:    strPtr("  Supplies "),
		ProductID:   &product.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, expense.ID)
	assert.Equal(t, "Packaging", expense.Description)
	assert.Equal(t, "Supplies", *expense.Category)
	require.NotNil(t, expense.ProductName)
	assert.Equal(t, "Widget", *expense.ProductName)

	blankCategory, err := uc.Execute(ctx, CreateExpenseInput{
		Description: "Misc", Amount: dec("1"), Type: entity.EntryTypeManual, Category: strPtr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, blankCategory.Category)
}

func TestCreateExpense_Validation(t *testing.T) {
	db := testdb.Open(t)
	uc := newCreateExpense(db)
	ctx := context.Background()
	missing := int64(404)

	tests := []struct {
		name   string
		input  CreateExpenseInput
		target error
	}{
		{"blank description", CreateExpenseInput{Description: "", Amount: dec("1"), Type: entity.EntryTypeManual}, domainerror.ErrLedgerMissingFields},
		{"zero amount", CreateExpenseInput{Description: "x", Amount: dec("0"), Type: entity.EntryTypeManual}, domainerror.ErrLedgerInvalidAmount},
		{"negative amount", CreateExpenseInput{Description: "x", Amount: dec("-5"), Type: entity.EntryTypeManual}, domainerror.ErrLedgerInvalidAmount},
		{"bad type", CreateExpenseInput{Description: "x", Amount: dec("1"), Type: "other"}, domainerror.ErrLedgerInvalidType},
		{"unknown product", CreateExpenseInput{Description: "x", Amount: dec("1"), Type: entity.EntryTypeManual, ProductID: &missing}, domainerror.ErrLedgerInvalidProduct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
		})
	}
}

func TestUpdateExpense_ReplacesFields(t *testing.T) {
	db := testdb.Open(t)
	product := seedProduct(t, db)
	ctx := context.Background()
	created, err := newCreateExpense(db).Execute(ctx, CreateExpenseInput{
		Description: "Rent", Amount: dec("500"), Type: entity.EntryTypeManual, Category: strPtr("Rent"), ProductID: &product.ID,
	})
	require.NoError(t, err)

	uc := NewUpdateExpenseUseCase(persistence.NewExpenseRepository(db), persistence.NewProductRepository(db))
	updated, err := uc.Execute(ctx, UpdateExpenseInput{
		ExpenseID:   created.ID,
		Description: "Office rent",
		Amount:      dec("550"),
		Type:        entity.EntryTypeManual,
	})
	require.NoError(t, err)

	assert.Equal(t, "Office rent", updated.Description)
	assert.True(t, dec("550").Equal(updated.Amount))
	assert.Nil(t, updated.Category)
	assert.Nil(t, updated.ProductID)

	_, err = uc.Execute(ctx, UpdateExpenseInput{ExpenseID: 999, Description: "x", Amount: dec("1"), Type: entity.EntryTypeManual})
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestDeleteExpense(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	created, err := newCreateExpense(db).Execute(ctx, CreateExpenseInput{
		Description: "Rent", Amount: dec("500"), Type: entity.EntryTypeManual,
	})
	require.NoError(t, err)
	uc := NewDeleteExpenseUseCase(persistence.NewExpenseRepository(db))

	require.NoError(t, uc.Execute(ctx, created.ID))
	assert.True(t, errors.Is(uc.Execute(ctx, created.ID), domainerror.ErrExpenseNotFound))

	_, err = NewGetExpenseUseCase(persistence.NewExpenseRepository(db)).Execute(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
}

func TestListExpenses_Filters(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := persistence.NewExpenseRepository(db)
	entries := []*entity.Expense{
		{Description: "Old rent", Amount: dec("100"), Type: entity.EntryTypeManual, Category: strPtr("Rent"), CreatedAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{Description: "New rent", Amount: dec("120"), Type: entity.EntryTypeManual, Category: strPtr("Rent"), CreatedAt: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Description: "Stock", Amount: dec("60"), Type: entity.EntryTypeAuto, Category: strPtr(entity.ProductCostCategory), CreatedAt: time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}
	uc := NewListExpensesUseCase(repo)

	all, err := uc.Execute(ctx, entity.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Stock", all[0].Description)

	auto := entity.EntryTypeAuto
	autoOnly, err := uc.Execute(ctx, entity.LedgerFilter{Type: &auto})
	require.NoError(t, err)
	require.Len(t, autoOnly, 1)

	rent, err := uc.Execute(ctx, entity.LedgerFilter{Category: strPtr("Rent")})
	require.NoError(t, err)
	assert.Len(t, rent, 2)

	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	recent, err := uc.Execute(ctx, entity.LedgerFilter{Range: entity.DateRange{Start: &start}})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	bogus := entity.EntryType("bogus")
	_, err = uc.Execute(ctx, entity.LedgerFilter{Type: &bogus})
	assert.True(t, errors.Is(err, domainerror.ErrLedgerInvalidType))

	end := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(ctx, entity.LedgerFilter{Range: entity.DateRange{Start: &start, End: &end}})
	assert.True(t, errors.Is(err, domainerror.ErrInvalidDateRange))
}

func TestExpenseStatsAndCategories(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	uc := newCreateExpense(db)
	for _, in := range []CreateExpenseInput{
		{Description: "Rent", Amount: dec("500"), Type: entity.EntryTypeManual, Category: strPtr("Rent")},
		{Description: "Tape", Amount: dec("20"), Type: entity.EntryTypeManual, Category: strPtr("Supplies")},
		{Description: "Stock", Amount: dec("80"), Type: entity.EntryTypeAuto, Category: strPtr("Supplies")},
		{Description: "Misc", Amount: dec("5"), Type: entity.EntryTypeManual},
	} {
		_, err := uc.Execute(ctx, in)
		require.NoError(t, err)
	}
	repo := persistence.NewExpenseRepository(db)

	stats, err := NewGetExpenseStatsUseCase(repo).Execute(ctx, entity.DateRange{})
	require.NoError(t, err)
	assert.True(t, dec("605").Equal(stats.Total))
	assert.Len(t, stats.ByType, 2)
	require.Len(t, stats.ByMonth, 1)
	assert.Equal(t, int64(4), stats.ByMonth[0].Count)
	require.NotEmpty(t, stats.Top)
	assert.Equal(t, "Rent", stats.Top[0].Description)

	categories, err := NewListCategoriesUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Supplies"}, categories)
}

func TestExpenseStats_FractionalSumsKeepCents(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	uc := newCreateExpense(db)
	for _, amount := range []string{"0.1", "0.2"} {
		_, err := uc.Execute(ctx, CreateExpenseInput{
			Description: "Stamp", Amount: dec(amount), Type: entity.EntryTypeManual, Category: strPtr("Postage"),
		})
		require.NoError(t, err)
	}

	stats, err := NewGetExpenseStatsUseCase(persistence.NewExpenseRepository(db)).Execute(ctx, entity.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, "0.3", stats.Total.String())
	require.Len(t, stats.ByType, 1)
	assert.Equal(t, "0.3", stats.ByType[0].Total.String())
	require.Len(t, stats.ByCategory, 1)
	assert.Equal(t, "0.3", stats.ByCategory[0].Total.String())
}

func TestIncomeLifecycle(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	incomeRepo := persistence.NewIncomeRepository(db)
	productRepo := persistence.NewProductRepository(db)
	product := seedProduct(t, db)

	created, err := NewCreateIncomeUseCase(incomeRepo, productRepo).Execute(ctx, CreateIncomeInput{
		Description: "Sale", Amount: dec("99.99"), Type: entity.EntryTypeManual, ProductID: &product.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.ProductName)
	assert.Equal(t, "Widget", *created.ProductName)

	updated, err := NewUpdateIncomeUseCase(incomeRepo, productRepo).Execute(ctx, UpdateIncomeInput{
		IncomeID: created.ID, Description: "Big sale", Amount: dec("150"), Type: entity.EntryTypeManual,
	})
	require.NoError(t, err)
	assert.Equal(t, "Big sale", updated.Description)
	assert.Nil(t, updated.ProductID)

	list, err := NewListIncomeUseCase(incomeRepo).Execute(ctx, entity.LedgerFilter{Category: strPtr("ignored")})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, NewDeleteIncomeUseCase(incomeRepo).Execute(ctx, created.ID))
	_, err = NewGetIncomeUseCase(incomeRepo).Execute(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerror.ErrIncomeNotFound))
}
