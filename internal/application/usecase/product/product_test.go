package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/persistence"
	"github.com/shop-ledger/backend/internal/integration/persistence/model"
	"github.com/shop-ledger/backend/internal/integration/persistence/testdb"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func createWidget(t *testing.T, db *gorm.DB, qty int64) *entity.Product {
	t.Helper()
	uc := NewCreateProductUseCase(persistence.NewProductRepository(db))
	out, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Widget",
		CostPrice:    dec("10"),
		SellingPrice: dec("15"),
		Quantity:     qty,
	})
	require.NoError(t, err)
	return out.Product
}

func TestCreateProduct_BooksAutoEntries(t *testing.T) {
	db := testdb.Open(t)
	uc := NewCreateProductUseCase(persistence.NewProductRepository(db))

	out, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Widget",
		CostPrice:    dec("10"),
		SellingPrice: dec("15"),
		Quantity:     4,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.Product.ID)
	assert.True(t, dec("40").Equal(out.Product.TotalCost))
	assert.True(t, dec("60").Equal(out.Product.TotalRevenue))

	require.NotNil(t, out.Entries.Expense)
	require.NotNil(t, out.Entries.Income)
	assert.Equal(t, "Product cost for Widget", out.Entries.Expense.Description)
	assert.True(t, dec("40").Equal(out.Entries.Expense.Amount))
	assert.Equal(t, entity.ProductCostCategory, *out.Entries.Expense.Category)
	assert.Equal(t, out.Product.ID, *out.Entries.Expense.ProductID)
	assert.Equal(t, "Product revenue for Widget", out.Entries.Income.Description)
	assert.True(t, dec("60").Equal(out.Entries.Income.Amount))

	assert.Equal(t, int64(1), countRows(t, db, &model.ExpenseModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.IncomeModel{}))
}

func TestCreateProduct_ZeroQuantityBooksNothing(t *testing.T) {
	db := testdb.Open(t)

	createWidget(t, db, 0)

	assert.Equal(t, int64(1), countRows(t, db, &model.ProductModel{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.ExpenseModel{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.IncomeModel{}))
}

func TestCreateProduct_FreeStockSkipsZeroSide(t *testing.T) {
	db := testdb.Open(t)
	uc := NewCreateProductUseCase(persistence.NewProductRepository(db))

	out, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Sample",
		CostPrice:    dec("0"),
		SellingPrice: dec("5"),
		Quantity:     2,
	})
	require.NoError(t, err)

	assert.Nil(t, out.Entries.Expense)
	require.NotNil(t, out.Entries.Income)
	assert.Equal(t, int64(0), countRows(t, db, &model.ExpenseModel{}))
}

func TestCreateProduct_RejectsInvalidInput(t *testing.T) {
	db := testdb.Open(t)
	uc := NewCreateProductUseCase(persistence.NewProductRepository(db))

	_, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Widget",
		CostPrice:    dec("-1"),
		SellingPrice: dec("15"),
		Quantity:     1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerror.ErrProductNegativeValue))
	assert.Equal(t, int64(0), countRows(t, db, &model.ProductModel{}))
}

func TestCreateProduct_RollsBackWhenLedgerWriteFails(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Migrator().DropTable(&model.IncomeModel{}))
	uc := NewCreateProductUseCase(persistence.NewProductRepository(db))

	_, err := uc.Execute(context.Background(), CreateProductInput{
		Name:         "Widget",
		CostPrice:    dec("10"),
		SellingPrice: dec("15"),
		Quantity:     3,
	})
	require.Error(t, err)
	assert.Equal(t, domainerror.KindStore, domainerror.KindOf(err))

	assert.Equal(t, int64(0), countRows(t, db, &model.ProductModel{}))
	assert.Equal(t, int64(0), countRows(t, db, &model.ExpenseModel{}))
}

func TestUpdateProduct_QuantityIncreaseAppendsDelta(t *testing.T) {
	db := testdb.Open(t)
	product := createWidget(t, db, 5)
	uc := NewUpdateProductUseCase(persistence.NewProductRepository(db))

	qty := int64(8)
	out, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: product.ID,
		Patch:     entity.ProductPatch{Quantity: &qty},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(8), out.Product.Quantity)
	assert.True(t, dec("80").Equal(out.Product.TotalCost))
	require.NotNil(t, out.Entries.Expense)
	assert.Equal(t, "Quantity update cost for Widget", out.Entries.Expense.Description)
	assert.True(t, dec("30").Equal(out.Entries.Expense.Amount))
	require.NotNil(t, out.Entries.Income)
	assert.True(t, dec("45").Equal(out.Entries.Income.Amount))

	assert.Equal(t, int64(2), countRows(t, db, &model.ExpenseModel{}))
	assert.Equal(t, int64(2), countRows(t, db, &model.IncomeModel{}))
}

func TestUpdateProduct_QuantityDecreaseBooksNothing(t *testing.T) {
	db := testdb.Open(t)
	product := createWidget(t, db, 8)
	uc := NewUpdateProductUseCase(persistence.NewProductRepository(db))

	qty := int64(5)
	out, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: product.ID,
		Patch:     entity.ProductPatch{Quantity: &qty},
	})
	require.NoError(t, err)

	assert.True(t, out.Entries.IsEmpty())
	assert.True(t, dec("50").Equal(out.Product.TotalCost))
	assert.Equal(t, int64(1), countRows(t, db, &model.ExpenseModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.IncomeModel{}))
}

func TestUpdateProduct_PriceChangeOnlyRecomputes(t *testing.T) {
	db := testdb.Open(t)
	product := createWidget(t, db, 2)
	uc := NewUpdateProductUseCase(persistence.NewProductRepository(db))

	price := dec("12.50")
	out, err := uc.Execute(context.Background(), UpdateProductInput{
		ProductID: product.ID,
		Patch:     entity.ProductPatch{CostPrice: &price},
	})
	require.NoError(t, err)

	assert.True(t, out.Entries.IsEmpty())
	assert.True(t, dec("25").Equal(out.Product.TotalCost))
	assert.Equal(t, int64(1), countRows(t, db, &model.ExpenseModel{}))
}

func TestUpdateProduct_Errors(t *testing.T) {
	db := testdb.Open(t)
	product := createWidget(t, db, 1)
	uc := NewUpdateProductUseCase(persistence.NewProductRepository(db))
	ctx := context.Background()

	t.Run("empty patch", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID})
		assert.True(t, errors.Is(err, domainerror.ErrProductMissingFields))
	})

	t.Run("unknown product", func(t *testing.T) {
		qty := int64(3)
		_, err := uc.Execute(ctx, UpdateProductInput{ProductID: 999, Patch: entity.ProductPatch{Quantity: &qty}})
		require.Error(t, err)
		assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
	})

	t.Run("negative quantity leaves row untouched", func(t *testing.T) {
		qty := int64(-2)
		_, err := uc.Execute(ctx, UpdateProductInput{ProductID: product.ID, Patch: entity.ProductPatch{Quantity: &qty}})
		assert.True(t, errors.Is(err, domainerror.ErrProductNegativeValue))

		stored, err := NewGetProductUseCase(persistence.NewProductRepository(db)).Execute(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.Quantity)
	})
}

func TestDeleteProduct_KeepsLedgerUnlinked(t *testing.T) {
	db := testdb.Open(t)
	product := createWidget(t, db, 3)
	ctx := context.Background()

	require.NoError(t, NewDeleteProductUseCase(persistence.NewProductRepository(db)).Execute(ctx, DeleteProductInput{ProductID: product.ID}))

	assert.Equal(t, int64(0), countRows(t, db, &model.ProductModel{}))
	expenses, err := persistence.NewExpenseRepository(db).List(ctx, entity.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Nil(t, expenses[0].ProductID)
	assert.True(t, dec("30").Equal(expenses[0].Amount), "got %s", expenses[0].Amount.String())
	assert.Equal(t, entity.EntryTypeAuto, expenses[0].Type)
	assert.Equal(t, "Product cost for Widget", expenses[0].Description)

	income, err := persistence.NewIncomeRepository(db).List(ctx, entity.LedgerFilter{})
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Nil(t, income[0].ProductID)
	assert.True(t, dec("45").Equal(income[0].Amount), "got %s", income[0].Amount.String())
	assert.Equal(t, entity.EntryTypeAuto, income[0].Type)
	assert.Equal(t, "Product revenue for Widget", income[0].Description)

	err = NewDeleteProductUseCase(persistence.NewProductRepository(db)).Execute(ctx, DeleteProductInput{ProductID: product.ID})
	assert.Equal(t, domainerror.KindNotFound, domainerror.KindOf(err))
}

func TestListProducts_Search(t *testing.T) {
	db := testdb.Open(t)
	repo := persistence.NewProductRepository(db)
	ctx := context.Background()
	for _, name := range []string{"Blue Mug", "Red Mug", "Teapot"} {
		_, err := NewCreateProductUseCase(repo).Execute(ctx, CreateProductInput{
			Name: name, CostPrice: dec("1"), SellingPrice: dec("2"), Quantity: 0,
		})
		require.NoError(t, err)
	}
	uc := NewListProductsUseCase(repo)

	all, err := uc.Execute(ctx, ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	query := "mug"
	mugs, err := uc.Execute(ctx, ListProductsInput{Query: &query})
	require.NoError(t, err)
	assert.Len(t, mugs, 2)

	blank := "  "
	_, err = uc.Execute(ctx, ListProductsInput{Query: &blank})
	assert.True(t, errors.Is(err, domainerror.ErrSearchQueryRequired))
}

func TestGetProductStats(t *testing.T) {
	db := testdb.Open(t)
	repo := persistence.NewProductRepository(db)
	ctx := context.Background()
	inputs := []CreateProductInput{
		{Name: "Low", CostPrice: dec("2"), SellingPrice: dec("3"), Quantity: 3},
		{Name: "Plenty", CostPrice: dec("1"), SellingPrice: dec("10"), Quantity: 20},
	}
	for _, in := range inputs {
		_, err := NewCreateProductUseCase(repo).Execute(ctx, in)
		require.NoError(t, err)
	}

	stats, err := NewGetProductStatsUseCase(repo).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.True(t, dec("26").Equal(stats.TotalCost))
	assert.True(t, dec("209").Equal(stats.TotalRevenue))
	require.Len(t, stats.LowStock, 1)
	assert.Equal(t, "Low", stats.LowStock[0].Name)
	require.Len(t, stats.TopByRevenue, 2)
	assert.Equal(t, "Plenty", stats.TopByRevenue[0].Name)
}
