package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense with its product name by ID.
	FindByID(ctx context.Context, id int64) (*entity.Expense, error)

	// Update replaces the editable fields of an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id int64) error

	// List retrieves expenses matching the filter, newest first.
	List(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Expense, error)

	// Sum totals expense amounts inside the date range.
	Sum(ctx context.Context, dateRange entity.DateRange) (decimal.Decimal, error)

	// SumByType groups expense totals by entry type.
	SumByType(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error)

	// SumByCategory groups expense totals by category, largest first. Uncategorized rows are skipped.
	SumByCategory(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error)

	// Top retrieves the largest expenses.
	Top(ctx context.Context, limit int) ([]*entity.Expense, error)

	// Categories lists the distinct categories in use, sorted.
	Categories(ctx context.Context) ([]string, error)

	// PointsSince retrieves amount and creation time of entries created at or after since.
	// A zero since returns every entry.
	PointsSince(ctx context.Context, since time.Time) ([]entity.LedgerPoint, error)
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income entry with its product name by ID.
	FindByID(ctx context.Context, id int64) (*entity.Income, error)

	// Update replaces the editable fields of an existing income entry.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income entry from the database.
	Delete(ctx context.Context, id int64) error

	// List retrieves income entries matching the filter, newest first.
	List(ctx context.Context, filter entity.LedgerFilter) ([]*entity.Income, error)

	// Sum totals income amounts inside the date range.
	Sum(ctx context.Context, dateRange entity.DateRange) (decimal.Decimal, error)

	// SumByType groups income totals by entry type.
	SumByType(ctx context.Context, dateRange entity.DateRange) ([]entity.AmountGroup, error)

	// Top retrieves the largest income entries.
	Top(ctx context.Context, limit int) ([]*entity.Income, error)

	// PointsSince retrieves amount and creation time of entries created at or after since.
	// A zero since returns every entry.
	PointsSince(ctx context.Context, since time.Time) ([]entity.LedgerPoint, error)
}
