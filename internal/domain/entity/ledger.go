package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

// EntryType tells manually recorded ledger entries apart from system generated ones.
type EntryType string

const (
	EntryTypeManual EntryType = "manual"
	EntryTypeAuto   EntryType = "auto"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	return t == EntryTypeManual || t == EntryTypeAuto
}

// LedgerEntry is the behaviour shared by expenses and income.
type LedgerEntry interface {
	EntryDescription() string
	EntryAmount() decimal.Decimal
	EntryType() EntryType
	LinkedProductID() *int64
	Validate() error
}

// Expense is money going out of the business.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Type        EntryType
	Category    *string
	ProductID   *int64
	ProductName *string
	CreatedAt   time.Time
}

// Income is money coming into the business.
type Income struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Type        EntryType
	ProductID   *int64
	ProductName *string
	CreatedAt   time.Time
}

// NewAutoExpense creates a system generated expense linked to a product.
func NewAutoExpense(description string, amount decimal.Decimal, productID int64) *Expense {
	category := ProductCostCategory
	return &Expense{
		Description: description,
		Amount:      amount,
		Type:        EntryTypeAuto,
		Category:    &category,
		ProductID:   &productID,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewAutoIncome creates a system generated income entry linked to a product.
func NewAutoIncome(description string, amount decimal.Decimal, productID int64) *Income {
	return &Income{
		Description: description,
		Amount:      amount,
		Type:        EntryTypeAuto,
		ProductID:   &productID,
		CreatedAt:   time.Now().UTC(),
	}
}

func (e *Expense) EntryDescription() string     { return e.Description }
func (e *Expense) EntryAmount() decimal.Decimal { return e.Amount }
func (e *Expense) EntryType() EntryType         { return e.Type }
func (e *Expense) LinkedProductID() *int64      { return e.ProductID }

// Validate checks the shared ledger constraints.
func (e *Expense) Validate() error { return validateEntry(e) }

func (i *Income) EntryDescription() string     { return i.Description }
func (i *Income) EntryAmount() decimal.Decimal { return i.Amount }
func (i *Income) EntryType() EntryType         { return i.Type }
func (i *Income) LinkedProductID() *int64      { return i.ProductID }

// Validate checks the shared ledger constraints.
func (i *Income) Validate() error { return validateEntry(i) }

func validateEntry(entry LedgerEntry) error {
	if strings.TrimSpace(entry.EntryDescription()) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerMissingFields,
			"Description, amount, and type are required",
			domainerror.ErrLedgerMissingFields,
		)
	}
	if !entry.EntryType().IsValid() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerInvalidType,
			"Type must be either manual or auto",
			domainerror.ErrLedgerInvalidType,
		)
	}
	if !entry.EntryAmount().IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeLedgerInvalidAmount,
			"Amount must be greater than 0",
			domainerror.ErrLedgerInvalidAmount,
		)
	}
	return nil
}

// DateRange is an inclusive, day-granular filter on entry creation dates.
// A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsOpen reports whether the range covers all time.
func (r DateRange) IsOpen() bool {
	return r.Start == nil && r.End == nil
}

// LowerBound returns the first instant included by the range.
func (r DateRange) LowerBound() *time.Time {
	if r.Start == nil {
		return nil
	}
	t := startOfDay(*r.Start)
	return &t
}

// UpperBound returns the first instant after the range (exclusive).
func (r DateRange) UpperBound() *time.Time {
	if r.End == nil {
		return nil
	}
	t := startOfDay(*r.End).AddDate(0, 0, 1)
	return &t
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LedgerFilter narrows ledger listings. Category only applies to expenses.
type LedgerFilter struct {
	Type      *EntryType
	Category  *string
	ProductID *int64
	Range     DateRange
}

// AmountGroup is a total and row count for one grouping key.
type AmountGroup struct {
	Key   string
	Total decimal.Decimal
	Count int64
}

// LedgerPoint is the minimal projection of an entry used for time bucketing.
type LedgerPoint struct {
	Amount    decimal.Decimal
	CreatedAt time.Time
}
