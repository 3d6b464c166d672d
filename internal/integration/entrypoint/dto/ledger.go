package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/usecase/ledger"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Description string           `json:"description" binding:"required,notblank,max=500"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required,oneof=manual auto"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,max=100"`
	ProductID   *int64           `json:"product_id,omitempty"`
}

// ToCreateInput converts the request to the create use case input.
func (r ExpenseRequest) ToCreateInput() ledger.CreateExpenseInput {
	return ledger.CreateExpenseInput{
		Description: r.Description,
		Amount:      *r.Amount,
		Type:        entity.EntryType(r.Type),
		Category:    r.Category,
		ProductID:   r.ProductID,
	}
}

// ToUpdateInput converts the request to the update use case input.
func (r ExpenseRequest) ToUpdateInput(id int64) ledger.UpdateExpenseInput {
	return ledger.UpdateExpenseInput{
		ExpenseID:   id,
		Description: r.Description,
		Amount:      *r.Amount,
		Type:        entity.EntryType(r.Type),
		Category:    r.Category,
		ProductID:   r.ProductID,
	}
}

// IncomeRequest represents the request body for income creation and update.
type IncomeRequest struct {
	Description string           `json:"description" binding:"required,notblank,max=500"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        string           `json:"type" binding:"required,oneof=manual auto"`
	ProductID   *int64           `json:"product_id,omitempty"`
}

// ToCreateInput converts the request to the create use case input.
func (r IncomeRequest) ToCreateInput() ledger.CreateIncomeInput {
	return ledger.CreateIncomeInput{
		Description: r.Description,
		Amount:      *r.Amount,
		Type:        entity.EntryType(r.Type),
		ProductID:   r.ProductID,
	}
}

// ToUpdateInput converts the request to the update use case input.
func (r IncomeRequest) ToUpdateInput(id int64) ledger.UpdateIncomeInput {
	return ledger.UpdateIncomeInput{
		IncomeID:    id,
		Description: r.Description,
		Amount:      *r.Amount,
		Type:        entity.EntryType(r.Type),
		ProductID:   r.ProductID,
	}
}

// LedgerFilterQuery represents the listing filters in the query string.
type LedgerFilterQuery struct {
	DateRangeQuery
	Type      string `form:"type" binding:"omitempty,oneof=manual auto"`
	Category  string `form:"category"`
	ProductID string `form:"product_id" binding:"omitempty,numeric"`
}

// ToFilter converts the query into a domain filter.
func (q LedgerFilterQuery) ToFilter() (entity.LedgerFilter, error) {
	var f entity.LedgerFilter
	r, err := q.ToDateRange()
	if err != nil {
		return f, err
	}
	f.Range = r

	if q.Type != "" {
		t := entity.EntryType(q.Type)
		f.Type = &t
	}
	if q.Category != "" {
		c := q.Category
		f.Category = &c
	}
	if q.ProductID != "" {
		id, err := strconv.ParseInt(q.ProductID, 10, 64)
		if err != nil {
			return f, err
		}
		f.ProductID = &id
	}
	return f, nil
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    *string   `json:"category"`
	ProductID   *int64    `json:"product_id"`
	ProductName *string   `json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// IncomeResponse represents an income entry in API responses.
type IncomeResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	ProductID   *int64    `json:"product_id"`
	ProductName *string   `json:"product_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseEnvelope wraps a single expense.
type ExpenseEnvelope struct {
	Expense ExpenseResponse `json:"expense"`
}

// ExpenseListResponse wraps an expense listing.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// IncomeEnvelope wraps a single income entry.
type IncomeEnvelope struct {
	Income IncomeResponse `json:"income"`
}

// IncomeListResponse wraps an income listing.
type IncomeListResponse struct {
	Income []IncomeResponse `json:"income"`
}

// CategoriesResponse lists expense categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ExpenseStatsResponse represents expense statistics.
type ExpenseStatsResponse struct {
	Total       string                `json:"total"`
	ByType      []AmountGroupResponse `json:"byType"`
	ByCategory  []AmountGroupResponse `json:"byCategory"`
	ByMonth     []PeriodTotalResponse `json:"byMonth"`
	TopExpenses []ExpenseResponse     `json:"topExpenses"`
}

// ToExpenseResponse converts a domain Expense to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      Money(e.Amount),
		Type:        string(e.Type),
		Category:    e.Category,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts an expense slice.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}

// ToIncomeResponse converts a domain Income to an IncomeResponse DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID,
		Description: i.Description,
		Amount:      Money(i.Amount),
		Type:        string(i.Type),
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		CreatedAt:   i.CreatedAt,
	}
}

// ToIncomeResponses converts an income slice.
func ToIncomeResponses(income []*entity.Income) []IncomeResponse {
	out := make([]IncomeResponse, len(income))
	for i, in := range income {
		out[i] = ToIncomeResponse(in)
	}
	return out
}

// ToExpenseStatsResponse converts expense statistics.
func ToExpenseStatsResponse(s *ledger.ExpenseStats) ExpenseStatsResponse {
	return ExpenseStatsResponse{
		Total:       Money(s.Total),
		ByType:      ToAmountGroupResponses(s.ByType),
		ByCategory:  ToAmountGroupResponses(s.ByCategory),
		ByMonth:     ToPeriodTotalResponses(s.ByMonth),
		TopExpenses: ToExpenseResponses(s.Top),
	}
}
