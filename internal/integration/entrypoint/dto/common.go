// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// DateLayout is the calendar date format accepted in query strings.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// DateRangeQuery is the optional inclusive startDate/endDate filter.
type DateRangeQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDateRange parses the query into a domain date range.
func (q DateRangeQuery) ToDateRange() (entity.DateRange, error) {
	var r entity.DateRange
	if q.StartDate != "" {
		start, err := time.Parse(DateLayout, q.StartDate)
		if err != nil {
			return r, err
		}
		r.Start = &start
	}
	if q.EndDate != "" {
		end, err := time.Parse(DateLayout, q.EndDate)
		if err != nil {
			return r, err
		}
		r.End = &end
	}
	return r, nil
}

// PeriodResponse echoes the requested range, with open bounds spelled out.
type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ToPeriodResponse renders a range as {"All time", "Present"} when unbounded.
func ToPeriodResponse(r entity.DateRange) PeriodResponse {
	p := PeriodResponse{StartDate: "All time", EndDate: "Present"}
	if r.Start != nil {
		p.StartDate = r.Start.Format(DateLayout)
	}
	if r.End != nil {
		p.EndDate = r.End.Format(DateLayout)
	}
	return p
}

// AmountGroupResponse is a grouped total.
type AmountGroupResponse struct {
	Key   string `json:"key"`
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// ToAmountGroupResponses converts grouped totals.
func ToAmountGroupResponses(groups []entity.AmountGroup) []AmountGroupResponse {
	out := make([]AmountGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = AmountGroupResponse{Key: g.Key, Total: Money(g.Total), Count: g.Count}
	}
	return out
}

// PeriodTotalResponse is the total booked in one period.
type PeriodTotalResponse struct {
	Period string `json:"period"`
	Total  string `json:"total"`
	Count  int64  `json:"count"`
}

// ToPeriodTotalResponses converts period totals.
func ToPeriodTotalResponses(totals []entity.PeriodTotal) []PeriodTotalResponse {
	out := make([]PeriodTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = PeriodTotalResponse{Period: t.Period, Total: Money(t.Total), Count: t.Count}
	}
	return out
}
