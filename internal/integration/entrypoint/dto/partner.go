package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/application/usecase/partner"
	"github.com/shop-ledger/backend/internal/domain/entity"
)

// CreatePartnerRequest represents the request body for partner creation.
type CreatePartnerRequest struct {
	Name            string           `json:"name" binding:"required,notblank,max=255"`
	SharePercentage *decimal.Decimal `json:"share_percentage" binding:"required"`
}

// ToInput converts the request to the use case input.
func (r CreatePartnerRequest) ToInput() partner.CreatePartnerInput {
	return partner.CreatePartnerInput{Name: r.Name, SharePercentage: *r.SharePercentage}
}

// UpdatePartnerRequest represents the request body for partner update. Absent fields are kept.
type UpdatePartnerRequest struct {
	Name            *string          `json:"name,omitempty" binding:"omitempty,notblank,max=255"`
	SharePercentage *decimal.Decimal `json:"share_percentage,omitempty"`
}

// ToPatch converts the request to a partner patch.
func (r UpdatePartnerRequest) ToPatch() entity.PartnerPatch {
	return entity.PartnerPatch{Name: r.Name, SharePercentage: r.SharePercentage}
}

// ProfitHistoryQuery represents the profit history query string.
type ProfitHistoryQuery struct {
	MonthsQuery
	PartnerID *int64 `form:"partnerId"`
}

// PartnerResponse represents a partner in API responses.
type PartnerResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	SharePercentage string    `json:"share_percentage"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PartnerEnvelope wraps a single partner.
type PartnerEnvelope struct {
	Partner PartnerResponse `json:"partner"`
}

// PartnerListResponse wraps a partner listing.
type PartnerListResponse struct {
	Partners []PartnerResponse `json:"partners"`
}

// ProfitSharingSummaryResponse holds the all-time split.
type ProfitSharingSummaryResponse struct {
	NetProfit        string `json:"netProfit"`
	Donation         string `json:"donation"`
	PartnerProfit    string `json:"partnerProfit"`
	TotalDistributed string `json:"totalDistributed"`
}

// PartnerStatsResponse represents partner statistics.
type PartnerStatsResponse struct {
	TotalPartners        int64                        `json:"totalPartners"`
	TotalSharePercentage string                       `json:"totalSharePercentage"`
	RemainingShare       string                       `json:"remainingShare"`
	Partners             []PartnerShareResponse       `json:"partners"`
	ProfitSharing        ProfitSharingSummaryResponse `json:"profitSharing"`
}

// MonthShareResponse is one month of a partner's profit history.
type MonthShareResponse struct {
	Month         string `json:"month"`
	Income        string `json:"income"`
	Expenses      string `json:"expenses"`
	NetProfit     string `json:"netProfit"`
	Donation      string `json:"donation"`
	PartnerProfit string `json:"partnerProfit"`
	PartnerShare  string `json:"partnerShare"`
}

// ProfitHistorySummaryResponse holds the profit history totals.
type ProfitHistorySummaryResponse struct {
	TotalIncome       string `json:"totalIncome"`
	TotalExpenses     string `json:"totalExpenses"`
	TotalNetProfit    string `json:"totalNetProfit"`
	TotalPartnerShare string `json:"totalPartnerShare"`
}

// ProfitHistoryResponse represents a partner's monthly profit history.
type ProfitHistoryResponse struct {
	Partner PartnerResponse              `json:"partner"`
	Months  int                          `json:"months"`
	History []MonthShareResponse         `json:"history"`
	Summary ProfitHistorySummaryResponse `json:"summary"`
}

// ToPartnerResponse converts a domain Partner to a PartnerResponse DTO.
func ToPartnerResponse(p *entity.Partner) PartnerResponse {
	return PartnerResponse{
		ID:              p.ID,
		Name:            p.Name,
		SharePercentage: Money(p.SharePercentage),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToPartnerResponses converts a partner slice.
func ToPartnerResponses(partners []*entity.Partner) []PartnerResponse {
	out := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		out[i] = ToPartnerResponse(p)
	}
	return out
}

// ToPartnerStatsResponse converts partner statistics.
func ToPartnerStatsResponse(s *partner.PartnerStats) PartnerStatsResponse {
	d := &s.Distribution
	return PartnerStatsResponse{
		TotalPartners:        s.TotalPartners,
		TotalSharePercentage: Money(d.TotalSharePercentage),
		RemainingShare:       Money(d.RemainingShare),
		Partners:             ToPartnerShareResponses(d.Shares),
		ProfitSharing: ProfitSharingSummaryResponse{
			NetProfit:        Money(d.NetProfit),
			Donation:         Money(d.Donation),
			PartnerProfit:    Money(d.PartnerProfit),
			TotalDistributed: Money(d.TotalDistributed),
		},
	}
}

// ToProfitHistoryResponse converts a partner's profit history.
func ToProfitHistoryResponse(h *partner.ProfitHistory) ProfitHistoryResponse {
	history := make([]MonthShareResponse, len(h.History))
	for i, m := range h.History {
		history[i] = MonthShareResponse{
			Month:         m.Month,
			Income:        Money(m.Income),
			Expenses:      Money(m.Expenses),
			NetProfit:     Money(m.NetProfit),
			Donation:      Money(m.Donation),
			PartnerProfit: Money(m.PartnerProfit),
			PartnerShare:  Money(m.PartnerShare),
		}
	}
	return ProfitHistoryResponse{
		Partner: ToPartnerResponse(h.Partner),
		Months:  h.Months,
		History: history,
		Summary: ProfitHistorySummaryResponse{
			TotalIncome:       Money(h.TotalIncome),
			TotalExpenses:     Money(h.TotalExpenses),
			TotalNetProfit:    Money(h.TotalNetProfit),
			TotalPartnerShare: Money(h.TotalPartnerShare),
		},
	}
}
