// Package finance contains the profit-sharing calculator and the financial reports built on it.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/shop-ledger/backend/internal/domain/entity"
)

// DonationRate is the fixed slice of net profit set aside before partners are paid.
var DonationRate = decimal.RequireFromString("0.02")

var hundred = decimal.NewFromInt(100)

// PartnerShare is one partner's cut of the partner profit.
type PartnerShare struct {
	Partner     *entity.Partner
	ShareAmount decimal.Decimal
}

// Distribution is how a period's net profit is split.
type Distribution struct {
	Income               decimal.Decimal
	Expenses             decimal.Decimal
	NetProfit            decimal.Decimal
	Donation             decimal.Decimal
	PartnerProfit        decimal.Decimal
	Shares               []PartnerShare
	TotalSharePercentage decimal.Decimal
	RemainingShare       decimal.Decimal
	TotalDistributed     decimal.Decimal
}

// ComputeDistribution splits income minus expenses into the donation and partner shares.
// Values are not floored: a loss yields a negative donation and negative shares.
// Any share left unassigned to partners stays undistributed.
func ComputeDistribution(income, expenses decimal.Decimal, partners []*entity.Partner) Distribution {
	netProfit := income.Sub(expenses)
	donation := netProfit.Mul(DonationRate)
	partnerProfit := netProfit.Sub(donation)

	d := Distribution{
		Income:               income,
		Expenses:             expenses,
		NetProfit:            netProfit,
		Donation:             donation,
		PartnerProfit:        partnerProfit,
		Shares:               make([]PartnerShare, 0, len(partners)),
		TotalSharePercentage: decimal.Zero,
		TotalDistributed:     decimal.Zero,
	}

	for _, p := range partners {
		amount := PartnerShareAmount(partnerProfit, p.SharePercentage)
		d.Shares = append(d.Shares, PartnerShare{Partner: p, ShareAmount: amount})
		d.TotalSharePercentage = d.TotalSharePercentage.Add(p.SharePercentage)
		d.TotalDistributed = d.TotalDistributed.Add(amount)
	}
	d.RemainingShare = entity.MaxTotalShare.Sub(d.TotalSharePercentage)

	return d
}

// PartnerShareAmount is partnerProfit × percentage / 100.
func PartnerShareAmount(partnerProfit, percentage decimal.Decimal) decimal.Decimal {
	return partnerProfit.Mul(percentage).Div(hundred)
}

// ProfitMargin is net profit as a percentage of income, zero when there is no income.
func ProfitMargin(income, netProfit decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return netProfit.Div(income).Mul(hundred)
}
