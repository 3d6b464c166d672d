package finance

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop-ledger/backend/internal/domain/entity"
	domainerror "github.com/shop-ledger/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestComputeDistribution_SplitsAcrossPartners(t *testing.T) {
	partners := []*entity.Partner{
		{ID: 1, Name: "A", SharePercentage: dec("50")},
		{ID: 2, Name: "B", SharePercentage: dec("50")},
	}

	d := ComputeDistribution(dec("10000"), dec("4000"), partners)

	assertDecimal(t, "6000", d.NetProfit)
	assertDecimal(t, "120", d.Donation)
	assertDecimal(t, "5880", d.PartnerProfit)
	require.Len(t, d.Shares, 2)
	assertDecimal(t, "2940", d.Shares[0].ShareAmount)
	assertDecimal(t, "2940", d.Shares[1].ShareAmount)
	assertDecimal(t, "100", d.TotalSharePercentage)
	assertDecimal(t, "0", d.RemainingShare)
	assertDecimal(t, "5880", d.TotalDistributed)
}

func TestComputeDistribution_UnassignedShareStaysUndistributed(t *testing.T) {
	partners := []*entity.Partner{{ID: 1, Name: "A", SharePercentage: dec("30")}}

	d := ComputeDistribution(dec("1000"), dec("0"), partners)

	assertDecimal(t, "980", d.PartnerProfit)
	assertDecimal(t, "294", d.Shares[0].ShareAmount)
	assertDecimal(t, "70", d.RemainingShare)
	assertDecimal(t, "294", d.TotalDistributed)
}

func TestComputeDistribution_LossIsNotFloored(t *testing.T) {
	partners := []*entity.Partner{{ID: 1, Name: "A", SharePercentage: dec("100")}}

	d := ComputeDistribution(dec("0"), dec("1000"), partners)

	assertDecimal(t, "-1000", d.NetProfit)
	assertDecimal(t, "-20", d.Donation)
	assertDecimal(t, "-980", d.PartnerProfit)
	assertDecimal(t, "-980", d.Shares[0].ShareAmount)
}

func TestComputeDistribution_NoPartners(t *testing.T) {
	d := ComputeDistribution(dec("500"), dec("100"), nil)

	assert.Empty(t, d.Shares)
	assertDecimal(t, "0", d.TotalSharePercentage)
	assertDecimal(t, "100", d.RemainingShare)
	assertDecimal(t, "0", d.TotalDistributed)
	assertDecimal(t, "392", d.PartnerProfit)
}

func TestProfitMargin(t *testing.T) {
	assertDecimal(t, "75", ProfitMargin(dec("4000"), dec("3000")))
	assertDecimal(t, "0", ProfitMargin(dec("0"), dec("-50")))
	assertDecimal(t, "-50", ProfitMargin(dec("200"), dec("-100")))
}

func TestNormalizeMonths(t *testing.T) {
	months, err := NormalizeMonths(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultMonths, months)

	months, err = NormalizeMonths(MaxMonths)
	require.NoError(t, err)
	assert.Equal(t, MaxMonths, months)

	for _, bad := range []int{-1, MaxMonths + 1, 500} {
		_, err := NormalizeMonths(bad)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidMonths), "months=%d", bad)
		assert.Equal(t, domainerror.KindValidation, domainerror.KindOf(err))
	}
}

func TestMergeMonthlyFlows(t *testing.T) {
	income := []entity.PeriodTotal{
		{Period: "2025-03", Total: dec("300"), Count: 1},
		{Period: "2025-01", Total: dec("100"), Count: 1},
	}
	expenses := []entity.PeriodTotal{
		{Period: "2025-02", Total: dec("50"), Count: 1},
		{Period: "2025-01", Total: dec("150"), Count: 2},
	}

	flows := MergeMonthlyFlows(income, expenses)

	require.Len(t, flows, 3)
	assert.Equal(t, "2025-03", flows[0].Month)
	assertDecimal(t, "300", flows[0].Net)
	assert.Equal(t, "2025-02", flows[1].Month)
	assertDecimal(t, "0", flows[1].Income)
	assertDecimal(t, "-50", flows[1].Net)
	assert.Equal(t, "2025-01", flows[2].Month)
	assertDecimal(t, "-50", flows[2].Net)

	assert.Empty(t, MergeMonthlyFlows(nil, nil))
}
