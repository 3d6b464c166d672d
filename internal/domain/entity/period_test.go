package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityMonthly, ParseGranularity("monthly"))
	assert.Equal(t, GranularityQuarterly, ParseGranularity("quarterly"))
	assert.Equal(t, GranularityYearly, ParseGranularity("yearly"))
	assert.Equal(t, GranularityMonthly, ParseGranularity("weekly"))
	assert.Equal(t, GranularityMonthly, ParseGranularity(""))
}

func TestPeriodKey(t *testing.T) {
	ts := time.Date(2025, time.August, 14, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-08", PeriodKey(ts, GranularityMonthly))
	assert.Equal(t, "2025-Q3", PeriodKey(ts, GranularityQuarterly))
	assert.Equal(t, "2025", PeriodKey(ts, GranularityYearly))
	assert.Equal(t, "2025-Q1", PeriodKey(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC), GranularityQuarterly))
	assert.Equal(t, "2025-Q4", PeriodKey(time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), GranularityQuarterly))
}

func TestMonthsAgo(t *testing.T) {
	now := time.Date(2025, time.July, 20, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), MonthsAgo(now, 6))
	assert.Equal(t, time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC), MonthsAgo(now, 12))
}

func TestBucketByPeriod(t *testing.T) {
	point := func(amount string, year int, month time.Month) LedgerPoint {
		return LedgerPoint{
			Amount:    decimal.RequireFromString(amount),
			CreatedAt: time.Date(year, month, 10, 0, 0, 0, 0, time.UTC),
		}
	}
	points := []LedgerPoint{
		point("100", 2025, time.January),
		point("50.50", 2025, time.March),
		point("25", 2025, time.March),
		point("10", 2024, time.December),
	}

	t.Run("monthly newest first", func(t *testing.T) {
		totals := BucketByPeriod(points, GranularityMonthly, 0)
		require.Len(t, totals, 3)
		assert.Equal(t, "2025-03", totals[0].Period)
		assert.True(t, decimal.RequireFromString("75.50").Equal(totals[0].Total))
		assert.Equal(t, int64(2), totals[0].Count)
		assert.Equal(t, "2025-01", totals[1].Period)
		assert.Equal(t, "2024-12", totals[2].Period)
	})

	t.Run("quarterly merges months", func(t *testing.T) {
		totals := BucketByPeriod(points, GranularityQuarterly, 0)
		require.Len(t, totals, 2)
		assert.Equal(t, "2025-Q1", totals[0].Period)
		assert.True(t, decimal.RequireFromString("175.50").Equal(totals[0].Total))
		assert.Equal(t, int64(3), totals[0].Count)
		assert.Equal(t, "2024-Q4", totals[1].Period)
	})

	t.Run("limit keeps newest periods", func(t *testing.T) {
		totals := BucketByPeriod(points, GranularityMonthly, 2)
		require.Len(t, totals, 2)
		assert.Equal(t, "2025-03", totals[0].Period)
		assert.Equal(t, "2025-01", totals[1].Period)
	})

	t.Run("no points", func(t *testing.T) {
		assert.Empty(t, BucketByPeriod(nil, GranularityYearly, 0))
	})
}
