package entity

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity is the size of a reporting period.
type Granularity string

const (
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
	GranularityYearly    Granularity = "yearly"
)

// ParseGranularity returns the granularity named by s, falling back to monthly.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityQuarterly:
		return GranularityQuarterly
	case GranularityYearly:
		return GranularityYearly
	default:
		return GranularityMonthly
	}
}

// PeriodKey returns a sortable key for the period containing t.
// Formats: "2025-03" monthly, "2025-Q1" quarterly, "2025" yearly.
func PeriodKey(t time.Time, granularity Granularity) string {
	t = t.UTC()
	switch granularity {
	case GranularityQuarterly:
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
	case GranularityYearly:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("2006-01")
	}
}

// MonthsAgo returns the start of the day that lies months before now, in UTC.
func MonthsAgo(now time.Time, months int) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
}

// PeriodTotal is the amount and entry count booked in one period.
type PeriodTotal struct {
	Period string
	Total  decimal.Decimal
	Count  int64
}

// BucketByPeriod groups points into periods, newest period first.
// Only periods holding at least one point are returned; limit <= 0 keeps them all.
func BucketByPeriod(points []LedgerPoint, granularity Granularity, limit int) []PeriodTotal {
	byKey := make(map[string]*PeriodTotal)
	for _, p := range points {
		key := PeriodKey(p.CreatedAt, granularity)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &PeriodTotal{Period: key, Total: decimal.Zero}
			byKey[key] = bucket
		}
		bucket.Total = bucket.Total.Add(p.Amount)
		bucket.Count++
	}

	totals := make([]PeriodTotal, 0, len(byKey))
	for _, bucket := range byKey {
		totals = append(totals, *bucket)
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Period > totals[j].Period
	})

	if limit > 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}
