// Package charts holds the pure aggregation routines behind the admin
// dashboard: month-bucketed series, percentage changes and the derived
// breakdowns. None of these functions touch the store.
package charts

import (
	"math"
	"time"
)

// TimedValue is one record entering a summed month series.
type TimedValue struct {
	CreatedAt time.Time
	Value     float64
}

// monthDiff returns how many calendar months before today's month t falls,
// by month-of-year only. The year is ignored, so records more than twelve
// months old alias into the same bucket as recent ones. Known limitation
// of the chart output; kept because fixing it would change historical
// charts.
func monthDiff(today, t time.Time) int {
	return (int(today.Month()) - int(t.Month()) + 12) % 12
}

// MonthlyCounts buckets the given timestamps into a series of length
// months. Index length-1 is today's month, index 0 the oldest. Records
// falling outside the window are dropped.
func MonthlyCounts(length int, today time.Time, dates []time.Time) []int {
	data := make([]int, length)
	for _, d := range dates {
		diff := monthDiff(today, d)
		if diff < length {
			data[length-diff-1]++
		}
	}
	return data
}

// MonthlySums buckets the given records into a series of length months,
// summing each record's value instead of counting.
func MonthlySums(length int, today time.Time, records []TimedValue) []float64 {
	data := make([]float64, length)
	for _, r := range records {
		diff := monthDiff(today, r.CreatedAt)
		if diff < length {
			data[length-diff-1] += r.Value
		}
	}
	return data
}

// CalculatePercentage returns the month-over-month change as a rounded
// percentage. A zero last month degenerates to thisMonth*100 rather than
// an undefined ratio; the dashboard depends on that exact policy.
func CalculatePercentage(thisMonth, lastMonth int) int {
	if lastMonth == 0 {
		return thisMonth * 100
	}
	percentage := float64(thisMonth-lastMonth) / float64(lastMonth) * 100
	return int(math.Round(percentage))
}

// RatioPercent returns part/total as a rounded percentage. A zero total
// yields 0.
func RatioPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// AgeGroups is the dashboard's age breakdown. Users younger than 14 fall
// into no bracket and are excluded.
type AgeGroups struct {
	Teen  int `json:"teen"`
	Adult int `json:"adult"`
	Old   int `json:"old"`
}

// GroupAges buckets ages into teen [14,20), adult [20,40) and old (>=40).
func GroupAges(ages []int) AgeGroups {
	var g AgeGroups
	for _, age := range ages {
		switch {
		case age >= 40:
			g.Old++
		case age >= 20:
			g.Adult++
		case age >= 14:
			g.Teen++
		}
	}
	return g
}

// RevenueDistribution is the pie-chart revenue breakdown.
type RevenueDistribution struct {
	ProductionCost float64 `json:"productionCost"`
	Discount       float64 `json:"discount"`
	Burnt          float64 `json:"burnt"`
	MarketingCost  float64 `json:"marketingCost"`
	NetMargin      float64 `json:"netMargin"`
}

// DistributeRevenue derives the revenue breakdown from order totals.
// Marketing cost is fixed at 30% of gross income; the net margin is
// whatever remains after every other component.
func DistributeRevenue(grossIncome, discount, productionCost, burnt float64) RevenueDistribution {
	marketingCost := math.Round(grossIncome * 0.30)
	return RevenueDistribution{
		ProductionCost: productionCost,
		Discount:       discount,
		Burnt:          burnt,
		MarketingCost:  marketingCost,
		NetMargin:      grossIncome - discount - productionCost - burnt - marketingCost,
	}
}
