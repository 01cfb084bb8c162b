package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 0, CalculatePercentage(0, 0))
	assert.Equal(t, 5000, CalculatePercentage(50, 0))
	assert.Equal(t, 50, CalculatePercentage(150, 100))
	assert.Equal(t, -50, CalculatePercentage(50, 100))
	assert.Equal(t, 33, CalculatePercentage(4, 3))
}

func TestMonthlyCountsCurrentMonth(t *testing.T) {
	today := date(2026, time.June)

	got := MonthlyCounts(6, today, []time.Time{date(2026, time.June)})

	assert.Equal(t, []int{0, 0, 0, 0, 0, 1}, got)
}

func TestMonthlyCountsWindowEdges(t *testing.T) {
	today := date(2026, time.June)
	dates := []time.Time{
		date(2026, time.January),  // diff 5, oldest bucket
		date(2026, time.May),      // diff 1
		date(2025, time.December), // diff 6, outside the window
	}

	got := MonthlyCounts(6, today, dates)

	assert.Equal(t, []int{1, 0, 0, 0, 1, 0}, got)
}

func TestMonthlyCountsYearAliasing(t *testing.T) {
	today := date(2026, time.June)

	// Month-of-year arithmetic ignores the year, so a record from June of
	// a previous year lands in today's bucket. Preserved behavior.
	got := MonthlyCounts(6, today, []time.Time{date(2024, time.June)})

	assert.Equal(t, []int{0, 0, 0, 0, 0, 1}, got)
}

func TestMonthlySums(t *testing.T) {
	today := date(2026, time.June)
	records := []TimedValue{
		{CreatedAt: date(2026, time.June), Value: 100},
		{CreatedAt: date(2026, time.June), Value: 50},
		{CreatedAt: date(2026, time.April), Value: 25},
		{CreatedAt: date(2025, time.November), Value: 999}, // diff 7, dropped
	}

	got := MonthlySums(6, today, records)

	assert.Equal(t, []float64{0, 0, 0, 25, 0, 150}, got)
}

func TestRatioPercentPartitionSumsToHundred(t *testing.T) {
	// Categories partitioning all products: percentages sum to ~100.
	counts := []int{3, 3, 4}
	total := 10
	sum := 0
	for _, n := range counts {
		sum += RatioPercent(n, total)
	}
	assert.Equal(t, 100, sum)

	assert.Equal(t, 0, RatioPercent(5, 0))
}

func TestGroupAges(t *testing.T) {
	got := GroupAges([]int{13, 14, 19, 20, 39, 40, 75})

	// 13 falls into no bracket and is excluded.
	assert.Equal(t, AgeGroups{Teen: 2, Adult: 2, Old: 2}, got)
}

func TestDistributeRevenue(t *testing.T) {
	got := DistributeRevenue(1000, 100, 50, 50)

	assert.Equal(t, RevenueDistribution{
		ProductionCost: 50,
		Discount:       100,
		Burnt:          50,
		MarketingCost:  300,
		NetMargin:      500,
	}, got)
}
