package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestPercentage(t *testing.T) {
	pct, ok := Percentage(100, ptr(25))
	assert.True(t, ok)
	assert.Equal(t, 25.0, pct)

	pct, ok = Percentage(10, ptr(3))
	assert.True(t, ok)
	assert.InDelta(t, 30.0, pct, 1e-9)

	_, ok = Percentage(100, nil)
	assert.False(t, ok, "unresolved entry has no waste percentage")

	_, ok = Percentage(0, ptr(0))
	assert.False(t, ok, "zero initial weight must not divide")
}

func TestCategoryThresholds(t *testing.T) {
	assert.Equal(t, CategoryHigh, Category(0))
	assert.Equal(t, CategoryHigh, Category(11))
	assert.Equal(t, CategoryMedium, Category(11.1))
	assert.Equal(t, CategoryMedium, Category(25))
	assert.Equal(t, CategoryLow, Category(25.1))
	assert.Equal(t, CategoryLow, Category(100))
}

func TestRecommendations(t *testing.T) {
	low := Recommendations("Rice", 8)
	assert.Len(t, low, 4)
	assert.Equal(t, "Rice is being managed efficiently with 8.0% waste", low[0])

	mid := Recommendations("Curry", 20)
	assert.Len(t, mid, 4)
	assert.Equal(t, "Curry shows moderate waste at 20.0%", mid[0])
	assert.Equal(t, "Review portion sizes", mid[1])

	high := Recommendations("Bread", 41)
	assert.Len(t, high, 4)
	assert.Equal(t, "Bread needs attention with 41.0% waste", high[0])
	assert.Equal(t, "Consider reducing preparation by 21%", high[1])
}

func TestDailyDistribution(t *testing.T) {
	entries := []Weighed{
		{FoodItem: "Rice", InitialWeight: 10, RemainingWeight: ptr(3)},
		{FoodItem: "Soup", InitialWeight: 5, RemainingWeight: nil},
		{FoodItem: "Rice", InitialWeight: 4, RemainingWeight: ptr(1)},
	}

	rows := DailyDistribution(entries)
	assert.Len(t, rows, 2, "pending entries are skipped, repeats are not merged")
	assert.Equal(t, "Rice", rows[0].FoodItem)
	assert.InDelta(t, 30.0, rows[0].Percentage, 1e-9)
	assert.Equal(t, "Rice", rows[1].FoodItem)
	assert.InDelta(t, 25.0, rows[1].Percentage, 1e-9)
}
