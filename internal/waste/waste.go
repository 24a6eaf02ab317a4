// Package waste derives waste percentages, consumption categories and
// advisory text from a food entry's initial and remaining weights. All
// functions are pure.
package waste

import (
	"fmt"
	"math"
)

// Consumption category labels. The naming is inverted on purpose: a low
// leftover percentage means the food was mostly eaten, hence "High
// Consumption".
const (
	CategoryHigh   = "High Consumption"
	CategoryMedium = "Medium Consumption"
	CategoryLow    = "Low Consumption"
)

// Percentage returns (remaining/initial)*100, the fraction of the prepared
// weight left over, which this system reports as the waste percentage.
// ok is false when no remaining weight has been recorded or the initial
// weight is zero.
func Percentage(initial float64, remaining *float64) (pct float64, ok bool) {
	if remaining == nil || initial == 0 {
		return 0, false
	}
	return (*remaining / initial) * 100, true
}

// Category buckets a waste percentage into one of the three consumption
// labels. Thresholds are inclusive: 11% still counts as High, 25% as Medium.
func Category(pct float64) string {
	switch {
	case pct <= 11:
		return CategoryHigh
	case pct <= 25:
		return CategoryMedium
	default:
		return CategoryLow
	}
}

// Recommendations returns the four advisory lines for a food item at the
// given waste percentage, keyed to the same thresholds as Category.
func Recommendations(foodItem string, pct float64) []string {
	if pct <= 11 {
		return []string{
			fmt.Sprintf("%s is being managed efficiently with %.1f%% waste", foodItem, pct),
			"Maintain current portion sizes",
			"Document successful practices",
			"Consider expanding menu with similar items",
		}
	}
	if pct <= 25 {
		return []string{
			fmt.Sprintf("%s shows moderate waste at %.1f%%", foodItem, pct),
			"Review portion sizes",
			"Monitor serving temperature",
			"Analyze peak consumption times",
		}
	}
	return []string{
		fmt.Sprintf("%s needs attention with %.1f%% waste", foodItem, pct),
		fmt.Sprintf("Consider reducing preparation by %d%%", int(math.Round(pct/2))),
		"Review recipe and presentation",
		"Survey customer preferences",
	}
}

// ItemWaste is one row of a daily waste distribution.
type ItemWaste struct {
	FoodItem   string  `json:"food_item"`
	Percentage float64 `json:"percentage"`
}

// Weighed is the subset of a food entry the distribution needs.
type Weighed struct {
	FoodItem        string
	InitialWeight   float64
	RemainingWeight *float64
}

// DailyDistribution maps one date's entries to (food item, waste percentage)
// rows. Entries without a computable percentage are skipped. Repeated items
// on the same date are not aggregated; each row stands alone.
func DailyDistribution(entries []Weighed) []ItemWaste {
	rows := make([]ItemWaste, 0, len(entries))
	for _, e := range entries {
		pct, ok := Percentage(e.InitialWeight, e.RemainingWeight)
		if !ok {
			continue
		}
		rows = append(rows, ItemWaste{FoodItem: e.FoodItem, Percentage: pct})
	}
	return rows
}
