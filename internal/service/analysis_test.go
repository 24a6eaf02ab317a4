package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/backend/internal/waste"
)

func TestAnalyze(t *testing.T) {
	db := setupTestDB(t)
	entries := NewFoodEntryService(db, nil)
	analysis := NewAnalysisService(db, nil)
	owner := testOwner()
	ctx := context.Background()

	seedEntry(t, entries, owner, "2024-01-01", "Rice", 10, ptr(3))
	seedEntry(t, entries, owner, "2024-01-01", "Curry", 5, ptr(1))
	seedEntry(t, entries, owner, "2024-01-01", "Soup", 4, nil)
	seedEntry(t, entries, owner, "2024-01-02", "Bread", 2, ptr(1))

	report, err := analysis.Analyze(ctx, owner, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, report.Items, 3, "only the requested date is analyzed")

	rice := report.Items[0]
	assert.Equal(t, "Rice", rice.FoodItem)
	require.NotNil(t, rice.WastePercentage)
	assert.InDelta(t, 30.0, *rice.WastePercentage, 1e-9)
	assert.InDelta(t, 70.0, *rice.ConsumptionRate, 1e-9)
	assert.Equal(t, waste.CategoryLow, rice.Category)
	assert.Len(t, rice.Recommendations, 4)

	curry := report.Items[1]
	require.NotNil(t, curry.WastePercentage)
	assert.InDelta(t, 20.0, *curry.WastePercentage, 1e-9)
	assert.Equal(t, waste.CategoryMedium, curry.Category)

	soup := report.Items[2]
	assert.Nil(t, soup.WastePercentage, "pending entries have no percentage")
	assert.Empty(t, soup.Category)

	assert.Len(t, report.Distribution, 2, "pending entries are not in the distribution")
}

func TestAnalyzeValidation(t *testing.T) {
	db := setupTestDB(t)
	analysis := NewAnalysisService(db, nil)

	_, err := analysis.Analyze(context.Background(), testOwner(), "yesterday")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeEmptyDate(t *testing.T) {
	db := setupTestDB(t)
	analysis := NewAnalysisService(db, nil)

	report, err := analysis.Analyze(context.Background(), testOwner(), "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Empty(t, report.Distribution)
}

func TestAnalyzeScopedByOwner(t *testing.T) {
	db := setupTestDB(t)
	entries := NewFoodEntryService(db, nil)
	analysis := NewAnalysisService(db, nil)
	ctx := context.Background()

	owner := testOwner()
	seedEntry(t, entries, owner, "2024-01-01", "Rice", 10, ptr(3))
	seedEntry(t, entries, testOwner(), "2024-01-01", "Curry", 5, ptr(1))

	report, err := analysis.Analyze(ctx, owner, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "Rice", report.Items[0].FoodItem)
}
