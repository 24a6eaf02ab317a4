package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/backend/internal/service"
	"github.com/wastewise/backend/internal/waste"
)

func TestGetAnalysis(t *testing.T) {
	router, token := setupTestRouter(t, "")

	entry := createEntryViaAPI(t, router, token, "2024-01-01", "lunch", "Rice", 10)
	w := doRequest(router, "PATCH",
		fmt.Sprintf("/api/v1/food-entries/%s/remaining-weight", entry.ID),
		[]byte(`{"remaining_weight":3}`), token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/api/v1/analysis?date=2024-01-01", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var report service.DateAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Items, 1)
	require.NotNil(t, report.Items[0].WastePercentage)
	assert.InDelta(t, 30.0, *report.Items[0].WastePercentage, 1e-9)
	assert.Equal(t, waste.CategoryLow, report.Items[0].Category)
	require.Len(t, report.Distribution, 1)
}

func TestGetAnalysisBadDate(t *testing.T) {
	router, token := setupTestRouter(t, "")

	w := doRequest(router, "GET", "/api/v1/analysis?date=january", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAnalysisDefaultsToToday(t *testing.T) {
	router, token := setupTestRouter(t, "")

	w := doRequest(router, "GET", "/api/v1/analysis", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var report service.DateAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.NotEmpty(t, report.Date)
	assert.Empty(t, report.Items)
}
