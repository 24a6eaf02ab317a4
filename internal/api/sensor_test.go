package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSensorWeight(t *testing.T) {
	device := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weight": 1.75}`))
	}))
	defer device.Close()

	router, token := setupTestRouter(t, device.URL)

	w := doRequest(router, "GET", "/api/v1/sensor/weight", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Weight float64 `json:"weight"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1.75, resp.Weight)
}

func TestGetSensorWeightUnavailable(t *testing.T) {
	device := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer device.Close()

	router, token := setupTestRouter(t, device.URL)

	w := doRequest(router, "GET", "/api/v1/sensor/weight", nil, token)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
