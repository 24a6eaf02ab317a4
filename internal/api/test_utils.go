package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wastewise/backend/internal/models"
)

// setupTestRouter builds the API over an in-memory database and returns the
// router together with a bearer token for a fresh user. sensorURL may be
// empty when the test does not touch the sensor route.
func setupTestRouter(t *testing.T, sensorURL string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.FoodEntry{}, &models.Booking{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	router := gin.New()
	SetupAPI(router, db, nil, "test-secret", sensorURL)

	token := registerTestUser(t, router, "test@example.com")
	return router, token
}

func registerTestUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":"testpassword123"}`, email)
	w := doRequest(router, "POST", "/api/v1/auth/register", []byte(body), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to register test user: status %d body %s", w.Code, w.Body.String())
	}
	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}
	return resp.Token
}

func doRequest(router *gin.Engine, method, path string, body []byte, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createEntryViaAPI(t *testing.T, router *gin.Engine, token, date, mealType, foodItem string, initial float64) models.FoodEntry {
	t.Helper()
	body := fmt.Sprintf(`{"date":%q,"meal_type":%q,"food_item":%q,"initial_weight":%g}`,
		date, mealType, foodItem, initial)
	w := doRequest(router, "POST", "/api/v1/food-entries", []byte(body), token)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create entry: status %d body %s", w.Code, w.Body.String())
	}
	var entry models.FoodEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode entry: %v", err)
	}
	return entry
}
