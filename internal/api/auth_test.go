package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	w := doRequest(router, "POST", "/api/v1/auth/register",
		[]byte(`{"name":"New User","email":"new@example.com","password":"password123"}`), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// duplicate email
	w = doRequest(router, "POST", "/api/v1/auth/register",
		[]byte(`{"name":"New User","email":"new@example.com","password":"password123"}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// short password fails binding
	w = doRequest(router, "POST", "/api/v1/auth/register",
		[]byte(`{"name":"New User","email":"short@example.com","password":"abc"}`), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	w := doRequest(router, "POST", "/api/v1/auth/login",
		[]byte(`{"email":"test@example.com","password":"testpassword123"}`), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	w = doRequest(router, "POST", "/api/v1/auth/login",
		[]byte(`{"email":"test@example.com","password":"wrongpassword"}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
