package sensor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWeight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weight", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weight": 2.35}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	weight, err := c.ReadWeight(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2.35, weight)
}

func TestReadWeightNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ReadWeight(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReadWeightMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"temperature": 21}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ReadWeight(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReadWeightConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.ReadWeight(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
