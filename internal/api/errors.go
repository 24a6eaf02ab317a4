package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/backend/internal/sensor"
	"github.com/wastewise/backend/internal/service"
)

// respondError maps service errors onto HTTP statuses. Unknown errors are
// logged and reported generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, sensor.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "weight sensor unavailable"})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
