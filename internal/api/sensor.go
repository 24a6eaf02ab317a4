package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WeightReader reads one weight measurement from the scale.
type WeightReader interface {
	ReadWeight(ctx context.Context) (float64, error)
}

type SensorHandler struct {
	sensor WeightReader
}

func NewSensorHandler(sensor WeightReader) *SensorHandler {
	return &SensorHandler{sensor: sensor}
}

func (h *SensorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sensor/weight", h.GetWeight)
}

func (h *SensorHandler) GetWeight(c *gin.Context) {
	weight, err := h.sensor.ReadWeight(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"weight": weight})
}
