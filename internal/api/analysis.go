package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/backend/internal/service"
)

type AnalysisHandler struct {
	analysis *service.AnalysisService
}

func NewAnalysisHandler(analysis *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/analysis", h.GetAnalysis)
}

// GetAnalysis returns the waste report for one date, defaulting to today.
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := h.analysis.Analyze(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
