package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wastewise/backend/internal/service"
)

type FoodEntryHandler struct {
	entries *service.FoodEntryService
}

func NewFoodEntryHandler(entries *service.FoodEntryService) *FoodEntryHandler {
	return &FoodEntryHandler{entries: entries}
}

func (h *FoodEntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/food-entries")
	{
		entries.GET("", h.ListEntries)
		entries.POST("", h.CreateEntry)
		entries.GET("/pending", h.ListPending)
		entries.PATCH("/:id/remaining-weight", h.SetRemainingWeight)
		entries.DELETE("/:id", h.DeleteEntry)
	}
}

type CreateEntryRequest struct {
	Date          string   `json:"date" binding:"required"`
	MealType      string   `json:"meal_type" binding:"required"`
	FoodItem      string   `json:"food_item" binding:"required"`
	InitialWeight *float64 `json:"initial_weight" binding:"required"`
}

func (h *FoodEntryHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entries.CreateEntry(c.Request.Context(), service.CreateEntryInput{
		Date:          req.Date,
		MealType:      req.MealType,
		FoodItem:      req.FoodItem,
		InitialWeight: *req.InitialWeight,
	}, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *FoodEntryHandler) ListEntries(c *gin.Context) {
	opts := service.ListOptions{
		Filter:     c.Query("q"),
		SortField:  c.Query("sort"),
		Descending: c.Query("dir") == "desc",
	}

	entries, err := h.entries.ListAll(c.Request.Context(), currentUserID(c), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *FoodEntryHandler) ListPending(c *gin.Context) {
	entries, err := h.entries.ListPending(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

type SetRemainingWeightRequest struct {
	RemainingWeight *float64 `json:"remaining_weight" binding:"required"`
}

func (h *FoodEntryHandler) SetRemainingWeight(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req SetRemainingWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entries.SetRemainingWeight(c.Request.Context(), entryID, *req.RemainingWeight, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *FoodEntryHandler) DeleteEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.entries.DeleteEntry(c.Request.Context(), entryID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

// currentUserID returns the user id the auth middleware stored on the
// context. Routes using it must sit behind AuthMiddleware.
func currentUserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get("user_id")
	userID, _ := id.(uuid.UUID)
	return userID
}
