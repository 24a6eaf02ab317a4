package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal types accepted on a food entry.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// ValidMealType reports whether t is one of the four accepted meal types.
func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodEntry is one recorded weighing event for a dish at a meal.
// RemainingWeight stays nil until the leftover weighing happens; an entry
// with a nil RemainingWeight is pending, a non-nil one is resolved.
type FoodEntry struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Date            string    `gorm:"type:varchar(10);not null;index" json:"date"`
	MealType        string    `gorm:"size:20;not null" json:"meal_type"`
	FoodItem        string    `gorm:"size:255;not null" json:"food_item"`
	InitialWeight   float64   `gorm:"not null" json:"initial_weight"`
	RemainingWeight *float64  `json:"remaining_weight"`
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (FoodEntry) TableName() string {
	return "food_entries"
}

func (e *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Resolved reports whether the remaining weight has been recorded.
func (e *FoodEntry) Resolved() bool {
	return e.RemainingWeight != nil
}
