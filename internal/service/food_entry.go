package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wastewise/backend/internal/models"
)

// CacheInvalidator is notified whenever an owner's entries change for a
// date, so derived analysis results can be dropped.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, ownerID uuid.UUID, date string)
}

// FoodEntryService enforces the entry lifecycle: create with an initial
// weight, record the remaining weight later, never let the remaining weight
// exceed the initial one.
type FoodEntryService struct {
	db    *gorm.DB
	cache CacheInvalidator
}

func NewFoodEntryService(db *gorm.DB, cache CacheInvalidator) *FoodEntryService {
	return &FoodEntryService{db: db, cache: cache}
}

// CreateEntryInput carries the fields of the initial weighing.
type CreateEntryInput struct {
	Date          string
	MealType      string
	FoodItem      string
	InitialWeight float64
}

// CreateEntry records the initial weighing of a dish. The entry starts
// pending: its remaining weight is unset until SetRemainingWeight.
func (s *FoodEntryService) CreateEntry(ctx context.Context, in CreateEntryInput, ownerID uuid.UUID) (*models.FoodEntry, error) {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !models.ValidMealType(in.MealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, in.MealType)
	}
	if in.FoodItem == "" {
		return nil, fmt.Errorf("%w: food item is required", ErrInvalidInput)
	}
	if in.InitialWeight < 0 {
		return nil, fmt.Errorf("%w: initial weight must not be negative", ErrInvalidInput)
	}

	entry := models.FoodEntry{
		Date:          in.Date,
		MealType:      in.MealType,
		FoodItem:      in.FoodItem,
		InitialWeight: in.InitialWeight,
		UserID:        ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.invalidate(ctx, ownerID, entry.Date)
	return &entry, nil
}

// SetRemainingWeight resolves an entry with its leftover weight. Calling it
// again on a resolved entry simply overwrites the prior value; there is no
// transition lock, and concurrent updates are last write wins.
func (s *FoodEntryService) SetRemainingWeight(ctx context.Context, entryID uuid.UUID, remaining float64, ownerID uuid.UUID) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, ownerID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load entry: %w", err)
	}

	if remaining < 0 {
		return nil, fmt.Errorf("%w: remaining weight must not be negative", ErrInvalidInput)
	}
	if remaining > entry.InitialWeight {
		return nil, fmt.Errorf("%w: remaining weight %.2f exceeds initial weight %.2f",
			ErrInvalidInput, remaining, entry.InitialWeight)
	}

	if err := s.db.WithContext(ctx).Model(&entry).Update("remaining_weight", remaining).Error; err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	entry.RemainingWeight = &remaining

	s.invalidate(ctx, ownerID, entry.Date)
	return &entry, nil
}

// ListPending returns the caller's entries still awaiting a remaining
// weight, newest date first.
func (s *FoodEntryService) ListPending(ctx context.Context, ownerID uuid.UUID) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND remaining_weight IS NULL", ownerID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	return entries, nil
}

// Columns the list endpoint may sort by.
var sortColumns = map[string]string{
	"date":             "date",
	"meal_type":        "meal_type",
	"food_item":        "food_item",
	"initial_weight":   "initial_weight",
	"remaining_weight": "remaining_weight",
	"created_at":       "created_at",
}

// ListOptions control filtering and ordering of ListAll.
type ListOptions struct {
	// Filter is matched case-insensitively as a substring of the food
	// item or the meal type.
	Filter string
	// SortField must be one of the whitelisted columns; empty means date.
	SortField string
	// Descending flips the sort direction.
	Descending bool
}

// ListAll returns the caller's entries with optional filter and sort. Ties
// break on insertion order.
func (s *FoodEntryService) ListAll(ctx context.Context, ownerID uuid.UUID, opts ListOptions) ([]models.FoodEntry, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)

	if opts.Filter != "" {
		like := "%" + strings.ToLower(opts.Filter) + "%"
		query = query.Where("LOWER(food_item) LIKE ? OR LOWER(meal_type) LIKE ?", like, like)
	}

	field := opts.SortField
	if field == "" {
		field = "date"
		opts.Descending = true
	}
	column, ok := sortColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidInput, field)
	}
	dir := "ASC"
	if opts.Descending {
		dir = "DESC"
	}
	query = query.Order(fmt.Sprintf("%s %s", column, dir)).Order("created_at ASC")

	var entries []models.FoodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry outright. Bookings referencing it are left
// alone; their food entry reference dangles.
func (s *FoodEntryService) DeleteEntry(ctx context.Context, entryID, ownerID uuid.UUID) error {
	var entry models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, ownerID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("load entry: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.invalidate(ctx, ownerID, entry.Date)
	return nil
}

func (s *FoodEntryService) invalidate(ctx context.Context, ownerID uuid.UUID, date string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, ownerID, date)
	}
}
