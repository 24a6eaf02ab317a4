package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wastewise/backend/internal/models"
)

// BookingService creates and lists donation bookings against food entries.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// ListAvailable returns entries with leftover food, newest date first. An
// entry that already has a booking still shows up here: nothing marks an
// entry as collected, and booking does not reduce its remaining weight.
func (s *BookingService) ListAvailable(ctx context.Context, ownerID uuid.UUID) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND remaining_weight > 0", ownerID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list available entries: %w", err)
	}
	return entries, nil
}

// CreateBookingInput carries the recipient details for a booking.
type CreateBookingInput struct {
	FoodEntryID   uuid.UUID
	PersonName    string
	ContactNumber string
	TrustName     string
}

// CreateBooking books an entry for collection. The entry must exist for the
// caller, but its remaining weight is not checked and no lock is taken:
// two concurrent bookings against the same entry both succeed.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput, ownerID uuid.UUID) (*models.Booking, error) {
	if in.PersonName == "" || in.ContactNumber == "" || in.TrustName == "" {
		return nil, fmt.Errorf("%w: person name, contact number and trust name are required", ErrInvalidInput)
	}

	var entry models.FoodEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.FoodEntryID, ownerID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load entry: %w", err)
	}

	booking := models.Booking{
		FoodEntryID:   in.FoodEntryID,
		PersonName:    in.PersonName,
		ContactNumber: in.ContactNumber,
		TrustName:     in.TrustName,
		BookingDate:   time.Now(),
		UserID:        ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return &booking, nil
}

// BookingWithEntry joins a booking with its referenced food entry. Entry is
// nil when the entry was deleted after the booking was made.
type BookingWithEntry struct {
	models.Booking
	Entry *models.FoodEntry `json:"food_entry"`
}

// ListBookings returns the caller's bookings, newest first, each with its
// food entry when it still exists.
func (s *BookingService) ListBookings(ctx context.Context, ownerID uuid.UUID) ([]BookingWithEntry, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	result := make([]BookingWithEntry, 0, len(bookings))
	for _, b := range bookings {
		joined := BookingWithEntry{Booking: b}
		var entry models.FoodEntry
		err := s.db.WithContext(ctx).
			Where("id = ?", b.FoodEntryID).
			First(&entry).Error
		if err == nil {
			joined.Entry = &entry
		} else if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("load booked entry: %w", err)
		}
		result = append(result, joined)
	}
	return result, nil
}
