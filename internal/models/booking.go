package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a request from a trust to collect the remaining quantity of a
// food entry. The FoodEntryID reference is deliberately weak: deleting the
// entry does not delete or update the booking.
type Booking struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	FoodEntryID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"food_entry_id"`
	PersonName    string    `gorm:"size:255;not null" json:"person_name"`
	ContactNumber string    `gorm:"size:50;not null" json:"contact_number"`
	TrustName     string    `gorm:"size:255;not null" json:"trust_name"`
	BookingDate   time.Time `gorm:"not null;index" json:"booking_date"`
	UserID        uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
