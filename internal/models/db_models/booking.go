package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
)

// Booking rows are never hard-deleted: cancellation flips Status and the row
// stays, so booking count (the earned-point basis) is stable over time.
type Booking struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	PropertyID   uuid.UUID `gorm:"type:uuid;index"`
	RentalStart  time.Time
	RentalEnd    time.Time
	Total        float64
	Status       string     `gorm:"size:12;default:'active';index"`
	EnrollmentID *uuid.UUID `gorm:"type:uuid"`

	User     User     `gorm:"foreignKey:UserID"`
	Property Property `gorm:"foreignKey:PropertyID"`
}

// BookingCard links a booking to the payment card it was placed with.
type BookingCard struct {
	BaseModel
	BookingID uuid.UUID `gorm:"type:uuid;index"`
	CardID    uuid.UUID `gorm:"type:uuid;index"`
}
