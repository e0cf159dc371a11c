package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

// BookingRecord is the joined read model of a booking: property summary for
// the renter view, renter identity for the agent view, and the card the
// booking was placed with.
type BookingRecord struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	RentalStart time.Time
	RentalEnd   time.Time
	Total       float64
	Status      string

	PropertyDescription *string
	PropertyType        *string
	PropertyCity        *string
	PropertyPrice       *float64

	CardNumber *string

	RenterName  *string
	RenterEmail *string
}

type BookingRepository interface {
	// CreateWithCard inserts the optional redemption row, the booking and
	// its card link in one transaction.
	CreateWithCard(ctx context.Context, b *db_models.Booking, cardID uuid.UUID, redemption *db_models.PointRedemption) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingRecord, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]BookingRecord, error)
	// CancelWithRefund flips the booking to cancelled and, when a redemption
	// id is given, removes that row in the same transaction.
	CancelWithRefund(ctx context.Context, bookingID uuid.UUID, redemptionID *uuid.UUID) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateWithCard(ctx context.Context, b *db_models.Booking, cardID uuid.UUID, redemption *db_models.PointRedemption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if redemption != nil {
			if err := tx.Create(redemption).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		link := &db_models.BookingCard{BookingID: b.ID, CardID: cardID}
		return tx.Create(link).Error
	})
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var b db_models.Booking
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Booking{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) recordQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&db_models.Booking{}).
		Select(`bookings.id, bookings.property_id, bookings.rental_start, bookings.rental_end,
			bookings.total, bookings.status,
			properties.description AS property_description,
			properties.type AS property_type,
			properties.city AS property_city,
			properties.price AS property_price,
			cards.number AS card_number,
			users.name AS renter_name,
			users.email AS renter_email`).
		Joins("LEFT JOIN properties ON properties.id = bookings.property_id").
		Joins("LEFT JOIN booking_cards ON booking_cards.booking_id = bookings.id").
		Joins("LEFT JOIN cards ON cards.id = booking_cards.card_id").
		Joins("LEFT JOIN users ON users.id = bookings.user_id")
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]BookingRecord, error) {
	var records []BookingRecord
	err := r.recordQuery(ctx).
		Where("bookings.user_id = ?", userID).
		Order("bookings.rental_start DESC").
		Scan(&records).Error
	return records, err
}

func (r *bookingRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]BookingRecord, error) {
	var records []BookingRecord
	err := r.recordQuery(ctx).
		Joins("JOIN agent_properties ON agent_properties.property_id = bookings.property_id").
		Where("agent_properties.user_id = ?", agentID).
		Order("bookings.rental_start DESC").
		Scan(&records).Error
	return records, err
}

func (r *bookingRepository) CancelWithRefund(ctx context.Context, bookingID uuid.UUID, redemptionID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if redemptionID != nil {
			// Hard delete; a soft-deleted row would still block a later
			// redemption for the same enrollment/property pair.
			err := tx.Unscoped().Delete(&db_models.PointRedemption{}, "id = ?", *redemptionID).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&db_models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", db_models.BookingStatusCancelled).Error
	})
}
