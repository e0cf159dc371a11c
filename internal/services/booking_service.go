package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/internal/models/response_models"
	"homestead/internal/repositories"
	"homestead/pkg/utils"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, auth utils.AuthContext, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	MyBookings(ctx context.Context, auth utils.AuthContext) ([]response_models.BookingResponse, error)
	AgentBookings(ctx context.Context, auth utils.AuthContext) ([]response_models.BookingResponse, error)
	Cancel(ctx context.Context, auth utils.AuthContext, bookingID string) (*response_models.CancelBookingResponse, error)
}

type BookingService struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	profileRepo  repositories.ProfileRepository
	rewardRepo   repositories.RewardRepository
	logger       *zap.Logger
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	profileRepo repositories.ProfileRepository,
	rewardRepo repositories.RewardRepository,
	logger *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		profileRepo:  profileRepo,
		rewardRepo:   rewardRepo,
		logger:       logger,
	}
}

func (s *BookingService) Create(ctx context.Context, auth utils.AuthContext, request request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	// A card is mandatory for every booking.
	if request.CardID == "" {
		return nil, utils.ErrInvalidInput
	}
	cardID, err := uuid.Parse(request.CardID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	propertyID, err := uuid.Parse(request.PropertyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if property == nil || !property.Available {
		return nil, utils.ErrPropertyNotFound
	}

	start, err := utils.ParseDate(request.RentalStart)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.RentalEnd)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	days := utils.DaysBetween(start, end)
	if days <= 0 {
		return nil, utils.ErrInvalidInput
	}

	// Monthly rate prorated by day count, not a nightly price.
	total := utils.ProrateMonthly(property.Price, days)

	card, err := s.profileRepo.FindCard(ctx, cardID, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if card == nil {
		return nil, utils.ErrCardNotFound
	}

	// The enrollment is optional; the booking proceeds without one.
	enrollment, err := s.rewardRepo.FindEnrollmentByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	booking := &db_models.Booking{
		UserID:      auth.UserID,
		PropertyID:  propertyID,
		RentalStart: start,
		RentalEnd:   end,
		Status:      db_models.BookingStatusActive,
	}

	var redemption *db_models.PointRedemption
	if enrollment != nil {
		booking.EnrollmentID = &enrollment.ID
		if request.UsePoints && request.PointsToUse > 0 {
			discount := float64(request.PointsToUse) / pointsPerDollar
			total = utils.RoundCents(max(0, total-discount))
			redemption = &db_models.PointRedemption{
				EnrollmentID: enrollment.ID,
				PropertyID:   propertyID,
				Metadata:     redemptionMetadata(request.PointsToUse),
			}
		}
	}
	booking.Total = total

	if err := s.bookingRepo.CreateWithCard(ctx, booking, cardID, redemption); err != nil {
		s.logger.Error("failed to create booking",
			zap.String("property_id", propertyID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("property_id", propertyID.String()),
		zap.Int("days", days),
		zap.Float64("total", total))

	return &response_models.BookingResponse{
		ID:                  booking.ID.String(),
		PropertyID:          propertyID.String(),
		RentalStart:         start.Format("2006-01-02"),
		RentalEnd:           end.Format("2006-01-02"),
		Total:               total,
		Status:              booking.Status,
		PropertyDescription: property.Description,
		PropertyType:        property.Type,
		PropertyCity:        property.City,
		PropertyPrice:       property.Price,
		CardNumber:          utils.MaskCardNumber(card.Number),
	}, nil
}

func (s *BookingService) MyBookings(ctx context.Context, auth utils.AuthContext) ([]response_models.BookingResponse, error) {
	records, err := s.bookingRepo.ListByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(records), nil
}

func (s *BookingService) AgentBookings(ctx context.Context, auth utils.AuthContext) ([]response_models.BookingResponse, error) {
	records, err := s.bookingRepo.ListByAgent(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookingResponses(records), nil
}

func (s *BookingService) Cancel(ctx context.Context, auth utils.AuthContext, bookingID string) (*response_models.CancelBookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	if booking.Status == db_models.BookingStatusCancelled {
		return nil, utils.ErrBookingCancelled
	}

	// The renter on the booking or an agent managing the property may cancel.
	if booking.UserID != auth.UserID {
		manages, err := s.propertyRepo.Manages(ctx, auth.UserID, booking.PropertyID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !manages {
			return nil, utils.ErrNotOwner
		}
	}

	var redemptionID *uuid.UUID
	if booking.EnrollmentID != nil {
		redemption, err := s.rewardRepo.FindRedemption(ctx, *booking.EnrollmentID, booking.PropertyID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if redemption != nil {
			redemptionID = &redemption.ID
		}
	}

	// Refund and status flip land together or not at all. The booking row
	// itself is kept so historical earned-point accounting stays intact.
	if err := s.bookingRepo.CancelWithRefund(ctx, id, redemptionID); err != nil {
		s.logger.Error("failed to cancel booking", zap.String("booking_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	pointsRefunded := redemptionID != nil

	s.logger.Info("booking cancelled",
		zap.String("booking_id", id.String()),
		zap.Bool("points_refunded", pointsRefunded))

	message := "Booking cancelled, refund issued to your card"
	if pointsRefunded {
		message = "Booking cancelled, points refunded"
	}
	return &response_models.CancelBookingResponse{
		Message:        message,
		PointsRefunded: pointsRefunded,
	}, nil
}

func toBookingResponses(records []repositories.BookingRecord) []response_models.BookingResponse {
	responses := make([]response_models.BookingResponse, 0, len(records))
	for _, record := range records {
		response := response_models.BookingResponse{
			ID:          record.ID.String(),
			PropertyID:  record.PropertyID.String(),
			RentalStart: record.RentalStart.Format("2006-01-02"),
			RentalEnd:   record.RentalEnd.Format("2006-01-02"),
			Total:       record.Total,
			Status:      record.Status,
		}
		if record.PropertyDescription != nil {
			response.PropertyDescription = *record.PropertyDescription
		}
		if record.PropertyType != nil {
			response.PropertyType = *record.PropertyType
		}
		if record.PropertyCity != nil {
			response.PropertyCity = *record.PropertyCity
		}
		if record.PropertyPrice != nil {
			response.PropertyPrice = *record.PropertyPrice
		}
		if record.CardNumber != nil {
			response.CardNumber = utils.MaskCardNumber(*record.CardNumber)
		}
		if record.RenterName != nil {
			response.RenterName = *record.RenterName
		}
		if record.RenterEmail != nil {
			response.RenterEmail = *record.RenterEmail
		}
		responses = append(responses, response)
	}
	return responses
}
