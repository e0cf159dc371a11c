package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/internal/models/response_models"
	"homestead/internal/repositories"
	"homestead/pkg/utils"
)

// pointsPerRedemptionRecord is the flat unit every redemption row counts as
// in the "used" derivation, independent of the amount requested at
// redemption time. Kept for compatibility with the historical accounting.
const pointsPerRedemptionRecord = 10

// pointsPerDollar converts a points amount into a dollar discount.
const pointsPerDollar = 10

type LoyaltyServiceInterface interface {
	ListPrograms(ctx context.Context) ([]response_models.RewardProgramResponse, error)
	Join(ctx context.Context, auth utils.AuthContext, request request_models.JoinProgramRequest) error
	Leave(ctx context.Context, auth utils.AuthContext) error
	MyProgram(ctx context.Context, auth utils.AuthContext) (*response_models.RewardProgramResponse, error)
	MyPoints(ctx context.Context, auth utils.AuthContext) (*response_models.PointsResponse, error)
	Redeem(ctx context.Context, auth utils.AuthContext, request request_models.RedeemPointsRequest) (*response_models.RedeemResponse, error)
}

type LoyaltyService struct {
	rewardRepo  repositories.RewardRepository
	bookingRepo repositories.BookingRepository
	logger      *zap.Logger
}

func NewLoyaltyService(rewardRepo repositories.RewardRepository, bookingRepo repositories.BookingRepository, logger *zap.Logger) LoyaltyServiceInterface {
	return &LoyaltyService{
		rewardRepo:  rewardRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *LoyaltyService) ListPrograms(ctx context.Context) ([]response_models.RewardProgramResponse, error) {
	programs, err := s.rewardRepo.ListPrograms(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RewardProgramResponse, 0, len(programs))
	for _, program := range programs {
		responses = append(responses, toProgramResponse(&program))
	}
	return responses, nil
}

func (s *LoyaltyService) Join(ctx context.Context, auth utils.AuthContext, request request_models.JoinProgramRequest) error {
	programID, err := uuid.Parse(request.RewardID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	program, err := s.rewardRepo.FindProgramByID(ctx, programID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if program == nil {
		return utils.ErrProgramNotFound
	}

	// At most one enrollment per renter.
	existing, err := s.rewardRepo.FindEnrollmentByUser(ctx, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrAlreadyEnrolled
	}

	enrollment := &db_models.RewardEnrollment{UserID: auth.UserID, ProgramID: programID}
	if err := s.rewardRepo.CreateEnrollment(ctx, enrollment); err != nil {
		s.logger.Error("failed to create enrollment", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// Leave is an unconditional delete: a renter with no enrollment gets the
// same success as one who just left.
func (s *LoyaltyService) Leave(ctx context.Context, auth utils.AuthContext) error {
	if err := s.rewardRepo.DeleteEnrollmentByUser(ctx, auth.UserID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LoyaltyService) MyProgram(ctx context.Context, auth utils.AuthContext) (*response_models.RewardProgramResponse, error) {
	enrollment, err := s.rewardRepo.FindEnrollmentByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if enrollment == nil {
		return nil, utils.ErrEnrollmentNotFound
	}
	response := toProgramResponse(&enrollment.Program)
	return &response, nil
}

// MyPoints derives both counters on every read rather than keeping a stored
// balance: earned from the renter's booking count (cancelled bookings kept),
// used from the redemption row count.
func (s *LoyaltyService) MyPoints(ctx context.Context, auth utils.AuthContext) (*response_models.PointsResponse, error) {
	enrollment, err := s.rewardRepo.FindEnrollmentByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if enrollment == nil {
		return &response_models.PointsResponse{Earned: 0, Used: 0}, nil
	}

	bookingCount, err := s.bookingRepo.CountByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	redemptionCount, err := s.rewardRepo.CountRedemptions(ctx, enrollment.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PointsResponse{
		Earned: int(bookingCount) * enrollment.Program.PointsPerBooking,
		Used:   int(redemptionCount) * pointsPerRedemptionRecord,
	}, nil
}

func (s *LoyaltyService) Redeem(ctx context.Context, auth utils.AuthContext, request request_models.RedeemPointsRequest) (*response_models.RedeemResponse, error) {
	if request.PropertyID == "" {
		return nil, utils.ErrInvalidInput
	}
	propertyID, err := uuid.Parse(request.PropertyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	enrollment, err := s.rewardRepo.FindEnrollmentByUser(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if enrollment == nil {
		return nil, utils.ErrNotEnrolled
	}

	redemption := &db_models.PointRedemption{
		EnrollmentID: enrollment.ID,
		PropertyID:   propertyID,
		Metadata:     redemptionMetadata(request.Points),
	}
	if err := s.rewardRepo.CreateRedemption(ctx, redemption); err != nil {
		s.logger.Error("failed to create redemption", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("points redeemed",
		zap.String("enrollment_id", enrollment.ID.String()),
		zap.String("property_id", propertyID.String()),
		zap.Int("points", request.Points))

	// The discount is informational; the ledger effect is the new row.
	return &response_models.RedeemResponse{
		Discount: float64(request.Points) / pointsPerDollar,
	}, nil
}

func redemptionMetadata(points int) datatypes.JSON {
	payload, _ := json.Marshal(map[string]int{"points_requested": points})
	return datatypes.JSON(payload)
}

func toProgramResponse(program *db_models.RewardProgram) response_models.RewardProgramResponse {
	return response_models.RewardProgramResponse{
		ID:               program.ID.String(),
		Name:             program.Name,
		PointsPerBooking: program.PointsPerBooking,
	}
}
