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

type IdentityServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
}

type IdentityService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewIdentityService(userRepo repositories.UserRepository, logger *zap.Logger) IdentityServiceInterface {
	return &IdentityService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *IdentityService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		Role:         request.Role,
		PasswordHash: hashedPassword,
	}

	// The role extension row is written alongside the user row.
	profile := func(userID uuid.UUID) interface{} {
		if request.Role == db_models.RoleAgent {
			return &db_models.AgentProfile{
				UserID:        userID,
				LicenseNumber: request.LicenseNumber,
				Agency:        request.Agency,
			}
		}
		return &db_models.RenterProfile{
			UserID:        userID,
			Occupation:    request.Occupation,
			MonthlyIncome: request.MonthlyIncome,
		}
	}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		s.logger.Error("failed to create user", zap.String("email", request.Email), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role))

	return &response_models.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *IdentityService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	// bcrypt compare is constant-time over the hash
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
		Role:  user.Role,
	}
}
