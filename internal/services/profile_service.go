package services

import (
	"context"

	"github.com/google/uuid"
	"homestead/internal/models/db_models"
	"homestead/internal/models/request_models"
	"homestead/internal/models/response_models"
	"homestead/internal/repositories"
	"homestead/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, auth utils.AuthContext) (*response_models.UserResponse, error)
	AddAddress(ctx context.Context, auth utils.AuthContext, request request_models.AddAddressRequest) (*response_models.AddressResponse, error)
	ListAddresses(ctx context.Context, auth utils.AuthContext) ([]response_models.AddressResponse, error)
	DeleteAddress(ctx context.Context, auth utils.AuthContext, addressID string) error
	AddCard(ctx context.Context, auth utils.AuthContext, request request_models.AddCardRequest) (*response_models.CardResponse, error)
	ListCards(ctx context.Context, auth utils.AuthContext) ([]response_models.CardResponse, error)
	DeleteCard(ctx context.Context, auth utils.AuthContext, cardID string) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, auth utils.AuthContext) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	response := toUserResponse(user)
	switch user.Role {
	case db_models.RoleAgent:
		profile, err := s.userRepo.FindAgentProfile(ctx, auth.UserID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if profile != nil {
			response.LicenseNumber = profile.LicenseNumber
			response.Agency = profile.Agency
		}
	case db_models.RoleRenter:
		profile, err := s.userRepo.FindRenterProfile(ctx, auth.UserID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if profile != nil {
			response.Occupation = profile.Occupation
			response.MonthlyIncome = profile.MonthlyIncome
		}
	}
	return &response, nil
}

func (s *ProfileService) AddAddress(ctx context.Context, auth utils.AuthContext, request request_models.AddAddressRequest) (*response_models.AddressResponse, error) {
	address := &db_models.Address{
		UserID: auth.UserID,
		Street: request.Street,
		City:   request.City,
		Zip:    request.Zip,
	}
	if err := s.profileRepo.CreateAddress(ctx, address); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toAddressResponse(address), nil
}

func (s *ProfileService) ListAddresses(ctx context.Context, auth utils.AuthContext) ([]response_models.AddressResponse, error) {
	addresses, err := s.profileRepo.ListAddresses(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *toAddressResponse(&addresses[i]))
	}
	return responses, nil
}

func (s *ProfileService) DeleteAddress(ctx context.Context, auth utils.AuthContext, addressID string) error {
	id, err := uuid.Parse(addressID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	address, err := s.profileRepo.FindAddress(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if address == nil {
		return utils.ErrAddressNotFound
	}

	// An address referenced by a card as billing address cannot go away.
	cards, err := s.profileRepo.CountCardsByAddress(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if cards > 0 {
		return utils.ErrAddressInUse
	}

	if err := s.profileRepo.DeleteAddress(ctx, id, auth.UserID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProfileService) AddCard(ctx context.Context, auth utils.AuthContext, request request_models.AddCardRequest) (*response_models.CardResponse, error) {
	billingAddressID, err := uuid.Parse(request.BillingAddressID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	// The billing address must be one of the caller's own.
	address, err := s.profileRepo.FindAddress(ctx, billingAddressID, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if address == nil {
		return nil, utils.ErrInvalidInput
	}

	card := &db_models.Card{
		UserID:           auth.UserID,
		Number:           request.CardNumber,
		ExpiryMonth:      request.ExpiryMonth,
		ExpiryYear:       request.ExpiryYear,
		CVV:              request.CVV,
		BillingAddressID: billingAddressID,
	}
	if err := s.profileRepo.CreateCard(ctx, card); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCardResponse(card), nil
}

func (s *ProfileService) ListCards(ctx context.Context, auth utils.AuthContext) ([]response_models.CardResponse, error) {
	cards, err := s.profileRepo.ListCards(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, *toCardResponse(&cards[i]))
	}
	return responses, nil
}

func (s *ProfileService) DeleteCard(ctx context.Context, auth utils.AuthContext, cardID string) error {
	id, err := uuid.Parse(cardID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	card, err := s.profileRepo.FindCard(ctx, id, auth.UserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if card == nil {
		return utils.ErrCardNotFound
	}

	if err := s.profileRepo.DeleteCard(ctx, id, auth.UserID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toAddressResponse(address *db_models.Address) *response_models.AddressResponse {
	return &response_models.AddressResponse{
		ID:     address.ID.String(),
		Street: address.Street,
		City:   address.City,
		Zip:    address.Zip,
	}
}

func toCardResponse(card *db_models.Card) *response_models.CardResponse {
	return &response_models.CardResponse{
		ID:               card.ID.String(),
		Number:           utils.MaskCardNumber(card.Number),
		ExpiryMonth:      card.ExpiryMonth,
		ExpiryYear:       card.ExpiryYear,
		BillingAddressID: card.BillingAddressID.String(),
	}
}
