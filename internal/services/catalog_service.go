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

type CatalogServiceInterface interface {
	CreateProperty(ctx context.Context, auth utils.AuthContext, request request_models.PropertyRequest) (*response_models.PropertyResponse, error)
	UpdateProperty(ctx context.Context, auth utils.AuthContext, propertyID string, request request_models.PropertyRequest) (*response_models.PropertyResponse, error)
	DeleteProperty(ctx context.Context, auth utils.AuthContext, propertyID string) error
	Search(ctx context.Context, query request_models.SearchPropertiesQuery) ([]response_models.PropertyResponse, error)
	ListForAgent(ctx context.Context, auth utils.AuthContext) ([]response_models.PropertyResponse, error)
}

type CatalogService struct {
	propertyRepo repositories.PropertyRepository
	logger       *zap.Logger
}

func NewCatalogService(propertyRepo repositories.PropertyRepository, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// DeriveListingType forces sale listings for Land and Commercial properties;
// every other type takes the requested mode, defaulting to rent.
func DeriveListingType(propertyType, requested string) string {
	if propertyType == db_models.PropertyTypeLand || propertyType == db_models.PropertyTypeCommercial {
		return db_models.ListingTypeSale
	}
	if requested == "" {
		return db_models.ListingTypeRent
	}
	return requested
}

func validateSubtype(request request_models.PropertyRequest) error {
	switch request.Type {
	case db_models.PropertyTypeHouse, db_models.PropertyTypeApartment, db_models.PropertyTypeVacation:
		if request.Sqft <= 0 || request.Rooms <= 0 {
			return utils.ErrInvalidInput
		}
	case db_models.PropertyTypeCommercial:
		if request.Sqft <= 0 {
			return utils.ErrInvalidInput
		}
	case db_models.PropertyTypeLand:
		if request.Sqft <= 0 {
			return utils.ErrInvalidInput
		}
	default:
		return utils.ErrInvalidInput
	}
	return nil
}

func subtypeBuilder(request request_models.PropertyRequest) func(propertyID uuid.UUID) interface{} {
	return func(propertyID uuid.UUID) interface{} {
		switch request.Type {
		case db_models.PropertyTypeHouse:
			return &db_models.House{PropertyID: propertyID, Sqft: request.Sqft, Rooms: request.Rooms}
		case db_models.PropertyTypeApartment:
			return &db_models.Apartment{PropertyID: propertyID, Sqft: request.Sqft, Rooms: request.Rooms}
		case db_models.PropertyTypeCommercial:
			businessType := request.BusinessType
			if businessType == "" {
				businessType = "General"
			}
			return &db_models.Commercial{PropertyID: propertyID, Sqft: request.Sqft, BusinessType: businessType}
		case db_models.PropertyTypeVacation:
			return &db_models.Vacation{PropertyID: propertyID, Sqft: request.Sqft, Rooms: request.Rooms}
		case db_models.PropertyTypeLand:
			return &db_models.Land{PropertyID: propertyID, Area: request.Sqft}
		}
		return nil
	}
}

func (s *CatalogService) CreateProperty(ctx context.Context, auth utils.AuthContext, request request_models.PropertyRequest) (*response_models.PropertyResponse, error) {
	if err := validateSubtype(request); err != nil {
		return nil, err
	}

	property := &db_models.Property{
		Type:        request.Type,
		Description: request.Description,
		Price:       request.Price,
		Available:   true,
		City:        request.City,
		State:       request.State,
		ImageURL:    request.ImageURL,
		ListingType: DeriveListingType(request.Type, request.ListingType),
	}

	if request.Neighborhood != "" {
		neighborhoodID, err := uuid.Parse(request.Neighborhood)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		property.NeighborhoodID = &neighborhoodID
	}

	if err := s.propertyRepo.CreateWithSubtype(ctx, property, subtypeBuilder(request), auth.UserID); err != nil {
		s.logger.Error("failed to create property", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("property created",
		zap.String("property_id", property.ID.String()),
		zap.String("type", property.Type),
		zap.String("listing_type", property.ListingType))

	return s.loadResponse(ctx, property.ID)
}

func (s *CatalogService) UpdateProperty(ctx context.Context, auth utils.AuthContext, propertyID string, request request_models.PropertyRequest) (*response_models.PropertyResponse, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if err := s.requireOwnership(ctx, auth, id); err != nil {
		return nil, err
	}
	if err := validateSubtype(request); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if property == nil {
		return nil, utils.ErrPropertyNotFound
	}

	property.Type = request.Type
	property.Description = request.Description
	property.Price = request.Price
	property.City = request.City
	property.State = request.State
	property.ImageURL = request.ImageURL
	property.ListingType = DeriveListingType(request.Type, request.ListingType)

	if err := s.propertyRepo.UpdateWithSubtype(ctx, property, subtypeBuilder(request)); err != nil {
		s.logger.Error("failed to update property", zap.String("property_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.loadResponse(ctx, id)
}

func (s *CatalogService) DeleteProperty(ctx context.Context, auth utils.AuthContext, propertyID string) error {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if err := s.requireOwnership(ctx, auth, id); err != nil {
		return err
	}
	if err := s.propertyRepo.DeleteWithSubtype(ctx, id); err != nil {
		s.logger.Error("failed to delete property", zap.String("property_id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) Search(ctx context.Context, query request_models.SearchPropertiesQuery) ([]response_models.PropertyResponse, error) {
	filter := repositories.PropertyFilter{
		City:        query.City,
		Type:        query.Type,
		ListingType: query.ListingType,
		MinBedrooms: query.Bedrooms,
		MinPrice:    query.PriceMin,
		MaxPrice:    query.PriceMax,
	}

	records, err := s.propertyRepo.Search(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPropertyResponses(records), nil
}

func (s *CatalogService) ListForAgent(ctx context.Context, auth utils.AuthContext) ([]response_models.PropertyResponse, error) {
	records, err := s.propertyRepo.ListByAgent(ctx, auth.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPropertyResponses(records), nil
}

func (s *CatalogService) requireOwnership(ctx context.Context, auth utils.AuthContext, propertyID uuid.UUID) error {
	manages, err := s.propertyRepo.Manages(ctx, auth.UserID, propertyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !manages {
		return utils.ErrNotOwner
	}
	return nil
}

func (s *CatalogService) loadResponse(ctx context.Context, id uuid.UUID) (*response_models.PropertyResponse, error) {
	record, err := s.propertyRepo.FindRecordByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrPropertyNotFound
	}
	response := toPropertyResponse(*record)
	return &response, nil
}

func toPropertyResponse(record repositories.PropertyRecord) response_models.PropertyResponse {
	response := response_models.PropertyResponse{
		ID:          record.ID.String(),
		Type:        record.Type,
		Description: record.Description,
		Price:       record.Price,
		Available:   record.Available,
		City:        record.City,
		State:       record.State,
		ImageURL:    record.ImageURL,
		ListingType: record.ListingType,
		Rooms:       record.Rooms,
		Sqft:        record.Sqft,
	}
	if record.BusinessType != nil {
		response.BusinessType = *record.BusinessType
	}
	if record.NeighborhoodName != nil {
		response.NeighborhoodName = *record.NeighborhoodName
	}
	if record.NeighborhoodDesc != nil {
		response.NeighborhoodDesc = *record.NeighborhoodDesc
	}
	if record.CrimeRate != nil {
		response.CrimeRate = *record.CrimeRate
	}
	if record.NearbySchools != nil {
		response.NearbySchools = *record.NearbySchools
	}
	return response
}

func toPropertyResponses(records []repositories.PropertyRecord) []response_models.PropertyResponse {
	responses := make([]response_models.PropertyResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPropertyResponse(record))
	}
	return responses
}
