package services

import (
	"context"

	"github.com/google/uuid"
	"homestead/internal/models/response_models"
	"homestead/internal/repositories"
	"homestead/pkg/utils"
)

type NeighborhoodServiceInterface interface {
	List(ctx context.Context) ([]response_models.NeighborhoodSummary, error)
	Get(ctx context.Context, neighborhoodID string) (*response_models.NeighborhoodDetail, error)
}

type NeighborhoodService struct {
	neighborhoodRepo repositories.NeighborhoodRepository
	propertyRepo     repositories.PropertyRepository
}

func NewNeighborhoodService(neighborhoodRepo repositories.NeighborhoodRepository, propertyRepo repositories.PropertyRepository) NeighborhoodServiceInterface {
	return &NeighborhoodService{
		neighborhoodRepo: neighborhoodRepo,
		propertyRepo:     propertyRepo,
	}
}

func (s *NeighborhoodService) List(ctx context.Context) ([]response_models.NeighborhoodSummary, error) {
	records, err := s.neighborhoodRepo.ListWithStats(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.NeighborhoodSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, response_models.NeighborhoodSummary{
			ID:            record.ID.String(),
			Location:      record.Location,
			Description:   record.Description,
			CrimeRate:     record.CrimeRate,
			NearbySchools: record.NearbySchools,
			AvgPrice:      record.AvgPrice,
			PropertyCount: record.PropertyCount,
		})
	}
	return summaries, nil
}

func (s *NeighborhoodService) Get(ctx context.Context, neighborhoodID string) (*response_models.NeighborhoodDetail, error) {
	id, err := uuid.Parse(neighborhoodID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	neighborhood, err := s.neighborhoodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if neighborhood == nil {
		return nil, utils.ErrNeighborhoodNotFound
	}

	properties, err := s.propertyRepo.ListByNeighborhood(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.NeighborhoodDetail{
		Neighborhood: response_models.NeighborhoodSummary{
			ID:            neighborhood.ID.String(),
			Location:      neighborhood.Location,
			Description:   neighborhood.Description,
			CrimeRate:     neighborhood.CrimeRate,
			NearbySchools: neighborhood.NearbySchools,
		},
		Properties: toPropertyResponses(properties),
	}, nil
}
