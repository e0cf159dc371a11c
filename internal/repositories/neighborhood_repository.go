package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

// NeighborhoodRecord is a neighborhood row with aggregates over its available
// properties. AvgPrice is nil when the area has no available property.
type NeighborhoodRecord struct {
	ID            uuid.UUID
	Location      string
	Description   string
	CrimeRate     string
	NearbySchools string
	AvgPrice      *float64
	PropertyCount int64
}

type NeighborhoodRepository interface {
	ListWithStats(ctx context.Context) ([]NeighborhoodRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Neighborhood, error)
}

type neighborhoodRepository struct {
	db *gorm.DB
}

func NewNeighborhoodRepository(db *gorm.DB) NeighborhoodRepository {
	return &neighborhoodRepository{db: db}
}

func (r *neighborhoodRepository) ListWithStats(ctx context.Context) ([]NeighborhoodRecord, error) {
	var records []NeighborhoodRecord
	err := r.db.WithContext(ctx).Model(&db_models.Neighborhood{}).
		Select(`neighborhoods.id, neighborhoods.location, neighborhoods.description,
			neighborhoods.crime_rate, neighborhoods.nearby_schools,
			ROUND(AVG(properties.price)::numeric, 2) AS avg_price,
			COUNT(properties.id) AS property_count`).
		Joins(`LEFT JOIN properties ON properties.neighborhood_id = neighborhoods.id
			AND properties.available = TRUE AND properties.deleted_at IS NULL`).
		Group("neighborhoods.id").
		Order("neighborhoods.location").
		Scan(&records).Error
	return records, err
}

func (r *neighborhoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Neighborhood, error) {
	var n db_models.Neighborhood
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}
