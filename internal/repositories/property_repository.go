package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

// PropertyRecord is the flattened read model of a listing: the base row plus
// the attributes resolved from whichever subtype row exists, plus the
// neighborhood info when the property belongs to one.
type PropertyRecord struct {
	ID             uuid.UUID
	Type           string
	Description    string
	Price          float64
	Available      bool
	City           string
	State          string
	ImageURL       string
	ListingType    string
	NeighborhoodID *uuid.UUID

	Rooms        int
	Sqft         float64
	BusinessType *string

	NeighborhoodName *string
	NeighborhoodDesc *string
	CrimeRate        *string
	NearbySchools    *string
}

type PropertyFilter struct {
	City        string
	Type        string
	ListingType string
	MinBedrooms int
	MinPrice    *float64
	MaxPrice    *float64
}

type PropertyRepository interface {
	// CreateWithSubtype writes the base row, its subtype row and the
	// agent management link in one transaction.
	CreateWithSubtype(ctx context.Context, p *db_models.Property, subtype func(propertyID uuid.UUID) interface{}, agentID uuid.UUID) error
	// UpdateWithSubtype saves the base row and replaces the subtype row.
	UpdateWithSubtype(ctx context.Context, p *db_models.Property, subtype func(propertyID uuid.UUID) interface{}) error
	DeleteWithSubtype(ctx context.Context, propertyID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Property, error)
	FindRecordByID(ctx context.Context, id uuid.UUID) (*PropertyRecord, error)
	Manages(ctx context.Context, agentID, propertyID uuid.UUID) (bool, error)
	Search(ctx context.Context, filter PropertyFilter) ([]PropertyRecord, error)
	ListByAgent(ctx context.Context, agentID uuid.UUID) ([]PropertyRecord, error)
	ListByNeighborhood(ctx context.Context, neighborhoodID uuid.UUID) ([]PropertyRecord, error)
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// recordQuery joins every subtype table so one pass resolves the attributes
// of any property type, mirroring the COALESCE columns of the read model.
func (r *propertyRepository) recordQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&db_models.Property{}).
		Select(`properties.id, properties.type, properties.description, properties.price,
			properties.available, properties.city, properties.state, properties.image_url,
			properties.listing_type, properties.neighborhood_id,
			COALESCE(houses.rooms, apartments.rooms, vacations.rooms, 0) AS rooms,
			COALESCE(houses.sqft, apartments.sqft, commercials.sqft, vacations.sqft, lands.area, 0) AS sqft,
			commercials.business_type AS business_type,
			neighborhoods.location AS neighborhood_name,
			neighborhoods.description AS neighborhood_desc,
			neighborhoods.crime_rate AS crime_rate,
			neighborhoods.nearby_schools AS nearby_schools`).
		Joins("LEFT JOIN houses ON houses.property_id = properties.id").
		Joins("LEFT JOIN apartments ON apartments.property_id = properties.id").
		Joins("LEFT JOIN commercials ON commercials.property_id = properties.id").
		Joins("LEFT JOIN vacations ON vacations.property_id = properties.id").
		Joins("LEFT JOIN lands ON lands.property_id = properties.id").
		Joins("LEFT JOIN neighborhoods ON neighborhoods.id = properties.neighborhood_id")
}

func (r *propertyRepository) CreateWithSubtype(ctx context.Context, p *db_models.Property, subtype func(propertyID uuid.UUID) interface{}, agentID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if row := subtype(p.ID); row != nil {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		link := &db_models.AgentProperty{UserID: agentID, PropertyID: p.ID}
		return tx.Create(link).Error
	})
}

func (r *propertyRepository) UpdateWithSubtype(ctx context.Context, p *db_models.Property, subtype func(propertyID uuid.UUID) interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if err := deleteSubtypeRows(tx, p.ID); err != nil {
			return err
		}
		if row := subtype(p.ID); row != nil {
			return tx.Create(row).Error
		}
		return nil
	})
}

func (r *propertyRepository) DeleteWithSubtype(ctx context.Context, propertyID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteSubtypeRows(tx, propertyID); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("property_id = ?", propertyID).Delete(&db_models.AgentProperty{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Property{}, "id = ?", propertyID).Error
	})
}

// Subtype rows carry a unique index on property_id, so replacement has to
// remove the old row for real rather than soft-delete it.
func deleteSubtypeRows(tx *gorm.DB, propertyID uuid.UUID) error {
	for _, model := range []interface{}{
		&db_models.House{}, &db_models.Apartment{}, &db_models.Commercial{},
		&db_models.Vacation{}, &db_models.Land{},
	} {
		if err := tx.Unscoped().Where("property_id = ?", propertyID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Property, error) {
	var p db_models.Property
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) FindRecordByID(ctx context.Context, id uuid.UUID) (*PropertyRecord, error) {
	var records []PropertyRecord
	err := r.recordQuery(ctx).Where("properties.id = ?", id).Limit(1).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *propertyRepository) Manages(ctx context.Context, agentID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.AgentProperty{}).
		Where("user_id = ? AND property_id = ?", agentID, propertyID).
		Count(&count).Error
	return count > 0, err
}

func (r *propertyRepository) Search(ctx context.Context, filter PropertyFilter) ([]PropertyRecord, error) {
	q := r.recordQuery(ctx).Where("properties.available = ?", true)

	if filter.City != "" {
		q = q.Where("properties.city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Type != "" {
		q = q.Where("properties.type = ?", filter.Type)
	}
	if filter.ListingType != "" {
		q = q.Where("properties.listing_type = ?", filter.ListingType)
	}
	if filter.MinPrice != nil {
		q = q.Where("properties.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("properties.price <= ?", *filter.MaxPrice)
	}
	if filter.MinBedrooms > 0 {
		q = q.Where("COALESCE(houses.rooms, apartments.rooms, vacations.rooms, 0) >= ?", filter.MinBedrooms)
	}

	var records []PropertyRecord
	err := q.Order("properties.price ASC").Scan(&records).Error
	return records, err
}

func (r *propertyRepository) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]PropertyRecord, error) {
	var records []PropertyRecord
	err := r.recordQuery(ctx).
		Joins("JOIN agent_properties ON agent_properties.property_id = properties.id").
		Where("agent_properties.user_id = ?", agentID).
		Order("properties.price ASC").
		Scan(&records).Error
	return records, err
}

func (r *propertyRepository) ListByNeighborhood(ctx context.Context, neighborhoodID uuid.UUID) ([]PropertyRecord, error) {
	var records []PropertyRecord
	err := r.recordQuery(ctx).
		Where("properties.neighborhood_id = ? AND properties.available = ?", neighborhoodID, true).
		Order("properties.price ASC").
		Scan(&records).Error
	return records, err
}
