package db_models

import "github.com/google/uuid"

const (
	PropertyTypeHouse      = "House"
	PropertyTypeApartment  = "Apartment"
	PropertyTypeCommercial = "Commercial"
	PropertyTypeVacation   = "Vacation"
	PropertyTypeLand       = "Land"

	ListingTypeRent = "rent"
	ListingTypeSale = "sale"
)

// Property is the base row of the polymorphic listing. Exactly one subtype
// row (House, Apartment, Commercial, Vacation or Land) exists per property,
// selected by Type.
type Property struct {
	BaseModel
	Type           string `gorm:"size:20;index"`
	Description    string `gorm:"type:text"`
	Price          float64
	Available      bool   `gorm:"default:true"`
	City           string `gorm:"index"`
	State          string
	ImageURL       string
	ListingType    string     `gorm:"size:10;index"`
	NeighborhoodID *uuid.UUID `gorm:"type:uuid;index"`

	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID"`
}

type House struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Sqft       float64
	Rooms      int
}

type Apartment struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Sqft       float64
	Rooms      int
}

type Commercial struct {
	BaseModel
	PropertyID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Sqft         float64
	BusinessType string
}

type Vacation struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Sqft       float64
	Rooms      int
}

type Land struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Area       float64
}

// AgentProperty links an Agent to the properties they manage.
type AgentProperty struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index:idx_agent_property,unique"`
	PropertyID uuid.UUID `gorm:"type:uuid;index:idx_agent_property,unique"`
}
