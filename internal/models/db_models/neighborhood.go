package db_models

// Neighborhood is descriptive reference data; search and booking flows read
// it but never mutate it.
type Neighborhood struct {
	BaseModel
	Location      string `gorm:"index"`
	Description   string `gorm:"type:text"`
	CrimeRate     string
	NearbySchools string `gorm:"type:text"`

	Properties []Property
}
