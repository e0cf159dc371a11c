package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RewardProgram is seeded reference data; PointsPerBooking is the accrual
// rate applied to every booking a renter makes.
type RewardProgram struct {
	BaseModel
	Name             string
	PointsPerBooking int
}

// RewardEnrollment links a renter to at most one program.
type RewardEnrollment struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ProgramID uuid.UUID `gorm:"type:uuid;index"`

	Program RewardProgram `gorm:"foreignKey:ProgramID"`
}

// PointRedemption logs a points-spend against a property. The derived "used"
// accounting counts rows, not amounts; Metadata keeps the requested amount
// for audit only.
type PointRedemption struct {
	BaseModel
	EnrollmentID uuid.UUID      `gorm:"type:uuid;index"`
	PropertyID   uuid.UUID      `gorm:"type:uuid;index"`
	Metadata     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
