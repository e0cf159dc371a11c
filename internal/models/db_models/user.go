package db_models

import "github.com/google/uuid"

const (
	RoleAgent  = "Agent"
	RoleRenter = "Renter"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	Role         string `gorm:"size:10;index"`
	PasswordHash string

	Addresses []Address
	Cards     []Card
	Bookings  []Booking
}

// AgentProfile is the role extension row created alongside an Agent user.
type AgentProfile struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LicenseNumber string
	Agency        string
}

// RenterProfile is the role extension row created alongside a Renter user.
type RenterProfile struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Occupation    string
	MonthlyIncome float64
}
