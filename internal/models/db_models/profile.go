package db_models

import "github.com/google/uuid"

type Address struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Street string
	City   string
	Zip    string
}

type Card struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;index"`
	Number           string
	ExpiryMonth      int
	ExpiryYear       int
	CVV              string
	BillingAddressID uuid.UUID `gorm:"type:uuid;index"`

	BillingAddress Address `gorm:"foreignKey:BillingAddressID"`
}
