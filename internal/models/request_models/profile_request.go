package request_models

type AddAddressRequest struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
}

type AddCardRequest struct {
	CardNumber       string `json:"card_number" binding:"required,min=12,max=19"`
	ExpiryMonth      int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear       int    `json:"expiry_year" binding:"required"`
	CVV              string `json:"cvv" binding:"required,min=3,max=4"`
	BillingAddressID string `json:"billing_address_id" binding:"required"`
}
