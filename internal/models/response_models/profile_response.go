package response_models

type AddressResponse struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type CardResponse struct {
	ID               string `json:"id"`
	Number           string `json:"card_number"`
	ExpiryMonth      int    `json:"expiry_month"`
	ExpiryYear       int    `json:"expiry_year"`
	BillingAddressID string `json:"billing_address_id"`
}
