package response_models

type BookingResponse struct {
	ID          string  `json:"id"`
	PropertyID  string  `json:"property_id"`
	RentalStart string  `json:"rental_start"`
	RentalEnd   string  `json:"rental_end"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`

	PropertyDescription string  `json:"description,omitempty"`
	PropertyType        string  `json:"type,omitempty"`
	PropertyCity        string  `json:"city,omitempty"`
	PropertyPrice       float64 `json:"price,omitempty"`

	CardNumber string `json:"card_number,omitempty"`

	RenterName  string `json:"renter_name,omitempty"`
	RenterEmail string `json:"renter_email,omitempty"`
}

type CancelBookingResponse struct {
	Message        string `json:"message"`
	PointsRefunded bool   `json:"points_refunded"`
}
