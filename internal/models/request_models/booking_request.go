package request_models

type CreateBookingRequest struct {
	PropertyID  string `json:"property_id" binding:"required"`
	RentalStart string `json:"rental_start" binding:"required"`
	RentalEnd   string `json:"rental_end" binding:"required"`
	CardID      string `json:"card_id"`
	UsePoints   bool   `json:"use_points"`
	PointsToUse int    `json:"points_to_use"`
}
