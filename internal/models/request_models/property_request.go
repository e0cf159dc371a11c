package request_models

type PropertyRequest struct {
	Type         string  `json:"type" binding:"required,oneof=House Apartment Commercial Vacation Land"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	City         string  `json:"city" binding:"required"`
	State        string  `json:"state"`
	Sqft         float64 `json:"sqft"`
	Rooms        int     `json:"rooms"`
	BusinessType string  `json:"business_type"`
	ImageURL     string  `json:"image_url"`
	ListingType  string  `json:"listing_type" binding:"omitempty,oneof=rent sale"`
	Neighborhood string  `json:"neighborhood_id"`
}

type SearchPropertiesQuery struct {
	City        string   `form:"city"`
	Type        string   `form:"type"`
	ListingType string   `form:"listing_type"`
	Bedrooms    int      `form:"bedrooms"`
	PriceMin    *float64 `form:"price_min"`
	PriceMax    *float64 `form:"price_max"`
}
