package response_models

type PropertyResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
	City        string  `json:"city"`
	State       string  `json:"state,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	ListingType string  `json:"listing_type"`

	// Resolved subtype attributes
	Rooms        int     `json:"number_of_rooms"`
	Sqft         float64 `json:"sqft"`
	BusinessType string  `json:"business_type,omitempty"`

	NeighborhoodName string `json:"neighborhood_name,omitempty"`
	NeighborhoodDesc string `json:"neighborhood_desc,omitempty"`
	CrimeRate        string `json:"crime_rate,omitempty"`
	NearbySchools    string `json:"nearby_schools,omitempty"`
}
