package response_models

type NeighborhoodSummary struct {
	ID            string   `json:"id"`
	Location      string   `json:"location"`
	Description   string   `json:"description,omitempty"`
	CrimeRate     string   `json:"crime_rate,omitempty"`
	NearbySchools string   `json:"nearby_schools,omitempty"`
	AvgPrice      *float64 `json:"avg_price"`
	PropertyCount int64    `json:"property_count"`
}

type NeighborhoodDetail struct {
	Neighborhood NeighborhoodSummary `json:"neighborhood"`
	Properties   []PropertyResponse  `json:"properties"`
}
