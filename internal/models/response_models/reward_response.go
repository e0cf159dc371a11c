package response_models

type RewardProgramResponse struct {
	ID               string `json:"reward_id"`
	Name             string `json:"name"`
	PointsPerBooking int    `json:"award"`
}

type PointsResponse struct {
	Earned int `json:"earned"`
	Used   int `json:"used"`
}

type RedeemResponse struct {
	Discount float64 `json:"discount"`
}
