package request_models

type JoinProgramRequest struct {
	RewardID string `json:"reward_id" binding:"required"`
}

type RedeemPointsRequest struct {
	Points     int    `json:"points" binding:"required,gt=0"`
	PropertyID string `json:"property_id"`
}
