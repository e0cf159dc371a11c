package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homestead/internal/models/request_models"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type RewardController struct {
	loyaltyService services.LoyaltyServiceInterface
}

func NewRewardController(loyaltyService services.LoyaltyServiceInterface) *RewardController {
	return &RewardController{
		loyaltyService: loyaltyService,
	}
}

// ListPrograms godoc
// @Summary List reward programs
// @Tags Rewards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards [get]
func (r *RewardController) ListPrograms(c *gin.Context) {
	results, err := r.loyaltyService.ListPrograms(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Reward programs fetched successfully")
}

// MyProgram godoc
// @Summary Own enrollment
// @Tags Rewards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards/my-reward [get]
func (r *RewardController) MyProgram(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := r.loyaltyService.MyProgram(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Reward program fetched successfully")
}

// MyPoints godoc
// @Summary Earned and used points
// @Description Both counters are derived on read: earned from booking count, used from redemption rows
// @Tags Rewards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards/my-points [get]
func (r *RewardController) MyPoints(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := r.loyaltyService.MyPoints(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Points fetched successfully")
}

// Join godoc
// @Summary Join a reward program
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.JoinProgramRequest true "Join payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards/join [post]
func (r *RewardController) Join(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.JoinProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Reward program ID is required")
		return
	}

	if err := r.loyaltyService.Join(c.Request.Context(), auth, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Successfully joined reward program")
}

// Redeem godoc
// @Summary Redeem points
// @Description Log a redemption against a property and return the informational discount
// @Tags Rewards
// @Accept json
// @Produce json
// @Param request body request_models.RedeemPointsRequest true "Redeem payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards/redeem [post]
func (r *RewardController) Redeem(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := r.loyaltyService.Redeem(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Points redeemed successfully")
}

// Leave godoc
// @Summary Leave the reward program
// @Tags Rewards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /rewards/leave [delete]
func (r *RewardController) Leave(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := r.loyaltyService.Leave(c.Request.Context(), auth); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left reward program")
}
