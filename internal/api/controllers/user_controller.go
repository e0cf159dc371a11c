package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homestead/internal/models/request_models"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type UserController struct {
	profileService services.ProfileServiceInterface
}

func NewUserController(profileService services.ProfileServiceInterface) *UserController {
	return &UserController{
		profileService: profileService,
	}
}

// Profile godoc
// @Summary Own profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (u *UserController) Profile(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := u.profileService.GetProfile(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Profile fetched successfully")
}

// AddAddress godoc
// @Summary Add an address
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.AddAddressRequest true "Address payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/address [post]
func (u *UserController) AddAddress(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.profileService.AddAddress(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Address added successfully")
}

// ListAddresses godoc
// @Summary Own addresses
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/addresses [get]
func (u *UserController) ListAddresses(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	results, err := u.profileService.ListAddresses(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Addresses fetched successfully")
}

// DeleteAddress godoc
// @Summary Delete an address
// @Description Fails while any card uses the address for billing
// @Tags Users
// @Produce json
// @Param id path string true "Address id"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/address/{id} [delete]
func (u *UserController) DeleteAddress(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := u.profileService.DeleteAddress(c.Request.Context(), auth, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Address deleted")
}

// AddCard godoc
// @Summary Add a payment card
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.AddCardRequest true "Card payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/card [post]
func (u *UserController) AddCard(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := u.profileService.AddCard(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Card added successfully")
}

// ListCards godoc
// @Summary Own cards
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/cards [get]
func (u *UserController) ListCards(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	results, err := u.profileService.ListCards(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Cards fetched successfully")
}

// DeleteCard godoc
// @Summary Delete a card
// @Tags Users
// @Produce json
// @Param id path string true "Card id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/card/{id} [delete]
func (u *UserController) DeleteCard(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := u.profileService.DeleteCard(c.Request.Context(), auth, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Card deleted")
}
