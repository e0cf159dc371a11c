package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homestead/internal/models/request_models"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type AuthController struct {
	identityService services.IdentityServiceInterface
}

func NewAuthController(identityService services.IdentityServiceInterface) *AuthController {
	return &AuthController{
		identityService: identityService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user with its role extension and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.identityService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Account created successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.identityService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Login successful")
}
