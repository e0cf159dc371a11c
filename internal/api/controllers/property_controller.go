package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homestead/internal/models/request_models"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type PropertyController struct {
	catalogService services.CatalogServiceInterface
}

func NewPropertyController(catalogService services.CatalogServiceInterface) *PropertyController {
	return &PropertyController{
		catalogService: catalogService,
	}
}

// Search godoc
// @Summary Search properties
// @Description Filtered listing of available properties, price ascending
// @Tags Properties
// @Produce json
// @Param city query string false "City substring"
// @Param type query string false "Property type"
// @Param listing_type query string false "rent or sale"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Success 200 {object} utils.APIResponse
// @Router /properties/search [get]
func (p *PropertyController) Search(c *gin.Context) {
	var query request_models.SearchPropertiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	results, err := p.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Properties fetched successfully")
}

// AgentProperties godoc
// @Summary List own listings
// @Description Every property the calling agent manages, any availability
// @Tags Properties
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /properties/agent-properties [get]
func (p *PropertyController) AgentProperties(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	results, err := p.catalogService.ListForAgent(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Properties fetched successfully")
}

// Create godoc
// @Summary Create a listing
// @Description Write the base property, its subtype record and the management link
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body request_models.PropertyRequest true "Property payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /properties/create [post]
func (p *PropertyController) Create(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.catalogService.CreateProperty(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Property created successfully")
}

// Update godoc
// @Summary Update a listing
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property id"
// @Param request body request_models.PropertyRequest true "Property payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /properties/{id} [put]
func (p *PropertyController) Update(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.catalogService.UpdateProperty(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Property updated")
}

// Delete godoc
// @Summary Delete a listing
// @Tags Properties
// @Produce json
// @Param id path string true "Property id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /properties/{id} [delete]
func (p *PropertyController) Delete(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := p.catalogService.DeleteProperty(c.Request.Context(), auth, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Property deleted")
}
