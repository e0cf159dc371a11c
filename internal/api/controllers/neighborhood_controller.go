package controllers

import (
	"github.com/gin-gonic/gin"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type NeighborhoodController struct {
	neighborhoodService services.NeighborhoodServiceInterface
}

func NewNeighborhoodController(neighborhoodService services.NeighborhoodServiceInterface) *NeighborhoodController {
	return &NeighborhoodController{
		neighborhoodService: neighborhoodService,
	}
}

// List godoc
// @Summary List neighborhoods
// @Description Every neighborhood with average price and count over available properties
// @Tags Neighborhoods
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /neighborhoods [get]
func (n *NeighborhoodController) List(c *gin.Context) {
	results, err := n.neighborhoodService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Neighborhoods fetched successfully")
}

// Get godoc
// @Summary Neighborhood detail
// @Description One neighborhood with its available properties, price ascending
// @Tags Neighborhoods
// @Produce json
// @Param id path string true "Neighborhood id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /neighborhoods/{id} [get]
func (n *NeighborhoodController) Get(c *gin.Context) {
	result, err := n.neighborhoodService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Neighborhood fetched successfully")
}
