package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"homestead/internal/models/request_models"
	"homestead/internal/services"
	"homestead/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// Create godoc
// @Summary Create a booking
// @Description Price the stay, verify the card, apply the point discount and reserve
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/create [post]
func (b *BookingController) Create(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := b.bookingService.Create(c.Request.Context(), auth, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Booking created successfully")
}

// MyBookings godoc
// @Summary Own bookings
// @Description The caller's bookings with property and card info, most recent first
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/my-bookings [get]
func (b *BookingController) MyBookings(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	results, err := b.bookingService.MyBookings(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Bookings fetched successfully")
}

// AgentBookings godoc
// @Summary Bookings on managed properties
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/agent-bookings [get]
func (b *BookingController) AgentBookings(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	results, err := b.bookingService.AgentBookings(c.Request.Context(), auth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Bookings fetched successfully")
}

// Cancel godoc
// @Summary Cancel a booking
// @Description Refund spent points when present and mark the booking cancelled
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (b *BookingController) Cancel(c *gin.Context) {
	auth, err := utils.CurrentUser(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := b.bookingService.Cancel(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, result.Message)
}
