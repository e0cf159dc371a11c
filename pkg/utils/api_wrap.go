package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error set onto HTTP statuses.
// Unknown errors are reported as 500 without leaking internals.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrCardNotFound):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrNotEnrolled):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrNeighborhoodNotFound),
		errors.Is(err, ErrProgramNotFound),
		errors.Is(err, ErrEnrollmentNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrAddressNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserAlreadyExists),
		errors.Is(err, ErrAlreadyEnrolled),
		errors.Is(err, ErrAddressInUse),
		errors.Is(err, ErrBookingCancelled):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
