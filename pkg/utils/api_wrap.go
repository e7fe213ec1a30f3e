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

func traceIDFrom(c *gin.Context) string {
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
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service sentinels to HTTP responses. Messages are
// the predetermined sentinel strings; anything unrecognized is logged and
// rendered as a generic 500 so internal errors never leak to the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAdminOnly):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrSubscriptionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMissingRequiredFields),
		errors.Is(err, ErrPhoneDigitsOnly),
		errors.Is(err, ErrUnknownMealPlan),
		errors.Is(err, ErrUnknownMealType),
		errors.Is(err, ErrUnknownDeliveryDay),
		errors.Is(err, ErrPriceMismatch),
		errors.Is(err, ErrInvalidPauseRange),
		errors.Is(err, ErrMissingProfileName),
		errors.Is(err, ErrEmptyReviewMessage),
		errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSubscriptionCancelled),
		errors.Is(err, ErrSubscriptionNotPaused),
		errors.Is(err, ErrSubscriptionNotActive):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
