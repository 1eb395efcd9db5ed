package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

// HandleServiceError maps service sentinels onto HTTP statuses with a
// user-facing message; anything unrecognized becomes a generic 500.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrNotOwner):
		RespondError(c, http.StatusForbidden, "You do not own this resource")
	case errors.Is(err, ErrDuplicateCoupon):
		RespondError(c, http.StatusConflict, "A coupon with this code already exists")
	case errors.Is(err, ErrDuplicateFavorite):
		RespondError(c, http.StatusConflict, "Listing is already in your favorites")
	case errors.Is(err, ErrInvalidPercent):
		RespondError(c, http.StatusBadRequest, "Discount percent must be between 1 and 100")
	case errors.Is(err, ErrInvalidUsageLimit):
		RespondError(c, http.StatusBadRequest, "Usage limit cannot be below the used count")
	case errors.Is(err, ErrListingNotEligible):
		RespondError(c, http.StatusUnprocessableEntity, "Listing is not publicly visible")
	case errors.Is(err, ErrCheckoutFailed):
		RespondError(c, http.StatusBadGateway, "Could not generate checkout link")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrDatabaseError):
		logger.Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
