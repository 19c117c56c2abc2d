package helpers

import (
	"errors"
	"net/http"

	"farmer-market/internal/marketerrors"
	"farmer-market/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, err, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrLotNotFound):
		return http.StatusNotFound, "lot not found"
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrNoHistoricalData):
		return http.StatusNotFound, "No historical data available for this crop and district."
	case errors.Is(err, marketerrors.ErrNoBids):
		return http.StatusNotFound, "No bids on this lot yet."
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, marketerrors.ErrLotNotOpen):
		return http.StatusConflict, "lot is not open for bidding"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount below minimum price"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
