package handlers

import (
	"errors"
	"net/http"

	"chill_timer/internal/cooling"
	"chill_timer/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errUnauthorized    = "unauthorized"
	errInternal        = "internal error"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps service and domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPresetNotFound),
		errors.Is(err, service.ErrTimerNotFound),
		errors.Is(err, service.ErrDrinkNotFound),
		errors.Is(err, service.ErrAmbienceNotFound):
		return http.StatusNotFound
	case errors.Is(err, cooling.ErrUnreachableTarget):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidTemperature),
		errors.Is(err, cooling.ErrNegativeElapsed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Client errors echo the message,
// server errors are logged and hidden.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.logAndJSONError(c, code, errInternal, logKey, err, kv...)
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

// mustUserID reads the caller id or aborts with 401.
func (h *Handler) mustUserID(c *gin.Context) (int, bool) {
	id, ok := userID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
	}
	return id, ok
}
