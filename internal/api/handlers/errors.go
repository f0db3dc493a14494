package handlers

import (
	"errors"
	"net/http"

	apperrors "safety-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusFor maps a service error onto an HTTP status code
func statusFor(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), errors.Is(err, apperrors.ErrPeriodInUse):
		return http.StatusConflict
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDateRange),
		errors.Is(err, apperrors.ErrPeriodOverlap),
		errors.Is(err, apperrors.ErrInvalidBalance),
		errors.Is(err, apperrors.ErrNegativeCount):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err), apperrors.IsAuthorization(err):
		return http.StatusUnauthorized
	case apperrors.IsUnreadableWorkbook(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status it maps to. Internal errors are
// recorded on the context for the request logger and not echoed to the client.
func respondError(c *gin.Context, err error, internalMessage string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: internalMessage})
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
	}
	c.JSON(status, resp)
}

// parseID reads a UUID path parameter, answering 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}
