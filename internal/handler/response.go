package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"flysolo/internal/repository"
	"flysolo/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status
// code. Unexpected errors are logged and reported as a generic 500 so
// internals never leak to the client.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		c.JSON(code, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Missing entities
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation and assignment-state errors - Bad Request
	case errors.Is(err, service.ErrInvalidPlanet),
		errors.Is(err, service.ErrInvalidTripType),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidFaction),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidPassengerCount),
		errors.Is(err, service.ErrInvalidCargoWeight),
		errors.Is(err, service.ErrTripAlreadyAssigned),
		errors.Is(err, service.ErrTripNotAvailable):
		return http.StatusBadRequest

	// Authentication
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization and faction denial
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrFactionDenied),
		errors.Is(err, service.ErrNotPilot):
		return http.StatusForbidden

	// Conflicts
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
