package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flysolo/internal/domain"
	"flysolo/internal/middleware"
	"flysolo/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest is the HTTP request body for booking a trip.
type CreateTripRequest struct {
	OriginPlanetID      string  `json:"originPlanetId"`
	DestinationPlanetID string  `json:"destinationPlanetId"`
	TripType            string  `json:"tripType"`
	PassengerCount      int     `json:"passengerCount,omitempty"`
	CargoWeight         float64 `json:"cargoWeight,omitempty"`
	CargoDescription    string  `json:"cargoDescription,omitempty"`
	Faction             string  `json:"faction,omitempty"`
	IsCovert            bool    `json:"isCovert,omitempty"`
}

// UpdateStatusRequest is the HTTP request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TripResponse is the HTTP representation of a trip.
type TripResponse struct {
	ID                  string  `json:"id"`
	PassengerID         string  `json:"passengerId"`
	PilotID             string  `json:"pilotId,omitempty"`
	OriginPlanetID      string  `json:"originPlanetId"`
	DestinationPlanetID string  `json:"destinationPlanetId"`
	TripType            string  `json:"tripType"`
	PassengerCount      int     `json:"passengerCount,omitempty"`
	CargoWeight         float64 `json:"cargoWeight,omitempty"`
	CargoDescription    string  `json:"cargoDescription,omitempty"`
	CalculatedDistance  float64 `json:"calculatedDistance"`
	EstimatedDuration   int     `json:"estimatedDuration"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
	Faction             string  `json:"faction,omitempty"`
	IsCovert            bool    `json:"isCovert"`
	RequestDate         string  `json:"requestDate"`
	AssignedDate        string  `json:"assignedDate,omitempty"`
	StartDate           string  `json:"startDate,omitempty"`
	CompletedDate       string  `json:"completedDate,omitempty"`
}

func toTripResponse(trip *domain.Trip) TripResponse {
	resp := TripResponse{
		ID:                  trip.ID,
		PassengerID:         trip.PassengerID,
		PilotID:             trip.PilotID,
		OriginPlanetID:      trip.OriginPlanetID,
		DestinationPlanetID: trip.DestinationPlanetID,
		TripType:            string(trip.TripType),
		PassengerCount:      trip.PassengerCount,
		CargoWeight:         trip.CargoWeight,
		CargoDescription:    trip.CargoDescription,
		CalculatedDistance:  trip.CalculatedDistance,
		EstimatedDuration:   trip.EstimatedDuration,
		Price:               trip.Price,
		Status:              string(trip.Status),
		IsCovert:            trip.IsCovert,
		RequestDate:         trip.RequestDate.Format(time.RFC3339),
	}
	if trip.Faction != nil {
		resp.Faction = string(*trip.Faction)
	}
	if !trip.AssignedDate.IsZero() {
		resp.AssignedDate = trip.AssignedDate.Format(time.RFC3339)
	}
	if !trip.StartDate.IsZero() {
		resp.StartDate = trip.StartDate.Format(time.RFC3339)
	}
	if !trip.CompletedDate.IsZero() {
		resp.CompletedDate = trip.CompletedDate.Format(time.RFC3339)
	}
	return resp
}

func toTripResponses(trips []*domain.Trip) []TripResponse {
	responses := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, toTripResponse(trip))
	}
	return responses
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var faction *domain.Faction
	if req.Faction != "" {
		parsed, ok := domain.ParseFaction(req.Faction)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: service.ErrInvalidFaction.Error()})
			return
		}
		faction = parsed
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), actor, service.CreateTripRequest{
		OriginPlanetID:      req.OriginPlanetID,
		DestinationPlanetID: req.DestinationPlanetID,
		TripType:            domain.TripType(req.TripType),
		PassengerCount:      req.PassengerCount,
		CargoWeight:         req.CargoWeight,
		CargoDescription:    req.CargoDescription,
		Faction:             faction,
		IsCovert:            req.IsCovert,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTripResponse(trip))
}

// GetAll handles GET /trips
func (h *TripHandler) GetAll(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	trips, err := h.tripService.ListTrips(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponses(trips))
}

// GetAvailable handles GET /trips/available
func (h *TripHandler) GetAvailable(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	trips, err := h.tripService.ListAvailableTrips(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponses(trips))
}

// GetMyTrips handles GET /trips/my-trips
func (h *TripHandler) GetMyTrips(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	trips, err := h.tripService.ListUserTrips(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponses(trips))
}

// GetTrip handles GET /trips/:id
func (h *TripHandler) GetTrip(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponse(trip))
}

// AssignPilot handles POST /trips/:id/assign
func (h *TripHandler) AssignPilot(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	trip, err := h.tripService.AssignPilot(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponse(trip))
}

// UpdateStatus handles PATCH /trips/:id/status
func (h *TripHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status is required"})
		return
	}

	trip, err := h.tripService.UpdateStatus(c.Request.Context(), actor, c.Param("id"), domain.TripStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTripResponse(trip))
}
