package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flysolo/internal/domain"
	"flysolo/internal/service"
)

// PlanetHandler handles HTTP requests for the planet catalog.
type PlanetHandler struct {
	tripService *service.TripService
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(tripService *service.TripService) *PlanetHandler {
	return &PlanetHandler{tripService: tripService}
}

// SolarSystemResponse is the HTTP representation of a solar system.
type SolarSystemResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
	CenterZ float64 `json:"centerZ"`
}

// PlanetResponse is the HTTP representation of a planet.
type PlanetResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	CoordinateX float64             `json:"coordinateX"`
	CoordinateY float64             `json:"coordinateY"`
	CoordinateZ float64             `json:"coordinateZ"`
	SolarSystem SolarSystemResponse `json:"solarSystem"`
}

func toPlanetResponse(p *domain.PlanetWithSystem) PlanetResponse {
	return PlanetResponse{
		ID:          p.ID,
		Name:        p.Name,
		CoordinateX: p.Coordinate.X,
		CoordinateY: p.Coordinate.Y,
		CoordinateZ: p.Coordinate.Z,
		SolarSystem: SolarSystemResponse{
			ID:      p.SolarSystem.ID,
			Name:    p.SolarSystem.Name,
			CenterX: p.SolarSystem.Center.X,
			CenterY: p.SolarSystem.Center.Y,
			CenterZ: p.SolarSystem.Center.Z,
		},
	}
}

// GetAll handles GET /planets
func (h *PlanetHandler) GetAll(c *gin.Context) {
	planets, err := h.tripService.ListPlanets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PlanetResponse, 0, len(planets))
	for _, p := range planets {
		response = append(response, toPlanetResponse(p))
	}

	c.JSON(http.StatusOK, response)
}
