package repository

import (
	"context"

	"flysolo/internal/domain"
)

// PlanetRepository defines read access to the planet catalog. Planets are
// always loaded joined with their solar system, since trip distance needs
// the system center.
type PlanetRepository interface {
	// GetByID retrieves a planet with its solar system.
	GetByID(ctx context.Context, id string) (*domain.PlanetWithSystem, error)

	// GetAll retrieves the full planet catalog.
	GetAll(ctx context.Context) ([]*domain.PlanetWithSystem, error)
}
