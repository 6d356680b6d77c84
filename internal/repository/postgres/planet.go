package postgres

import (
	"context"
	"database/sql"
	"errors"

	"flysolo/internal/domain"
	"flysolo/internal/repository"
)

// PlanetRepository is a PostgreSQL implementation of repository.PlanetRepository.
type PlanetRepository struct {
	q Querier
}

// NewPlanetRepository creates a new PostgreSQL planet repository.
func NewPlanetRepository(db *sql.DB) *PlanetRepository {
	return &PlanetRepository{q: db}
}

const planetColumns = `p.id, p.name, p.solar_system_id, p.coordinate_x, p.coordinate_y, p.coordinate_z,
		s.id, s.name, s.center_x, s.center_y, s.center_z`

// GetByID retrieves a planet joined with its solar system.
func (r *PlanetRepository) GetByID(ctx context.Context, id string) (*domain.PlanetWithSystem, error) {
	query := `
		SELECT ` + planetColumns + `
		FROM planets p
		JOIN solar_systems s ON s.id = p.solar_system_id
		WHERE p.id = $1
	`

	planet, err := scanPlanet(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return planet, nil
}

// GetAll retrieves the full planet catalog ordered by name.
func (r *PlanetRepository) GetAll(ctx context.Context) ([]*domain.PlanetWithSystem, error) {
	query := `
		SELECT ` + planetColumns + `
		FROM planets p
		JOIN solar_systems s ON s.id = p.solar_system_id
		ORDER BY p.name
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var planets []*domain.PlanetWithSystem
	for rows.Next() {
		planet, err := scanPlanet(rows)
		if err != nil {
			return nil, err
		}
		planets = append(planets, planet)
	}
	return planets, rows.Err()
}

func scanPlanet(row rowScanner) (*domain.PlanetWithSystem, error) {
	var p domain.PlanetWithSystem
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SolarSystemID,
		&p.Coordinate.X,
		&p.Coordinate.Y,
		&p.Coordinate.Z,
		&p.SolarSystem.ID,
		&p.SolarSystem.Name,
		&p.SolarSystem.Center.X,
		&p.SolarSystem.Center.Y,
		&p.SolarSystem.Center.Z,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ repository.PlanetRepository = (*PlanetRepository)(nil)
