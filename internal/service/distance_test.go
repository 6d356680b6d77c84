package service

import (
	"math"
	"testing"

	"flysolo/internal/domain"
)

func planetAt(id, systemID string, coord, center domain.Coordinate) *domain.PlanetWithSystem {
	return &domain.PlanetWithSystem{
		Planet: domain.Planet{
			ID:            id,
			Name:          id,
			SolarSystemID: systemID,
			Coordinate:    coord,
		},
		SolarSystem: domain.SolarSystem{
			ID:     systemID,
			Name:   systemID,
			Center: center,
		},
	}
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     domain.Coordinate
		expected float64
	}{
		{
			name:     "same point",
			a:        domain.Coordinate{X: 3, Y: -4, Z: 5},
			b:        domain.Coordinate{X: 3, Y: -4, Z: 5},
			expected: 0,
		},
		{
			name:     "unit axis",
			a:        domain.Coordinate{},
			b:        domain.Coordinate{X: 1},
			expected: 1,
		},
		{
			name:     "pythagorean triple",
			a:        domain.Coordinate{},
			b:        domain.Coordinate{X: 3, Y: 4},
			expected: 5,
		},
		{
			name:     "3d diagonal",
			a:        domain.Coordinate{X: 1, Y: 2, Z: 3},
			b:        domain.Coordinate{X: 4, Y: 6, Z: 15},
			expected: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EuclideanDistance(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("EuclideanDistance() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestEuclideanDistance_Symmetry(t *testing.T) {
	a := domain.Coordinate{X: 12.5, Y: -7.25, Z: 3}
	b := domain.Coordinate{X: -4, Y: 9, Z: 42.1}

	if EuclideanDistance(a, b) != EuclideanDistance(b, a) {
		t.Error("distance should be symmetric")
	}
}

func TestTripDistance_SameSystemIsDirect(t *testing.T) {
	center := domain.Coordinate{X: 100, Y: 100, Z: 100}
	origin := planetAt("coruscant", "core", domain.Coordinate{X: 10, Y: 5, Z: 2}, center)
	destination := planetAt("alderaan", "core", domain.Coordinate{X: -15, Y: 8, Z: -3}, center)

	direct := EuclideanDistance(origin.Coordinate, destination.Coordinate)
	if got := TripDistance(origin, destination); got != direct {
		t.Errorf("same-system trip distance = %v, expected direct %v", got, direct)
	}
}

func TestTripDistance_CrossSystemRelaysThroughCenters(t *testing.T) {
	origin := planetAt("coruscant", "core",
		domain.Coordinate{X: 10, Y: 5, Z: 2}, domain.Coordinate{})
	destination := planetAt("tatooine", "outer-rim",
		domain.Coordinate{X: 520, Y: 310, Z: 90}, domain.Coordinate{X: 500, Y: 300, Z: 100})

	expected := EuclideanDistance(origin.Coordinate, origin.SolarSystem.Center) +
		EuclideanDistance(origin.SolarSystem.Center, destination.SolarSystem.Center) +
		EuclideanDistance(destination.SolarSystem.Center, destination.Coordinate)

	got := TripDistance(origin, destination)
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("cross-system trip distance = %v, expected %v", got, expected)
	}

	// Relay routing can never beat the straight line.
	direct := EuclideanDistance(origin.Coordinate, destination.Coordinate)
	if got < direct {
		t.Errorf("relay distance %v is shorter than direct %v", got, direct)
	}
}
