package service

import (
	"math"

	"flysolo/internal/domain"
)

// EuclideanDistance returns the straight-line distance between two points
// in 3D space.
func EuclideanDistance(a, b domain.Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TripDistance returns the travel distance between two planets.
//
// Planets in the same solar system are connected directly. Interstellar
// trips must relay through both system centers, so the distance is the sum
// of three legs: planet to own center, center to center, center to planet.
func TripDistance(origin, destination *domain.PlanetWithSystem) float64 {
	if origin.SolarSystemID == destination.SolarSystemID {
		return EuclideanDistance(origin.Coordinate, destination.Coordinate)
	}

	toOriginCenter := EuclideanDistance(origin.Coordinate, origin.SolarSystem.Center)
	betweenCenters := EuclideanDistance(origin.SolarSystem.Center, destination.SolarSystem.Center)
	fromDestinationCenter := EuclideanDistance(destination.SolarSystem.Center, destination.Coordinate)

	return toOriginCenter + betweenCenters + fromDestinationCenter
}
