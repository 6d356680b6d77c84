package domain

// Coordinate is a point in 3D space, in galactic units.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

// SolarSystem groups planets around a shared center point. Interstellar
// trips are routed through system centers.
type SolarSystem struct {
	ID     string
	Name   string
	Center Coordinate
}

// Planet is a bookable origin or destination.
type Planet struct {
	ID            string
	Name          string
	SolarSystemID string
	Coordinate    Coordinate
}

// PlanetWithSystem is a planet joined with its owning solar system,
// as required by the relay-routing distance calculation.
type PlanetWithSystem struct {
	Planet
	SolarSystem SolarSystem
}
