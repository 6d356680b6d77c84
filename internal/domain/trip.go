package domain

import "time"

// TripType represents the kind of load a trip carries.
type TripType string

const (
	TripTypePassenger TripType = "PASSENGER"
	TripTypeCargo     TripType = "CARGO"
)

// TripStatus represents the current status of a trip.
type TripStatus string

const (
	TripStatusPending    TripStatus = "PENDING"
	TripStatusAssigned   TripStatus = "ASSIGNED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// Terminal reports whether no further status transitions are possible.
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Trip represents a booked journey between two planets.
//
// Distance, duration and price are computed at creation and never change
// afterwards. PilotID stays empty until a pilot accepts the trip.
type Trip struct {
	ID                  string
	PassengerID         string
	PilotID             string // empty until assigned
	OriginPlanetID      string
	DestinationPlanetID string
	TripType            TripType
	PassengerCount      int
	CargoWeight         float64
	CargoDescription    string
	CalculatedDistance  float64
	EstimatedDuration   int // minutes
	Price               float64
	Status              TripStatus
	Faction             *Faction // nil = neutral trip, open to everyone
	IsCovert            bool
	RequestDate         time.Time
	AssignedDate        time.Time
	StartDate           time.Time
	CompletedDate       time.Time
}
