package service

import "errors"

var (
	// ErrInvalidPlanet is returned when an origin or destination planet id
	// does not resolve.
	ErrInvalidPlanet = errors.New("invalid planet reference")

	// ErrInvalidTripType is returned when the trip type is not PASSENGER or CARGO.
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrInvalidTripID is returned when the trip id is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidStatus is returned when the requested status is not a known value.
	ErrInvalidStatus = errors.New("invalid trip status")

	// ErrInvalidFaction is returned when the faction value is not recognized.
	ErrInvalidFaction = errors.New("invalid faction")

	// ErrInvalidRole is returned when a registration requests a role other
	// than USER or PILOT.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidPassengerCount is returned when a passenger trip has a
	// non-positive passenger count.
	ErrInvalidPassengerCount = errors.New("passenger count must be positive")

	// ErrInvalidCargoWeight is returned when a cargo trip has a non-positive
	// cargo weight.
	ErrInvalidCargoWeight = errors.New("cargo weight must be positive")

	// ErrTripAlreadyAssigned is returned when the trip already has a pilot.
	ErrTripAlreadyAssigned = errors.New("trip already assigned to a pilot")

	// ErrTripNotAvailable is returned when the trip is not PENDING.
	ErrTripNotAvailable = errors.New("trip is not available for assignment")

	// ErrFactionDenied is returned when a pilot of an opposing faction tries
	// to take a non-covert trip.
	ErrFactionDenied = errors.New("cannot take trips from opposing factions")

	// ErrNotPilot is returned when a non-pilot tries to accept a trip.
	ErrNotPilot = errors.New("only pilots can accept trips")

	// ErrForbidden is returned when the actor has no access to the trip.
	ErrForbidden = errors.New("not authorized for this trip")

	// ErrInvalidTransition is returned for a status change the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
