package repository

import (
	"context"
	"time"

	"flysolo/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all trips, newest first.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// GetAvailable retrieves PENDING trips with no pilot, newest first.
	GetAvailable(ctx context.Context) ([]*domain.Trip, error)

	// GetByParticipant retrieves trips where the user is the passenger or
	// the assigned pilot, newest first.
	GetByParticipant(ctx context.Context, userID string) ([]*domain.Trip, error)

	// Assign sets the pilot and moves the trip to ASSIGNED in a single
	// conditional write. It succeeds only while the trip is still PENDING
	// and unassigned; the bool result reports whether the write won.
	Assign(ctx context.Context, tripID, pilotID string, at time.Time) (bool, error)

	// UpdateStatus persists a status change and its lifecycle timestamps.
	// Timestamps already present in the store are never overwritten.
	UpdateStatus(ctx context.Context, trip *domain.Trip) error
}
