package service

import (
	"time"

	"flysolo/internal/domain"
)

// ApplyStatus advances a trip to the requested status, stamping the
// lifecycle timestamp for the transition. Timestamps are written at most
// once; re-applying the current status is an idempotent no-op and changes
// nothing. The returned bool reports whether the trip actually moved.
//
// ASSIGNED is not reachable here: pilot assignment is its own operation
// with its own guards.
func ApplyStatus(trip *domain.Trip, status domain.TripStatus, now time.Time) (bool, error) {
	if trip.Status == status {
		return false, nil
	}

	switch status {
	case domain.TripStatusInProgress:
		if trip.Status != domain.TripStatusAssigned {
			return false, ErrInvalidTransition
		}
		if trip.StartDate.IsZero() {
			trip.StartDate = now
		}
	case domain.TripStatusCompleted:
		if trip.Status != domain.TripStatusInProgress {
			return false, ErrInvalidTransition
		}
		if trip.CompletedDate.IsZero() {
			trip.CompletedDate = now
		}
	case domain.TripStatusCancelled:
		if trip.Status.Terminal() {
			return false, ErrInvalidTransition
		}
	default:
		// PENDING and ASSIGNED cannot be entered through a status update.
		return false, ErrInvalidTransition
	}

	trip.Status = status
	return true, nil
}
