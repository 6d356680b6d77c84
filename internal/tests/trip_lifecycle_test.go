package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"flysolo/internal/domain"
	"flysolo/internal/service"
)

func assignedTrip(id, passengerID, pilotID string) *domain.Trip {
	return &domain.Trip{
		ID:           id,
		PassengerID:  passengerID,
		PilotID:      pilotID,
		Status:       domain.TripStatusAssigned,
		RequestDate:  time.Now().Add(-time.Hour),
		AssignedDate: time.Now().Add(-30 * time.Minute),
	}
}

// ──────────────────────────────────────────────
// TRIP LIFECYCLE
// ──────────────────────────────────────────────

func TestUpdateStatus_PilotStartsTrip(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(assignedTrip("trip-1", "luke", "han"))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	trip, err := tripService.UpdateStatus(context.Background(), pilotActor("han", nil), "trip-1", domain.TripStatusInProgress)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if trip.Status != domain.TripStatusInProgress {
		t.Errorf("expected status %s, got %s", domain.TripStatusInProgress, trip.Status)
	}
	if trip.StartDate.IsZero() {
		t.Error("expected start date to be set")
	}

	stored := tripRepo.GetTrip("trip-1")
	if stored.Status != domain.TripStatusInProgress || stored.StartDate.IsZero() {
		t.Error("expected transition persisted with start date")
	}
}

func TestUpdateStatus_CompleteSetsCompletedDate(t *testing.T) {
	t.Parallel()

	trip := assignedTrip("trip-1", "luke", "han")
	trip.Status = domain.TripStatusInProgress
	trip.StartDate = time.Now().Add(-10 * time.Minute)

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(trip)
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	updated, err := tripService.UpdateStatus(context.Background(), pilotActor("han", nil), "trip-1", domain.TripStatusCompleted)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if updated.Status != domain.TripStatusCompleted {
		t.Errorf("expected status %s, got %s", domain.TripStatusCompleted, updated.Status)
	}
	if updated.CompletedDate.IsZero() {
		t.Error("expected completed date to be set")
	}
}

func TestUpdateStatus_SameStatusIsIdempotent(t *testing.T) {
	t.Parallel()

	completedAt := time.Now().Add(-5 * time.Minute)
	trip := assignedTrip("trip-1", "luke", "han")
	trip.Status = domain.TripStatusCompleted
	trip.StartDate = completedAt.Add(-20 * time.Minute)
	trip.CompletedDate = completedAt

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(trip)
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	updated, err := tripService.UpdateStatus(context.Background(), pilotActor("han", nil), "trip-1", domain.TripStatusCompleted)
	if err != nil {
		t.Fatalf("re-applying the current status must succeed, got: %v", err)
	}
	if !updated.CompletedDate.Equal(completedAt) {
		t.Errorf("completed date was refreshed to %v, expected %v", updated.CompletedDate, completedAt)
	}
	if tripRepo.UpdateStatusCallCount != 0 {
		t.Errorf("idempotent update must not write, got %d writes", tripRepo.UpdateStatusCallCount)
	}
}

func TestUpdateStatus_OutsiderForbidden(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(assignedTrip("trip-1", "luke", "han"))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	_, err := tripService.UpdateStatus(context.Background(), pilotActor("boba", nil), "trip-1", domain.TripStatusInProgress)
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}

	stored := tripRepo.GetTrip("trip-1")
	if stored.Status != domain.TripStatusAssigned {
		t.Error("forbidden update must not modify the trip")
	}
}

func TestUpdateStatus_PassengerCancels(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-1", "luke", nil, false))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	trip, err := tripService.UpdateStatus(context.Background(), passengerActor("luke", nil), "trip-1", domain.TripStatusCancelled)
	if err != nil {
		t.Fatalf("expected passenger cancel to succeed, got: %v", err)
	}
	if trip.Status != domain.TripStatusCancelled {
		t.Errorf("expected status %s, got %s", domain.TripStatusCancelled, trip.Status)
	}
}

func TestUpdateStatus_InvalidTransitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		from   domain.TripStatus
		target domain.TripStatus
	}{
		{"pending cannot start", domain.TripStatusPending, domain.TripStatusInProgress},
		{"pending cannot complete", domain.TripStatusPending, domain.TripStatusCompleted},
		{"assigned cannot complete", domain.TripStatusAssigned, domain.TripStatusCompleted},
		{"completed cannot be cancelled", domain.TripStatusCompleted, domain.TripStatusCancelled},
		{"cancelled cannot restart", domain.TripStatusCancelled, domain.TripStatusInProgress},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			trip := assignedTrip("trip-1", "luke", "han")
			trip.Status = tc.from

			tripRepo := NewMockTripRepository()
			tripRepo.AddTrip(trip)
			tripService := newTripService(tripRepo, NewMockPlanetRepository())

			_, err := tripService.UpdateStatus(context.Background(), pilotActor("han", nil), "trip-1", tc.target)
			if !errors.Is(err, service.ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got: %v", err)
			}
		})
	}
}

func TestUpdateStatus_UnknownStatusValue(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(assignedTrip("trip-1", "luke", "han"))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	_, err := tripService.UpdateStatus(context.Background(), pilotActor("han", nil), "trip-1", domain.TripStatus("ABORTED"))
	if !errors.Is(err, service.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-1", "luke", nil, false))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())
	ctx := context.Background()

	pilot := pilotActor("han", nil)
	if _, err := tripService.AssignPilot(ctx, pilot, "trip-1"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := tripService.UpdateStatus(ctx, pilot, "trip-1", domain.TripStatusInProgress); err != nil {
		t.Fatalf("start: %v", err)
	}
	trip, err := tripService.UpdateStatus(ctx, pilot, "trip-1", domain.TripStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if trip.Status != domain.TripStatusCompleted {
		t.Errorf("expected status %s, got %s", domain.TripStatusCompleted, trip.Status)
	}
	for name, ts := range map[string]time.Time{
		"assigned":  trip.AssignedDate,
		"start":     trip.StartDate,
		"completed": trip.CompletedDate,
	} {
		if ts.IsZero() {
			t.Errorf("expected %s date to be set after a full lifecycle", name)
		}
	}
}
