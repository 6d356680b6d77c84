package service

import (
	"errors"
	"testing"
	"time"

	"flysolo/internal/domain"
)

func TestApplyStatus_Transitions(t *testing.T) {
	now := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		from        domain.TripStatus
		to          domain.TripStatus
		wantChanged bool
		wantErr     error
	}{
		{"assigned to in progress", domain.TripStatusAssigned, domain.TripStatusInProgress, true, nil},
		{"in progress to completed", domain.TripStatusInProgress, domain.TripStatusCompleted, true, nil},
		{"pending can be cancelled", domain.TripStatusPending, domain.TripStatusCancelled, true, nil},
		{"assigned can be cancelled", domain.TripStatusAssigned, domain.TripStatusCancelled, true, nil},
		{"in progress can be cancelled", domain.TripStatusInProgress, domain.TripStatusCancelled, true, nil},
		{"pending cannot start", domain.TripStatusPending, domain.TripStatusInProgress, false, ErrInvalidTransition},
		{"pending cannot complete", domain.TripStatusPending, domain.TripStatusCompleted, false, ErrInvalidTransition},
		{"assigned cannot complete", domain.TripStatusAssigned, domain.TripStatusCompleted, false, ErrInvalidTransition},
		{"completed cannot be cancelled", domain.TripStatusCompleted, domain.TripStatusCancelled, false, ErrInvalidTransition},
		{"cancelled cannot restart", domain.TripStatusCancelled, domain.TripStatusInProgress, false, ErrInvalidTransition},
		{"cannot move back to pending", domain.TripStatusAssigned, domain.TripStatusPending, false, ErrInvalidTransition},
		{"cannot assign through a status update", domain.TripStatusPending, domain.TripStatusAssigned, false, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &domain.Trip{Status: tt.from}
			changed, err := ApplyStatus(trip, tt.to, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ApplyStatus() error = %v, expected %v", err, tt.wantErr)
			}
			if changed != tt.wantChanged {
				t.Errorf("ApplyStatus() changed = %v, expected %v", changed, tt.wantChanged)
			}
			if tt.wantErr == nil && changed && trip.Status != tt.to {
				t.Errorf("trip status = %s, expected %s", trip.Status, tt.to)
			}
			if tt.wantErr != nil && trip.Status != tt.from {
				t.Errorf("failed transition mutated status to %s", trip.Status)
			}
		})
	}
}

func TestApplyStatus_SameStatusIsNoOp(t *testing.T) {
	now := time.Now()
	started := now.Add(-time.Hour)
	trip := &domain.Trip{Status: domain.TripStatusInProgress, StartDate: started}

	changed, err := ApplyStatus(trip, domain.TripStatusInProgress, now)
	if err != nil {
		t.Fatalf("ApplyStatus() error = %v", err)
	}
	if changed {
		t.Error("re-applying the current status should not report a change")
	}
	if !trip.StartDate.Equal(started) {
		t.Errorf("startDate was refreshed to %v, expected %v", trip.StartDate, started)
	}
}

func TestApplyStatus_TimestampsSetOnce(t *testing.T) {
	firstStart := time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC)
	later := firstStart.Add(2 * time.Hour)

	trip := &domain.Trip{Status: domain.TripStatusAssigned}
	if _, err := ApplyStatus(trip, domain.TripStatusInProgress, firstStart); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !trip.StartDate.Equal(firstStart) {
		t.Fatalf("startDate = %v, expected %v", trip.StartDate, firstStart)
	}

	if _, err := ApplyStatus(trip, domain.TripStatusCompleted, later); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !trip.CompletedDate.Equal(later) {
		t.Fatalf("completedDate = %v, expected %v", trip.CompletedDate, later)
	}

	// A pre-set completion time survives the transition.
	preset := firstStart.Add(30 * time.Minute)
	trip2 := &domain.Trip{Status: domain.TripStatusInProgress, CompletedDate: preset}
	if _, err := ApplyStatus(trip2, domain.TripStatusCompleted, later); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !trip2.CompletedDate.Equal(preset) {
		t.Errorf("completedDate was overwritten to %v, expected %v", trip2.CompletedDate, preset)
	}
}

func TestTripStatusTerminal(t *testing.T) {
	terminal := map[domain.TripStatus]bool{
		domain.TripStatusPending:    false,
		domain.TripStatusAssigned:   false,
		domain.TripStatusInProgress: false,
		domain.TripStatusCompleted:  true,
		domain.TripStatusCancelled:  true,
	}
	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, expected %v", status, got, want)
		}
	}
}
