package tests

import (
	"context"
	"errors"
	"testing"

	"flysolo/internal/domain"
	"flysolo/internal/service"
)

// ──────────────────────────────────────────────
// TRIP ACCESS AND VISIBILITY
// ──────────────────────────────────────────────

func TestGetTrip_ParticipantsAndAdmin(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(assignedTrip("trip-1", "luke", "han"))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	allowed := []domain.Actor{
		passengerActor("luke", nil),
		pilotActor("han", nil),
		{ID: "vader", Role: domain.RoleAdmin},
	}
	for _, actor := range allowed {
		if _, err := tripService.GetTrip(context.Background(), actor, "trip-1"); err != nil {
			t.Errorf("expected %s to access the trip, got: %v", actor.ID, err)
		}
	}
}

func TestGetTrip_NonParticipant_Forbidden(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(assignedTrip("trip-1", "luke", "han"))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	_, err := tripService.GetTrip(context.Background(), passengerActor("greedo", nil), "trip-1")
	if !errors.Is(err, service.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got: %v", err)
	}
}

func TestGetTrip_ServedFromCache(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-1", "luke", nil, false))
	cache := NewMockCacheStore()
	tripService := service.NewTripService(tripRepo, NewMockPlanetRepository(), service.StandardPricing{}, cache, nil)
	actor := passengerActor("luke", nil)

	if _, err := tripService.GetTrip(context.Background(), actor, "trip-1"); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if !cache.HasTrip("trip-1") {
		t.Fatal("expected the trip cached after the first read")
	}

	repoReadsAfterFirst := tripRepo.GetByIDCallCount
	if _, err := tripService.GetTrip(context.Background(), actor, "trip-1"); err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if tripRepo.GetByIDCallCount != repoReadsAfterFirst {
		t.Errorf("expected the second read served from cache, repo reads went %d -> %d",
			repoReadsAfterFirst, tripRepo.GetByIDCallCount)
	}
}

func TestAssignPilot_EvictsCachedTrip(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-1", "luke", nil, false))
	cache := NewMockCacheStore()
	tripService := service.NewTripService(tripRepo, NewMockPlanetRepository(), service.StandardPricing{}, cache, nil)
	ctx := context.Background()

	// Warm the cache with the PENDING trip.
	if _, err := tripService.GetTrip(ctx, passengerActor("luke", nil), "trip-1"); err != nil {
		t.Fatalf("warm read failed: %v", err)
	}

	if _, err := tripService.AssignPilot(ctx, pilotActor("han", nil), "trip-1"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if cache.HasTrip("trip-1") {
		t.Fatal("expected the cached trip evicted by assignment")
	}

	// The next read must observe the assignment, not the stale cache entry.
	trip, err := tripService.GetTrip(ctx, passengerActor("luke", nil), "trip-1")
	if err != nil {
		t.Fatalf("read after assign failed: %v", err)
	}
	if trip.Status != domain.TripStatusAssigned || trip.PilotID != "han" {
		t.Errorf("stale read after eviction: status=%s pilot=%s", trip.Status, trip.PilotID)
	}
}

func TestListAvailableTrips_FiltersByEligibility(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-neutral", "luke", nil, false))
	tripRepo.AddTrip(pendingTrip("trip-imperial", "palpatine", imperialFaction(), false))
	tripRepo.AddTrip(pendingTrip("trip-covert", "palpatine", imperialFaction(), true))
	tripRepo.AddTrip(pendingTrip("trip-rebel", "leia", rebelFaction(), false))
	assigned := assignedTrip("trip-taken", "luke", "wedge")
	tripRepo.AddTrip(assigned)
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	trips, err := tripService.ListAvailableTrips(context.Background(), pilotActor("han", rebelFaction()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]bool, len(trips))
	for _, trip := range trips {
		got[trip.ID] = true
	}

	// A rebel pilot sees neutral, covert and rebel trips; the imperial trip
	// and the already-assigned trip stay out.
	for _, id := range []string{"trip-neutral", "trip-covert", "trip-rebel"} {
		if !got[id] {
			t.Errorf("expected %s in the available list", id)
		}
	}
	for _, id := range []string{"trip-imperial", "trip-taken"} {
		if got[id] {
			t.Errorf("did not expect %s in the available list", id)
		}
	}
}

func TestListTrips_VisibilityRules(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-neutral", "owen", nil, false))
	tripRepo.AddTrip(pendingTrip("trip-own", "luke", rebelFaction(), false))
	tripRepo.AddTrip(pendingTrip("trip-rebel", "leia", rebelFaction(), false))
	tripRepo.AddTrip(pendingTrip("trip-imperial", "palpatine", imperialFaction(), false))
	tripRepo.AddTrip(pendingTrip("trip-covert", "palpatine", imperialFaction(), true))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	testCases := []struct {
		name    string
		actor   domain.Actor
		visible []string
		hidden  []string
	}{
		{
			name:    "admin sees everything",
			actor:   domain.Actor{ID: "vader", Role: domain.RoleAdmin},
			visible: []string{"trip-neutral", "trip-own", "trip-rebel", "trip-imperial", "trip-covert"},
		},
		{
			name:    "rebel user sees neutral, own and own-faction trips",
			actor:   passengerActor("luke", rebelFaction()),
			visible: []string{"trip-neutral", "trip-own", "trip-rebel"},
			hidden:  []string{"trip-imperial", "trip-covert"},
		},
		{
			name:    "rebel pilot also sees covert trips",
			actor:   pilotActor("han", rebelFaction()),
			visible: []string{"trip-neutral", "trip-rebel", "trip-covert"},
			hidden:  []string{"trip-imperial"},
		},
		{
			name:    "neutral user sees only neutral trips",
			actor:   passengerActor("watto", nil),
			visible: []string{"trip-neutral"},
			hidden:  []string{"trip-own", "trip-rebel", "trip-imperial", "trip-covert"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			trips, err := tripService.ListTrips(context.Background(), tc.actor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := make(map[string]bool, len(trips))
			for _, trip := range trips {
				got[trip.ID] = true
			}
			for _, id := range tc.visible {
				if !got[id] {
					t.Errorf("expected %s to be visible", id)
				}
			}
			for _, id := range tc.hidden {
				if got[id] {
					t.Errorf("expected %s to be hidden", id)
				}
			}
		})
	}
}

func TestListUserTrips_ReturnsParticipantTrips(t *testing.T) {
	t.Parallel()

	tripRepo := NewMockTripRepository()
	tripRepo.AddTrip(pendingTrip("trip-1", "luke", nil, false))
	tripRepo.AddTrip(assignedTrip("trip-2", "leia", "luke"))
	tripRepo.AddTrip(pendingTrip("trip-3", "leia", nil, false))
	tripService := newTripService(tripRepo, NewMockPlanetRepository())

	trips, err := tripService.ListUserTrips(context.Background(), pilotActor("luke", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	for _, trip := range trips {
		if trip.PassengerID != "luke" && trip.PilotID != "luke" {
			t.Errorf("trip %s does not involve the actor", trip.ID)
		}
	}
}
