package service

import (
	"testing"

	"flysolo/internal/domain"
)

func factionPtr(f domain.Faction) *domain.Faction {
	return &f
}

func TestCanAssign(t *testing.T) {
	rebel := factionPtr(domain.FactionRebel)
	imperial := factionPtr(domain.FactionImperial)

	tests := []struct {
		name     string
		trip     *domain.Trip
		pilot    domain.Actor
		expected bool
	}{
		{
			name:     "neutral trip is open to everyone",
			trip:     &domain.Trip{},
			pilot:    domain.Actor{Faction: imperial},
			expected: true,
		},
		{
			name:     "matching faction",
			trip:     &domain.Trip{Faction: rebel},
			pilot:    domain.Actor{Faction: rebel},
			expected: true,
		},
		{
			name:     "opposing faction denied",
			trip:     &domain.Trip{Faction: imperial},
			pilot:    domain.Actor{Faction: rebel},
			expected: false,
		},
		{
			name:     "covert bypasses faction mismatch",
			trip:     &domain.Trip{Faction: imperial, IsCovert: true},
			pilot:    domain.Actor{Faction: rebel},
			expected: true,
		},
		{
			name:     "covert bypasses for neutral pilot too",
			trip:     &domain.Trip{Faction: rebel, IsCovert: true},
			pilot:    domain.Actor{},
			expected: true,
		},
		{
			name:     "neutral pilot denied a factioned trip",
			trip:     &domain.Trip{Faction: imperial},
			pilot:    domain.Actor{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAssign(tt.trip, tt.pilot); got != tt.expected {
				t.Errorf("CanAssign() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVisibleTo(t *testing.T) {
	rebel := factionPtr(domain.FactionRebel)
	imperial := factionPtr(domain.FactionImperial)

	tests := []struct {
		name     string
		trip     *domain.Trip
		actor    domain.Actor
		expected bool
	}{
		{
			name:     "admin sees everything",
			trip:     &domain.Trip{Faction: imperial, IsCovert: true},
			actor:    domain.Actor{ID: "admin", Role: domain.RoleAdmin},
			expected: true,
		},
		{
			name:     "passenger always sees own trip",
			trip:     &domain.Trip{PassengerID: "luke", Faction: imperial},
			actor:    domain.Actor{ID: "luke", Role: domain.RoleUser, Faction: rebel},
			expected: true,
		},
		{
			name:     "assigned pilot always sees own trip",
			trip:     &domain.Trip{PassengerID: "luke", PilotID: "han", Faction: imperial},
			actor:    domain.Actor{ID: "han", Role: domain.RolePilot, Faction: rebel},
			expected: true,
		},
		{
			name:     "pilot sees covert trips of opposing faction",
			trip:     &domain.Trip{PassengerID: "palpatine", Faction: imperial, IsCovert: true},
			actor:    domain.Actor{ID: "han", Role: domain.RolePilot, Faction: rebel},
			expected: true,
		},
		{
			name:     "pilot does not see opposing non-covert trips",
			trip:     &domain.Trip{PassengerID: "palpatine", Faction: imperial},
			actor:    domain.Actor{ID: "han", Role: domain.RolePilot, Faction: rebel},
			expected: false,
		},
		{
			name:     "user sees neutral trips",
			trip:     &domain.Trip{PassengerID: "palpatine"},
			actor:    domain.Actor{ID: "luke", Role: domain.RoleUser, Faction: rebel},
			expected: true,
		},
		{
			name:     "user sees own-faction trips",
			trip:     &domain.Trip{PassengerID: "leia", Faction: rebel},
			actor:    domain.Actor{ID: "luke", Role: domain.RoleUser, Faction: rebel},
			expected: true,
		},
		{
			name:     "user does not see covert opposing trips",
			trip:     &domain.Trip{PassengerID: "palpatine", Faction: imperial, IsCovert: true},
			actor:    domain.Actor{ID: "luke", Role: domain.RoleUser, Faction: rebel},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleTo(tt.trip, tt.actor); got != tt.expected {
				t.Errorf("VisibleTo() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
