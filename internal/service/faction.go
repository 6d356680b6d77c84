package service

import "flysolo/internal/domain"

// CanAssign reports whether a pilot may take a trip. Neutral trips are open
// to everyone, covert trips bypass faction matching entirely, and anything
// else requires the pilot's faction to match the trip's.
//
// Callers are responsible for the state preconditions (trip still PENDING,
// no pilot assigned); this predicate is pure eligibility.
func CanAssign(trip *domain.Trip, pilot domain.Actor) bool {
	if trip.Faction == nil || trip.IsCovert {
		return true
	}
	return pilot.Faction != nil && *pilot.Faction == *trip.Faction
}

// VisibleTo reports whether a trip appears in listings for the given actor.
//
// Admins see everything, and participants always see their own trips. For
// pilots visibility mirrors assignment eligibility, so a pilot is never
// shown a trip they could not take. Passengers see neutral trips and trips
// of their own faction; covert missions are pilot-facing and stay hidden.
func VisibleTo(trip *domain.Trip, actor domain.Actor) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	if trip.PassengerID == actor.ID || (trip.PilotID != "" && trip.PilotID == actor.ID) {
		return true
	}
	if actor.Role == domain.RolePilot {
		return CanAssign(trip, actor)
	}
	if trip.Faction == nil {
		return true
	}
	return actor.Faction != nil && *actor.Faction == *trip.Faction
}
