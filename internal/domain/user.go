package domain

import "time"

// Role represents a user's role in the system.
type Role string

const (
	RoleUser  Role = "USER"
	RolePilot Role = "PILOT"
	RoleAdmin Role = "ADMIN"
)

// Faction is a political affiliation tag. Neutral users and trips carry no
// faction at all (nil pointer), so the eligibility checks stay unambiguous.
type Faction string

const (
	FactionRebel    Faction = "REBEL"
	FactionImperial Faction = "IMPERIAL"
)

// ParseFaction maps a wire value to an optional faction. Empty string and
// "NEUTRAL" both mean no affiliation.
func ParseFaction(s string) (*Faction, bool) {
	switch s {
	case "", "NEUTRAL":
		return nil, true
	case string(FactionRebel):
		f := FactionRebel
		return &f, true
	case string(FactionImperial):
		f := FactionImperial
		return &f, true
	default:
		return nil, false
	}
}

// User represents a registered passenger, pilot or admin.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	Faction      *Faction
	CreatedAt    time.Time
}

// Actor is the authenticated identity every service operation receives
// explicitly. It carries only what authorization decisions need.
type Actor struct {
	ID      string
	Role    Role
	Faction *Faction
}
