package redis

import (
	"context"
	"time"

	"flysolo/internal/domain"
)

// CacheStoreInterface defines the caching operations used by services.
type CacheStoreInterface interface {
	GetPlanet(ctx context.Context, planetID string) (*domain.PlanetWithSystem, error)
	SetPlanet(ctx context.Context, planet *domain.PlanetWithSystem) error
	GetTrip(ctx context.Context, tripID string) (*domain.Trip, error)
	SetTrip(ctx context.Context, trip *domain.Trip) error
	InvalidateTrip(ctx context.Context, tripID string) error
}

// LockStoreInterface defines the distributed locking operations used around
// trip assignment.
type LockStoreInterface interface {
	AcquireTripLock(ctx context.Context, tripID string, ttl time.Duration) (bool, error)
	ReleaseTripLock(ctx context.Context, tripID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ CacheStoreInterface = (*CacheStore)(nil)
	_ LockStoreInterface  = (*LockStore)(nil)
)
