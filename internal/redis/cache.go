package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"flysolo/internal/domain"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants.
const (
	// Planets are static reference data, cache them generously.
	PlanetCacheTTL = 10 * time.Minute
	// Trips mutate during assignment and status changes.
	TripCacheTTL = 15 * time.Second
)

// Key prefixes.
const (
	planetCachePrefix = "cache:planet:"
	tripCachePrefix   = "cache:trip:"
)

// cachedPlanet is the wire form of a planet with its solar system.
type cachedPlanet struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	SolarSystemID string  `json:"solar_system_id"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Z             float64 `json:"z"`
	SystemName    string  `json:"system_name"`
	CenterX       float64 `json:"center_x"`
	CenterY       float64 `json:"center_y"`
	CenterZ       float64 `json:"center_z"`
}

// GetPlanet retrieves a planet from cache. A nil result means cache miss.
func (s *CacheStore) GetPlanet(ctx context.Context, planetID string) (*domain.PlanetWithSystem, error) {
	data, err := s.client.Get(ctx, planetCachePrefix+planetID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedPlanet
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	return &domain.PlanetWithSystem{
		Planet: domain.Planet{
			ID:            cached.ID,
			Name:          cached.Name,
			SolarSystemID: cached.SolarSystemID,
			Coordinate:    domain.Coordinate{X: cached.X, Y: cached.Y, Z: cached.Z},
		},
		SolarSystem: domain.SolarSystem{
			ID:     cached.SolarSystemID,
			Name:   cached.SystemName,
			Center: domain.Coordinate{X: cached.CenterX, Y: cached.CenterY, Z: cached.CenterZ},
		},
	}, nil
}

// SetPlanet stores a planet in cache.
func (s *CacheStore) SetPlanet(ctx context.Context, planet *domain.PlanetWithSystem) error {
	data, err := json.Marshal(cachedPlanet{
		ID:            planet.ID,
		Name:          planet.Name,
		SolarSystemID: planet.SolarSystemID,
		X:             planet.Coordinate.X,
		Y:             planet.Coordinate.Y,
		Z:             planet.Coordinate.Z,
		SystemName:    planet.SolarSystem.Name,
		CenterX:       planet.SolarSystem.Center.X,
		CenterY:       planet.SolarSystem.Center.Y,
		CenterZ:       planet.SolarSystem.Center.Z,
	})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, planetCachePrefix+planet.ID, data, PlanetCacheTTL).Err()
}

// cachedTrip is the wire form of a trip. Timestamps travel as RFC 3339
// strings, empty when unset.
type cachedTrip struct {
	ID                  string  `json:"id"`
	PassengerID         string  `json:"passenger_id"`
	PilotID             string  `json:"pilot_id,omitempty"`
	OriginPlanetID      string  `json:"origin_planet_id"`
	DestinationPlanetID string  `json:"destination_planet_id"`
	TripType            string  `json:"trip_type"`
	PassengerCount      int     `json:"passenger_count,omitempty"`
	CargoWeight         float64 `json:"cargo_weight,omitempty"`
	CargoDescription    string  `json:"cargo_description,omitempty"`
	CalculatedDistance  float64 `json:"calculated_distance"`
	EstimatedDuration   int     `json:"estimated_duration"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
	Faction             string  `json:"faction,omitempty"`
	IsCovert            bool    `json:"is_covert"`
	RequestDate         string  `json:"request_date"`
	AssignedDate        string  `json:"assigned_date,omitempty"`
	StartDate           string  `json:"start_date,omitempty"`
	CompletedDate       string  `json:"completed_date,omitempty"`
}

func cacheTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseCacheTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetTrip retrieves a trip from cache. A nil result means cache miss.
func (s *CacheStore) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	data, err := s.client.Get(ctx, tripCachePrefix+tripID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedTrip
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		ID:                  cached.ID,
		PassengerID:         cached.PassengerID,
		PilotID:             cached.PilotID,
		OriginPlanetID:      cached.OriginPlanetID,
		DestinationPlanetID: cached.DestinationPlanetID,
		TripType:            domain.TripType(cached.TripType),
		PassengerCount:      cached.PassengerCount,
		CargoWeight:         cached.CargoWeight,
		CargoDescription:    cached.CargoDescription,
		CalculatedDistance:  cached.CalculatedDistance,
		EstimatedDuration:   cached.EstimatedDuration,
		Price:               cached.Price,
		Status:              domain.TripStatus(cached.Status),
		IsCovert:            cached.IsCovert,
		RequestDate:         parseCacheTime(cached.RequestDate),
		AssignedDate:        parseCacheTime(cached.AssignedDate),
		StartDate:           parseCacheTime(cached.StartDate),
		CompletedDate:       parseCacheTime(cached.CompletedDate),
	}
	if cached.Faction != "" {
		f := domain.Faction(cached.Faction)
		trip.Faction = &f
	}
	return trip, nil
}

// SetTrip stores a trip in cache.
func (s *CacheStore) SetTrip(ctx context.Context, trip *domain.Trip) error {
	cached := cachedTrip{
		ID:                  trip.ID,
		PassengerID:         trip.PassengerID,
		PilotID:             trip.PilotID,
		OriginPlanetID:      trip.OriginPlanetID,
		DestinationPlanetID: trip.DestinationPlanetID,
		TripType:            string(trip.TripType),
		PassengerCount:      trip.PassengerCount,
		CargoWeight:         trip.CargoWeight,
		CargoDescription:    trip.CargoDescription,
		CalculatedDistance:  trip.CalculatedDistance,
		EstimatedDuration:   trip.EstimatedDuration,
		Price:               trip.Price,
		Status:              string(trip.Status),
		IsCovert:            trip.IsCovert,
		RequestDate:         cacheTime(trip.RequestDate),
		AssignedDate:        cacheTime(trip.AssignedDate),
		StartDate:           cacheTime(trip.StartDate),
		CompletedDate:       cacheTime(trip.CompletedDate),
	}
	if trip.Faction != nil {
		cached.Faction = string(*trip.Faction)
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tripCachePrefix+trip.ID, data, TripCacheTTL).Err()
}

// InvalidateTrip removes a trip from cache after a mutation.
func (s *CacheStore) InvalidateTrip(ctx context.Context, tripID string) error {
	return s.client.Del(ctx, tripCachePrefix+tripID).Err()
}
