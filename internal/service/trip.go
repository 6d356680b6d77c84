package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"flysolo/internal/domain"
	"flysolo/internal/redis"
	"flysolo/internal/repository"
)

const tripAssignLockTTL = 10 * time.Second

// TripService orchestrates trip creation, pilot assignment and lifecycle
// updates against the planet catalog and the trip store.
type TripService struct {
	tripRepo   repository.TripRepository
	planetRepo repository.PlanetRepository
	pricing    PricingPolicy
	cacheStore redis.CacheStoreInterface
	lockStore  redis.LockStoreInterface
}

// NewTripService creates a new TripService. cacheStore and lockStore are
// optional; without them the service degrades to plain repository access.
func NewTripService(
	tripRepo repository.TripRepository,
	planetRepo repository.PlanetRepository,
	pricing PricingPolicy,
	cacheStore redis.CacheStoreInterface,
	lockStore redis.LockStoreInterface,
) *TripService {
	return &TripService{
		tripRepo:   tripRepo,
		planetRepo: planetRepo,
		pricing:    pricing,
		cacheStore: cacheStore,
		lockStore:  lockStore,
	}
}

// CreateTripRequest contains the parameters for booking a trip.
type CreateTripRequest struct {
	OriginPlanetID      string
	DestinationPlanetID string
	TripType            domain.TripType
	PassengerCount      int
	CargoWeight         float64
	CargoDescription    string
	Faction             *domain.Faction // nil = inherit the passenger's faction
	IsCovert            bool
}

// CreateTrip books a new trip for the acting passenger. Distance, duration
// and price are computed here and frozen for the life of the trip.
func (s *TripService) CreateTrip(ctx context.Context, actor domain.Actor, req CreateTripRequest) (*domain.Trip, error) {
	if req.TripType != domain.TripTypePassenger && req.TripType != domain.TripTypeCargo {
		return nil, ErrInvalidTripType
	}
	if req.OriginPlanetID == "" || req.DestinationPlanetID == "" {
		return nil, ErrInvalidPlanet
	}
	if req.PassengerCount < 0 || (req.TripType == domain.TripTypePassenger && req.PassengerCount == 0) {
		return nil, ErrInvalidPassengerCount
	}
	if req.CargoWeight < 0 || (req.TripType == domain.TripTypeCargo && req.CargoWeight == 0) {
		return nil, ErrInvalidCargoWeight
	}

	origin, err := s.getPlanet(ctx, req.OriginPlanetID)
	if err != nil {
		return nil, err
	}
	destination, err := s.getPlanet(ctx, req.DestinationPlanetID)
	if err != nil {
		return nil, err
	}

	distance := TripDistance(origin, destination)
	estimate := s.pricing.Estimate(distance, PricingParams{
		TripType:       req.TripType,
		PassengerCount: req.PassengerCount,
		CargoWeight:    req.CargoWeight,
	})

	faction := req.Faction
	if faction == nil {
		faction = actor.Faction
	}

	trip := &domain.Trip{
		ID:                  uuid.New().String(),
		PassengerID:         actor.ID,
		OriginPlanetID:      req.OriginPlanetID,
		DestinationPlanetID: req.DestinationPlanetID,
		TripType:            req.TripType,
		PassengerCount:      req.PassengerCount,
		CargoWeight:         req.CargoWeight,
		CargoDescription:    req.CargoDescription,
		CalculatedDistance:  distance,
		EstimatedDuration:   estimate.Duration,
		Price:               estimate.Price,
		Status:              domain.TripStatusPending,
		Faction:             faction,
		IsCovert:            req.IsCovert,
		RequestDate:         time.Now(),
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// AssignPilot lets the acting pilot accept a PENDING trip. The decisive
// write is a conditional update, so concurrent pilots cannot both win; the
// Redis lock merely keeps losers from hitting the database at all.
func (s *TripService) AssignPilot(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	if actor.Role != domain.RolePilot {
		return nil, ErrNotPilot
	}

	if s.lockStore != nil {
		locked, err := s.lockStore.AcquireTripLock(ctx, tripID, tripAssignLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, ErrTripNotAvailable
		}
		defer func() { _ = s.lockStore.ReleaseTripLock(ctx, tripID) }()
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.PilotID != "" {
		return nil, ErrTripAlreadyAssigned
	}
	if trip.Status != domain.TripStatusPending {
		return nil, ErrTripNotAvailable
	}
	if !CanAssign(trip, actor) {
		return nil, ErrFactionDenied
	}

	now := time.Now()
	won, err := s.tripRepo.Assign(ctx, tripID, actor.ID, now)
	if err != nil {
		return nil, err
	}

	if !won {
		// Lost the race between our read and the conditional write.
		fresh, err := s.tripRepo.GetByID(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if fresh.PilotID != "" {
			return nil, ErrTripAlreadyAssigned
		}
		return nil, ErrTripNotAvailable
	}

	s.invalidateTrip(ctx, tripID)

	trip.PilotID = actor.ID
	trip.Status = domain.TripStatusAssigned
	trip.AssignedDate = now
	return trip, nil
}

// UpdateStatus advances a trip through its lifecycle on behalf of the
// assigned pilot or the passenger. Re-applying the current status succeeds
// without touching the store.
func (s *TripService) UpdateStatus(ctx context.Context, actor domain.Actor, tripID string, status domain.TripStatus) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	switch status {
	case domain.TripStatusPending, domain.TripStatusAssigned,
		domain.TripStatusInProgress, domain.TripStatusCompleted, domain.TripStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if actor.ID != trip.PassengerID && actor.ID != trip.PilotID {
		return nil, ErrForbidden
	}

	changed, err := ApplyStatus(trip, status, time.Now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return trip, nil
	}

	if err := s.tripRepo.UpdateStatus(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidateTrip(ctx, tripID)
	return trip, nil
}

// GetTrip retrieves a single trip for an admin, the passenger or the
// assigned pilot. Reads go through the trip cache; mutations elsewhere
// invalidate it.
func (s *TripService) GetTrip(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	trip, err := s.getTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	hasAccess := actor.Role == domain.RoleAdmin ||
		trip.PassengerID == actor.ID ||
		(trip.PilotID != "" && trip.PilotID == actor.ID)
	if !hasAccess {
		return nil, ErrForbidden
	}

	return trip, nil
}

// ListTrips returns the trips visible to the actor under the role/faction
// visibility rules.
func (s *TripService) ListTrips(ctx context.Context, actor domain.Actor) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if VisibleTo(trip, actor) {
			visible = append(visible, trip)
		}
	}
	return visible, nil
}

// ListAvailableTrips returns PENDING, unassigned trips the actor would be
// eligible to take.
func (s *TripService) ListAvailableTrips(ctx context.Context, actor domain.Actor) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if CanAssign(trip, actor) {
			eligible = append(eligible, trip)
		}
	}
	return eligible, nil
}

// ListUserTrips returns the trips where the actor is the passenger or the
// assigned pilot.
func (s *TripService) ListUserTrips(ctx context.Context, actor domain.Actor) ([]*domain.Trip, error) {
	return s.tripRepo.GetByParticipant(ctx, actor.ID)
}

// ListPlanets returns the planet catalog.
func (s *TripService) ListPlanets(ctx context.Context) ([]*domain.PlanetWithSystem, error) {
	return s.planetRepo.GetAll(ctx)
}

// getPlanet resolves a planet through the cache, falling back to the store.
// A missing planet surfaces as ErrInvalidPlanet, since the id came from
// client input.
func (s *TripService) getPlanet(ctx context.Context, planetID string) (*domain.PlanetWithSystem, error) {
	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetPlanet(ctx, planetID); err == nil && cached != nil {
			return cached, nil
		}
	}

	planet, err := s.planetRepo.GetByID(ctx, planetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidPlanet
		}
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetPlanet(ctx, planet)
	}
	return planet, nil
}

// getTrip resolves a trip through the cache, falling back to the store.
func (s *TripService) getTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if s.cacheStore != nil {
		if cached, err := s.cacheStore.GetTrip(ctx, tripID); err == nil && cached != nil {
			return cached, nil
		}
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetTrip(ctx, trip)
	}
	return trip, nil
}

func (s *TripService) invalidateTrip(ctx context.Context, tripID string) {
	if s.cacheStore == nil {
		return
	}
	_ = s.cacheStore.InvalidateTrip(ctx, tripID)
}
