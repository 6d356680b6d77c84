package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"flysolo/internal/domain"
	"flysolo/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[string]*domain.Trip

	// Counters for verification
	CreateCallCount       int32
	GetByIDCallCount      int32
	AssignCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	AssignError       error
	UpdateStatusError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[string]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *trip
	m.trips[trip.ID] = &copy
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockTripRepository) GetAvailable(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0)
	for _, t := range m.trips {
		if t.Status == domain.TripStatusPending && t.PilotID == "" {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockTripRepository) GetByParticipant(ctx context.Context, userID string) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0)
	for _, t := range m.trips {
		if t.PassengerID == userID || (t.PilotID != "" && t.PilotID == userID) {
			copy := *t
			result = append(result, &copy)
		}
	}
	return result, nil
}

// Assign mirrors the conditional write of the real store: it succeeds only
// while the trip is still PENDING and unassigned, under a single lock, so
// concurrent callers observe the same winner-takes-all behavior.
func (m *MockTripRepository) Assign(ctx context.Context, tripID, pilotID string, at time.Time) (bool, error) {
	atomic.AddInt32(&m.AssignCallCount, 1)
	if m.AssignError != nil {
		return false, m.AssignError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[tripID]
	if !ok {
		return false, nil
	}
	if trip.PilotID != "" || trip.Status != domain.TripStatusPending {
		return false, nil
	}
	trip.PilotID = pilotID
	trip.Status = domain.TripStatusAssigned
	trip.AssignedDate = at
	return true, nil
}

func (m *MockTripRepository) UpdateStatus(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.trips[trip.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = trip.Status
	// Lifecycle timestamps are written at most once.
	if stored.StartDate.IsZero() {
		stored.StartDate = trip.StartDate
	}
	if stored.CompletedDate.IsZero() {
		stored.CompletedDate = trip.CompletedDate
	}
	return nil
}

// GetTrip returns the stored trip for test assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trips[id]
}

// CountTrips returns the number of trips.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// ──────────────────────────────────────────────
// MOCK PLANET REPOSITORY
// ──────────────────────────────────────────────

// MockPlanetRepository is a mock implementation of PlanetRepository.
type MockPlanetRepository struct {
	mu      sync.RWMutex
	planets map[string]*domain.PlanetWithSystem

	// Counters for verification
	GetByIDCallCount int32

	// Error injection
	GetByIDError error
}

// NewMockPlanetRepository creates a new mock planet repository.
func NewMockPlanetRepository() *MockPlanetRepository {
	return &MockPlanetRepository{
		planets: make(map[string]*domain.PlanetWithSystem),
	}
}

// AddPlanet adds a planet to the mock repository.
func (m *MockPlanetRepository) AddPlanet(planet *domain.PlanetWithSystem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.planets[planet.ID] = planet
}

func (m *MockPlanetRepository) GetByID(ctx context.Context, id string) (*domain.PlanetWithSystem, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	planet, ok := m.planets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *planet
	return &copy, nil
}

func (m *MockPlanetRepository) GetAll(ctx context.Context) ([]*domain.PlanetWithSystem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.PlanetWithSystem, 0, len(m.planets))
	for _, p := range m.planets {
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ──────────────────────────────────────────────
// MOCK CACHE STORE
// ──────────────────────────────────────────────

// MockCacheStore is a mock implementation of CacheStoreInterface.
type MockCacheStore struct {
	mu      sync.RWMutex
	planets map[string]*domain.PlanetWithSystem
	trips   map[string]*domain.Trip

	// Counters for verification
	GetPlanetCallCount      int32
	SetPlanetCallCount      int32
	GetTripCallCount        int32
	SetTripCallCount        int32
	InvalidateTripCallCount int32
}

// NewMockCacheStore creates a new mock cache store.
func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{
		planets: make(map[string]*domain.PlanetWithSystem),
		trips:   make(map[string]*domain.Trip),
	}
}

func (m *MockCacheStore) GetPlanet(ctx context.Context, planetID string) (*domain.PlanetWithSystem, error) {
	atomic.AddInt32(&m.GetPlanetCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	planet, ok := m.planets[planetID]
	if !ok {
		return nil, nil // Cache miss is not an error.
	}
	copy := *planet
	return &copy, nil
}

func (m *MockCacheStore) SetPlanet(ctx context.Context, planet *domain.PlanetWithSystem) error {
	atomic.AddInt32(&m.SetPlanetCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *planet
	m.planets[planet.ID] = &copy
	return nil
}

func (m *MockCacheStore) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	atomic.AddInt32(&m.GetTripCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[tripID]
	if !ok {
		return nil, nil // Cache miss is not an error.
	}
	copy := *trip
	return &copy, nil
}

func (m *MockCacheStore) SetTrip(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.SetTripCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *trip
	m.trips[trip.ID] = &copy
	return nil
}

func (m *MockCacheStore) InvalidateTrip(ctx context.Context, tripID string) error {
	atomic.AddInt32(&m.InvalidateTripCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.trips, tripID)
	return nil
}

// HasTrip checks whether a trip is cached (for test assertions).
func (m *MockCacheStore) HasTrip(tripID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.trips[tripID]
	return ok
}

// HasPlanet checks whether a planet is cached (for test assertions).
func (m *MockCacheStore) HasPlanet(planetID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.planets[planetID]
	return ok
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]time.Time

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// Force lock failure
	ForceAcquireFailure bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]time.Time),
	}
}

func (m *MockLockStore) AcquireTripLock(ctx context.Context, tripID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := "lock:trip:" + tripID
	if expiry, exists := m.locks[key]; exists {
		if time.Now().Before(expiry) {
			return false, nil // Lock still held.
		}
	}

	m.locks[key] = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) ReleaseTripLock(ctx context.Context, tripID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, "lock:trip:"+tripID)
	return nil
}

// IsLocked checks whether a trip is locked (for test assertions).
func (m *MockLockStore) IsLocked(tripID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, exists := m.locks["lock:trip:"+tripID]
	return exists && time.Now().Before(expiry)
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
