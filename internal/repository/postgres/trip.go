package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"flysolo/internal/domain"
	"flysolo/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, passenger_id, pilot_id, origin_planet_id, destination_planet_id,
		trip_type, passenger_count, cargo_weight, cargo_description,
		calculated_distance, estimated_duration, price, status, faction, is_covert,
		request_date, assigned_date, start_date, completed_date`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.PassengerID,
		nullString(trip.PilotID),
		trip.OriginPlanetID,
		trip.DestinationPlanetID,
		trip.TripType,
		nullInt(trip.PassengerCount),
		nullFloat(trip.CargoWeight),
		nullString(trip.CargoDescription),
		trip.CalculatedDistance,
		trip.EstimatedDuration,
		trip.Price,
		trip.Status,
		nullFaction(trip.Faction),
		trip.IsCovert,
		trip.RequestDate,
		nullTime(trip.AssignedDate),
		nullTime(trip.StartDate),
		nullTime(trip.CompletedDate),
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}

// GetAll retrieves all trips, newest first.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY request_date DESC`
	return r.queryTrips(ctx, query)
}

// GetAvailable retrieves PENDING trips with no pilot, newest first.
func (r *TripRepository) GetAvailable(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE status = 'PENDING' AND pilot_id IS NULL
		ORDER BY request_date DESC
	`
	return r.queryTrips(ctx, query)
}

// GetByParticipant retrieves trips where the user is the passenger or the
// assigned pilot, newest first.
func (r *TripRepository) GetByParticipant(ctx context.Context, userID string) ([]*domain.Trip, error) {
	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE passenger_id = $1 OR pilot_id = $1
		ORDER BY request_date DESC
	`
	return r.queryTrips(ctx, query, userID)
}

// Assign performs the conditional PENDING -> ASSIGNED write. The WHERE
// clause carries the whole race guard, so two pilots can never both win.
func (r *TripRepository) Assign(ctx context.Context, tripID, pilotID string, at time.Time) (bool, error) {
	query := `
		UPDATE trips
		SET pilot_id = $1, status = 'ASSIGNED', assigned_date = $2
		WHERE id = $3 AND pilot_id IS NULL AND status = 'PENDING'
	`

	result, err := r.q.ExecContext(ctx, query, pilotID, at, tripID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected == 1, nil
}

// UpdateStatus persists a status change. COALESCE keeps timestamps that are
// already set, so a lifecycle date is written at most once.
func (r *TripRepository) UpdateStatus(ctx context.Context, trip *domain.Trip) error {
	query := `
		UPDATE trips
		SET status = $1,
		    start_date = COALESCE(start_date, $2),
		    completed_date = COALESCE(completed_date, $3)
		WHERE id = $4
	`

	result, err := r.q.ExecContext(ctx, query,
		trip.Status,
		nullTime(trip.StartDate),
		nullTime(trip.CompletedDate),
		trip.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var pilotID, cargoDescription, faction sql.NullString
	var passengerCount sql.NullInt64
	var cargoWeight sql.NullFloat64
	var assignedDate, startDate, completedDate sql.NullTime

	err := row.Scan(
		&trip.ID,
		&trip.PassengerID,
		&pilotID,
		&trip.OriginPlanetID,
		&trip.DestinationPlanetID,
		&trip.TripType,
		&passengerCount,
		&cargoWeight,
		&cargoDescription,
		&trip.CalculatedDistance,
		&trip.EstimatedDuration,
		&trip.Price,
		&trip.Status,
		&faction,
		&trip.IsCovert,
		&trip.RequestDate,
		&assignedDate,
		&startDate,
		&completedDate,
	)
	if err != nil {
		return nil, err
	}

	if pilotID.Valid {
		trip.PilotID = pilotID.String
	}
	if passengerCount.Valid {
		trip.PassengerCount = int(passengerCount.Int64)
	}
	if cargoWeight.Valid {
		trip.CargoWeight = cargoWeight.Float64
	}
	if cargoDescription.Valid {
		trip.CargoDescription = cargoDescription.String
	}
	if faction.Valid {
		f := domain.Faction(faction.String)
		trip.Faction = &f
	}
	if assignedDate.Valid {
		trip.AssignedDate = assignedDate.Time
	}
	if startDate.Valid {
		trip.StartDate = startDate.Time
	}
	if completedDate.Valid {
		trip.CompletedDate = completedDate.Time
	}

	return &trip, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}

func nullFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullFaction(f *domain.Faction) sql.NullString {
	if f == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*f), Valid: true}
}

var _ repository.TripRepository = (*TripRepository)(nil)
