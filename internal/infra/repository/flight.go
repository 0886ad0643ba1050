package repository

import (
	"context"
	"time"

	"flightdesk/internal/domain/flight"
	"flightdesk/internal/infra"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/usecase/shared"
)

type FlightRepository struct{}

func NewFlightRepository() *FlightRepository {
	return &FlightRepository{}
}

// FindForUpdate locks the flight row for the rest of the transaction. Every
// workflow that touches seat state goes through this, so concurrent
// mutations of one flight serialize on the row lock.
func (r *FlightRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id int64) (*flight.Flight, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, origin, destination, departure_time, created_at, updated_at
		FROM flights
		WHERE id = $1
		FOR UPDATE`, id)

	var (
		flightID             int64
		origin, destination  string
		departure            time.Time
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&flightID, &origin, &destination, &departure, &createdAt, &updatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock flight", err)
	}

	seats, err := loadSeatMap(ctx, tx, flightID)
	if err != nil {
		return nil, err
	}

	return flight.Reconstruct(flightID, origin, destination, departure, seats, createdAt, updatedAt), nil
}

func (r *FlightRepository) OccupySeat(ctx context.Context, tx db.DBTX, flightID int64, seat int, document string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO flight_seats (flight_id, seat_number, document)
		VALUES ($1, $2, $3)`, flightID, seat, document)
	if err != nil {
		return infra.WrapRepoErr("failed to occupy seat", err)
	}

	if err := touchFlight(ctx, tx, flightID); err != nil {
		return err
	}
	return nil
}

func (r *FlightRepository) ClearSeat(ctx context.Context, tx db.DBTX, flightID int64, seat int) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM flight_seats
		WHERE flight_id = $1 AND seat_number = $2`, flightID, seat)
	if err != nil {
		return infra.WrapRepoErr("failed to clear seat", err)
	}

	if err := touchFlight(ctx, tx, flightID); err != nil {
		return err
	}
	return nil
}

func loadSeatMap(ctx context.Context, tx db.DBTX, flightID int64) (flight.SeatMap, error) {
	var seats flight.SeatMap

	rows, err := tx.Query(ctx, `
		SELECT seat_number, document
		FROM flight_seats
		WHERE flight_id = $1
		ORDER BY seat_number`, flightID)
	if err != nil {
		return seats, infra.WrapRepoErr("failed to load seat map", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seat     int
			document string
		)
		if err := rows.Scan(&seat, &document); err != nil {
			return seats, infra.WrapRepoErr("failed to scan seat row", err)
		}
		if seat >= 1 && seat <= flight.SeatCount {
			seats[seat-1] = document
		}
	}
	if err := rows.Err(); err != nil {
		return seats, infra.WrapRepoErr("failed to iterate seat rows", err)
	}
	return seats, nil
}

func touchFlight(ctx context.Context, tx db.DBTX, flightID int64) error {
	if _, err := tx.Exec(ctx, `UPDATE flights SET updated_at = now() WHERE id = $1`, flightID); err != nil {
		return infra.WrapRepoErr("failed to touch flight", err)
	}
	return nil
}

var _ shared.FlightRepository = (*FlightRepository)(nil)
