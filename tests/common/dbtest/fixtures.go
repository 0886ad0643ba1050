//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference flights seeded into every test database. IDs are assigned by the
// sequence in insertion order, so GRU->GIG is flight 1.
var referenceFlights = []struct {
	origin      string
	destination string
	departure   time.Time
}{
	{"GRU", "GIG", time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)},
	{"GIG", "SSA", time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)},
	{"SSA", "GRU", time.Date(2026, 9, 2, 6, 15, 0, 0, time.UTC)},
}

// SeedReferenceData inserts the baseline flights used by e2e suites.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	for _, f := range referenceFlights {
		if _, err := pool.Exec(ctx,
			"INSERT INTO flights (origin, destination, departure_time) VALUES ($1, $2, $3)",
			f.origin, f.destination, f.departure); err != nil {
			return err
		}
	}
	return nil
}

// ResetDB truncates all mutable tables and reseeds the reference flights.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	if _, err := pool.Exec(ctx,
		"TRUNCATE flight_seats, reservations, flights RESTART IDENTITY CASCADE"); err != nil {
		return err
	}
	return SeedReferenceData(pool)
}

// CreateTestFlight inserts an extra flight and returns its id.
func CreateTestFlight(t *testing.T, db DBLike, origin, destination string, departure time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO flights (origin, destination, departure_time) VALUES ($1, $2, $3) RETURNING id",
		origin, destination, departure).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a reservation directly, bypassing the API.
func CreateTestReservation(t *testing.T, db DBLike, flightID int64, document, code string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO reservations (flight_id, document, code) VALUES ($1, $2, $3) RETURNING id",
		flightID, document, code).Scan(&id)
	require.NoError(t, err)
	return id
}

// SeatHolder returns the document occupying a seat, or "" when free.
func SeatHolder(t *testing.T, db DBLike, flightID int64, seat int) string {
	t.Helper()

	var document string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT document FROM flight_seats WHERE flight_id = $1 AND seat_number = $2), '')",
		flightID, seat).Scan(&document)
	require.NoError(t, err)
	return document
}

// CountReservations returns the number of reservations on a flight.
func CountReservations(t *testing.T, db DBLike, flightID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM reservations WHERE flight_id = $1", flightID).Scan(&n)
	require.NoError(t, err)
	return n
}
