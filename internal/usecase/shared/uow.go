package shared

import (
	"context"

	"flightdesk/internal/domain/flight"
	"flightdesk/internal/domain/reservation"
	"flightdesk/internal/infra/db"
)

// UnitOfWork is the transactional boundary for one workflow invocation: every
// read and write of a booking, check-in or seat-swap runs inside a single
// Within call and is committed or rolled back as a whole.
type UnitOfWork interface {
	// Within: full transaction for write workflows, with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Flights() FlightRepository
	Reservations() ReservationRepository
	DB() db.DBTX
}

type FlightRepository interface {
	// FindForUpdate loads the flight and its seat map while taking an
	// exclusive lock on the flight row, serializing all seat mutations and
	// duplicate checks per flight.
	FindForUpdate(ctx context.Context, tx db.DBTX, id int64) (*flight.Flight, error)
	OccupySeat(ctx context.Context, tx db.DBTX, flightID int64, seat int, document string) error
	ClearSeat(ctx context.Context, tx db.DBTX, flightID int64, seat int) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error)
	ExistsForFlightAndDocument(ctx context.Context, tx db.DBTX, flightID int64, document string) (bool, error)
	FindByCode(ctx context.Context, tx db.DBTX, code reservation.Code) (*ReservationSnapshot, error)
}
