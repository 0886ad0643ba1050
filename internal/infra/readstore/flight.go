package readstore

import (
	"context"

	"flightdesk/internal/domain/flight"
	"flightdesk/internal/infra"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/usecase/queries"
)

type FlightReadStore struct {
	db db.DBTX
}

func NewFlightReadStore(dbtx db.DBTX) *FlightReadStore {
	return &FlightReadStore{db: dbtx}
}

func (r *FlightReadStore) FindAll(ctx context.Context) ([]*queries.FlightListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, origin, destination, departure_time
		FROM flights
		ORDER BY departure_time`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list flights", err)
	}
	defer rows.Close()

	items := make([]*queries.FlightListItem, 0)
	for rows.Next() {
		var it queries.FlightListItem
		if err := rows.Scan(&it.ID, &it.Origin, &it.Destination, &it.DepartureTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan flight row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate flight rows", err)
	}
	return items, nil
}

func (r *FlightReadStore) FindByID(ctx context.Context, id int64) (*queries.FlightView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, origin, destination, departure_time, created_at, updated_at
		FROM flights
		WHERE id = $1`, id)

	var v queries.FlightView
	if err := row.Scan(&v.ID, &v.Origin, &v.Destination, &v.DepartureTime, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find flight by ID", err)
	}

	seats, err := r.loadSeats(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Seats = seats
	return &v, nil
}

// loadSeats always returns all SeatCount slots, unoccupied ones with a nil
// document, so clients render a complete seat map.
func (r *FlightReadStore) loadSeats(ctx context.Context, flightID int64) ([]queries.SeatView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT seat_number, document
		FROM flight_seats
		WHERE flight_id = $1
		ORDER BY seat_number`, flightID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load flight seats", err)
	}
	defer rows.Close()

	seats := make([]queries.SeatView, flight.SeatCount)
	for i := range seats {
		seats[i] = queries.SeatView{Number: i + 1}
	}
	for rows.Next() {
		var (
			seat     int
			document string
		)
		if err := rows.Scan(&seat, &document); err != nil {
			return nil, infra.WrapRepoErr("failed to scan flight seat row", err)
		}
		if seat >= 1 && seat <= flight.SeatCount {
			doc := document
			seats[seat-1].Document = &doc
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate flight seat rows", err)
	}
	return seats, nil
}

var _ queries.FlightReadStore = (*FlightReadStore)(nil)
