package readstore

import (
	"context"

	"flightdesk/internal/infra"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/usecase/queries"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByFlightID(ctx context.Context, flightID int64) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, flight_id, document, code, created_at
		FROM reservations
		WHERE flight_id = $1
		ORDER BY id`, flightID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by flight", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var v queries.ReservationView
		if err := rows.Scan(&v.ID, &v.FlightID, &v.Document, &v.Code, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)
