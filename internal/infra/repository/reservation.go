package repository

import (
	"context"
	"time"

	"flightdesk/internal/domain/reservation"
	"flightdesk/internal/infra"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/usecase/shared"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO reservations (flight_id, document, code, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		res.FlightID(), res.Document(), res.Code().String(), res.CreatedAt()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) ExistsForFlightAndDocument(ctx context.Context, tx db.DBTX, flightID int64, document string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations WHERE flight_id = $1 AND document = $2
		)`, flightID, document).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check for duplicate booking", err)
	}
	return exists, nil
}

func (r *ReservationRepository) FindByCode(ctx context.Context, tx db.DBTX, code reservation.Code) (*shared.ReservationSnapshot, error) {
	row := tx.QueryRow(ctx, `
		SELECT id, flight_id, document, code, created_at
		FROM reservations
		WHERE code = $1`, code.String())

	var (
		snap    shared.ReservationSnapshot
		rawCode string
		created time.Time
	)
	if err := row.Scan(&snap.ID, &snap.FlightID, &snap.Document, &rawCode, &created); err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by code", err)
	}
	snap.Code = reservation.Code(rawCode)
	snap.CreatedAt = created
	return &snap, nil
}

var _ shared.ReservationRepository = (*ReservationRepository)(nil)
