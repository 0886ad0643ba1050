package queries

import (
	"context"
	"log/slog"
)

type ReservationQueries interface {
	// ListByFlight returns the flight's reservations in insertion order. An
	// unknown flight yields an empty list, not an error.
	ListByFlight(ctx context.Context, flightID int64) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByFlightID(ctx context.Context, flightID int64) ([]*ReservationView, error)
}

// ReservationCache is a read-through cache of per-flight reservation lists.
// A nil ok result means miss; cache failures must never fail the query.
type ReservationCache interface {
	GetByFlight(ctx context.Context, flightID int64) ([]*ReservationView, bool, error)
	SetByFlight(ctx context.Context, flightID int64, views []*ReservationView) error
	InvalidateFlight(ctx context.Context, flightID int64) error
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	cache ReservationCache
}

func NewReservationQueries(store ReservationReadStore, cache ReservationCache) ReservationQueries {
	return &reservationQueriesImpl{store: store, cache: cache}
}

func (q *reservationQueriesImpl) ListByFlight(ctx context.Context, flightID int64) ([]*ReservationView, error) {
	if q.cache != nil {
		cached, ok, err := q.cache.GetByFlight(ctx, flightID)
		if err != nil {
			slog.Warn("reservation cache read failed", "flight_id", flightID, "error", err.Error())
		} else if ok {
			return cached, nil
		}
	}

	views, err := q.store.FindByFlightID(ctx, flightID)
	if err != nil {
		return nil, err
	}

	if q.cache != nil {
		if err := q.cache.SetByFlight(ctx, flightID, views); err != nil {
			slog.Warn("reservation cache write failed", "flight_id", flightID, "error", err.Error())
		}
	}
	return views, nil
}
