package queries

import (
	"context"

	"flightdesk/internal/infra"
	"flightdesk/internal/pkg/errs"
)

var ErrFlightNotFound = errs.New("flight not found")

type FlightQueries interface {
	List(ctx context.Context) ([]*FlightListItem, error)
	GetByID(ctx context.Context, id int64) (*FlightView, error)
}

type FlightReadStore interface {
	FindAll(ctx context.Context) ([]*FlightListItem, error)
	FindByID(ctx context.Context, id int64) (*FlightView, error)
}

type flightQueriesImpl struct {
	store FlightReadStore
}

func NewFlightQueries(store FlightReadStore) FlightQueries {
	return &flightQueriesImpl{store: store}
}

func (q *flightQueriesImpl) List(ctx context.Context) ([]*FlightListItem, error) {
	return q.store.FindAll(ctx)
}

func (q *flightQueriesImpl) GetByID(ctx context.Context, id int64) (*FlightView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return view, nil
}
