//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"flightdesk/internal/usecase/queries"
	"flightdesk/tests/common/builder"
	queriesmock "flightdesk/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListByFlight(t *testing.T) {
	ctx := context.Background()
	views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView()}

	t.Run("cache hit skips the read store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := queriesmock.NewMockReservationCache(ctrl)
		cache.EXPECT().GetByFlight(gomock.Any(), int64(1)).Return(views, true, nil)

		q := queries.NewReservationQueries(store, cache)
		got, err := q.ListByFlight(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("cache miss falls through and backfills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := queriesmock.NewMockReservationCache(ctrl)
		cache.EXPECT().GetByFlight(gomock.Any(), int64(1)).Return(nil, false, nil)
		store.EXPECT().FindByFlightID(gomock.Any(), int64(1)).Return(views, nil)
		cache.EXPECT().SetByFlight(gomock.Any(), int64(1), views).Return(nil)

		q := queries.NewReservationQueries(store, cache)
		got, err := q.ListByFlight(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("cache failures never fail the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := queriesmock.NewMockReservationCache(ctrl)
		cache.EXPECT().GetByFlight(gomock.Any(), int64(1)).Return(nil, false, errors.New("redis down"))
		store.EXPECT().FindByFlightID(gomock.Any(), int64(1)).Return(views, nil)
		cache.EXPECT().SetByFlight(gomock.Any(), int64(1), views).Return(errors.New("redis down"))

		q := queries.NewReservationQueries(store, cache)
		got, err := q.ListByFlight(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("works without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().FindByFlightID(gomock.Any(), int64(1)).Return(views, nil)

		q := queries.NewReservationQueries(store, nil)
		got, err := q.ListByFlight(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("store error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		store.EXPECT().FindByFlightID(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))

		q := queries.NewReservationQueries(store, nil)
		_, err := q.ListByFlight(ctx, 1)

		assert.Error(t, err)
	})
}
