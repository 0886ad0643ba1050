//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"flightdesk/internal/infra/cache"
	"flightdesk/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*cache.RedisReservationCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisReservationCache(client, ttl), mr
}

func TestRedisReservationCache(t *testing.T) {
	ctx := context.Background()
	views := []*queries.ReservationView{
		{ID: 1, FlightID: 7, Document: "doc-a", Code: "123456", CreatedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)},
		{ID: 2, FlightID: 7, Document: "doc-b", Code: "654321", CreatedAt: time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)},
	}

	t.Run("miss before set", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		got, ok, err := c.GetByFlight(ctx, 7)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("set then get round trip", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		require.NoError(t, c.SetByFlight(ctx, 7, views))

		got, ok, err := c.GetByFlight(ctx, 7)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, "123456", got[0].Code)
		assert.Equal(t, "654321", got[1].Code)
	})

	t.Run("entries are scoped per flight", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		require.NoError(t, c.SetByFlight(ctx, 7, views))

		_, ok, err := c.GetByFlight(ctx, 8)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		require.NoError(t, c.SetByFlight(ctx, 7, views))
		require.NoError(t, c.InvalidateFlight(ctx, 7))

		_, ok, err := c.GetByFlight(ctx, 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate of absent entry is a no-op", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		assert.NoError(t, c.InvalidateFlight(ctx, 99))
	})

	t.Run("entry expires after the TTL", func(t *testing.T) {
		c, mr := newTestCache(t, time.Minute)

		require.NoError(t, c.SetByFlight(ctx, 7, views))
		mr.FastForward(2 * time.Minute)

		_, ok, err := c.GetByFlight(ctx, 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty list is cached, not treated as a miss", func(t *testing.T) {
		c, _ := newTestCache(t, time.Minute)

		require.NoError(t, c.SetByFlight(ctx, 7, []*queries.ReservationView{}))

		got, ok, err := c.GetByFlight(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}
