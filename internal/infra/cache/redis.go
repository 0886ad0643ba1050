package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flightdesk/internal/pkg/errs"
	"flightdesk/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// RedisReservationCache caches the per-flight reservation list. Entries are
// dropped on every successful booking, check-in or swap of that flight, so
// the TTL only bounds staleness after external writes.
type RedisReservationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReservationCache(client *redis.Client, ttl time.Duration) *RedisReservationCache {
	return &RedisReservationCache{client: client, ttl: ttl}
}

func (c *RedisReservationCache) GetByFlight(ctx context.Context, flightID int64) ([]*queries.ReservationView, bool, error) {
	data, err := c.client.Get(ctx, flightReservationsKey(flightID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read reservation cache")
	}

	var views []*queries.ReservationView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode reservation cache entry")
	}
	return views, true, nil
}

func (c *RedisReservationCache) SetByFlight(ctx context.Context, flightID int64, views []*queries.ReservationView) error {
	payload, err := json.Marshal(views)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation cache entry")
	}
	if err := c.client.Set(ctx, flightReservationsKey(flightID), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write reservation cache")
	}
	return nil
}

func (c *RedisReservationCache) InvalidateFlight(ctx context.Context, flightID int64) error {
	if err := c.client.Del(ctx, flightReservationsKey(flightID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate reservation cache")
	}
	return nil
}

func flightReservationsKey(flightID int64) string {
	return fmt.Sprintf("cache:flight:%d:reservations", flightID)
}

var _ queries.ReservationCache = (*RedisReservationCache)(nil)
