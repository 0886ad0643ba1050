package components

import (
	"flightdesk/internal/infra/cache"
	"flightdesk/internal/infra/db"
	"flightdesk/internal/infra/readstore"
	"flightdesk/internal/infra/uow"
	"flightdesk/internal/pkg/config"
	"flightdesk/internal/usecase/commands"
	"flightdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Flight
		fx.Annotate(
			readstore.NewFlightReadStore,
			fx.As(new(queries.FlightReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewReservationCache,
			fx.As(new(queries.ReservationCache)),
			fx.As(new(commands.ReservationCacheInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewReservationCache(client *redis.Client, cfg config.Config) *cache.RedisReservationCache {
	return cache.NewRedisReservationCache(client, cfg.Booking.ReservationsCacheTTL)
}
