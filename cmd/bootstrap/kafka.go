package bootstrap

import (
	"context"

	"flightdesk/internal/infra/events"
	"flightdesk/internal/pkg/config"
	"flightdesk/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns nil when Kafka is disabled; the commands layer
// treats a nil publisher as "no events".
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	if !cfg.Kafka.Enabled {
		return nil
	}

	producer := events.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.ReservationTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
