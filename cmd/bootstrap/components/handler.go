package components

import (
	"flightdesk/internal/handler"
	"flightdesk/internal/handler/api"
	"flightdesk/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFlightHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)
