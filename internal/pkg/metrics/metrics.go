package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	seatOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flightdesk",
			Name:      "seat_operations_total",
			Help:      "Seat mutations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, seatOperations)
	})
}

func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncSeatOperation(operation, outcome string) {
	seatOperations.WithLabelValues(operation, outcome).Inc()
}
