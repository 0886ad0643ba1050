//go:build unit || e2e

package builder

import (
	"time"

	domreservation "flightdesk/internal/domain/reservation"
	"flightdesk/internal/pkg/random"
	"flightdesk/internal/usecase/queries"
	"flightdesk/internal/usecase/shared"
)

type ReservationBuilder struct {
	ID        int64
	FlightID  int64
	Document  string
	Code      string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        1,
		FlightID:  1,
		Document:  "12345678900",
		Code:      "123456",
		CreatedAt: time.Now(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain(src random.Source, now time.Time) (*domreservation.Reservation, error) {
	return domreservation.New(b.FlightID, b.Document, src, now)
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:        b.ID,
		FlightID:  b.FlightID,
		Document:  b.Document,
		Code:      domreservation.Code(b.Code),
		CreatedAt: b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		FlightID:  b.FlightID,
		Document:  b.Document,
		Code:      b.Code,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestMap() map[string]any {
	return map[string]any{
		"flight_id": b.FlightID,
		"document":  b.Document,
	}
}
