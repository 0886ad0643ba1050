//go:build unit || e2e

package builder

import (
	"time"

	domflight "flightdesk/internal/domain/flight"
	"flightdesk/internal/usecase/queries"
)

type FlightBuilder struct {
	ID            int64
	Origin        string
	Destination   string
	DepartureTime time.Time
	Seats         domflight.SeatMap
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewFlightBuilder() *FlightBuilder {
	now := time.Now()
	return &FlightBuilder{
		ID:            1,
		Origin:        "GRU",
		Destination:   "GIG",
		DepartureTime: now.Add(24 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(b)
	return b
}

func (b *FlightBuilder) WithSeat(seat int, document string) *FlightBuilder {
	b.Seats[seat-1] = document
	return b
}

func (b *FlightBuilder) BuildDomain() *domflight.Flight {
	return domflight.Reconstruct(b.ID, b.Origin, b.Destination, b.DepartureTime, b.Seats, b.CreatedAt, b.UpdatedAt)
}

func (b *FlightBuilder) BuildView() *queries.FlightView {
	seats := make([]queries.SeatView, domflight.SeatCount)
	for i := range seats {
		seats[i] = queries.SeatView{Number: i + 1}
		if b.Seats[i] != "" {
			doc := b.Seats[i]
			seats[i].Document = &doc
		}
	}
	return &queries.FlightView{
		ID:            b.ID,
		Origin:        b.Origin,
		Destination:   b.Destination,
		DepartureTime: b.DepartureTime,
		Seats:         seats,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *FlightBuilder) BuildListItem() *queries.FlightListItem {
	return &queries.FlightListItem{
		ID:            b.ID,
		Origin:        b.Origin,
		Destination:   b.Destination,
		DepartureTime: b.DepartureTime,
	}
}
