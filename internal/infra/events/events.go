package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeReservationCreated = "reservation_created"
	TypeCheckedIn          = "reservation_checked_in"
	TypeSeatSwapped        = "reservation_seat_swapped"
)

// ReservationEvent is the wire envelope for reservation lifecycle events.
// The key is the reservation code so all events of one reservation land on
// the same partition.
type ReservationEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Type       string    `json:"type"`
	Code       string    `json:"code"`
	FlightID   int64     `json:"flight_id"`
	Document   string    `json:"document,omitempty"`
	Seat       int       `json:"seat,omitempty"`
	FromSeat   int       `json:"from_seat,omitempty"`
	ToSeat     int       `json:"to_seat,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
