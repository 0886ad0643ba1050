package shared

import (
	"time"

	"flightdesk/internal/domain/reservation"
)

// Minimal write-side snapshot of a persisted reservation, used by the
// check-in and seat-swap workflows to resolve a code to its owner.
type ReservationSnapshot struct {
	ID        int64
	FlightID  int64
	Document  string
	Code      reservation.Code
	CreatedAt time.Time
}
