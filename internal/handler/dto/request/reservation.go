package request

import "strings"

type CreateReservationRequest struct {
	FlightID int64  `json:"flight_id" binding:"required,gt=0"`
	Document string `json:"document" binding:"required,min=1,max=64"`
}

// TrimmedDocument normalizes the passenger document before it reaches the
// duplicate check, so "  123 " and "123" count as the same passenger.
func (r CreateReservationRequest) TrimmedDocument() string {
	return strings.TrimSpace(r.Document)
}
