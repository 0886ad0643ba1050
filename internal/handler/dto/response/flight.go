package response

import (
	"time"

	"flightdesk/internal/usecase/queries"
)

type SeatResponse struct {
	Number   int     `json:"number"`
	Document *string `json:"document,omitempty"`
}

type FlightResponse struct {
	ID            int64          `json:"id"`
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureTime time.Time      `json:"departureTime"`
	Seats         []SeatResponse `json:"seats"`
}

type FlightListResponse struct {
	ID            int64     `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
}

func FromFlightView(rm *queries.FlightView) *FlightResponse {
	seats := make([]SeatResponse, len(rm.Seats))
	for i, s := range rm.Seats {
		seats[i] = SeatResponse{Number: s.Number, Document: s.Document}
	}
	return &FlightResponse{
		ID:            rm.ID,
		Origin:        rm.Origin,
		Destination:   rm.Destination,
		DepartureTime: rm.DepartureTime,
		Seats:         seats,
	}
}

func FromFlightListItem(rm *queries.FlightListItem) *FlightListResponse {
	return &FlightListResponse{
		ID:            rm.ID,
		Origin:        rm.Origin,
		Destination:   rm.Destination,
		DepartureTime: rm.DepartureTime,
	}
}
