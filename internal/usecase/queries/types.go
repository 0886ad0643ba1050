package queries

import "time"

// Read models (DTO for read side)
type ReservationView struct {
	ID        int64     `json:"id"`
	FlightID  int64     `json:"flight_id"`
	Document  string    `json:"document"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

type SeatView struct {
	Number   int     `json:"number"`
	Document *string `json:"document,omitempty"`
}

type FlightView struct {
	ID            int64      `json:"id"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureTime time.Time  `json:"departure_time"`
	Seats         []SeatView `json:"seats"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type FlightListItem struct {
	ID            int64     `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
}
