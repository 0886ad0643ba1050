package response

import (
	"fmt"
	"time"

	"flightdesk/internal/usecase/commands"
	"flightdesk/internal/usecase/queries"
)

type ReservationResponse struct {
	ID        int64     `json:"id"`
	FlightID  int64     `json:"flightId"`
	Document  string    `json:"document"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

type CheckInResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Seat    int    `json:"seat"`
}

type SwapSeatResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	From    int    `json:"from"`
	To      int    `json:"to"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        rm.ID,
		FlightID:  rm.FlightID,
		Document:  rm.Document,
		Code:      rm.Code,
		CreatedAt: rm.CreatedAt,
	}
}

func FromCheckInResult(r *commands.CheckInResult) *CheckInResponse {
	return &CheckInResponse{
		Message: fmt.Sprintf("Check-in completed for seat %d.", r.Seat),
		Code:    r.Code,
		Seat:    r.Seat,
	}
}

func FromSwapSeatResult(r *commands.SwapSeatResult) *SwapSeatResponse {
	return &SwapSeatResponse{
		Message: fmt.Sprintf("Seat swap completed: %d to %d.", r.From, r.To),
		Code:    r.Code,
		From:    r.From,
		To:      r.To,
	}
}
