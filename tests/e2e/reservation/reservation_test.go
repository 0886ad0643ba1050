//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	resdto "flightdesk/internal/handler/dto/response"
	"flightdesk/tests/common/dbtest"
	"flightdesk/tests/common/httptest"
	"flightdesk/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) createReservation(flightID int64, document string) resdto.ReservationResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
		"flight_id": flightID,
		"document":  document,
	})

	var response resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return response
}

func (s *reservationSuite) TestCreateReservation() {
	s.Run("creates a reservation with a six digit code", func() {
		response := s.createReservation(1, "11122233344")

		expected := resdto.ReservationResponse{FlightID: 1, Document: "11122233344"}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID", "Code", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, response, opts...); diff != "" {
			s.T().Errorf("reservation response mismatch (-want +got):\n%s", diff)
		}
		s.Regexp(`^[0-9]{6}$`, response.Code)
		s.NotZero(response.ID)
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, 1))
	})

	s.Run("rejects a second booking of the same document on the same flight", func() {
		s.createReservation(1, "11122233344")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
			"flight_id": int64(1),
			"document":  "11122233344",
		})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, 1))
	})

	s.Run("same document can book different flights", func() {
		s.createReservation(1, "11122233344")
		response := s.createReservation(2, "11122233344")

		s.Equal(int64(2), response.FlightID)
	})

	s.Run("unknown flight returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
			"flight_id": int64(9999),
			"document":  "11122233344",
		})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flight not found")
	})

	s.Run("concurrent bookings of the same document yield exactly one reservation", func() {
		const workers = 8
		var wg sync.WaitGroup
		codes := make([]int, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
					"flight_id": int64(1),
					"document":  "99988877766",
				})
				codes[n] = rec.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			if code == http.StatusCreated {
				created++
			} else {
				s.Equal(http.StatusConflict, code)
			}
		}
		s.Equal(1, created)
		s.Equal(1, dbtest.CountReservations(s.T(), s.DB, 1))
	})
}

func (s *reservationSuite) TestListByFlight() {
	s.Run("returns reservations oldest first", func() {
		first := s.createReservation(1, "doc-one")
		second := s.createReservation(1, "doc-two")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/flight/1", nil)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(first.Code, response[0].Code)
		s.Equal(second.Code, response[1].Code)
	})

	s.Run("unknown flight yields an empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/flight/9999", nil)

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("list reflects mutations immediately despite the cache", func() {
		s.createReservation(1, "doc-one")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/flight/1", nil)
		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)

		s.createReservation(1, "doc-two")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/flight/1", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *reservationSuite) TestCheckIn() {
	checkInURL := func(code string, seat int) string {
		return fmt.Sprintf("%s/%s/checkin/%d", reservationsURL, code, seat)
	}

	s.Run("assigns a free seat to the reservation", func() {
		created := s.createReservation(1, "doc-one")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(created.Code, 3), nil)

		var response resdto.CheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Seat)
		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 3))
	})

	s.Run("rejects an occupied seat", func() {
		first := s.createReservation(1, "doc-one")
		second := s.createReservation(1, "doc-two")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(first.Code, 3), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(second.Code, 3), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already taken")
		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 3))
	})

	s.Run("rejects out-of-range seats", func() {
		created := s.createReservation(1, "doc-one")

		for _, seat := range []int{0, 10, -1} {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(created.Code, seat), nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("unknown code returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL("000000", 3), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("malformed code returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL("abc123", 3), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("concurrent check-ins to one seat admit exactly one passenger", func() {
		const workers = 6
		created := make([]resdto.ReservationResponse, workers)
		for i := 0; i < workers; i++ {
			created[i] = s.createReservation(1, fmt.Sprintf("doc-%d", i))
		}

		var wg sync.WaitGroup
		statuses := make([]int, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(created[n].Code, 5), nil)
				statuses[n] = rec.Code
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, status := range statuses {
			if status == http.StatusOK {
				winners++
			} else {
				s.Equal(http.StatusBadRequest, status)
			}
		}
		s.Equal(1, winners)
	})
}

func (s *reservationSuite) TestSwapSeat() {
	swapURL := func(code string, from, to int) string {
		return fmt.Sprintf("%s/%s/swap/%d/%d", reservationsURL, code, from, to)
	}
	checkInURL := func(code string, seat int) string {
		return fmt.Sprintf("%s/%s/checkin/%d", reservationsURL, code, seat)
	}

	s.Run("moves the passenger to the new seat", func() {
		created := s.createReservation(1, "doc-one")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(created.Code, 2), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(created.Code, 2, 7), nil)

		var response resdto.SwapSeatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.From)
		s.Equal(7, response.To)
		s.Equal("", dbtest.SeatHolder(s.T(), s.DB, 1, 2))
		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 7))
	})

	s.Run("a seat freed by a swap can be claimed by another reservation", func() {
		first := s.createReservation(1, "doc-one")
		second := s.createReservation(1, "doc-two")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(first.Code, 3), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(first.Code, 3, 5), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(second.Code, 3), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("doc-two", dbtest.SeatHolder(s.T(), s.DB, 1, 3))
		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 5))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(first.Code, 5, 3), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already taken")
	})

	s.Run("swapping back restores the previous seat", func() {
		created := s.createReservation(1, "doc-one")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(created.Code, 2), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(created.Code, 2, 7), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(created.Code, 7, 2), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 2))
		s.Equal("", dbtest.SeatHolder(s.T(), s.DB, 1, 7))
	})

	s.Run("rejects moving to an occupied seat and leaves both seats unchanged", func() {
		first := s.createReservation(1, "doc-one")
		second := s.createReservation(1, "doc-two")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(first.Code, 2), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkInURL(second.Code, 7), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(first.Code, 2, 7), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already taken")
		s.Equal("doc-one", dbtest.SeatHolder(s.T(), s.DB, 1, 2))
		s.Equal("doc-two", dbtest.SeatHolder(s.T(), s.DB, 1, 7))
	})

	s.Run("rejects swapping from a seat the reservation does not hold", func() {
		created := s.createReservation(1, "doc-one")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, swapURL(created.Code, 2, 7), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not held")
	})
}
