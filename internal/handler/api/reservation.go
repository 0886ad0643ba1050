package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "flightdesk/internal/handler/dto/request"
	resdto "flightdesk/internal/handler/dto/response"
	"flightdesk/internal/handler/httperr"
	"flightdesk/internal/usecase/commands"
	"flightdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary List reservations for a flight
// @Description List all reservations of the given flight, oldest first
// @Tags reservations
// @Produce json
// @Param flightID path int true "Flight ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/flight/{flightID} [get]
func (h *ReservationHandler) ListByFlight(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("flightID"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flight ID format")
		return
	}

	views, err := h.reservationQueries.ListByFlight(c.Request.Context(), flightID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.ReservationResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromReservationView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create reservation
// @Description Create a reservation for a passenger document on a flight
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), req.FlightID, req.TrimmedDocument())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFlightNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
		case errors.Is(err, commands.ErrDuplicateReservation):
			httperr.AbortWithError(c, http.StatusConflict, err, "A reservation with this document already exists for this flight")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Check in
// @Description Assign a seat to the reservation identified by code
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Param seat path int true "Seat number (1-9)"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code}/checkin/{seat} [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	seat, err := strconv.Atoi(c.Param("seat"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat number format")
		return
	}

	result, err := h.reservationCommands.CheckIn(c.Request.Context(), c.Param("code"), seat)
	if err != nil {
		h.writeSeatError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}

// @Summary Swap seat
// @Description Move the reservation's passenger from one held seat to a free one
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Param from path int true "Currently held seat number"
// @Param to path int true "Destination seat number"
// @Success 200 {object} resdto.SwapSeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code}/swap/{from}/{to} [patch]
func (h *ReservationHandler) SwapSeat(c *gin.Context) {
	from, err := strconv.Atoi(c.Param("from"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat number format")
		return
	}
	to, err := strconv.Atoi(c.Param("to"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat number format")
		return
	}

	result, err := h.reservationCommands.SwapSeat(c.Request.Context(), c.Param("code"), from, to)
	if err != nil {
		h.writeSeatError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapSeatResult(result))
}

func (h *ReservationHandler) writeSeatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found")
	case errors.Is(err, commands.ErrFlightNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
	case errors.Is(err, commands.ErrSeatOutOfRange):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat number must be between 1 and 9")
	case errors.Is(err, commands.ErrSeatTaken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat is already taken")
	case errors.Is(err, commands.ErrNotSeatHolder):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat is not held by this reservation")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
