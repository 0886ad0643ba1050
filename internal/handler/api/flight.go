package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "flightdesk/internal/handler/dto/response"
	"flightdesk/internal/handler/httperr"
	"flightdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flightQueries queries.FlightQueries
}

func NewFlightHandler(flightQueries queries.FlightQueries) *FlightHandler {
	return &FlightHandler{flightQueries: flightQueries}
}

// @Summary List flights
// @Description List all flights ordered by departure time
// @Tags flights
// @Produce json
// @Success 200 {array} resdto.FlightListResponse
// @Router /flights [get]
func (h *FlightHandler) List(c *gin.Context) {
	items, err := h.flightQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.FlightListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromFlightListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get flight
// @Description Get a flight with its full seat map
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} resdto.FlightResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flights/{id} [get]
func (h *FlightHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flight ID format")
		return
	}

	view, err := h.flightQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrFlightNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Flight not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromFlightView(view))
}
