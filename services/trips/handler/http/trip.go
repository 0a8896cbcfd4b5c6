package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/trips"
)

// TripHandler handles HTTP requests for trips and dispatch
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// assignRequest is the body of POST /trips/:id/assign
type assignRequest struct {
	DriverID string `json:"driverId"`
}

// ListTrips returns the active trip board, optionally filtered by ?q=
func (h *TripHandler) ListTrips(c echo.Context) error {
	list := h.tripUC.List(c.QueryParam("q"))
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", map[string]interface{}{
		"trips": list,
		"total": len(list),
	})
}

// ListRequests returns pending and in-progress trips for dispatch
func (h *TripHandler) ListRequests(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Trip requests retrieved successfully", h.tripUC.Requests())
}

// GetProgress returns the workflow steps of one trip
func (h *TripHandler) GetProgress(c echo.Context) error {
	steps, err := h.tripUC.Progress(c.Param("id"))
	if err != nil {
		return h.mapError(c, "GET /api/v1/trips/:id/steps", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip progress retrieved successfully", steps)
}

// CreateTrip registers a new shipment request
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var input models.TripInput
	if err := c.Bind(&input); err != nil {
		logger.Warn("Invalid trip request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	trip, err := h.tripUC.Create(c.Request().Context(), input)
	if err != nil {
		return h.mapError(c, "POST /api/v1/trips", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// AssignDriver allocates a free driver to a pending trip
func (h *TripHandler) AssignDriver(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driverId is required")
	}

	trip, err := h.tripUC.Assign(c.Request().Context(), c.Param("id"), req.DriverID)
	if err != nil {
		return h.mapError(c, "POST /api/v1/trips/:id/assign", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned successfully", trip)
}

// AdvanceTrip moves a trip to its next workflow status
func (h *TripHandler) AdvanceTrip(c echo.Context) error {
	trip, err := h.tripUC.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, "POST /api/v1/trips/:id/advance", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip advanced successfully", trip)
}

// ListDrivers returns the fleet
func (h *TripHandler) ListDrivers(c echo.Context) error {
	drivers := h.tripUC.Drivers()
	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", map[string]interface{}{
		"drivers": drivers,
		"total":   len(drivers),
	})
}

func (h *TripHandler) mapError(c echo.Context, endpoint string, err error) error {
	switch {
	case errors.Is(err, trips.ErrTripNotFound), errors.Is(err, trips.ErrDriverNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trips.ErrTripNotPending),
		errors.Is(err, trips.ErrDriverBusy),
		errors.Is(err, trips.ErrTripCompleted),
		errors.Is(err, trips.ErrTripUnassigned):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trips.ErrInvalidTrip):
		return utils.BadRequestResponse(c, err.Error())
	}
	logger.Error("Trip operation failed",
		logger.String("endpoint", endpoint),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "internal server error")
}
