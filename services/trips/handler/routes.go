package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/services/trips"
	httpHandler "github.com/victoreduardo21/drb-operacao/services/trips/handler/http"
)

// Handler exposes the trip and driver routes
type Handler struct {
	tripHTTP *httpHandler.TripHandler
}

// NewHandler creates a new trip route handler
func NewHandler(tripUC trips.TripUC) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
	}
}

// RegisterRoutes registers the trip routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("/trips")
	group.GET("", h.tripHTTP.ListTrips)
	group.GET("/requests", h.tripHTTP.ListRequests)
	group.POST("", h.tripHTTP.CreateTrip)
	group.GET("/:id/steps", h.tripHTTP.GetProgress)
	group.POST("/:id/assign", h.tripHTTP.AssignDriver)
	group.POST("/:id/advance", h.tripHTTP.AdvanceTrip)

	api.GET("/drivers", h.tripHTTP.ListDrivers)
}
