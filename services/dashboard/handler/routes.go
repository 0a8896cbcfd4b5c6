package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
	httpHandler "github.com/victoreduardo21/drb-operacao/services/dashboard/handler/http"
)

// Handler exposes the dashboard routes
type Handler struct {
	dashboardHTTP *httpHandler.DashboardHandler
}

// NewHandler creates a new dashboard route handler
func NewHandler(dashboardUC dashboard.DashboardUC) *Handler {
	return &Handler{
		dashboardHTTP: httpHandler.NewDashboardHandler(dashboardUC),
	}
}

// RegisterRoutes registers the dashboard routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("/dashboard")
	group.GET("", h.dashboardHTTP.GetOverview)
	group.POST("/analysis", h.dashboardHTTP.RequestAnalysis)
}
