package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
)

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard HTTP handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// GetOverview returns the operation KPIs and recent activity
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved successfully", h.dashboardUC.Overview())
}

// RequestAnalysis asks the AI analyst for a report. Failures come back as a
// placeholder text with status 200.
func (h *DashboardHandler) RequestAnalysis(c echo.Context) error {
	analysis := h.dashboardUC.Analyze(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Analysis generated", analysis)
}
