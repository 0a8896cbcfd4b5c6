package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// MapHandler serves stateless map renders
type MapHandler struct {
	mapUC livemap.MapUC
}

// NewMapHandler creates a new map HTTP handler
func NewMapHandler(mapUC livemap.MapUC) *MapHandler {
	return &MapHandler{
		mapUC: mapUC,
	}
}

// GetOverlays renders the map once for the given filters and search
func (h *MapHandler) GetOverlays(c echo.Context) error {
	filters := livemap.DefaultFilters()
	toggles := []struct {
		param string
		dst   *bool
	}{
		{"terminals", &filters.ShowTerminals},
		{"geofences", &filters.ShowGeofences},
		{"free", &filters.ShowFreeDrivers},
		{"busy", &filters.ShowBusyDrivers},
	}
	for _, t := range toggles {
		raw := c.QueryParam(t.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid value for "+t.param)
		}
		*t.dst = v
	}

	list := h.mapUC.Overlays(filters, c.QueryParam("q"))
	return utils.SuccessResponse(c, http.StatusOK, "Map overlays retrieved successfully", list)
}
