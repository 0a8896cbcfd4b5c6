package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	pkgws "github.com/victoreduardo21/drb-operacao/internal/pkg/websocket"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
	httpHandler "github.com/victoreduardo21/drb-operacao/services/livemap/handler/http"
	wsHandler "github.com/victoreduardo21/drb-operacao/services/livemap/handler/websocket"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

// Handler exposes the live map routes
type Handler struct {
	mapHTTP *httpHandler.MapHandler
	mapWS   *wsHandler.MapWSHandler
}

// NewHandler creates a new live map route handler
func NewHandler(ctx context.Context, mapUC livemap.MapUC, manager *pkgws.Manager, dataStore store.DataStore) *Handler {
	return &Handler{
		mapHTTP: httpHandler.NewMapHandler(mapUC),
		mapWS:   wsHandler.NewMapWSHandler(ctx, manager, dataStore),
	}
}

// RegisterRoutes registers the overlay view on the authenticated API group
// and the stream on e, which authenticates on its own.
func (h *Handler) RegisterRoutes(e *echo.Echo, api *echo.Group) {
	api.GET("/map/overlays", h.mapHTTP.GetOverlays)
	e.GET("/ws/map", h.mapWS.HandleWebSocket)
}
