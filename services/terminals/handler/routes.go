package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
	httpHandler "github.com/victoreduardo21/drb-operacao/services/terminals/handler/http"
)

// Handler exposes the terminal registry routes
type Handler struct {
	terminalHTTP *httpHandler.TerminalHandler
}

// NewHandler creates a new terminal route handler
func NewHandler(terminalUC terminals.TerminalUC) *Handler {
	return &Handler{
		terminalHTTP: httpHandler.NewTerminalHandler(terminalUC),
	}
}

// RegisterRoutes registers the terminal routes on an authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("/terminals")
	group.GET("", h.terminalHTTP.ListTerminals)
	group.POST("", h.terminalHTTP.RegisterTerminal)
	group.POST("/sync", h.terminalHTTP.SyncTerminals)
	group.DELETE("/:id", h.terminalHTTP.DeleteTerminal)
}
