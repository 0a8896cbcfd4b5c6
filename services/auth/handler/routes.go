package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/services/auth"
	httpHandler "github.com/victoreduardo21/drb-operacao/services/auth/handler/http"
)

// Handler exposes the auth routes
type Handler struct {
	authHTTP *httpHandler.AuthHandler
}

// NewHandler creates a new auth route handler
func NewHandler(authUC auth.AuthUC) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(authUC),
	}
}

// RegisterRoutes registers login on the public group and the session
// routes on the authenticated group
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/auth/login", h.authHTTP.Login)

	protected.POST("/auth/logout", h.authHTTP.Logout)
	protected.GET("/auth/me", h.authHTTP.Me)
}
