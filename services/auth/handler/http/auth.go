package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/middleware"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/auth"
)

// AuthHandler handles login and session requests
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth HTTP handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login authenticates an operator and returns an access token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	result, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, auth.ErrInvalidCredentials.Error())
		case errors.Is(err, auth.ErrAuthUnavailable):
			logger.Warn("Login rejected, users sheet unavailable",
				logger.String("endpoint", "POST /api/v1/auth/login"),
				logger.ErrorField(err))
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Serviço de autenticação indisponível")
		}
		logger.Error("Login failed",
			logger.String("endpoint", "POST /api/v1/auth/login"),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout ends the caller's session
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := middleware.UserID(c)
	if err := h.authUC.Logout(c.Request().Context(), userID); err != nil {
		logger.Error("Logout failed",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to logout")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// Me returns the logged in operator
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.UserID(c)
	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return utils.UnauthorizedResponse(c, "Session expired")
		}
		logger.Error("Failed to load session",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}
