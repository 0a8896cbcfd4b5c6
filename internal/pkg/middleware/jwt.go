package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "user_id"
	ContextEmail  = "user_email"
	ContextRole   = "user_role"
)

// SessionValidator reports whether a user still has a live session
type SessionValidator interface {
	ValidateSession(ctx context.Context, userID string) (bool, error)
}

// JWTAuthMiddleware authenticates bearer tokens. When sessions is non-nil a
// token whose session was ended by logout is rejected.
func JWTAuthMiddleware(config models.JWTConfig, sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if sessions != nil {
				ok, err := sessions.ValidateSession(c.Request().Context(), claims.UserID)
				if err != nil {
					logger.ErrorCtx(c.Request().Context(), "Session lookup failed",
						logger.String("user_id", claims.UserID),
						logger.ErrorField(err))
					return utils.InternalServerErrorResponse(c, "")
				}
				if !ok {
					return utils.UnauthorizedResponse(c, "Session expired")
				}
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, claims.Role)
			AddAttribute(c, "user.id", claims.UserID)

			return next(c)
		}
	}
}

// UserID returns the authenticated user id, empty when unauthenticated
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}
