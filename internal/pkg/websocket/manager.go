package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// SessionValidator reports whether the operator behind a token is still logged in
type SessionValidator interface {
	ValidateSession(ctx context.Context, userID string) (bool, error)
}

// Client is the authenticated operator behind a connection
type Client struct {
	UserID string
	Role   string
}

// Manager authenticates and upgrades WebSocket connections
type Manager struct {
	cfg      models.JWTConfig
	sessions SessionValidator
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager. sessions may be nil.
func NewManager(jwtConfig models.JWTConfig, sessions SessionValidator) *Manager {
	return &Manager{
		cfg:      jwtConfig,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and runs handleClient until it returns
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader already wrote the HTTP error
		logger.Warn("WebSocket upgrade failed", logger.ErrorField(err))
		return nil
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// ValidateSession re-checks a connected operator's session. Without a
// session validator every token-authenticated client stays valid.
func (m *Manager) ValidateSession(ctx context.Context, userID string) (bool, error) {
	if m.sessions == nil {
		return true, nil
	}
	return m.sessions.ValidateSession(ctx, userID)
}

// tokenFromRequest reads a bearer token from the header, or from the token
// query parameter since browsers cannot set headers on WebSocket requests.
func tokenFromRequest(c echo.Context) (string, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		return parts[1], nil
	}
	if token := c.QueryParam("token"); token != "" {
		return token, nil
	}
	return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
}

func (m *Manager) authenticateClient(c echo.Context) (*Client, error) {
	token, err := tokenFromRequest(c)
	if err != nil {
		return nil, err
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.ErrorField(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if m.sessions != nil {
		ok, err := m.sessions.ValidateSession(c.Request().Context(), claims.UserID)
		if err != nil {
			logger.Error("Session lookup failed", logger.String("user_id", claims.UserID), logger.ErrorField(err))
			return nil, echo.NewHTTPError(http.StatusInternalServerError, "Session lookup failed")
		}
		if !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
		}
	}

	return &Client{UserID: claims.UserID, Role: claims.Role}, nil
}

// SendMessage writes one event to the connection
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	return SendMessage(conn, event, data)
}

// SendMessage writes one event envelope to conn
func SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendErrorMessage sends an error message to a WebSocket client
func SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
