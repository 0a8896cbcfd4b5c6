package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Expiration: 10, Issuer: "test"}

type stubSessions struct {
	ok  bool
	err error
}

func (s stubSessions) ValidateSession(ctx context.Context, userID string) (bool, error) {
	return s.ok, s.err
}

func newEchoServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, func(client *Client, conn *websocket.Conn) error {
			return SendMessage(conn, "hello", map[string]string{"user_id": client.UserID})
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, query string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
}

func TestManager_TokenInQuery(t *testing.T) {
	srv := newEchoServer(t, NewManager(testJWT, stubSessions{ok: true}))
	token, _, err := jwtpkg.GenerateToken(models.User{ID: "u-1", Role: "Gerente"}, testJWT)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "?token="+token), nil)
	require.NoError(t, err)
	defer conn.Close()

	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "hello", msg.Event)
	assert.JSONEq(t, `{"user_id":"u-1"}`, string(msg.Data))
}

func TestManager_TokenInHeader(t *testing.T) {
	srv := newEchoServer(t, NewManager(testJWT, nil))
	token, _, err := jwtpkg.GenerateToken(models.User{ID: "u-2"}, testJWT)
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), header)
	require.NoError(t, err)
	conn.Close()
}

func TestManager_Rejections(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken(models.User{ID: "u-3"}, testJWT)
	require.NoError(t, err)

	tests := []struct {
		name     string
		sessions SessionValidator
		query    string
		status   int
	}{
		{"missing token", nil, "", http.StatusUnauthorized},
		{"bad token", nil, "?token=garbage", http.StatusUnauthorized},
		{"logged out", stubSessions{ok: false}, "?token=" + token, http.StatusUnauthorized},
		{"session store down", stubSessions{err: assert.AnError}, "?token=" + token, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newEchoServer(t, NewManager(testJWT, tt.sessions))
			_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, tt.query), nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestManager_ValidateSession(t *testing.T) {
	ok, err := NewManager(testJWT, nil).ValidateSession(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewManager(testJWT, stubSessions{ok: false}).ValidateSession(context.Background(), "u-1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewManager(testJWT, stubSessions{err: assert.AnError}).ValidateSession(context.Background(), "u-1")
	assert.ErrorIs(t, err, assert.AnError)
}
