package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	jwtpkg "github.com/victoreduardo21/drb-operacao/internal/pkg/jwt"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	pkgws "github.com/victoreduardo21/drb-operacao/internal/pkg/websocket"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
	"github.com/victoreduardo21/drb-operacao/services/store"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testJWT = models.JWTConfig{Secret: "map-secret", Expiration: 10, Issuer: "test"}

type mapClient struct {
	t    *testing.T
	conn *websocket.Conn
}

func startSession(t *testing.T, ctx context.Context, st store.DataStore) *mapClient {
	t.Helper()
	e := echo.New()
	h := NewMapWSHandler(ctx, pkgws.NewManager(testJWT, nil), st)
	e.GET("/ws/map", h.HandleWebSocket)
	return dialMap(t, e)
}

// startCheckedSession runs a session whose login is re-checked against
// sessions every checkEvery
func startCheckedSession(t *testing.T, st store.DataStore, sessions pkgws.SessionValidator, checkEvery time.Duration) *mapClient {
	t.Helper()
	manager := pkgws.NewManager(testJWT, sessions)
	e := echo.New()
	e.GET("/ws/map", func(c echo.Context) error {
		return manager.HandleConnection(c, func(client *pkgws.Client, conn *websocket.Conn) error {
			s := NewSession(conn, st, client.UserID, manager)
			s.checkEvery = checkEvery
			return s.Run(context.Background())
		})
	})
	return dialMap(t, e)
}

func dialMap(t *testing.T, e *echo.Echo) *mapClient {
	t.Helper()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	token, _, err := jwtpkg.GenerateToken(models.User{ID: "u-1", Role: "Gerente"}, testJWT)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/map?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &mapClient{t: t, conn: conn}
}

type switchableSessions struct {
	live atomic.Bool
}

func (s *switchableSessions) ValidateSession(ctx context.Context, userID string) (bool, error) {
	return s.live.Load(), nil
}

// untilState reads events up to and including the next map_state
func (c *mapClient) untilState() ([]models.WSMessage, livemap.MapState) {
	c.t.Helper()
	var events []models.WSMessage
	for {
		require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var msg models.WSMessage
		require.NoError(c.t, c.conn.ReadJSON(&msg))
		if msg.Event == constants.EventMapState {
			var state livemap.MapState
			require.NoError(c.t, json.Unmarshal(msg.Data, &state))
			return events, state
		}
		events = append(events, msg)
	}
}

func (c *mapClient) send(event string, data interface{}) {
	c.t.Helper()
	require.NoError(c.t, pkgws.SendMessage(c.conn, event, data))
}

func countEvents(events []models.WSMessage) map[string]int {
	counts := map[string]int{}
	for _, e := range events {
		counts[e.Event]++
	}
	return counts
}

func TestSession_InitialRender(t *testing.T) {
	c := startSession(t, context.Background(), store.New(models.InitialData))

	events, state := c.untilState()

	assert.Equal(t, map[string]int{constants.EventOverlayCreate: 12}, countEvents(events))
	var first livemap.OverlayView
	require.NoError(t, json.Unmarshal(events[0].Data, &first))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, livemap.OverlayKey{Kind: livemap.KindTerminal, EntityID: "T1"}, first.Key)
	assert.Equal(t, 4, state.VisibleCount)
	assert.Equal(t, 12, state.Overlays)
	assert.Equal(t, livemap.DefaultFilters(), state.Filters)
}

func TestSession_SearchAndStoreChanges(t *testing.T) {
	st := store.New(models.InitialData)
	c := startSession(t, context.Background(), st)
	c.untilState()

	c.send(constants.EventSetSearch, map[string]string{"search": "LOG-5544"})
	events, state := c.untilState()

	assert.Equal(t, map[string]int{constants.EventOverlayUpdate: 1, constants.EventOverlayRemove: 11}, countEvents(events))
	var lifted livemap.OverlayView
	require.NoError(t, json.Unmarshal(events[0].Data, &lifted))
	assert.Equal(t, "D3", lifted.Key.EntityID)
	assert.Equal(t, 1000, lifted.Spec.ZIndex)
	assert.Equal(t, 1, state.VisibleCount)
	assert.Equal(t, "LOG-5544", state.Search)

	_, err := st.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Drivers[2].CurrentLat += 0.001
		return data, nil
	})
	require.NoError(t, err)

	events, _ = c.untilState()
	require.Len(t, events, 1)
	assert.Equal(t, constants.EventOverlayUpdate, events[0].Event)
	var moved livemap.OverlayView
	require.NoError(t, json.Unmarshal(events[0].Data, &moved))
	assert.Equal(t, lifted.ID, moved.ID)
}

func TestSession_ToggleFilter(t *testing.T) {
	c := startSession(t, context.Background(), store.New(models.InitialData))
	c.untilState()

	c.send(constants.EventToggleFilter, map[string]string{"filter": "showGeofences"})
	events, state := c.untilState()

	assert.Equal(t, map[string]int{constants.EventOverlayRemove: 4}, countEvents(events))
	assert.False(t, state.Filters.ShowGeofences)
	assert.Equal(t, 8, state.Overlays)

	c.send(constants.EventSetFilters, livemap.DefaultFilters())
	events, _ = c.untilState()
	assert.Equal(t, map[string]int{constants.EventOverlayCreate: 4}, countEvents(events))
}

func TestSession_BadMessages(t *testing.T) {
	c := startSession(t, context.Background(), store.New(models.InitialData))
	c.untilState()

	require.NoError(t, c.conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	var msg models.WSMessage
	require.NoError(t, c.conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)

	c.send("teleport", nil)
	require.NoError(t, c.conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)
	assert.Contains(t, string(msg.Data), constants.ErrorUnknownEvent)

	c.send(constants.EventToggleFilter, map[string]string{"filter": "showTrucks"})
	require.NoError(t, c.conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)
}

func TestSession_ContextCancelClosesStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := startSession(t, ctx, store.New(models.InitialData))
	c.untilState()

	cancel()

	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := c.conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

// expectLoggedOut reads the unauthorized error and the closing frame
func (c *mapClient) expectLoggedOut() {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg models.WSMessage
	require.NoError(c.t, c.conn.ReadJSON(&msg))
	assert.Equal(c.t, constants.EventError, msg.Event)
	assert.Contains(c.t, string(msg.Data), constants.ErrorUnauthorized)

	_, _, err := c.conn.ReadMessage()
	assert.True(c.t, websocket.IsCloseError(err, websocket.ClosePolicyViolation), "got %v", err)
}

func TestSession_LogoutClosesStreamOnNextStoreChange(t *testing.T) {
	// Arrange
	st := store.New(models.InitialData)
	sessions := &switchableSessions{}
	sessions.live.Store(true)
	c := startCheckedSession(t, st, sessions, time.Hour)
	c.untilState()

	// Act
	sessions.live.Store(false)
	_, err := st.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Drivers[0].CurrentLat += 0.001
		return data, nil
	})
	require.NoError(t, err)

	// Assert: no overlay for the moved driver reaches the logged-out operator
	c.expectLoggedOut()
}

func TestSession_LogoutClosesQuietStream(t *testing.T) {
	sessions := &switchableSessions{}
	sessions.live.Store(true)
	c := startCheckedSession(t, store.New(models.InitialData), sessions, 10*time.Millisecond)
	c.untilState()

	sessions.live.Store(false)

	c.expectLoggedOut()
}

func TestSession_StaysOpenWhileLoggedIn(t *testing.T) {
	st := store.New(models.InitialData)
	sessions := &switchableSessions{}
	sessions.live.Store(true)
	c := startCheckedSession(t, st, sessions, 10*time.Millisecond)
	c.untilState()

	time.Sleep(50 * time.Millisecond)
	_, err := st.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Drivers[0].CurrentLat += 0.001
		return data, nil
	})
	require.NoError(t, err)

	events, _ := c.untilState()
	require.Len(t, events, 1)
	assert.Equal(t, constants.EventOverlayUpdate, events[0].Event)
}
