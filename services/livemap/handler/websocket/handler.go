package websocket

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	pkgws "github.com/victoreduardo21/drb-operacao/internal/pkg/websocket"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

// MapWSHandler serves the live map stream
type MapWSHandler struct {
	ctx     context.Context
	manager *pkgws.Manager
	store   store.DataStore
}

// NewMapWSHandler creates a live map handler. Sessions end when ctx is
// cancelled.
func NewMapWSHandler(ctx context.Context, manager *pkgws.Manager, dataStore store.DataStore) *MapWSHandler {
	return &MapWSHandler{
		ctx:     ctx,
		manager: manager,
		store:   dataStore,
	}
}

// HandleWebSocket authenticates and runs one live map session
func (h *MapWSHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *pkgws.Client, conn *websocket.Conn) error {
		if err := NewSession(conn, h.store, client.UserID, h.manager).Run(h.ctx); err != nil {
			// the connection is hijacked, so there is no HTTP response left to write
			logger.Warn("Live map session ended with error",
				logger.String("user_id", client.UserID),
				logger.ErrorField(err))
		}
		return nil
	})
}
