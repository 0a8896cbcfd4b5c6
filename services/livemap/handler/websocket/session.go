package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	pkgws "github.com/victoreduardo21/drb-operacao/internal/pkg/websocket"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
	"github.com/victoreduardo21/drb-operacao/services/livemap/usecase"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

const (
	closeWriteTimeout = time.Second
	// sessionCheckInterval bounds how long a logged-out operator keeps the
	// stream when the store is quiet
	sessionCheckInterval = 30 * time.Second
)

type searchMessage struct {
	Search string `json:"search"`
}

type toggleMessage struct {
	Filter string `json:"filter"`
}

// Session is one live map connection. Run owns the reconciler, so passes
// never overlap.
type Session struct {
	conn       *websocket.Conn
	store      store.DataStore
	userID     string
	sessions   pkgws.SessionValidator
	checkEvery time.Duration
	filters    livemap.Filters
	search     string
	surface    *remoteSurface
	reconciler *usecase.Reconciler
}

// NewSession creates a session with every layer visible and no search. The
// operator's login session is re-checked before each store-driven redraw and
// every sessionCheckInterval; sessions may be nil.
func NewSession(conn *websocket.Conn, dataStore store.DataStore, userID string, sessions pkgws.SessionValidator) *Session {
	s := &Session{
		conn:       conn,
		store:      dataStore,
		userID:     userID,
		sessions:   sessions,
		checkEvery: sessionCheckInterval,
		filters:    livemap.DefaultFilters(),
	}
	s.surface = newRemoteSurface(func(event string, data interface{}) error {
		return pkgws.SendMessage(conn, event, data)
	})
	s.reconciler = usecase.NewReconciler(s.surface)
	return s
}

// Run draws the map, then redraws on every store change or client message
// until the client leaves or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	changes, unsubscribe := s.store.Subscribe()

	incoming := make(chan []byte)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		s.readLoop(incoming, readErr, stop)
	}()

	defer func() {
		close(stop)
		s.conn.Close()
		<-readDone
		unsubscribe()
		logger.Info("Live map session closed", logger.String("user_id", s.userID))
	}()

	logger.Info("Live map session opened", logger.String("user_id", s.userID))
	if err := s.pass(); err != nil {
		return err
	}

	check := time.NewTicker(s.checkEvery)
	defer check.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(closeWriteTimeout))
			return nil

		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if !s.loggedIn(ctx) {
				return s.closeLoggedOut()
			}
			if err := s.pass(); err != nil {
				return err
			}

		case <-check.C:
			if !s.loggedIn(ctx) {
				return s.closeLoggedOut()
			}

		case msg := <-incoming:
			changed, err := s.handleMessage(msg)
			if err != nil {
				return err
			}
			if changed {
				if err := s.pass(); err != nil {
					return err
				}
			}

		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logger.Warn("Live map connection error",
					logger.String("user_id", s.userID),
					logger.ErrorField(err))
			}
			return nil
		}
	}
}

// loggedIn keeps the stream open on lookup errors; only a missing session
// ends it.
func (s *Session) loggedIn(ctx context.Context) bool {
	if s.sessions == nil {
		return true
	}
	ok, err := s.sessions.ValidateSession(ctx, s.userID)
	if err != nil {
		logger.Warn("Live map session check failed",
			logger.String("user_id", s.userID),
			logger.ErrorField(err))
		return true
	}
	return ok
}

func (s *Session) closeLoggedOut() error {
	logger.Info("Live map operator logged out, closing stream", logger.String("user_id", s.userID))
	if err := pkgws.SendErrorMessage(s.conn, constants.ErrorUnauthorized, "Session expired"); err != nil {
		return err
	}
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "session expired"),
		time.Now().Add(closeWriteTimeout))
	return nil
}

func (s *Session) readLoop(incoming chan<- []byte, readErr chan<- error, stop <-chan struct{}) {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		select {
		case incoming <- msg:
		case <-stop:
			return
		}
	}
}

// pass reconciles against the latest snapshot and reports the panel state
func (s *Session) pass() error {
	data := s.store.Snapshot()
	result := s.reconciler.Reconcile(data, s.filters, s.search)
	if s.surface.err != nil {
		return s.surface.err
	}

	logger.Debug("Live map reconciled",
		logger.String("user_id", s.userID),
		logger.Int("created", result.Created),
		logger.Int("updated", result.Updated),
		logger.Int("removed", result.Removed))

	return pkgws.SendMessage(s.conn, constants.EventMapState,
		usecase.BuildState(data, s.filters, s.search, s.reconciler.Len()))
}

// handleMessage applies a client message. changed reports whether the view
// inputs moved; err is only set when the connection can no longer be written.
func (s *Session) handleMessage(raw []byte) (changed bool, err error) {
	var msg models.WSMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return false, pkgws.SendErrorMessage(s.conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch msg.Event {
	case constants.EventSetFilters:
		var filters livemap.Filters
		if err := json.Unmarshal(msg.Data, &filters); err != nil {
			return false, pkgws.SendErrorMessage(s.conn, constants.ErrorInvalidFormat, "Invalid filters")
		}
		s.filters = filters

	case constants.EventSetSearch:
		var body searchMessage
		if err := json.Unmarshal(msg.Data, &body); err != nil {
			return false, pkgws.SendErrorMessage(s.conn, constants.ErrorInvalidFormat, "Invalid search")
		}
		s.search = body.Search

	case constants.EventToggleFilter:
		var body toggleMessage
		if err := json.Unmarshal(msg.Data, &body); err != nil {
			return false, pkgws.SendErrorMessage(s.conn, constants.ErrorInvalidFormat, "Invalid filter toggle")
		}
		if err := s.filters.Toggle(body.Filter); err != nil {
			return false, pkgws.SendErrorMessage(s.conn, constants.ErrorInvalidFormat, err.Error())
		}

	default:
		return false, pkgws.SendErrorMessage(s.conn, constants.ErrorUnknownEvent, "Unknown event type")
	}
	return true, nil
}
