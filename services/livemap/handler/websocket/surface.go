package websocket

import (
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// remoteHandle is the overlay handle a browser map keeps by id
type remoteHandle struct {
	id  int64
	key livemap.OverlayKey
}

// overlayRef is the payload of overlay_remove
type overlayRef struct {
	ID  int64              `json:"id"`
	Key livemap.OverlayKey `json:"key"`
}

// remoteSurface draws by emitting overlay events to one client. Updates that
// would not change the last sent spec are dropped. The first send error is
// kept and every later call becomes a no-op.
type remoteSurface struct {
	send   func(event string, data interface{}) error
	nextID int64
	last   map[int64]livemap.OverlaySpec
	err    error
}

func newRemoteSurface(send func(event string, data interface{}) error) *remoteSurface {
	return &remoteSurface{
		send: send,
		last: make(map[int64]livemap.OverlaySpec),
	}
}

func (s *remoteSurface) Create(key livemap.OverlayKey, spec livemap.OverlaySpec) livemap.Overlay {
	s.nextID++
	h := remoteHandle{id: s.nextID, key: key}
	s.last[h.id] = spec
	s.emit(constants.EventOverlayCreate, livemap.OverlayView{ID: h.id, Key: key, Spec: spec})
	return h
}

func (s *remoteSurface) Update(overlay livemap.Overlay, spec livemap.OverlaySpec) {
	h, ok := overlay.(remoteHandle)
	if !ok {
		return
	}
	if prev, ok := s.last[h.id]; ok && prev == spec {
		return
	}
	s.last[h.id] = spec
	s.emit(constants.EventOverlayUpdate, livemap.OverlayView{ID: h.id, Key: h.key, Spec: spec})
}

func (s *remoteSurface) Remove(overlay livemap.Overlay) {
	h, ok := overlay.(remoteHandle)
	if !ok {
		return
	}
	delete(s.last, h.id)
	s.emit(constants.EventOverlayRemove, overlayRef{ID: h.id, Key: h.key})
}

func (s *remoteSurface) emit(event string, data interface{}) {
	if s.err != nil {
		return
	}
	s.err = s.send(event, data)
}
