package usecase

import (
	"sort"

	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// RecordingSurface is an in-memory Surface. Handles are *livemap.OverlayView
// values numbered from 1.
type RecordingSurface struct {
	nextID   int64
	overlays map[int64]*livemap.OverlayView
}

// NewRecordingSurface creates an empty recording surface
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{overlays: make(map[int64]*livemap.OverlayView)}
}

func (s *RecordingSurface) Create(key livemap.OverlayKey, spec livemap.OverlaySpec) livemap.Overlay {
	s.nextID++
	view := &livemap.OverlayView{ID: s.nextID, Key: key, Spec: spec}
	s.overlays[view.ID] = view
	return view
}

func (s *RecordingSurface) Update(overlay livemap.Overlay, spec livemap.OverlaySpec) {
	if view, ok := overlay.(*livemap.OverlayView); ok {
		view.Spec = spec
	}
}

func (s *RecordingSurface) Remove(overlay livemap.Overlay) {
	if view, ok := overlay.(*livemap.OverlayView); ok {
		delete(s.overlays, view.ID)
	}
}

// Overlays returns the drawn overlays ordered by handle id
func (s *RecordingSurface) Overlays() []livemap.OverlayView {
	out := make([]livemap.OverlayView, 0, len(s.overlays))
	for _, v := range s.overlays {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
