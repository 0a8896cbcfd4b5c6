package usecase

import (
	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// Overlays runs one reconciliation against a fresh recording surface
func (uc *MapUC) Overlays(filters livemap.Filters, search string) livemap.OverlayList {
	data := uc.store.Snapshot()
	surface := NewRecordingSurface()
	reconciler := NewReconciler(surface)
	reconciler.Reconcile(data, filters, search)

	return livemap.OverlayList{
		Overlays: surface.Overlays(),
		State:    BuildState(data, filters, search, reconciler.Len()),
	}
}
