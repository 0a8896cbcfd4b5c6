package usecase

import (
	"sort"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// Reconciler keeps the overlays on a Surface equal to the eligible entity
// set. It is not safe for concurrent use; callers serialize passes.
type Reconciler struct {
	surface  livemap.Surface
	overlays map[livemap.OverlayKey]livemap.Overlay
}

// NewReconciler creates a reconciler with no tracked overlays
func NewReconciler(surface livemap.Surface) *Reconciler {
	return &Reconciler{
		surface:  surface,
		overlays: make(map[livemap.OverlayKey]livemap.Overlay),
	}
}

type desiredOverlay struct {
	key  livemap.OverlayKey
	spec livemap.OverlaySpec
}

// Reconcile brings the surface in line with data, filters and search.
// Present overlays are updated in place so their handles survive.
func (r *Reconciler) Reconcile(data models.LogisticsData, filters livemap.Filters, search string) livemap.Result {
	q := utils.NormalizePlate(search)

	desired := make([]desiredOverlay, 0, 2*len(data.Terminals)+len(data.Drivers))
	for _, t := range data.Terminals {
		if terminalEligible(t, filters, q) {
			desired = append(desired, desiredOverlay{
				key:  livemap.OverlayKey{Kind: livemap.KindTerminal, EntityID: t.ID},
				spec: terminalSpec(t),
			})
		}
		if geofenceEligible(t, filters, q) {
			desired = append(desired, desiredOverlay{
				key:  livemap.OverlayKey{Kind: livemap.KindGeofence, EntityID: t.ID},
				spec: geofenceSpec(t),
			})
		}
	}
	for _, d := range data.Drivers {
		if driverEligible(d, filters, q) {
			desired = append(desired, desiredOverlay{
				key:  livemap.OverlayKey{Kind: livemap.KindVehicle, EntityID: d.ID},
				spec: vehicleSpec(d, q),
			})
		}
	}

	var result livemap.Result
	keep := make(map[livemap.OverlayKey]struct{}, len(desired))
	for _, want := range desired {
		if _, dup := keep[want.key]; dup {
			// duplicate entity ids draw once
			continue
		}
		keep[want.key] = struct{}{}

		if overlay, ok := r.overlays[want.key]; ok {
			r.surface.Update(overlay, want.spec)
			result.Updated++
			continue
		}
		r.overlays[want.key] = r.surface.Create(want.key, want.spec)
		result.Created++
	}

	for _, key := range r.Keys() {
		if _, ok := keep[key]; ok {
			continue
		}
		r.surface.Remove(r.overlays[key])
		delete(r.overlays, key)
		result.Removed++
	}
	return result
}

// Keys returns the tracked overlay keys in a stable order
func (r *Reconciler) Keys() []livemap.OverlayKey {
	keys := make([]livemap.OverlayKey, 0, len(r.overlays))
	for k := range r.overlays {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].EntityID < keys[j].EntityID
	})
	return keys
}

// Len returns the number of tracked overlays
func (r *Reconciler) Len() int {
	return len(r.overlays)
}

// Clear removes every overlay from the surface
func (r *Reconciler) Clear() int {
	keys := r.Keys()
	for _, key := range keys {
		r.surface.Remove(r.overlays[key])
		delete(r.overlays, key)
	}
	return len(keys)
}
