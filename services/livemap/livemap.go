package livemap

import (
	"fmt"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// Filters are the map layer toggles
type Filters struct {
	ShowTerminals   bool `json:"showTerminals"`
	ShowGeofences   bool `json:"showGeofences"`
	ShowFreeDrivers bool `json:"showFreeDrivers"`
	ShowBusyDrivers bool `json:"showBusyDrivers"`
}

// DefaultFilters shows every layer
func DefaultFilters() Filters {
	return Filters{
		ShowTerminals:   true,
		ShowGeofences:   true,
		ShowFreeDrivers: true,
		ShowBusyDrivers: true,
	}
}

// Toggle flips the filter named by its JSON field name
func (f *Filters) Toggle(name string) error {
	switch name {
	case "showTerminals":
		f.ShowTerminals = !f.ShowTerminals
	case "showGeofences":
		f.ShowGeofences = !f.ShowGeofences
	case "showFreeDrivers":
		f.ShowFreeDrivers = !f.ShowFreeDrivers
	case "showBusyDrivers":
		f.ShowBusyDrivers = !f.ShowBusyDrivers
	default:
		return fmt.Errorf("unknown filter %q", name)
	}
	return nil
}

// OverlayKind tells which entity an overlay draws
type OverlayKind string

const (
	KindTerminal OverlayKind = "terminal"
	KindGeofence OverlayKind = "geofence"
	KindVehicle  OverlayKind = "vehicle"
)

// OverlayKey identifies the overlay of one entity
type OverlayKey struct {
	Kind     OverlayKind `json:"kind"`
	EntityID string      `json:"entityId"`
}

func (k OverlayKey) String() string {
	return string(k.Kind) + "/" + k.EntityID
}

// OverlaySpec holds everything needed to draw or redraw an overlay
type OverlaySpec struct {
	Lat          float64             `json:"lat"`
	Lng          float64             `json:"lng"`
	RadiusMeters float64             `json:"radiusMeters,omitempty"`
	Label        string              `json:"label,omitempty"`
	Popup        string              `json:"popup,omitempty"`
	Status       models.DriverStatus `json:"status,omitempty"`
	ZIndex       int                 `json:"zIndex"`
}

// Overlay is an opaque handle returned by a Surface
type Overlay interface{}

// Surface is the map the reconciler draws on
//
//go:generate mockgen -destination=mocks/mock_surface.go -package=mocks github.com/victoreduardo21/drb-operacao/services/livemap Surface
type Surface interface {
	Create(key OverlayKey, spec OverlaySpec) Overlay
	Update(overlay Overlay, spec OverlaySpec)
	Remove(overlay Overlay)
}

// Result counts the surface calls of one reconciliation pass
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
}

// MapState is the side panel summary sent after every pass
type MapState struct {
	Filters         Filters         `json:"filters"`
	Search          string          `json:"search"`
	VisibleDrivers  []models.Driver `json:"visibleDrivers"`
	VisibleCount    int             `json:"visibleCount"`
	FreeCount       int             `json:"freeCount"`
	BusyCount       int             `json:"busyCount"`
	NoDriverMatches bool            `json:"noDriverMatches"`
	Overlays        int             `json:"overlays"`
}

// OverlayView is one drawn overlay as reported to clients
type OverlayView struct {
	ID   int64       `json:"id"`
	Key  OverlayKey  `json:"key"`
	Spec OverlaySpec `json:"spec"`
}

// OverlayList is a full map render
type OverlayList struct {
	Overlays []OverlayView `json:"overlays"`
	State    MapState      `json:"state"`
}

// MapUC renders stateless map views from the current store snapshot
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/livemap MapUC
type MapUC interface {
	Overlays(filters Filters, search string) OverlayList
}
