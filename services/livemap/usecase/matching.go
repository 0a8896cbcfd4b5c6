package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/livemap"
)

// highlightZIndex lifts a vehicle whose plate matches a specific search
const highlightZIndex = 1000

// minHighlightQuery is the query length above which plate matches are lifted
const minHighlightQuery = 3

func terminalEligible(t models.Terminal, filters livemap.Filters, q string) bool {
	return filters.ShowTerminals && (q == "" || strings.Contains(strings.ToUpper(t.Name), q))
}

func geofenceEligible(t models.Terminal, filters livemap.Filters, q string) bool {
	return terminalEligible(t, filters, q) && filters.ShowGeofences
}

func driverMatchesSearch(d models.Driver, q string) bool {
	return q == "" ||
		strings.Contains(utils.NormalizePlate(d.Plate), q) ||
		strings.Contains(strings.ToUpper(d.Name), q)
}

func driverEligible(d models.Driver, filters livemap.Filters, q string) bool {
	layer := filters.ShowBusyDrivers
	if d.IsFree() {
		layer = filters.ShowFreeDrivers
	}
	return layer && driverMatchesSearch(d, q)
}

func terminalSpec(t models.Terminal) livemap.OverlaySpec {
	return livemap.OverlaySpec{
		Lat:   t.Lat,
		Lng:   t.Lng,
		Label: t.Name,
		Popup: fmt.Sprintf("%s\nCapacidade: %d", t.Name, t.Capacity),
	}
}

func geofenceSpec(t models.Terminal) livemap.OverlaySpec {
	return livemap.OverlaySpec{
		Lat:          t.Lat,
		Lng:          t.Lng,
		RadiusMeters: t.Radius * 1000,
	}
}

func vehicleSpec(d models.Driver, q string) livemap.OverlaySpec {
	plate := utils.NormalizePlate(d.Plate)
	spec := livemap.OverlaySpec{
		Lat:    d.CurrentLat,
		Lng:    d.CurrentLng,
		Label:  plate,
		Popup:  fmt.Sprintf("%s\nStatus: %s\nPlaca: %s", d.Name, d.Status, plate),
		Status: d.Status,
	}
	if utf8.RuneCountInString(q) > minHighlightQuery && strings.Contains(plate, q) {
		spec.ZIndex = highlightZIndex
	}
	return spec
}

// VisibleDrivers returns the drivers listed in the side panel
func VisibleDrivers(data models.LogisticsData, filters livemap.Filters, search string) []models.Driver {
	q := utils.NormalizePlate(search)
	out := make([]models.Driver, 0, len(data.Drivers))
	for _, d := range data.Drivers {
		if driverEligible(d, filters, q) {
			out = append(out, d)
		}
	}
	return out
}

// NoDriverMatchesSearch reports whether the search alone hides every driver.
// Layer toggles are ignored and an empty fleet never reports a miss.
func NoDriverMatchesSearch(data models.LogisticsData, search string) bool {
	if len(data.Drivers) == 0 {
		return false
	}
	q := utils.NormalizePlate(search)
	for _, d := range data.Drivers {
		if driverMatchesSearch(d, q) {
			return false
		}
	}
	return true
}

// BuildState summarizes a pass for the side panel
func BuildState(data models.LogisticsData, filters livemap.Filters, search string, overlays int) livemap.MapState {
	visible := VisibleDrivers(data, filters, search)
	state := livemap.MapState{
		Filters:         filters,
		Search:          search,
		VisibleDrivers:  visible,
		VisibleCount:    len(visible),
		NoDriverMatches: NoDriverMatchesSearch(data, search),
		Overlays:        overlays,
	}
	for _, d := range data.Drivers {
		if d.IsFree() {
			state.FreeCount++
		} else {
			state.BusyCount++
		}
	}
	return state
}
