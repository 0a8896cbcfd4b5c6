package constants

// WebSocket event types
const (
	EventError = "error"

	// Live map, server to client
	EventOverlayCreate = "overlay_create"
	EventOverlayUpdate = "overlay_update"
	EventOverlayRemove = "overlay_remove"
	EventMapState      = "map_state"

	// Live map, client to server
	EventSetFilters   = "set_filters"
	EventSetSearch    = "set_search"
	EventToggleFilter = "toggle_filter"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnknownEvent  = "unknown_event"
	ErrorUnauthorized  = "unauthorized"
)

// Geohash precision used in position events, about 150m cells
const GeohashPrecision = 7
