package models

import "errors"

// Terminal is a registered facility (port terminal, depot, yard) with a
// circular geofence around its entrance.
type Terminal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Radius   float64 `json:"radius"` // in km
	Capacity int     `json:"capacity"`
	City     string  `json:"city,omitempty"`
	Address  string  `json:"address,omitempty"`
	CNPJ     string  `json:"cnpj,omitempty"`
}

// TerminalInput is the registry form payload
type TerminalInput struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Radius   float64 `json:"radius"`
	Capacity int     `json:"capacity"`
	City     string  `json:"city"`
	Address  string  `json:"address"`
	CNPJ     string  `json:"cnpj"`
}

var (
	ErrTerminalNameRequired = errors.New("terminal name is required")
	ErrInvalidLatitude      = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude     = errors.New("longitude must be between -180 and 180")
	ErrInvalidRadius        = errors.New("radius must be positive")
	ErrInvalidCapacity      = errors.New("capacity cannot be negative")
)

// Validate checks the registry form fields
func (in TerminalInput) Validate() error {
	if in.Name == "" {
		return ErrTerminalNameRequired
	}
	if in.Lat < -90 || in.Lat > 90 {
		return ErrInvalidLatitude
	}
	if in.Lng < -180 || in.Lng > 180 {
		return ErrInvalidLongitude
	}
	if in.Radius <= 0 {
		return ErrInvalidRadius
	}
	if in.Capacity < 0 {
		return ErrInvalidCapacity
	}
	return nil
}
