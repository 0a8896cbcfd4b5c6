package models

import "time"

// DriverStatus tells whether a vehicle is available for dispatch
type DriverStatus string

const (
	DriverFree DriverStatus = "Livre"
	DriverBusy DriverStatus = "Ocupado"
)

// Driver represents a vehicle and its driver as tracked by the app
type Driver struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Plate      string       `json:"plate"`
	CurrentLat float64      `json:"currentLat"`
	CurrentLng float64      `json:"currentLng"`
	Status     DriverStatus `json:"status"`
	LastUpdate time.Time    `json:"lastUpdate"`
}

// IsFree reports whether the driver can take a new trip
func (d Driver) IsFree() bool {
	return d.Status == DriverFree
}

// PositionUpdate is published after every simulated GPS tick
type PositionUpdate struct {
	DriverID  string       `json:"driver_id"`
	Plate     string       `json:"plate"`
	Status    DriverStatus `json:"status"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Geohash   string       `json:"geohash"`
	Timestamp time.Time    `json:"timestamp"`
}
