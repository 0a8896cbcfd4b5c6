package models

import (
	"time"
)

// TripStatus represents the current status of a trip. The values are the
// labels shown to operators.
type TripStatus string

const (
	TripPending       TripStatus = "Pendente"
	TripToOrigin      TripStatus = "Indo para Origem"
	TripAtOrigin      TripStatus = "Na Origem"
	TripInTransit     TripStatus = "Em Trânsito"
	TripAtDestination TripStatus = "No Destino"
	TripCompleted     TripStatus = "Finalizado"
)

// tripStatusOrder is the fixed progression of a trip
var tripStatusOrder = []TripStatus{
	TripPending,
	TripToOrigin,
	TripAtOrigin,
	TripInTransit,
	TripAtDestination,
	TripCompleted,
}

// Ordinal returns the position of the status in the workflow, or -1 for an
// unknown status.
func (s TripStatus) Ordinal() int {
	for i, st := range tripStatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status that follows s. ok is false for Finalizado and
// unknown statuses.
func (s TripStatus) Next() (next TripStatus, ok bool) {
	i := s.Ordinal()
	if i < 0 || i >= len(tripStatusOrder)-1 {
		return s, false
	}
	return tripStatusOrder[i+1], true
}

// IsActive reports whether the trip is assigned and not yet finished
func (s TripStatus) IsActive() bool {
	return s != TripPending && s != TripCompleted
}

// Workflow event labels. Step i (1-based) is reached when the status ordinal
// is at least i.
const (
	EventTripStarted      = "Iniciou Viagem"
	EventArrivedOrigin    = "Chegou na Origem"
	EventDeparted         = "Saiu para Entrega"
	EventArrivedDest      = "Chegou no Destino"
	EventDeliveryFinished = "Finalizou Entrega"
)

// WorkflowSteps lists the five mandatory trip steps in order
var WorkflowSteps = []string{
	EventTripStarted,
	EventArrivedOrigin,
	EventDeparted,
	EventArrivedDest,
	EventDeliveryFinished,
}

// TimelineEvent is one audit entry of a trip
type TimelineEvent struct {
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
}

// Trip represents a shipment between two terminals
type Trip struct {
	ID                    string          `json:"id"`
	DriverID              *string         `json:"driverId"`
	OriginTerminalID      string          `json:"originTerminalId"`
	DestinationTerminalID string          `json:"destinationTerminalId"`
	CustomerName          string          `json:"customerName"`
	CargoType             string          `json:"cargoType"`
	Status                TripStatus      `json:"status"`
	CreatedAt             time.Time       `json:"createdAt"`
	Timeline              []TimelineEvent `json:"timeline"`
}

// Assigned reports whether a driver has been allocated
func (t Trip) Assigned() bool {
	return t.DriverID != nil && *t.DriverID != ""
}

// TripInput is the payload for a new shipment request
type TripInput struct {
	OriginTerminalID      string `json:"originTerminalId"`
	DestinationTerminalID string `json:"destinationTerminalId"`
	CustomerName          string `json:"customerName"`
	CargoType             string `json:"cargoType"`
}

// StepView is the rendered state of one workflow step
type StepView struct {
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	SubLabel  string     `json:"subLabel,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// TripView is a trip enriched with the data the trip pages display
type TripView struct {
	Trip
	DriverName      string     `json:"driverName,omitempty"`
	DriverPlate     string     `json:"driverPlate,omitempty"`
	OriginName      string     `json:"originName,omitempty"`
	DestinationName string     `json:"destinationName,omitempty"`
	Steps           []StepView `json:"steps,omitempty"`
}

// TripRequests splits the trip list the way the dispatch page shows it
type TripRequests struct {
	Pending    []TripView `json:"pending"`
	InProgress []TripView `json:"inProgress"`
}
