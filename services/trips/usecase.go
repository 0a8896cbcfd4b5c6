package trips

import (
	"context"
	"errors"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrTripNotPending = errors.New("trip is not pending")
	ErrTripUnassigned = errors.New("trip has no driver assigned")
	ErrDriverBusy     = errors.New("driver is busy")
	ErrTripCompleted  = errors.New("trip is already completed")
	ErrInvalidTrip    = errors.New("invalid trip")
)

// TripUC defines the interface for trip listing and dispatch
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/victoreduardo21/drb-operacao/services/trips TripUC
type TripUC interface {
	// List returns the non-pending trips matching query, with their progress
	List(query string) []models.TripView
	// Requests splits the trips into pending and in progress
	Requests() models.TripRequests
	Progress(tripID string) ([]models.StepView, error)
	Drivers() []models.Driver

	Create(ctx context.Context, input models.TripInput) (models.Trip, error)
	Assign(ctx context.Context, tripID, driverID string) (models.Trip, error)
	Advance(ctx context.Context, tripID string) (models.Trip, error)
}
