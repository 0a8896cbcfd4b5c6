package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/trips"
)

// assignLocation is recorded on the first timeline event
const assignLocation = "App"

func newTripID() string {
	return "TR-" + utils.ShortID(8)
}

// Create registers a Pendente trip between two existing terminals
func (uc *TripUC) Create(ctx context.Context, input models.TripInput) (models.Trip, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CargoType = strings.TrimSpace(input.CargoType)
	if input.CustomerName == "" {
		return models.Trip{}, fmt.Errorf("%w: customer name is required", trips.ErrInvalidTrip)
	}
	if input.OriginTerminalID == input.DestinationTerminalID {
		return models.Trip{}, fmt.Errorf("%w: origin and destination must differ", trips.ErrInvalidTrip)
	}

	trip := models.Trip{
		ID:                    uc.newID(),
		OriginTerminalID:      input.OriginTerminalID,
		DestinationTerminalID: input.DestinationTerminalID,
		CustomerName:          input.CustomerName,
		CargoType:             input.CargoType,
		Status:                models.TripPending,
		CreatedAt:             uc.now(),
		Timeline:              []models.TimelineEvent{},
	}

	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		if _, ok := data.TerminalByID(input.OriginTerminalID); !ok {
			return data, fmt.Errorf("%w: unknown origin terminal %q", trips.ErrInvalidTrip, input.OriginTerminalID)
		}
		if _, ok := data.TerminalByID(input.DestinationTerminalID); !ok {
			return data, fmt.Errorf("%w: unknown destination terminal %q", trips.ErrInvalidTrip, input.DestinationTerminalID)
		}
		data.Trips = append(data.Trips, trip)
		return data, nil
	})
	if err != nil {
		return models.Trip{}, err
	}

	logger.InfoCtx(ctx, "Trip created",
		logger.String("trip_id", trip.ID),
		logger.String("customer", trip.CustomerName))
	return trip, nil
}

// Assign allocates a free driver to a pending trip
func (uc *TripUC) Assign(ctx context.Context, tripID, driverID string) (models.Trip, error) {
	var assigned models.Trip
	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		ti := tripIndex(data, tripID)
		if ti < 0 {
			return data, trips.ErrTripNotFound
		}
		di := driverIndex(data, driverID)
		if di < 0 {
			return data, trips.ErrDriverNotFound
		}
		trip := &data.Trips[ti]
		if trip.Status != models.TripPending {
			return data, trips.ErrTripNotPending
		}
		driver := &data.Drivers[di]
		if !driver.IsFree() {
			return data, trips.ErrDriverBusy
		}

		id := driver.ID
		trip.DriverID = &id
		trip.Status = models.TripToOrigin
		trip.Timeline = append(trip.Timeline, models.TimelineEvent{
			Event:     models.EventTripStarted,
			Timestamp: uc.now(),
			Location:  assignLocation,
		})
		driver.Status = models.DriverBusy
		assigned = *trip
		return data, nil
	})
	if err != nil {
		return models.Trip{}, err
	}

	logger.InfoCtx(ctx, "Driver assigned",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))
	return assigned, nil
}

// Advance moves an assigned trip to its next status and records the event.
// Reaching Finalizado frees the driver.
func (uc *TripUC) Advance(ctx context.Context, tripID string) (models.Trip, error) {
	var advanced models.Trip
	_, err := uc.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		ti := tripIndex(data, tripID)
		if ti < 0 {
			return data, trips.ErrTripNotFound
		}
		trip := &data.Trips[ti]
		switch trip.Status {
		case models.TripPending:
			return data, trips.ErrTripUnassigned
		case models.TripCompleted:
			return data, trips.ErrTripCompleted
		}
		next, ok := trip.Status.Next()
		if !ok {
			return data, fmt.Errorf("%w: unknown status %q", trips.ErrInvalidTrip, trip.Status)
		}

		trip.Status = next
		trip.Timeline = append(trip.Timeline, models.TimelineEvent{
			Event:     models.WorkflowSteps[next.Ordinal()-1],
			Timestamp: uc.now(),
			Location:  eventLocation(data, *trip),
		})

		if next == models.TripCompleted && trip.Assigned() {
			if di := driverIndex(data, *trip.DriverID); di >= 0 {
				data.Drivers[di].Status = models.DriverFree
			}
		}
		advanced = *trip
		return data, nil
	})
	if err != nil {
		return models.Trip{}, err
	}

	logger.InfoCtx(ctx, "Trip advanced",
		logger.String("trip_id", tripID),
		logger.String("status", string(advanced.Status)))
	return advanced, nil
}

// eventLocation names the terminal where the trip's latest step happens
func eventLocation(data models.LogisticsData, trip models.Trip) string {
	terminalID := trip.DestinationTerminalID
	if trip.Status.Ordinal() <= models.TripInTransit.Ordinal() {
		terminalID = trip.OriginTerminalID
	}
	if t, ok := data.TerminalByID(terminalID); ok {
		return t.Name
	}
	return terminalID
}

func tripIndex(data models.LogisticsData, id string) int {
	for i := range data.Trips {
		if data.Trips[i].ID == id {
			return i
		}
	}
	return -1
}

func driverIndex(data models.LogisticsData, id string) int {
	for i := range data.Drivers {
		if data.Drivers[i].ID == id {
			return i
		}
	}
	return -1
}
