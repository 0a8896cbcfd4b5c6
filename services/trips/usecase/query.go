package usecase

import (
	"strings"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/trips"
)

// List returns every trip past Pendente. A non-empty query is normalized like
// a plate and matched against plate, driver name, customer and trip id.
func (uc *TripUC) List(query string) []models.TripView {
	data := uc.store.Snapshot()
	q := utils.NormalizePlate(query)

	views := make([]models.TripView, 0, len(data.Trips))
	for _, trip := range data.Trips {
		if trip.Status == models.TripPending {
			continue
		}
		view := buildView(data, trip)
		if q != "" && !matchesQuery(view, q) {
			continue
		}
		view.Steps = BuildSteps(trip, view.OriginName, view.DestinationName)
		views = append(views, view)
	}
	return views
}

func matchesQuery(view models.TripView, q string) bool {
	return strings.Contains(utils.NormalizePlate(view.DriverPlate), q) ||
		strings.Contains(strings.ToUpper(view.DriverName), q) ||
		strings.Contains(strings.ToUpper(view.CustomerName), q) ||
		strings.Contains(strings.ToUpper(view.ID), q)
}

// Requests returns the dispatch page lists
func (uc *TripUC) Requests() models.TripRequests {
	data := uc.store.Snapshot()
	out := models.TripRequests{
		Pending:    []models.TripView{},
		InProgress: []models.TripView{},
	}
	for _, trip := range data.Trips {
		switch {
		case trip.Status == models.TripPending:
			out.Pending = append(out.Pending, buildView(data, trip))
		case trip.Status.IsActive():
			out.InProgress = append(out.InProgress, buildView(data, trip))
		}
	}
	return out
}

// Progress returns the five workflow steps of a trip
func (uc *TripUC) Progress(tripID string) ([]models.StepView, error) {
	data := uc.store.Snapshot()
	trip, ok := data.TripByID(tripID)
	if !ok {
		return nil, trips.ErrTripNotFound
	}
	view := buildView(data, trip)
	return BuildSteps(trip, view.OriginName, view.DestinationName), nil
}

// Drivers returns the fleet
func (uc *TripUC) Drivers() []models.Driver {
	return uc.store.Snapshot().Drivers
}

func buildView(data models.LogisticsData, trip models.Trip) models.TripView {
	view := models.TripView{Trip: trip}
	if trip.Assigned() {
		if d, ok := data.DriverByID(*trip.DriverID); ok {
			view.DriverName = d.Name
			view.DriverPlate = utils.NormalizePlate(d.Plate)
		}
	}
	if t, ok := data.TerminalByID(trip.OriginTerminalID); ok {
		view.OriginName = t.Name
	}
	if t, ok := data.TerminalByID(trip.DestinationTerminalID); ok {
		view.DestinationName = t.Name
	}
	return view
}

// BuildSteps renders the workflow. The status decides completion: step i
// (1-based) is complete when the status ordinal is at least i, and the step
// matching the ordinal is current. The timeline only contributes timestamps.
func BuildSteps(trip models.Trip, originName, destinationName string) []models.StepView {
	ordinal := trip.Status.Ordinal()
	steps := make([]models.StepView, len(models.WorkflowSteps))
	for i, label := range models.WorkflowSteps {
		n := i + 1
		step := models.StepView{
			Label:     label,
			Completed: ordinal >= n,
			Current:   ordinal == n,
		}
		for _, ev := range trip.Timeline {
			if ev.Event == label {
				ts := ev.Timestamp
				step.Timestamp = &ts
				break
			}
		}
		switch label {
		case models.EventArrivedOrigin:
			step.SubLabel = originName
		case models.EventArrivedDest:
			step.SubLabel = destinationName
		}
		steps[i] = step
	}
	return steps
}
