package usecase

import (
	"sort"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
)

const recentActivityLimit = 5

// systemActor names the author of events on trips without a known driver
const systemActor = "Sistema"

// Overview computes the dashboard KPIs from the current snapshot
func (uc *DashboardUC) Overview() dashboard.Overview {
	data := uc.store.Snapshot()

	var out dashboard.Overview
	for _, trip := range data.Trips {
		switch trip.Status {
		case models.TripPending:
			out.PendingTrips++
		case models.TripCompleted:
			out.CompletedTrips++
		default:
			out.ActiveTrips++
		}
	}
	out.TotalTrips = out.ActiveTrips + out.PendingTrips + out.CompletedTrips
	out.PctActive = percent(out.ActiveTrips, out.TotalTrips)
	out.PctPending = percent(out.PendingTrips, out.TotalTrips)
	out.PctCompleted = percent(out.CompletedTrips, out.TotalTrips)

	for _, d := range data.Drivers {
		if d.IsFree() {
			out.FreeDrivers++
		}
	}
	out.TotalDrivers = len(data.Drivers)

	if uc.sheet != nil {
		out.SheetConnected = uc.sheet.SheetConnected()
	}
	out.RecentActivity = RecentActivity(data, recentActivityLimit)
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// RecentActivity flattens every trip timeline and returns the newest limit
// events first.
func RecentActivity(data models.LogisticsData, limit int) []dashboard.ActivityEntry {
	entries := []dashboard.ActivityEntry{}
	for _, trip := range data.Trips {
		driverName := systemActor
		if trip.Assigned() {
			if d, ok := data.DriverByID(*trip.DriverID); ok {
				driverName = d.Name
			}
		}
		for _, ev := range trip.Timeline {
			entries = append(entries, dashboard.ActivityEntry{
				Event:      ev.Event,
				Timestamp:  ev.Timestamp,
				Location:   ev.Location,
				TripID:     trip.ID,
				DriverName: driverName,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
