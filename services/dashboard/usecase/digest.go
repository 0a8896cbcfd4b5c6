package usecase

import (
	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/dashboard"
)

const digestAlerts = "Verificar se há muitos motoristas no mesmo terminal ou viagens atrasadas."

// Digest summarizes the current snapshot for the analyst
func (uc *DashboardUC) Digest() dashboard.Digest {
	return BuildDigest(uc.store.Snapshot())
}

// BuildDigest counts trips and drivers and places each driver in the
// geofences that contain it.
func BuildDigest(data models.LogisticsData) dashboard.Digest {
	digest := dashboard.Digest{
		Terminals:         make([]dashboard.TerminalDigest, 0, len(data.Terminals)),
		DriversByTerminal: make(map[string]int, len(data.Terminals)),
		Alerts:            digestAlerts,
	}

	for _, trip := range data.Trips {
		switch {
		case trip.Status == models.TripPending:
			digest.TripsPending++
		case trip.Status.IsActive():
			digest.TripsActive++
		}
	}
	for _, d := range data.Drivers {
		switch d.Status {
		case models.DriverFree:
			digest.DriversFree++
		case models.DriverBusy:
			digest.DriversBusy++
		}
	}

	for _, t := range data.Terminals {
		digest.Terminals = append(digest.Terminals, dashboard.TerminalDigest{
			Name:     t.Name,
			Capacity: t.Capacity,
			Geohash:  utils.EncodeGeohash(t.Lat, t.Lng, constants.GeohashPrecision),
		})

		center := utils.GeoPoint{Latitude: t.Lat, Longitude: t.Lng}
		inside := 0
		for _, d := range data.Drivers {
			if utils.WithinRadius(center, utils.GeoPoint{Latitude: d.CurrentLat, Longitude: d.CurrentLng}, t.Radius) {
				inside++
			}
		}
		digest.DriversByTerminal[t.Name] += inside
	}
	return digest
}
