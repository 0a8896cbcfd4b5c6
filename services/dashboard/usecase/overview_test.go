package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

type sheetFlag bool

func (s sheetFlag) SheetConnected() bool { return bool(s) }

func TestOverview_SeedData(t *testing.T) {
	// Arrange
	uc := NewDashboardUC(store.New(models.InitialData), sheetFlag(true), nil)

	// Act
	overview := uc.Overview()

	// Assert
	assert.Equal(t, 2, overview.ActiveTrips)
	assert.Equal(t, 1, overview.PendingTrips)
	assert.Equal(t, 0, overview.CompletedTrips)
	assert.Equal(t, 3, overview.TotalTrips)
	assert.InDelta(t, 66.666, overview.PctActive, 0.01)
	assert.InDelta(t, 33.333, overview.PctPending, 0.01)
	assert.Equal(t, 0.0, overview.PctCompleted)
	assert.Equal(t, 2, overview.FreeDrivers)
	assert.Equal(t, 4, overview.TotalDrivers)
	assert.True(t, overview.SheetConnected)

	require.Len(t, overview.RecentActivity, 4)
	first := overview.RecentActivity[0]
	assert.Equal(t, "TR-002", first.TripID)
	assert.Equal(t, "Ana Oliveira", first.DriverName)
	assert.Equal(t, models.EventTripStarted, first.Event)
	assert.Equal(t, "TR-001", overview.RecentActivity[3].TripID)
}

func TestOverview_EmptyStore(t *testing.T) {
	uc := NewDashboardUC(store.New(func() models.LogisticsData { return models.LogisticsData{} }), nil, nil)

	overview := uc.Overview()

	assert.Equal(t, 0, overview.TotalTrips)
	assert.Equal(t, 0.0, overview.PctActive)
	assert.False(t, overview.SheetConnected)
	assert.NotNil(t, overview.RecentActivity)
	assert.Empty(t, overview.RecentActivity)
}

func TestRecentActivity_LimitAndSystemActor(t *testing.T) {
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	ghost := "D-gone"
	data := models.LogisticsData{
		Trips: []models.Trip{{
			ID:       "TR-X",
			DriverID: &ghost,
			Timeline: []models.TimelineEvent{
				{Event: "a", Timestamp: base},
				{Event: "b", Timestamp: base.Add(time.Hour)},
				{Event: "c", Timestamp: base.Add(2 * time.Hour)},
				{Event: "d", Timestamp: base.Add(3 * time.Hour)},
				{Event: "e", Timestamp: base.Add(4 * time.Hour)},
				{Event: "f", Timestamp: base.Add(5 * time.Hour)},
			},
		}},
	}

	entries := RecentActivity(data, 5)

	require.Len(t, entries, 5)
	assert.Equal(t, "f", entries[0].Event)
	assert.Equal(t, "b", entries[4].Event)
	assert.Equal(t, "Sistema", entries[0].DriverName)
}
