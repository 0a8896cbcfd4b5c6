package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
	"github.com/victoreduardo21/drb-operacao/services/fleet/mocks"
	"github.com/victoreduardo21/drb-operacao/services/store"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var tickTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSimulator(t *testing.T, gw *mocks.MockPositionGW, values ...float64) (*Simulator, *store.Store) {
	t.Helper()
	st := store.New(models.InitialData)
	sim := NewSimulator(models.SimulationConfig{Interval: time.Millisecond, StepDegrees: 0.005}, st, nil)
	if gw != nil {
		sim.positionGW = gw
	}
	i := 0
	sim.random = func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
	sim.now = func() time.Time { return tickTime }
	return sim, st
}

func TestTick_MovesEveryDriver(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockPositionGW(ctrl)
	sim, st := newTestSimulator(t, mockGW, 1.0, 0.0)
	before := st.Snapshot().Drivers

	mockGW.EXPECT().
		PublishPositions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updates []models.PositionUpdate) error {
			require.Len(t, updates, len(before))
			for i, u := range updates {
				assert.Equal(t, before[i].ID, u.DriverID)
				assert.Equal(t, before[i].Plate, u.Plate)
				assert.Equal(t, utils.EncodeGeohash(u.Latitude, u.Longitude, 7), u.Geohash)
				assert.Len(t, u.Geohash, 7)
				assert.Equal(t, tickTime, u.Timestamp)
			}
			return nil
		})

	// Act
	sim.Tick(context.Background())

	// Assert
	after := st.Snapshot().Drivers
	for i := range after {
		assert.InDelta(t, before[i].CurrentLat+0.0025, after[i].CurrentLat, 1e-9)
		assert.InDelta(t, before[i].CurrentLng-0.0025, after[i].CurrentLng, 1e-9)
		assert.Equal(t, tickTime, after[i].LastUpdate)
		assert.Equal(t, before[i].Status, after[i].Status)
	}
}

func TestTick_StepIsBounded(t *testing.T) {
	sim, st := newTestSimulator(t, nil, 0.0, 0.37, 0.999, 0.5, 0.12)
	before := st.Snapshot().Drivers

	sim.Tick(context.Background())

	for i, d := range st.Snapshot().Drivers {
		assert.LessOrEqual(t, math.Abs(d.CurrentLat-before[i].CurrentLat), 0.0025+1e-12)
		assert.LessOrEqual(t, math.Abs(d.CurrentLng-before[i].CurrentLng), 0.0025+1e-12)
	}
}

func TestTick_ClampsCoordinates(t *testing.T) {
	sim, st := newTestSimulator(t, nil, 1.0)
	_, err := st.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		data.Drivers[0].CurrentLat = 89.999
		data.Drivers[0].CurrentLng = 179.999
		return data, nil
	})
	require.NoError(t, err)

	sim.Tick(context.Background())

	d := st.Snapshot().Drivers[0]
	assert.Equal(t, 90.0, d.CurrentLat)
	assert.Equal(t, 180.0, d.CurrentLng)
}

func TestTick_PublishFailureDoesNotStopSimulation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockPositionGW(ctrl)
	sim, st := newTestSimulator(t, mockGW, 0.9)
	mockGW.EXPECT().PublishPositions(gomock.Any(), gomock.Any()).Return(errors.New("nats down")).Times(2)

	sim.Tick(context.Background())
	sim.Tick(context.Background())

	assert.Equal(t, uint64(2), st.Version())
}

func TestStartStop(t *testing.T) {
	sim, st := newTestSimulator(t, nil, 0.7)

	sim.Start(context.Background())
	sim.Start(context.Background())
	assert.True(t, sim.Running())

	assert.Eventually(t, func() bool { return st.Version() >= 2 }, time.Second, time.Millisecond)

	sim.Stop()
	assert.False(t, sim.Running())
	stopped := st.Version()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, st.Version())

	sim.Stop()
}

func TestStart_Restartable(t *testing.T) {
	sim, st := newTestSimulator(t, nil, 0.7)

	sim.Start(context.Background())
	sim.Stop()
	v := st.Version()

	sim.Start(context.Background())
	assert.Eventually(t, func() bool { return st.Version() > v }, time.Second, time.Millisecond)
	sim.Stop()
}

func TestStart_ParentContextCancelled(t *testing.T) {
	sim, _ := newTestSimulator(t, nil, 0.7)
	ctx, cancel := context.WithCancel(context.Background())

	sim.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return !sim.Running() }, time.Second, time.Millisecond)
	sim.Start(context.Background())
	assert.True(t, sim.Running())
	sim.Stop()
}

func TestNewSimulator_Defaults(t *testing.T) {
	sim := NewSimulator(models.SimulationConfig{}, store.New(models.InitialData), nil)
	assert.Equal(t, 3*time.Second, sim.interval)
	assert.Equal(t, 0.005, sim.step)
}
