package usecase

import (
	"context"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/constants"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
)

// Start launches the tick loop. It is a no-op while the loop is running and
// can be called again after Stop.
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runningLocked() {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done

	go s.run(runCtx, done)
	logger.Info("Position simulator started", logger.Duration("interval", s.interval))
}

// Stop cancels the tick loop and waits for it to exit
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
	logger.Info("Position simulator stopped")
}

// Running reports whether the tick loop is active
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runningLocked()
}

// runningLocked must be called with mu held. A loop whose parent context was
// cancelled counts as stopped.
func (s *Simulator) runningLocked() bool {
	if s.done == nil {
		return false
	}
	select {
	case <-s.done:
		s.cancel()
		s.cancel, s.done = nil, nil
		return false
	default:
		return true
	}
}

func (s *Simulator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick applies one random step to every vehicle and publishes the new
// positions. Publish failures are logged only.
func (s *Simulator) Tick(ctx context.Context) {
	now := s.now()

	data, err := s.store.Update(func(data models.LogisticsData) (models.LogisticsData, error) {
		for i := range data.Drivers {
			d := &data.Drivers[i]
			lat := d.CurrentLat + (s.random()-0.5)*s.step
			lng := d.CurrentLng + (s.random()-0.5)*s.step
			d.CurrentLat, d.CurrentLng = utils.ClampLatLng(lat, lng)
			d.LastUpdate = now
		}
		return data, nil
	})
	if err != nil {
		logger.Error("Failed to apply simulated positions", logger.ErrorField(err))
		return
	}

	if s.positionGW == nil || len(data.Drivers) == 0 {
		return
	}

	updates := make([]models.PositionUpdate, 0, len(data.Drivers))
	for _, d := range data.Drivers {
		updates = append(updates, models.PositionUpdate{
			DriverID:  d.ID,
			Plate:     d.Plate,
			Status:    d.Status,
			Latitude:  d.CurrentLat,
			Longitude: d.CurrentLng,
			Geohash:   utils.EncodeGeohash(d.CurrentLat, d.CurrentLng, constants.GeohashPrecision),
			Timestamp: now,
		})
	}
	if err := s.positionGW.PublishPositions(ctx, updates); err != nil {
		logger.Warn("Failed to publish vehicle positions",
			logger.Int("vehicles", len(updates)),
			logger.ErrorField(err))
	}
}
