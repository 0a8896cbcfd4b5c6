package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
	"github.com/victoreduardo21/drb-operacao/services/fleet"
	"github.com/victoreduardo21/drb-operacao/services/store"
)

const (
	defaultInterval = 3 * time.Second
	defaultStep     = 0.005
)

// Simulator moves every vehicle by a small random offset on each tick
type Simulator struct {
	store      store.DataStore
	positionGW fleet.PositionGW
	interval   time.Duration
	step       float64
	random     func() float64
	now        func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulator creates a new position simulator. positionGW may be nil when
// no broker is configured.
func NewSimulator(
	cfg models.SimulationConfig,
	dataStore store.DataStore,
	positionGW fleet.PositionGW,
) *Simulator {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	step := cfg.StepDegrees
	if step <= 0 {
		step = defaultStep
	}
	return &Simulator{
		store:      dataStore,
		positionGW: positionGW,
		interval:   interval,
		step:       step,
		random:     rand.Float64,
		now:        models.Now,
	}
}
