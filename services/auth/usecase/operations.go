package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/services/auth"
	"github.com/victoreduardo21/drb-operacao/services/fleet"
	"github.com/victoreduardo21/drb-operacao/services/store"
	"github.com/victoreduardo21/drb-operacao/services/terminals"
)

// OperationsRunner owns the work that runs between the first login and the
// moment no session is left, by logout or by expiry.
type OperationsRunner struct {
	root       context.Context
	terminalUC terminals.TerminalUC
	simulator  fleet.SimulatorUC
	store      store.DataStore
	sessions   auth.SessionRepo

	// mu also covers the session count in StopIfIdle, so a login that saved
	// its session before calling Start is always seen by the count.
	mu      sync.Mutex
	running bool
}

// NewOperationsRunner creates a runner. The simulator lives under root, so
// it also ends when the process shuts down. simulator may be nil.
func NewOperationsRunner(
	root context.Context,
	terminalUC terminals.TerminalUC,
	simulator fleet.SimulatorUC,
	dataStore store.DataStore,
	sessions auth.SessionRepo,
) *OperationsRunner {
	return &OperationsRunner{
		root:       root,
		terminalUC: terminalUC,
		simulator:  simulator,
		store:      dataStore,
		sessions:   sessions,
	}
}

// Start syncs the terminals and starts the simulator unless already running
func (r *OperationsRunner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true

	if _, err := r.terminalUC.Sync(ctx); err != nil {
		logger.WarnCtx(ctx, "Initial terminal sync failed", logger.ErrorField(err))
	}
	if r.simulator != nil {
		r.simulator.Start(r.root)
	}
	logger.InfoCtx(ctx, "Operations session started")
}

// StopIfIdle stops operations when no login session is left. stopped reports
// whether this call stopped them.
func (r *OperationsRunner) StopIfIdle(ctx context.Context) (stopped bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return false, nil
	}
	remaining, err := r.sessions.CountSessions(ctx)
	if err != nil {
		return false, err
	}
	if remaining > 0 {
		return false, nil
	}
	r.stopLocked()
	return true, nil
}

// Watch checks every interval for sessions that expired without a logout
// and stops operations once none is left. It returns when ctx is done.
func (r *OperationsRunner) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stopped, err := r.StopIfIdle(ctx)
			if err != nil {
				logger.Warn("Session count failed", logger.ErrorField(err))
				continue
			}
			if stopped {
				logger.Info("Last session expired, operations stopped")
			}
		}
	}
}

// Stop halts the simulator and restores the seed data regardless of sessions
func (r *OperationsRunner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		r.stopLocked()
	}
}

func (r *OperationsRunner) stopLocked() {
	r.running = false
	if r.simulator != nil {
		r.simulator.Stop()
	}
	r.store.Reset()
	logger.Info("Operations session stopped")
}

// Running reports whether an operations session is open
func (r *OperationsRunner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
