package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

var errUpstream = errors.New("upstream down")

func failing(ctx context.Context) error { return errUpstream }
func passing(ctx context.Context) error { return nil }

func newTestBreaker(clock *fakeClock) *CircuitBreaker {
	cfg := DefaultConfig("sheet")
	cfg.FailureThreshold = 2
	cfg.Timeout = 10 * time.Second
	cfg.Now = clock.Now
	return New(cfg, nil)
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	cb := newTestBreaker(clock)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	cb := newTestBreaker(clock)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())

	clock.Advance(11 * time.Second)
	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	cb := newTestBreaker(clock)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	clock.Advance(11 * time.Second)

	assert.ErrorIs(t, cb.Execute(ctx, failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestManager_OneBreakerPerName(t *testing.T) {
	m := NewManager(nil)
	ctx := context.Background()

	assert.NoError(t, m.Execute(ctx, "a.example.com", passing))
	assert.ErrorIs(t, m.Execute(ctx, "b.example.com", failing), errUpstream)

	stats := m.GetStats()
	assert.Len(t, stats, 2)
	assert.Equal(t, uint32(1), stats["b.example.com"].TotalFailures)
	assert.Equal(t, "CLOSED", stats["a.example.com"].State)
	assert.Same(t, m.GetOrCreate("a.example.com"), m.GetOrCreate("a.example.com"))
}
