// Package store holds the single in-memory copy of the operational data.
// Every mutation goes through Update, which works on a private copy and
// swaps it in atomically, so readers never observe a partial change.
package store

import (
	"sync"

	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

// DataStore is the view of the store the domain services depend on
type DataStore interface {
	Snapshot() models.LogisticsData
	Update(fn UpdateFunc) (models.LogisticsData, error)
	Subscribe() (<-chan Change, func())
	Reset()
}

// UpdateFunc receives a private copy and returns the replacement
type UpdateFunc func(models.LogisticsData) (models.LogisticsData, error)

// Change announces that a new version has been stored
type Change struct {
	Version uint64
}

// Store is safe for concurrent use
type Store struct {
	mu      sync.RWMutex
	data    models.LogisticsData
	version uint64
	initial func() models.LogisticsData

	subMu  sync.Mutex
	subs   map[uint64]chan Change
	nextID uint64
}

// New creates a store seeded by initial, which is also used by Reset
func New(initial func() models.LogisticsData) *Store {
	return &Store{
		data:    initial(),
		initial: initial,
		subs:    make(map[uint64]chan Change),
	}
}

// Snapshot returns a deep copy of the current data
func (s *Store) Snapshot() models.LogisticsData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Version returns the number of replacements since creation
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Update applies fn to a copy of the data. On success the result replaces
// the snapshot and subscribers are notified; on error nothing changes.
func (s *Store) Update(fn UpdateFunc) (models.LogisticsData, error) {
	s.mu.Lock()
	next, err := fn(s.data.Clone())
	if err != nil {
		s.mu.Unlock()
		return models.LogisticsData{}, err
	}
	s.data = next.Clone()
	s.version++
	version := s.version
	// notify under the write lock so subscribers see versions in order
	s.notify(Change{Version: version})
	s.mu.Unlock()

	logger.Debug("Store updated", logger.Int64("version", int64(version)))
	return next, nil
}

// Reset restores the seed data
func (s *Store) Reset() {
	_, _ = s.Update(func(models.LogisticsData) (models.LogisticsData, error) {
		return s.initial(), nil
	})
}

// Subscribe returns a channel that always holds at most the latest change.
// A slow reader skips intermediate versions but never blocks writers. The
// returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 1)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) notify(c Change) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
			// replace the stale pending change
			select {
			case <-ch:
			default:
			}
			ch <- c
		}
	}
}
