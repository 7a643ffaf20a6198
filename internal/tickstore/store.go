// Package tickstore holds the latest known state per instrument as an
// immutable snapshot. Updates build a new map; a snapshot handed out earlier
// never observes a later merge.
package tickstore

import (
	"sync"

	"github.com/kitedesk/kitedesk/internal/model"
)

// Snapshot is a read-only view keyed by model.Key(exchange, symbol).
// Callers must not modify it; the store never mutates a published snapshot.
type Snapshot map[string]model.Tick

// Get returns the tick for an instrument key.
func (s Snapshot) Get(exchange, symbol string) (model.Tick, bool) {
	t, ok := s[model.Key(exchange, symbol)]
	return t, ok
}

// Store is the tick store. The zero value is not usable; use New.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// New creates an empty store.
func New() *Store {
	return &Store{snap: Snapshot{}}
}

// ReplaceAll discards the current snapshot and rebuilds it from ticks.
// Used for the initial_data bulk snapshot.
func (s *Store) ReplaceAll(ticks []model.Tick) {
	next := make(Snapshot, len(ticks))
	for _, t := range ticks {
		next[t.Key()] = t
	}

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
}

// MergeMany applies a partial update. Each incoming tick supersedes the
// prior record for its key wholesale; instruments not mentioned keep their
// previous state. The merge is atomic from a reader's viewpoint.
func (s *Store) MergeMany(ticks []model.Tick) {
	if len(ticks) == 0 {
		return
	}

	s.mu.Lock()
	next := make(Snapshot, len(s.snap)+len(ticks))
	for k, t := range s.snap {
		next[k] = t
	}
	for _, t := range ticks {
		next[t.Key()] = t
	}
	s.snap = next
	s.mu.Unlock()
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Len returns the number of instruments tracked.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap)
}
