package store

import (
	"sync"

	"github.com/PaulReadCFA/impliedgrowth/internal/domain/models"
)

// Listener receives freshly published metrics snapshots. Snapshots are
// immutable: listeners read them, never modify them.
type Listener func(*models.GrowthMetrics)

// Store is a reactive snapshot store: it holds the latest computed
// GrowthMetrics and synchronously fans each published snapshot out to all
// registered listeners. Listeners register and unregister explicitly; there
// is no ambient global state.
type Store struct {
	mu        sync.RWMutex
	latest    *models.GrowthMetrics
	listeners map[int]Listener
	nextID    int
}

func New() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Publish replaces the latest snapshot and synchronously invokes every
// registered listener with it. The previous snapshot is discarded, not merged.
func (s *Store) Publish(m *models.GrowthMetrics) {
	s.mu.Lock()
	s.latest = m
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(m)
	}
}

// Subscribe registers a listener and returns its id for Unsubscribe.
func (s *Store) Subscribe(l Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return id
}

// Unsubscribe removes the listener registered under id.
func (s *Store) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// Latest returns the most recently published snapshot, or nil if nothing has
// been published yet.
func (s *Store) Latest() *models.GrowthMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
