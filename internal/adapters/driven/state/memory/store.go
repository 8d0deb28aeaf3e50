// Package memory provides an in-memory state store for testing.
package memory

import (
	"sync"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StateStore = (*Store)(nil)

// Store is an in-memory implementation of driven.StateStore for testing.
type Store struct {
	mu    sync.RWMutex
	state domain.PersistedState
	subs  map[int]chan domain.PersistedState
	next  int
}

// NewStore creates an in-memory store initialised with defaults.
func NewStore() *Store {
	return &Store{
		state: domain.DefaultState(),
		subs:  make(map[int]chan domain.PersistedState),
	}
}

// NewStoreWith creates an in-memory store seeded with the given state.
func NewStoreWith(state domain.PersistedState) *Store {
	state.Normalise()
	return &Store{
		state: state.Clone(),
		subs:  make(map[int]chan domain.PersistedState),
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() domain.PersistedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies mutate under the store's lock and notifies subscribers.
func (s *Store) Update(mutate func(*domain.PersistedState)) error {
	s.mu.Lock()
	mutate(&s.state)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.broadcast(snapshot)
	return nil
}

// Subscribe returns a channel receiving a snapshot after every change.
func (s *Store) Subscribe() (<-chan domain.PersistedState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan domain.PersistedState, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Path returns the backing location.
func (s *Store) Path() string {
	return ":memory:"
}

func (s *Store) broadcast(snapshot domain.PersistedState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop for slow subscribers; they get the next snapshot.
		}
	}
}
