// Package file provides the durable state store: one versioned TOML blob
// holding all integrations and the display configuration.
package file

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.StateStore = (*Store)(nil)

// stateFile is the fixed name of the blob inside the data directory.
const stateFile = "state.toml"

// blob is the on-disk layout. The version tag travels with the state; a
// mismatch on load resets to defaults rather than guessing a migration.
type blob struct {
	Version      int                  `toml:"version"`
	Integrations domain.Integrations  `toml:"integrations"`
	Display      domain.DisplayConfig `toml:"display"`
}

// Store is a file-based implementation of driven.StateStore using TOML.
type Store struct {
	mu       sync.RWMutex
	filePath string
	state    domain.PersistedState
	subs     map[int]chan domain.PersistedState
	next     int
}

// NewStore creates a TOML-backed state store under dataDir.
// If dataDir is empty, defaults to ~/.lumenctl.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, ".lumenctl")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(dataDir, stateFile),
		subs:     make(map[int]chan domain.PersistedState),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a snapshot of the current state.
func (s *Store) State() domain.PersistedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Update applies mutate under the store's lock, persists synchronously,
// and notifies subscribers. If persisting fails the mutation is rolled
// back, so memory never runs ahead of the file.
func (s *Store) Update(mutate func(*domain.PersistedState)) error {
	s.mu.Lock()
	before := s.state.Clone()
	mutate(&s.state)
	snapshot := s.state.Clone()
	err := s.save()
	if err != nil {
		s.state = before
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

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

// Path returns the state file path.
func (s *Store) Path() string {
	return s.filePath
}

// Reload re-reads the blob from disk and notifies subscribers if the state
// changed. Used when the file is edited externally.
func (s *Store) Reload() error {
	s.mu.Lock()
	before, err := toml.Marshal(s.encode())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	after, err := toml.Marshal(s.encode())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if !bytes.Equal(before, after) {
		s.broadcast(snapshot)
	}
	return nil
}

// save writes the blob (caller must hold lock).
func (s *Store) save() error {
	data, err := toml.Marshal(s.encode())
	if err != nil {
		return err
	}

	// Restricted permissions: the blob carries client secrets.
	return os.WriteFile(s.filePath, data, 0600)
}

func (s *Store) encode() blob {
	return blob{
		Version:      domain.SchemaVersion,
		Integrations: s.state.Integrations,
		Display:      s.state.Display,
	}
}

// load hydrates from disk, initialising defaults when the file is missing
// or its version tag does not match.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = domain.DefaultState()
			return nil
		}
		return err
	}

	var loaded blob
	if err := toml.Unmarshal(data, &loaded); err != nil {
		logger.Warn("state file %s is unreadable, resetting to defaults: %v", s.filePath, err)
		s.state = domain.DefaultState()
		return nil
	}

	if loaded.Version != domain.SchemaVersion {
		logger.Warn("state file %s has schema version %d, want %d; resetting to defaults",
			s.filePath, loaded.Version, domain.SchemaVersion)
		s.state = domain.DefaultState()
		return nil
	}

	s.state = domain.PersistedState{
		Integrations: loaded.Integrations,
		Display:      loaded.Display,
	}
	s.state.Normalise()
	return nil
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
