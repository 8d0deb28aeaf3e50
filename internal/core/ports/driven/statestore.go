package driven

import "github.com/hellolumen/lumenctl/internal/core/domain"

// StateStore provides access to the persisted console state.
// Implementations handle serialisation, the schema version tag, and
// durable storage; the aggregate survives restarts.
type StateStore interface {
	// State returns a snapshot of the current state. The snapshot is a
	// copy; mutating it does not affect the store.
	State() domain.PersistedState

	// Update applies mutate to the current state under the store's lock
	// and persists the result synchronously. Partial updates shallow-merge
	// by mutating only the fields they care about.
	Update(mutate func(*domain.PersistedState)) error

	// Subscribe returns a channel that receives a state snapshot after
	// every change, plus a cancel function that releases the subscription.
	// Slow subscribers miss intermediate snapshots rather than blocking
	// the store.
	Subscribe() (<-chan domain.PersistedState, func())

	// Path returns the backing location, for diagnostics.
	Path() string
}
