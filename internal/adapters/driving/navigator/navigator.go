// Package navigator tracks the observed browser location and fans
// navigation events out to subscribers. It is the console's stand-in for
// the browser's location bar: the callback server feeds it every redirect
// it receives, and manual visits can be injected for testing or replay.
package navigator

import (
	"sync"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/logger"
)

// Ensure Navigator implements the interface.
var _ driven.LocationSource = (*Navigator)(nil)

// Navigator is a subscription hub over navigation events. Every Visit is
// broadcast, including visits that only change the query string; consumers
// re-evaluate on each event rather than caching a one-shot read.
type Navigator struct {
	mu      sync.RWMutex
	current domain.Location
	hasCur  bool
	subs    map[int]chan domain.Location
	next    int
}

// New creates a navigator with no current location.
func New() *Navigator {
	return &Navigator{
		subs: make(map[int]chan domain.Location),
	}
}

// Visit parses rawURL and broadcasts it as the current location.
func (n *Navigator) Visit(rawURL string) error {
	loc, err := domain.ParseLocation(rawURL)
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.current = loc
	n.hasCur = true
	n.mu.Unlock()

	logger.Debug("navigated to %s", loc.OriginPath)
	n.broadcast(loc)
	return nil
}

// broadcast delivers under the read lock so a send can never race a
// cancellation closing the channel. Sends never block; a subscriber with a
// full buffer misses the event and catches up on the next one.
func (n *Navigator) broadcast(loc domain.Location) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.subs {
		select {
		case ch <- loc:
		default:
		}
	}
}

// Subscribe returns a channel of observed locations plus a cancel function.
// If a location has already been observed it is delivered first, so late
// subscribers still evaluate the current URL.
func (n *Navigator) Subscribe() (<-chan domain.Location, func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	// Buffered so one pending replay never deadlocks a subscriber that
	// cancels before draining.
	ch := make(chan domain.Location, 8)
	n.subs[id] = ch
	if n.hasCur {
		ch <- n.current
	}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Current returns the most recently observed location.
func (n *Navigator) Current() (domain.Location, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current, n.hasCur
}
