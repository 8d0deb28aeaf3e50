package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
	"github.com/hellolumen/lumenctl/internal/logger"
)

// Exchanger watches navigation events and performs the authorization-code
// exchange at most once per distinct code value.
//
// Per integration the states are: idle (no code observed, or code already
// exchanged), code observed (current location matches the callback URL and
// carries a fresh code), exchanging (backend call running), then idle again.
// The exactly-once guarantee rests on value comparison, not a one-shot flag:
// every navigation event is re-evaluated against the stored LastCode and the
// attempt journal, so repeated deliveries of the same location are harmless.
type Exchanger struct {
	store     driven.StateStore
	gateway   driven.Gateway
	locations driven.LocationSource
	notifier  driven.Notifier
	journal   driven.AttemptJournal

	mu         sync.Mutex
	exchanging map[string]bool
}

// NewExchanger creates an exchanger. The journal may be nil, in which case
// only the LastCode comparison guards against re-exchange.
func NewExchanger(
	store driven.StateStore,
	gateway driven.Gateway,
	locations driven.LocationSource,
	notifier driven.Notifier,
	journal driven.AttemptJournal,
) *Exchanger {
	return &Exchanger{
		store:      store,
		gateway:    gateway,
		locations:  locations,
		notifier:   notifier,
		journal:    journal,
		exchanging: make(map[string]bool),
	}
}

// Run subscribes to the location source and evaluates every event until the
// context is cancelled or the source closes. Events are handled one at a
// time; an exchange runs to completion before the next event is read.
func (e *Exchanger) Run(ctx context.Context) error {
	events, cancel := e.locations.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case loc, ok := <-events:
			if !ok {
				return nil
			}
			e.Evaluate(ctx, loc)
		}
	}
}

// Evaluate runs the match and idempotency rules against one observed
// location and performs the exchange if they all pass.
func (e *Exchanger) Evaluate(ctx context.Context, loc domain.Location) {
	state := e.store.State()

	name, cfg, ok := state.Integrations.Match(loc.OriginPath)
	if !ok {
		logger.Debug("no callback match for %s", loc.OriginPath)
		return
	}

	code := loc.Code()
	if code == "" {
		logger.Debug("callback for %s carries no code", name)
		return
	}
	if code == cfg.LastCode {
		logger.Debug("code for %s already exchanged", name)
		return
	}
	if !cfg.HasCredentials() {
		logger.Info("integration %s observed a code but has incomplete credentials", name)
		e.notify(domain.NotificationInfo, "Configure client ID, secret and token URL before authorizing")
		return
	}
	if e.attempted(ctx, name, code) {
		logger.Debug("code for %s already attempted, not retrying", name)
		return
	}

	e.mu.Lock()
	if e.exchanging[name] {
		e.mu.Unlock()
		logger.Debug("exchange for %s already in flight", name)
		return
	}
	e.exchanging[name] = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.exchanging, name)
		e.mu.Unlock()
	}()

	e.exchange(ctx, name, cfg, code)
}

// exchange journals the attempt, calls the backend, and settles state.
// On failure LastCode is left untouched; the journal entry is what prevents
// an unbounded retry loop while the stale URL is still current.
func (e *Exchanger) exchange(ctx context.Context, name string, cfg domain.OAuthClientConfig, code string) {
	attempt := domain.ExchangeAttempt{
		ID:          uuid.NewString(),
		Integration: name,
		Code:        code,
		StartedAt:   time.Now(),
	}
	e.record(ctx, attempt)

	succeeded := e.gateway.ExchangeAuthorizationCode(ctx, domain.ExchangeRequest{
		Integration:  name,
		Code:         code,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.CallbackURL,
		GetTokenURL:  cfg.GetTokenURL,
	})

	attempt.Succeeded = succeeded
	attempt.CompletedAt = time.Now()
	e.record(ctx, attempt)

	if !succeeded {
		logger.Warn("exchange failed for %s", name)
		e.notify(domain.NotificationFailure, "Failed to exchange code for tokens")
		return
	}

	if err := e.store.Update(func(s *domain.PersistedState) {
		current := s.Integrations[name]
		current.LastCode = code
		s.Integrations[name] = current
	}); err != nil {
		logger.Warn("persist last code for %s: %v", name, err)
	}
	e.notify(domain.NotificationSuccess, "Successfully exchanged code for tokens")
}

func (e *Exchanger) attempted(ctx context.Context, name, code string) bool {
	if e.journal == nil {
		return false
	}
	attempted, err := e.journal.Attempted(ctx, name, code)
	if err != nil {
		logger.Warn("attempt journal lookup for %s: %v", name, err)
		return false
	}
	return attempted
}

func (e *Exchanger) record(ctx context.Context, attempt domain.ExchangeAttempt) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Record(ctx, attempt); err != nil {
		logger.Warn("attempt journal record for %s: %v", attempt.Integration, err)
	}
}

func (e *Exchanger) notify(level domain.NotificationLevel, message string) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(domain.Notification{Level: level, Message: message})
}
