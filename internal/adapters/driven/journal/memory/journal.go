// Package memory provides an in-memory attempt journal for testing and for
// running without durable attempt history.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.AttemptJournal = (*Journal)(nil)

type key struct {
	integration string
	code        string
}

// Journal is an in-memory implementation of driven.AttemptJournal.
type Journal struct {
	mu       sync.RWMutex
	attempts map[key]domain.ExchangeAttempt
}

// NewJournal creates an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{
		attempts: make(map[key]domain.ExchangeAttempt),
	}
}

// Attempted reports whether an exchange was already started for this
// integration and code value.
func (j *Journal) Attempted(_ context.Context, integration, code string) (bool, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, ok := j.attempts[key{integration, code}]
	return ok, nil
}

// Record upserts an attempt keyed by (integration, code).
func (j *Journal) Record(_ context.Context, attempt domain.ExchangeAttempt) error {
	if attempt.Integration == "" || attempt.Code == "" {
		return domain.ErrInvalidInput
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.attempts[key{attempt.Integration, attempt.Code}] = attempt
	return nil
}

// History returns the most recent attempts, newest first.
func (j *Journal) History(_ context.Context, integration string, limit int) ([]domain.ExchangeAttempt, error) {
	if limit <= 0 {
		limit = 50
	}

	j.mu.RLock()
	attempts := make([]domain.ExchangeAttempt, 0, len(j.attempts))
	for k, attempt := range j.attempts {
		if integration != "" && k.integration != integration {
			continue
		}
		attempts = append(attempts, attempt)
	}
	j.mu.RUnlock()

	sort.Slice(attempts, func(a, b int) bool {
		return attempts[a].StartedAt.After(attempts[b].StartedAt)
	})
	if len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}
