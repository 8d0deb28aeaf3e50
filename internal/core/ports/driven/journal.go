package driven

import (
	"context"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

// AttemptJournal records authorization-code exchange attempts. An attempt is
// journalled before the backend call is made, so a code observed again after
// a transient failure is not re-exchanged. LastCode only records successes;
// the journal closes the retry gap for failures.
type AttemptJournal interface {
	// Attempted reports whether an exchange was already started for this
	// integration and code value.
	Attempted(ctx context.Context, integration, code string) (bool, error)

	// Record upserts an attempt keyed by (integration, code).
	Record(ctx context.Context, attempt domain.ExchangeAttempt) error

	// History returns the most recent attempts for an integration, newest
	// first. An empty integration returns attempts across all integrations.
	History(ctx context.Context, integration string, limit int) ([]domain.ExchangeAttempt, error)
}
