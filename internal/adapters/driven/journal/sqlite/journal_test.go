package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolumen/lumenctl/internal/core/domain"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	journal, err := NewJournal(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })
	return journal
}

func TestJournal_AttemptedEmpty(t *testing.T) {
	journal := newTestJournal(t)

	attempted, err := journal.Attempted(context.Background(), "spotify", "abc123")

	require.NoError(t, err)
	assert.False(t, attempted)
}

func TestJournal_RecordAndAttempted(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	err := journal.Record(ctx, domain.ExchangeAttempt{
		ID:          "a1",
		Integration: "spotify",
		Code:        "abc123",
		StartedAt:   time.Now(),
	})
	require.NoError(t, err)

	attempted, err := journal.Attempted(ctx, "spotify", "abc123")
	require.NoError(t, err)
	assert.True(t, attempted)

	// A different code is a fresh attempt.
	attempted, err = journal.Attempted(ctx, "spotify", "def456")
	require.NoError(t, err)
	assert.False(t, attempted)

	// Same code under a different integration is independent.
	attempted, err = journal.Attempted(ctx, "tidal", "abc123")
	require.NoError(t, err)
	assert.False(t, attempted)
}

func TestJournal_RecordUpsert(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	started := time.Now()
	attempt := domain.ExchangeAttempt{
		ID:          "a1",
		Integration: "spotify",
		Code:        "abc123",
		StartedAt:   started,
	}
	require.NoError(t, journal.Record(ctx, attempt))

	attempt.Succeeded = true
	attempt.CompletedAt = started.Add(time.Second)
	require.NoError(t, journal.Record(ctx, attempt))

	history, err := journal.History(ctx, "spotify", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Succeeded)
	assert.False(t, history[0].CompletedAt.IsZero())
}

func TestJournal_Record_Invalid(t *testing.T) {
	journal := newTestJournal(t)

	err := journal.Record(context.Background(), domain.ExchangeAttempt{Integration: "spotify"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJournal_History_NewestFirst(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()
	base := time.Now()

	for i, code := range []string{"first", "second", "third"} {
		require.NoError(t, journal.Record(ctx, domain.ExchangeAttempt{
			ID:          code,
			Integration: "spotify",
			Code:        code,
			StartedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := journal.History(ctx, "spotify", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "third", history[0].Code)
	assert.Equal(t, "second", history[1].Code)
}

func TestJournal_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	journal, err := NewJournal(dir)
	require.NoError(t, err)
	require.NoError(t, journal.Record(ctx, domain.ExchangeAttempt{
		ID:          "a1",
		Integration: "spotify",
		Code:        "abc123",
		StartedAt:   time.Now(),
	}))
	require.NoError(t, journal.Close())

	reopened, err := NewJournal(dir)
	require.NoError(t, err)
	defer reopened.Close()

	attempted, err := reopened.Attempted(ctx, "spotify", "abc123")
	require.NoError(t, err)
	assert.True(t, attempted)
}
