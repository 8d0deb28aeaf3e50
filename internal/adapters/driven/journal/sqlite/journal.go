// Package sqlite provides the durable exchange-attempt journal.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hellolumen/lumenctl/internal/adapters/driven/journal/sqlite/migrations"
	"github.com/hellolumen/lumenctl/internal/core/domain"
	"github.com/hellolumen/lumenctl/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.AttemptJournal = (*Journal)(nil)

// Journal is a SQLite-backed attempt journal. Attempts are upserted by
// (integration, code) so re-recording a settled attempt is idempotent.
type Journal struct {
	db   *sql.DB
	path string
}

// NewJournal opens (or creates) the journal database under dataDir.
// If dataDir is empty, defaults to ~/.lumenctl.
func NewJournal(dataDir string) (*Journal, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".lumenctl")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	j := &Journal{db: db, path: dbPath}

	if err := j.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Attempted reports whether an exchange was already started for this
// integration and code value.
func (j *Journal) Attempted(ctx context.Context, integration, code string) (bool, error) {
	var count int
	row := j.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM exchange_attempts WHERE integration = ? AND code = ?
	`, integration, code)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("querying attempts: %w", err)
	}
	return count > 0, nil
}

// Record upserts an attempt keyed by (integration, code).
func (j *Journal) Record(ctx context.Context, attempt domain.ExchangeAttempt) error {
	if attempt.Integration == "" || attempt.Code == "" {
		return domain.ErrInvalidInput
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO exchange_attempts (id, integration, code, succeeded, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(integration, code) DO UPDATE SET
			succeeded = excluded.succeeded,
			completed_at = excluded.completed_at
	`, attempt.ID, attempt.Integration, attempt.Code,
		boolToInt(attempt.Succeeded),
		attempt.StartedAt.UTC().Format(time.RFC3339Nano),
		formatNullableTime(attempt.CompletedAt))

	if err != nil {
		return fmt.Errorf("recording attempt: %w", err)
	}
	return nil
}

// History returns the most recent attempts, newest first.
func (j *Journal) History(ctx context.Context, integration string, limit int) ([]domain.ExchangeAttempt, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, integration, code, succeeded, started_at, completed_at
		FROM exchange_attempts
	`
	args := []any{}
	if integration != "" {
		query += " WHERE integration = ?"
		args = append(args, integration)
	}
	query += " ORDER BY started_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var attempts []domain.ExchangeAttempt //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			attempt     domain.ExchangeAttempt
			succeeded   int
			startedAt   string
			completedAt sql.NullString
		)
		if err := rows.Scan(&attempt.ID, &attempt.Integration, &attempt.Code,
			&succeeded, &startedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		attempt.Succeeded = succeeded != 0
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			attempt.StartedAt = t
		}
		if completedAt.Valid {
			if t, err := time.Parse(time.RFC3339Nano, completedAt.String); err == nil {
				attempt.CompletedAt = t
			}
		}
		attempts = append(attempts, attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempts: %w", err)
	}
	return attempts, nil
}

// migrate runs all pending migrations.
func (j *Journal) migrate(fsys embed.FS) error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := j.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := j.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := j.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}
