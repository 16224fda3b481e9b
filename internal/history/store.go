package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded check/sanitize run.
type Run struct {
	ID             string
	Path           string
	MD5Only        bool
	Aborted        bool
	StartedAt      time.Time
	FinishedAt     time.Time
	Checked        int
	OK             int
	Failed         int
	Sanitized      int
	SanitizeFailed int
}

// FileFailure is one failed file recorded with a run.
type FileFailure struct {
	Path     string
	Messages []string
}

// Store persists run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun inserts a completed run together with its failed files.
func (s *Store) RecordRun(ctx context.Context, run Run, failures []FileFailure) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, path, md5_only, aborted, started_at, finished_at,
            checked, ok, failed, sanitized, sanitize_failed
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Path,
		run.MD5Only,
		run.Aborted,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Checked,
		run.OK,
		run.Failed,
		run.Sanitized,
		run.SanitizeFailed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, failure := range failures {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, messages) VALUES (?, ?, ?)`,
			run.ID, failure.Path, strings.Join(failure.Messages, "\n"),
		)
		if err != nil {
			return fmt.Errorf("insert run file: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, most recent first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, md5_only, aborted, started_at, finished_at,
                checked, ok, failed, sanitized, sanitize_failed
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt, finishedAt string
		if err := rows.Scan(
			&run.ID, &run.Path, &run.MD5Only, &run.Aborted, &startedAt, &finishedAt,
			&run.Checked, &run.OK, &run.Failed, &run.Sanitized, &run.SanitizeFailed,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		run.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedAt)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Failures returns the failed files recorded for a run.
func (s *Store) Failures(ctx context.Context, runID string) ([]FileFailure, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, messages FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var failures []FileFailure
	for rows.Next() {
		var failure FileFailure
		var messages string
		if err := rows.Scan(&failure.Path, &messages); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		if messages != "" {
			failure.Messages = strings.Split(messages, "\n")
		}
		failures = append(failures, failure)
	}
	return failures, rows.Err()
}
