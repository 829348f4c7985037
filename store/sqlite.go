package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is a persistent Store backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path and
// initialises the schema. Use ":memory:" for an in-memory SQLite database.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("mcpi/store: open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and serialises
	// writers, which SQLite does anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS mcpi_samples (
			session TEXT    NOT NULL,
			seq     INTEGER NOT NULL,
			x       REAL    NOT NULL,
			y       REAL    NOT NULL,
			PRIMARY KEY (session, seq)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("mcpi/store: create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append adds s after the last recorded sample of the session.
func (s *SQLiteStore) Append(ctx context.Context, session string, sm Sample) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("mcpi/store: append: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM mcpi_samples WHERE session = ?`, session,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("mcpi/store: append: %w", err)
	}

	seq++
	_, err = tx.ExecContext(ctx,
		`INSERT INTO mcpi_samples (session, seq, x, y) VALUES (?, ?, ?, ?)`,
		session, seq, sm.X, sm.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("mcpi/store: append: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("mcpi/store: append: %w", err)
	}
	return seq, nil
}

// Load returns the session's samples ordered by insertion.
func (s *SQLiteStore) Load(ctx context.Context, session string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT x, y FROM mcpi_samples WHERE session = ? ORDER BY seq`, session,
	)
	if err != nil {
		return nil, fmt.Errorf("mcpi/store: load: %w", err)
	}
	defer rows.Close()

	out := []Sample{}
	for rows.Next() {
		var sm Sample
		if err := rows.Scan(&sm.X, &sm.Y); err != nil {
			return nil, fmt.Errorf("mcpi/store: load: %w", err)
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mcpi/store: load: %w", err)
	}
	return out, nil
}

// Count returns the number of samples recorded for the session.
func (s *SQLiteStore) Count(ctx context.Context, session string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM mcpi_samples WHERE session = ?`, session,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("mcpi/store: count: %w", err)
	}
	return n, nil
}

// Reset removes the session's samples.
func (s *SQLiteStore) Reset(ctx context.Context, session string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mcpi_samples WHERE session = ?`, session); err != nil {
		return fmt.Errorf("mcpi/store: reset: %w", err)
	}
	return nil
}

// Close closes the underlying SQLite database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
