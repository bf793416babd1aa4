package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/paycheck/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite stores the budget record in a local key/value table.
type SQLite struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens or creates the database at the given path and applies the
// embedded migrations.
func Open(dbPath string) (*SQLite, error) {
	return OpenContext(context.Background(), dbPath)
}

// OpenContext is Open with a caller-supplied context for the migration step.
func OpenContext(ctx context.Context, dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	log := slog.Default().With("db", dbPath)
	if err := migrate(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, log: log}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load returns the stored record. A missing or unreadable value yields the
// empty record; only I/O failures are returned as errors.
func (s *SQLite) Load(ctx context.Context) (model.BudgetRecord, error) {
	value, err := s.Get(ctx, RecordKey)
	if errors.Is(err, ErrNotFound) {
		return model.NewRecord(), nil
	}
	if err != nil {
		return model.BudgetRecord{}, err
	}
	return decodeRecord([]byte(value), s.log), nil
}

// Save overwrites the stored record.
func (s *SQLite) Save(ctx context.Context, rec model.BudgetRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.Put(ctx, RecordKey, string(data))
}

// Get returns the raw value for key, or ErrNotFound.
func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// Put upserts a raw value.
func (s *SQLite) Put(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

// Delete removes key, returning ErrNotFound when it was absent.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *SQLite) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var ts string
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM kv WHERE key = ?", key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get %q: %w", key, err)
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing updated_at for %q: %w", key, err)
	}
	return t, nil
}
