// Package sqlite persists the tracker log as a single JSON blob in a
// one-row SQLite table, keyed by the storage namespace.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Repository is a SnapshotRepository backed by a local SQLite file.
type Repository struct {
	db        *sql.DB
	namespace string
}

// New opens (creating if needed) the SQLite database at path and
// prepares the snapshot table.
func New(path, namespace string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		namespace TEXT PRIMARY KEY,
		payload   BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &Repository{db: db, namespace: namespace}, nil
}

func (r *Repository) Load(ctx context.Context) (*domain.TrackerLog, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE namespace = ?`, r.namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot: %w", err)
	}

	var log domain.TrackerLog
	if err := json.Unmarshal(payload, &log); err != nil {
		return nil, repository.ErrCorrupted
	}
	return &log, nil
}

func (r *Repository) Save(ctx context.Context, log *domain.TrackerLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (namespace, payload) VALUES (?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload`,
		r.namespace, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
