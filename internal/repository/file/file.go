// Package file persists the tracker log as one JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"
)

// Repository stores the snapshot under <root>/<namespace>.json. The
// namespace plays the role of the fixed storage key.
type Repository struct {
	path string
}

// New creates a file-backed snapshot repository rooted at dir.
func New(dir, namespace string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Repository{path: filepath.Join(dir, sanitize(namespace)+".json")}, nil
}

func (r *Repository) Load(ctx context.Context) (*domain.TrackerLog, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var log domain.TrackerLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, repository.ErrCorrupted
	}
	return &log, nil
}

func (r *Repository) Save(ctx context.Context, log *domain.TrackerLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *Repository) Close() error {
	return nil
}

// sanitize keeps the namespace usable as a file name; the original key
// contains a colon ("gymTrackerMVP:v1"), which Windows cannot store.
func sanitize(namespace string) string {
	out := []rune(namespace)
	for i, c := range out {
		switch c {
		case ':', '/', '\\':
			out[i] = '_'
		}
	}
	return string(out)
}
