package repository

import (
	"alcyxob/gym-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("snapshot not found")
	ErrCorrupted = RepositoryError("snapshot data corrupted")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SnapshotRepository persists the whole tracker log as a single unit.
// Load is called once at startup; Save after every mutation. There is
// no partial or incremental persistence.
type SnapshotRepository interface {
	// Load returns the stored log, ErrNotFound when nothing has been
	// saved yet, or ErrCorrupted when the stored data cannot be decoded.
	Load(ctx context.Context) (*domain.TrackerLog, error)

	// Save overwrites the stored log with the given snapshot.
	Save(ctx context.Context, log *domain.TrackerLog) error

	// Close releases any underlying resources.
	Close() error
}
