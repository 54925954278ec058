package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBeforeAnySave(t *testing.T) {
	repo, err := New(filepath.Join(t.TempDir(), "tracker.db"), "gymTrackerMVP:v1")
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.Load(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	ctx := context.Background()

	repo, err := New(path, "gymTrackerMVP:v1")
	require.NoError(t, err)

	log := domain.NewDefaultLog("2025-01-01")
	log.Settings.KcalTarget = 2800
	log.Workouts = append(log.Workouts, domain.Workout{
		ID: "w1", Date: "2025-01-02", DayIndex: 2,
		Exercises: []domain.Exercise{
			{ID: "e1", Name: "Bench", Sets: []domain.SetEntry{{ID: "s1", Weight: 100, Reps: 5, RPE: 8}}},
		},
	})

	require.NoError(t, repo.Save(ctx, log))
	// second save overwrites, it must not duplicate the row
	log.Settings.KcalTarget = 3000
	require.NoError(t, repo.Save(ctx, log))
	require.NoError(t, repo.Close())

	reopened, err := New(path, "gymTrackerMVP:v1")
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, got.Settings.KcalTarget)
	require.Len(t, got.Workouts, 1)
	assert.Equal(t, "Bench", got.Workouts[0].Exercises[0].Name)
}

func TestNamespacesAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.db")
	ctx := context.Background()

	repoA, err := New(path, "a")
	require.NoError(t, err)
	defer repoA.Close()
	require.NoError(t, repoA.Save(ctx, domain.NewDefaultLog("2025-01-01")))

	repoB, err := New(path, "b")
	require.NoError(t, err)
	defer repoB.Close()
	_, err = repoB.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
