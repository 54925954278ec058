package service

import (
	"context"
	"strings"
	"testing"

	"alcyxob/gym-tracker/internal/repository/file"
	"alcyxob/gym-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) TrackerService {
	t.Helper()
	repo, err := file.New(t.TempDir(), "gymTrackerMVP:v1")
	require.NoError(t, err)
	return NewTrackerService(store.New(context.Background(), repo))
}

func TestUpdateSettingsCoercesLoosely(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	settings := svc.UpdateSettings(ctx, "2800", "abc", "", "70.5")
	assert.Equal(t, 2800.0, settings.KcalTarget)
	assert.Equal(t, 0.0, settings.ProteinTarget, "non-numeric input becomes 0")
	assert.Equal(t, 0.0, settings.CarbTarget, "empty input becomes 0")
	assert.Equal(t, 70.5, settings.FatTarget)
}

func TestUpdateSetFieldClampsRPE(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ex, err := svc.AddExercise(ctx, "2025-02-01")
	require.NoError(t, err)
	set, err := svc.AddSet(ctx, "2025-02-01", ex.ID)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  int
	}{
		{"3", 5},
		{"14", 10},
		{"7", 7},
		{"garbage", 5}, // coerced to 0, then clamped up
	}
	for _, tt := range tests {
		require.NoError(t, svc.UpdateSetField(ctx, "2025-02-01", ex.ID, set.ID, "rpe", tt.input))
		w, err := svc.Workout(ctx, "2025-02-01")
		require.NoError(t, err)
		assert.Equal(t, tt.want, w.Exercises[0].Sets[0].RPE, "input %q", tt.input)
	}
}

func TestUpdateSetFieldUnknownField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ex, err := svc.AddExercise(ctx, "2025-02-01")
	require.NoError(t, err)
	set, err := svc.AddSet(ctx, "2025-02-01", ex.ID)
	require.NoError(t, err)

	err = svc.UpdateSetField(ctx, "2025-02-01", ex.ID, set.ID, "bodyweight", "80")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestUpdateMealFieldCoercion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meal, err := svc.AddMeal(ctx, "2025-02-02")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateMealField(ctx, meal.ID, "name", "Chicken & rice"))
	require.NoError(t, svc.UpdateMealField(ctx, meal.ID, "kcal", "650"))
	require.NoError(t, svc.UpdateMealField(ctx, meal.ID, "protein", "not a number"))

	meals := svc.Meals(ctx, "2025-02-02")
	require.Len(t, meals, 1)
	assert.Equal(t, "Chicken & rice", meals[0].Name)
	assert.Equal(t, 650.0, meals[0].Kcal)
	assert.Equal(t, 0.0, meals[0].Protein)
}

func TestSupplementFieldUpdates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateSupplementField(ctx, "2025-02-03", "pre", "true"))
	require.NoError(t, svc.UpdateSupplementField(ctx, "2025-02-03", "creatine_g", "10"))

	rec, err := svc.Supplements(ctx, "2025-02-03")
	require.NoError(t, err)
	assert.True(t, rec.Pre)
	assert.Equal(t, 10.0, rec.CreatineG)
	assert.False(t, rec.Whey)
}

func TestReviewWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetReviewWin(ctx, "2025-02-04", 1, "added a set"))
	require.NoError(t, svc.SetReviewFail(ctx, "2025-02-04", "missed cardio"))

	review, err := svc.Review(ctx, "2025-02-04")
	require.NoError(t, err)
	assert.Equal(t, [3]string{"", "added a set", ""}, review.Wins)
	assert.Equal(t, "missed cardio", review.Fail)

	assert.ErrorIs(t, svc.SetReviewWin(ctx, "2025-02-04", 3, "x"), ErrInvalidWinIndex)
	assert.ErrorIs(t, svc.SetReviewWin(ctx, "2025-02-04", -1, "x"), ErrInvalidWinIndex)
}

func TestDaySummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetStartDate(ctx, "2025-01-01"))

	ex, err := svc.AddExercise(ctx, "2025-01-03")
	require.NoError(t, err)
	set, err := svc.AddSet(ctx, "2025-01-03", ex.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateSetField(ctx, "2025-01-03", ex.ID, set.ID, "weight", "100"))
	require.NoError(t, svc.UpdateSetField(ctx, "2025-01-03", ex.ID, set.ID, "reps", "5"))

	meal, err := svc.AddMeal(ctx, "2025-01-03")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateMealField(ctx, meal.ID, "kcal", "500"))

	summary, err := svc.DaySummary(ctx, "2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.DayIndex)
	assert.Contains(t, summary.SplitLabel, "Day 3")
	assert.Equal(t, 500.0, summary.Totals.Kcal)
	assert.Equal(t, 500.0, summary.Volume)
}

func TestWeeklyVolumeUsesCurrentAnchor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetStartDate(ctx, "2025-01-01"))

	ex, err := svc.AddExercise(ctx, "2025-01-02")
	require.NoError(t, err)
	set, err := svc.AddSet(ctx, "2025-01-02", ex.ID)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateSetField(ctx, "2025-01-02", ex.ID, set.ID, "weight", "80"))
	require.NoError(t, svc.UpdateSetField(ctx, "2025-01-02", ex.ID, set.ID, "reps", "8"))

	series, err := svc.WeeklyVolume(ctx)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2025-01-01", series[0].WeekStart)
	assert.Equal(t, 640, series[0].Volume)

	// moving the anchor re-buckets the series on the next read
	require.NoError(t, svc.SetStartDate(ctx, "2024-12-30"))
	series, err = svc.WeeklyVolume(ctx)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "2024-12-30", series[0].WeekStart)
}

func TestWorkoutHistorySortedByDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Workout(ctx, "2025-03-05")
	require.NoError(t, err)
	_, err = svc.Workout(ctx, "2025-01-05")
	require.NoError(t, err)
	_, err = svc.Workout(ctx, "2025-02-05")
	require.NoError(t, err)

	history := svc.WorkoutHistory(ctx)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-01-05", history[0].Date)
	assert.Equal(t, "2025-02-05", history[1].Date)
	assert.Equal(t, "2025-03-05", history[2].Date)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMeal(ctx, "2025-02-05")
	require.NoError(t, err)

	data, filename := svc.ExportCSV(ctx)
	assert.Equal(t, "gym_tracker_export.csv", filename)
	assert.True(t, strings.HasPrefix(string(data), `"type","date","dayIndex"`))
	assert.Contains(t, string(data), `"meal","2025-02-05","Meal"`)
}

func TestResetRequiresConfirmation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddMeal(ctx, "2025-02-06")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Reset(ctx, false), ErrResetNotConfirmed)
	assert.Len(t, svc.Meals(ctx, "2025-02-06"), 1, "unconfirmed reset is a no-op")

	require.NoError(t, svc.Reset(ctx, true))
	assert.Empty(t, svc.Meals(ctx, "2025-02-06"))
}
