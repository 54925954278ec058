package aggregate

import (
	"testing"

	"alcyxob/gym-tracker/internal/calendar"
	"alcyxob/gym-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionVolume(t *testing.T) {
	tests := []struct {
		name    string
		workout domain.Workout
		want    float64
	}{
		{
			name:    "no exercises",
			workout: domain.Workout{},
			want:    0,
		},
		{
			name: "exercises without sets",
			workout: domain.Workout{Exercises: []domain.Exercise{
				{Name: "Bench"}, {Name: "Squat"},
			}},
			want: 0,
		},
		{
			name: "weight times reps summed",
			workout: domain.Workout{Exercises: []domain.Exercise{
				{Name: "Bench", Sets: []domain.SetEntry{
					{Weight: 100, Reps: 5},
					{Weight: 80, Reps: 8},
				}},
			}},
			want: 1140,
		},
		{
			name: "across exercises",
			workout: domain.Workout{Exercises: []domain.Exercise{
				{Sets: []domain.SetEntry{{Weight: 60, Reps: 10}}},
				{Sets: []domain.SetEntry{{Weight: 40, Reps: 12}}},
			}},
			want: 1080,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionVolume(tt.workout))
		})
	}
}

func TestDayMacroTotals(t *testing.T) {
	meals := []domain.Meal{
		{Kcal: 500, Protein: 40, Carbs: 50, Fat: 10},
		{Kcal: 300, Protein: 20, Carbs: 30, Fat: 5},
	}
	totals := DayMacroTotals(meals)
	assert.Equal(t, MacroTotals{Kcal: 800, Protein: 60, Carbs: 80, Fat: 15}, totals)

	assert.Equal(t, MacroTotals{}, DayMacroTotals(nil))
}

func TestWeeklyVolumeSeries(t *testing.T) {
	anchor, err := calendar.ParseISO("2025-01-01")
	require.NoError(t, err)

	workouts := []domain.Workout{
		// second week, deliberately listed first: output must be sorted
		{Date: "2025-01-09", Exercises: []domain.Exercise{
			{Sets: []domain.SetEntry{{Weight: 100, Reps: 5}}},
		}},
		{Date: "2025-01-02", Exercises: []domain.Exercise{
			{Sets: []domain.SetEntry{{Weight: 80, Reps: 8}}},
		}},
		{Date: "2025-01-05", Exercises: []domain.Exercise{
			{Sets: []domain.SetEntry{{Weight: 60, Reps: 10}}},
		}},
	}

	series := WeeklyVolumeSeries(workouts, anchor)
	require.Len(t, series, 2, "one entry per distinct week bucket")
	assert.Equal(t, WeeklyVolume{WeekStart: "2025-01-01", Volume: 1240}, series[0])
	assert.Equal(t, WeeklyVolume{WeekStart: "2025-01-08", Volume: 500}, series[1])
}

func TestWeeklyVolumeSeriesEmpty(t *testing.T) {
	anchor, err := calendar.ParseISO("2025-01-01")
	require.NoError(t, err)
	assert.Empty(t, WeeklyVolumeSeries(nil, anchor), "no phantom weeks")
}

func TestWeeklyVolumeSeriesRounds(t *testing.T) {
	anchor, err := calendar.ParseISO("2025-01-01")
	require.NoError(t, err)
	workouts := []domain.Workout{
		{Date: "2025-01-01", Exercises: []domain.Exercise{
			{Sets: []domain.SetEntry{{Weight: 22.6, Reps: 3}}}, // 67.8
		}},
	}
	series := WeeklyVolumeSeries(workouts, anchor)
	require.Len(t, series, 1)
	assert.Equal(t, 68, series[0].Volume)
}
