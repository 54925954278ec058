package export

import (
	"strings"
	"testing"

	"alcyxob/gym-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVOneWorkoutOneMeal(t *testing.T) {
	log := domain.TrackerLog{
		StartDate: "2025-01-01",
		Workouts: []domain.Workout{
			{
				ID: "w1", Date: "2025-01-02", DayIndex: 2, Notes: "felt strong",
				Exercises: []domain.Exercise{
					{ID: "e1", Name: "Bench Press", Sets: []domain.SetEntry{
						{ID: "s1", Weight: 100, Reps: 5, RPE: 8},
					}},
				},
			},
		},
		Meals: []domain.Meal{
			{ID: "m1", Date: "2025-01-02", Name: "Oats", Kcal: 500, Protein: 40, Carbs: 50, Fat: 10},
		},
	}

	got := CSV(log)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5) // 3 headers + 1 workout row + 1 meal row

	assert.Equal(t, `"type","date","dayIndex","name","set_num","weight","reps","rpe","notes"`, lines[0])
	assert.Equal(t, `"workout","2025-01-02","2","Bench Press","1","100","5","8","felt strong"`, lines[1])
	assert.Equal(t, `"type","date","name","kcal","protein","carbs","fat"`, lines[2])
	assert.Equal(t, `"meal","2025-01-02","Oats","500","40","50","10"`, lines[3])
	assert.Equal(t, `"type","date","creatine_g","pre","casein","whey"`, lines[4])
}

func TestCSVExerciseWithoutSets(t *testing.T) {
	log := domain.TrackerLog{
		Workouts: []domain.Workout{
			{
				ID: "w1", Date: "2025-01-02", DayIndex: 2,
				Exercises: []domain.Exercise{{ID: "e1", Name: "Deadlift"}},
			},
		},
	}

	lines := strings.Split(CSV(log), "\n")
	// the zero-set exercise still gets a row, with empty set fields
	assert.Equal(t, `"workout","2025-01-02","2","Deadlift","","","","",""`, lines[1])
}

func TestCSVCardioAndSupplements(t *testing.T) {
	log := domain.TrackerLog{
		Workouts: []domain.Workout{
			{
				ID: "w1", Date: "2025-01-03", DayIndex: 3,
				Cardio: []domain.CardioEntry{
					{ID: "c1", Type: "Steady", Duration: 30, Distance: 5.5, HR: 142},
				},
			},
		},
		Supplements: []domain.SupplementRecord{
			{ID: "s1", Date: "2025-01-03", CreatineG: 5, Pre: true, Whey: true},
		},
	}

	got := CSV(log)
	assert.Contains(t, got, `"cardio","2025-01-03","3","Steady","","30","5.5","142",""`)
	assert.Contains(t, got, `"supps","2025-01-03","5","true","false","true"`)
}

func TestCSVQuotesAreDoubled(t *testing.T) {
	log := domain.TrackerLog{
		Meals: []domain.Meal{
			{ID: "m1", Date: "2025-01-02", Name: `say "cheese"`, Kcal: 100},
		},
	}
	assert.Contains(t, CSV(log), `"say ""cheese""","100"`)
}

func TestCSVPreservesCollectionOrder(t *testing.T) {
	// workouts stay in insertion order, not date order
	log := domain.TrackerLog{
		Workouts: []domain.Workout{
			{ID: "w2", Date: "2025-02-01", DayIndex: 4,
				Exercises: []domain.Exercise{{ID: "e1", Name: "Later"}}},
			{ID: "w1", Date: "2025-01-01", DayIndex: 1,
				Exercises: []domain.Exercise{{ID: "e2", Name: "Earlier"}}},
		},
	}
	got := CSV(log)
	assert.Less(t, strings.Index(got, "Later"), strings.Index(got, "Earlier"))
}
