package domain

// RPE bounds. Inputs outside this range are clamped, never rejected.
const (
	MinRPE = 5
	MaxRPE = 10
)

// SplitLabels is the fixed 7-day training split, indexed by DayIndex-1.
var SplitLabels = [7]string{
	"Day 1 – Chest + Side Delts",
	"Day 2 – Legs",
	"Day 3 – Forearms + Cardio",
	"Day 4 – Chest + Triceps",
	"Day 5 – Back + Biceps",
	"Day 6 – Rest",
	"Day 7 – Shoulders",
}

// SplitLabel returns the split theme for a day index in [1,7].
func SplitLabel(dayIndex int) string {
	if dayIndex < 1 || dayIndex > 7 {
		return ""
	}
	return SplitLabels[dayIndex-1]
}

// Workout is one training session. At most one exists per calendar date.
type Workout struct {
	ID   string `json:"id"`
	Date string `json:"date"` // ISO date, unique within the log
	// DayIndex is computed from Date and the log's StartDate when the
	// workout is created and frozen afterwards, even if the anchor moves.
	DayIndex  int           `json:"dayIndex"`
	Notes     string        `json:"notes"`
	Exercises []Exercise    `json:"exercises"`
	Cardio    []CardioEntry `json:"cardio"`
}

// Exercise is a named lift within a workout.
type Exercise struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Sets []SetEntry `json:"sets"`
}

// SetEntry is a single set of an exercise.
type SetEntry struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	RPE    int     `json:"rpe"`
}

// CardioEntry is a cardio block attached to a workout.
type CardioEntry struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Duration float64 `json:"duration"` // minutes
	Distance float64 `json:"distance"` // km
	HR       float64 `json:"hr"`       // average heart rate
}

// ClampRPE forces an RPE value into [MinRPE, MaxRPE].
func ClampRPE(rpe int) int {
	if rpe < MinRPE {
		return MinRPE
	}
	if rpe > MaxRPE {
		return MaxRPE
	}
	return rpe
}
