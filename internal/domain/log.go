package domain

// TrackerLog is the root aggregate: everything the app persists lives
// here, and it is always loaded and saved as one unit.
type TrackerLog struct {
	// StartDate anchors the 7-day split and the week buckets. Changing it
	// does not touch DayIndex values already stored on workouts.
	StartDate   string             `json:"startDate"`
	Settings    Settings           `json:"settings"`
	Workouts    []Workout          `json:"workouts"`
	Meals       []Meal             `json:"meals"`
	Supplements []SupplementRecord `json:"supps"`
	Reviews     []WeeklyReview     `json:"reviews"`
}

// Settings holds the daily nutrition targets. Zero means "no target set".
type Settings struct {
	KcalTarget    float64 `json:"kcalTarget"`
	ProteinTarget float64 `json:"proteinTarget"`
	CarbTarget    float64 `json:"carbTarget"`
	FatTarget     float64 `json:"fatTarget"`
}

// NewDefaultLog returns a fresh, empty log anchored at the given date.
func NewDefaultLog(startDate string) *TrackerLog {
	return &TrackerLog{
		StartDate:   startDate,
		Settings:    Settings{},
		Workouts:    []Workout{},
		Meals:       []Meal{},
		Supplements: []SupplementRecord{},
		Reviews:     []WeeklyReview{},
	}
}
