package service

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"alcyxob/gym-tracker/internal/aggregate"
	"alcyxob/gym-tracker/internal/calendar"
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/export"
	"alcyxob/gym-tracker/internal/store"
)

// --- Error Definitions ---
var (
	ErrResetNotConfirmed = errors.New("reset requires explicit confirmation")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidWinIndex   = errors.New("win index must be 0, 1 or 2")
)

// DaySummary is the "today" view: split position, macro totals against
// targets, and the session volume logged so far.
type DaySummary struct {
	Date       string                `json:"date"`
	DayIndex   int                   `json:"dayIndex"`
	SplitLabel string                `json:"splitLabel"`
	Totals     aggregate.MacroTotals `json:"totals"`
	Targets    domain.Settings       `json:"targets"`
	Volume     float64               `json:"volume"`
}

// TrackerService exposes the full presentation contract: read accessors,
// ensure-or-create accessors, field-level mutations keyed by identity,
// deletes, derived views, export and reset. Numeric field values arrive
// as raw strings and are coerced loosely: non-numeric input becomes 0,
// out-of-range RPE is clamped, never rejected.
type TrackerService interface {
	Log(ctx context.Context) domain.TrackerLog

	Settings(ctx context.Context) domain.Settings
	UpdateSettings(ctx context.Context, kcal, protein, carbs, fat string) domain.Settings
	StartDate(ctx context.Context) string
	SetStartDate(ctx context.Context, date string) error

	// Workout ensures the record for date exists (get-or-create).
	Workout(ctx context.Context, date string) (domain.Workout, error)
	WorkoutHistory(ctx context.Context) []domain.Workout
	SetWorkoutNotes(ctx context.Context, date, notes string) error
	AddExercise(ctx context.Context, date string) (domain.Exercise, error)
	RenameExercise(ctx context.Context, date, exerciseID, name string) error
	RemoveExercise(ctx context.Context, date, exerciseID string) error
	AddSet(ctx context.Context, date, exerciseID string) (domain.SetEntry, error)
	UpdateSetField(ctx context.Context, date, exerciseID, setID, field, value string) error
	AddCardio(ctx context.Context, date string) (domain.CardioEntry, error)
	UpdateCardioField(ctx context.Context, date, cardioID, field, value string) error

	Meals(ctx context.Context, date string) []domain.Meal
	AddMeal(ctx context.Context, date string) (domain.Meal, error)
	UpdateMealField(ctx context.Context, mealID, field, value string) error
	DeleteMeal(ctx context.Context, mealID string)

	// Supplements is an ensure accessor: first read for a date creates
	// and persists the default record.
	Supplements(ctx context.Context, date string) (domain.SupplementRecord, error)
	UpdateSupplementField(ctx context.Context, date, field, value string) error

	// Review resolves date to its week bucket and ensures the review.
	Review(ctx context.Context, date string) (domain.WeeklyReview, error)
	SetReviewWin(ctx context.Context, date string, index int, text string) error
	SetReviewFail(ctx context.Context, date, text string) error

	DaySummary(ctx context.Context, date string) (DaySummary, error)
	WeeklyVolume(ctx context.Context) ([]aggregate.WeeklyVolume, error)
	ExportCSV(ctx context.Context) ([]byte, string)

	// Reset collapses everything back to the fresh default log. It is a
	// rejected no-op unless confirm is true.
	Reset(ctx context.Context, confirm bool) error
}

type trackerService struct {
	store *store.Store
}

// NewTrackerService creates the service on top of the state store.
func NewTrackerService(st *store.Store) TrackerService {
	return &trackerService{store: st}
}

func (s *trackerService) Log(ctx context.Context) domain.TrackerLog {
	return s.store.Snapshot()
}

func (s *trackerService) Settings(ctx context.Context) domain.Settings {
	return s.store.Settings()
}

func (s *trackerService) UpdateSettings(ctx context.Context, kcal, protein, carbs, fat string) domain.Settings {
	s.store.UpdateSettings(ctx, func(set *domain.Settings) {
		set.KcalTarget = coerceFloat(kcal)
		set.ProteinTarget = coerceFloat(protein)
		set.CarbTarget = coerceFloat(carbs)
		set.FatTarget = coerceFloat(fat)
	})
	return s.store.Settings()
}

func (s *trackerService) StartDate(ctx context.Context) string {
	return s.store.StartDate()
}

func (s *trackerService) SetStartDate(ctx context.Context, date string) error {
	return s.store.SetStartDate(ctx, date)
}

func (s *trackerService) Workout(ctx context.Context, date string) (domain.Workout, error) {
	return s.store.EnsureWorkout(ctx, date)
}

// WorkoutHistory returns all workouts sorted ascending by date, the
// order the history view wants. The stored collection order itself is
// insertion order and is preserved elsewhere (notably in the export).
func (s *trackerService) WorkoutHistory(ctx context.Context) []domain.Workout {
	workouts := s.store.Workouts()
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date < workouts[j].Date
	})
	return workouts
}

func (s *trackerService) SetWorkoutNotes(ctx context.Context, date, notes string) error {
	return s.store.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		w.Notes = notes
	})
}

func (s *trackerService) AddExercise(ctx context.Context, date string) (domain.Exercise, error) {
	return s.store.AddExercise(ctx, date)
}

func (s *trackerService) RenameExercise(ctx context.Context, date, exerciseID, name string) error {
	return s.store.UpdateExercise(ctx, date, exerciseID, func(ex *domain.Exercise) {
		ex.Name = name
	})
}

func (s *trackerService) RemoveExercise(ctx context.Context, date, exerciseID string) error {
	return s.store.DeleteExercise(ctx, date, exerciseID)
}

func (s *trackerService) AddSet(ctx context.Context, date, exerciseID string) (domain.SetEntry, error) {
	return s.store.AddSet(ctx, date, exerciseID)
}

func (s *trackerService) UpdateSetField(ctx context.Context, date, exerciseID, setID, field, value string) error {
	var fn func(*domain.SetEntry)
	switch field {
	case "weight":
		fn = func(set *domain.SetEntry) { set.Weight = coerceFloat(value) }
	case "reps":
		fn = func(set *domain.SetEntry) { set.Reps = coerceInt(value) }
	case "rpe":
		fn = func(set *domain.SetEntry) { set.RPE = domain.ClampRPE(coerceInt(value)) }
	default:
		return ErrUnknownField
	}
	return s.store.UpdateSet(ctx, date, exerciseID, setID, fn)
}

func (s *trackerService) AddCardio(ctx context.Context, date string) (domain.CardioEntry, error) {
	return s.store.AddCardio(ctx, date)
}

func (s *trackerService) UpdateCardioField(ctx context.Context, date, cardioID, field, value string) error {
	var fn func(*domain.CardioEntry)
	switch field {
	case "type":
		fn = func(c *domain.CardioEntry) { c.Type = value }
	case "duration":
		fn = func(c *domain.CardioEntry) { c.Duration = coerceFloat(value) }
	case "distance":
		fn = func(c *domain.CardioEntry) { c.Distance = coerceFloat(value) }
	case "hr":
		fn = func(c *domain.CardioEntry) { c.HR = coerceFloat(value) }
	default:
		return ErrUnknownField
	}
	return s.store.UpdateCardio(ctx, date, cardioID, fn)
}

func (s *trackerService) Meals(ctx context.Context, date string) []domain.Meal {
	return s.store.MealsForDate(date)
}

func (s *trackerService) AddMeal(ctx context.Context, date string) (domain.Meal, error) {
	return s.store.AddMeal(ctx, date)
}

func (s *trackerService) UpdateMealField(ctx context.Context, mealID, field, value string) error {
	var fn func(*domain.Meal)
	switch field {
	case "name":
		fn = func(m *domain.Meal) { m.Name = value }
	case "kcal":
		fn = func(m *domain.Meal) { m.Kcal = coerceFloat(value) }
	case "protein":
		fn = func(m *domain.Meal) { m.Protein = coerceFloat(value) }
	case "carbs":
		fn = func(m *domain.Meal) { m.Carbs = coerceFloat(value) }
	case "fat":
		fn = func(m *domain.Meal) { m.Fat = coerceFloat(value) }
	default:
		return ErrUnknownField
	}
	s.store.UpdateMeal(ctx, mealID, fn)
	return nil
}

func (s *trackerService) DeleteMeal(ctx context.Context, mealID string) {
	s.store.DeleteMeal(ctx, mealID)
}

func (s *trackerService) Supplements(ctx context.Context, date string) (domain.SupplementRecord, error) {
	return s.store.EnsureSupplement(ctx, date)
}

func (s *trackerService) UpdateSupplementField(ctx context.Context, date, field, value string) error {
	var fn func(*domain.SupplementRecord)
	switch field {
	case "creatine_g":
		fn = func(rec *domain.SupplementRecord) { rec.CreatineG = coerceFloat(value) }
	case "pre":
		fn = func(rec *domain.SupplementRecord) { rec.Pre = coerceBool(value) }
	case "casein":
		fn = func(rec *domain.SupplementRecord) { rec.Casein = coerceBool(value) }
	case "whey":
		fn = func(rec *domain.SupplementRecord) { rec.Whey = coerceBool(value) }
	default:
		return ErrUnknownField
	}
	return s.store.UpdateSupplement(ctx, date, fn)
}

func (s *trackerService) Review(ctx context.Context, date string) (domain.WeeklyReview, error) {
	return s.store.EnsureReview(ctx, date)
}

func (s *trackerService) SetReviewWin(ctx context.Context, date string, index int, text string) error {
	if index < 0 || index >= domain.WinsPerReview {
		return ErrInvalidWinIndex
	}
	return s.store.UpdateReview(ctx, date, func(r *domain.WeeklyReview) {
		r.Wins[index] = text
	})
}

func (s *trackerService) SetReviewFail(ctx context.Context, date, text string) error {
	return s.store.UpdateReview(ctx, date, func(r *domain.WeeklyReview) {
		r.Fail = text
	})
}

// DaySummary reports the split position for date against the current
// anchor (not a stored workout's frozen index), the day's macro totals
// and targets, and the volume of the session logged on that date.
func (s *trackerService) DaySummary(ctx context.Context, date string) (DaySummary, error) {
	d, err := calendar.ParseISO(date)
	if err != nil {
		return DaySummary{}, err
	}
	anchor, err := calendar.ParseISO(s.store.StartDate())
	if err != nil {
		return DaySummary{}, err
	}

	idx := calendar.DayIndex(d, anchor)
	summary := DaySummary{
		Date:       date,
		DayIndex:   idx,
		SplitLabel: domain.SplitLabel(idx),
		Totals:     aggregate.DayMacroTotals(s.store.MealsForDate(date)),
		Targets:    s.store.Settings(),
	}
	if w, ok := s.store.WorkoutByDate(date); ok {
		summary.Volume = aggregate.SessionVolume(w)
	}
	return summary, nil
}

func (s *trackerService) WeeklyVolume(ctx context.Context) ([]aggregate.WeeklyVolume, error) {
	anchor, err := calendar.ParseISO(s.store.StartDate())
	if err != nil {
		return nil, err
	}
	return aggregate.WeeklyVolumeSeries(s.store.Workouts(), anchor), nil
}

func (s *trackerService) ExportCSV(ctx context.Context) ([]byte, string) {
	return []byte(export.CSV(s.store.Snapshot())), export.Filename
}

func (s *trackerService) Reset(ctx context.Context, confirm bool) error {
	if !confirm {
		return ErrResetNotConfirmed
	}
	s.store.Reset(ctx)
	return nil
}

// --- Loose coercion helpers ---
// Numeric fields accept arbitrary user text; anything unparseable is 0.

func coerceFloat(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

func coerceInt(raw string) int {
	// Integer fields tolerate decimal input by truncating it.
	return int(coerceFloat(raw))
}

func coerceBool(raw string) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return b
}
