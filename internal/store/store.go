// Package store owns the in-memory tracker log and its mutation
// contract. Every mutation rebuilds the affected top-level collection
// with only the targeted entry transformed, then synchronously saves
// the whole snapshot through the repository. A failed save is logged
// and swallowed: the in-memory state has already moved on and there is
// no rollback.
package store

import (
	"context"
	"errors"
	"log"
	"sync"

	"alcyxob/gym-tracker/internal/calendar"
	"alcyxob/gym-tracker/internal/domain"
	"alcyxob/gym-tracker/internal/repository"

	"github.com/google/uuid"
)

// ErrExerciseNotFound is returned when a set is added to an exercise
// that does not exist in the workout for that date.
var ErrExerciseNotFound = errors.New("exercise not found")

// Store holds the single tracker log. All access is serialized by one
// mutex; the log is small and persisted as one unit anyway.
type Store struct {
	mu   sync.Mutex
	log  *domain.TrackerLog
	repo repository.SnapshotRepository
}

// New loads the persisted log through repo. Absent or malformed data
// silently falls back to a fresh default log anchored at today, per
// the recovery contract: the user never sees a load error.
func New(ctx context.Context, repo repository.SnapshotRepository) *Store {
	tl, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: could not load snapshot, starting fresh: %v", err)
		}
		tl = domain.NewDefaultLog(calendar.TodayISO())
	}
	return &Store{log: tl, repo: repo}
}

// persist writes the current snapshot. Must be called with mu held.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.log); err != nil {
		log.Printf("WARN: failed to persist snapshot: %v", err)
	}
}

// Snapshot returns a deep copy of the full log.
func (s *Store) Snapshot() domain.TrackerLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.log.Clone()
}

// StartDate returns the current split anchor date.
func (s *Store) StartDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.StartDate
}

// SetStartDate moves the split anchor. DayIndex values already frozen
// on stored workouts are deliberately left untouched; only future
// lookups use the new anchor.
func (s *Store) SetStartDate(ctx context.Context, date string) error {
	if _, err := calendar.ParseISO(date); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.StartDate = date
	s.persist(ctx)
	return nil
}

// Settings returns the current nutrition targets.
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Settings
}

// UpdateSettings applies fn to a copy of the settings and swaps it in.
func (s *Store) UpdateSettings(ctx context.Context, fn func(*domain.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.log.Settings
	fn(&next)
	s.log.Settings = next
	s.persist(ctx)
}

// Reset collapses the log back to the fresh default state. Confirmation
// is the caller's responsibility.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = domain.NewDefaultLog(calendar.TodayISO())
	s.persist(ctx)
}

// --- Workouts ---

// Workouts returns all workouts in original collection order.
func (s *Store) Workouts() []domain.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Workout, len(s.log.Workouts))
	for i, w := range s.log.Workouts {
		out[i] = w.Clone()
	}
	return out
}

// WorkoutByDate looks up the workout for a date without creating one.
func (s *Store) WorkoutByDate(date string) (domain.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.log.Workouts {
		if w.Date == date {
			return w.Clone(), true
		}
	}
	return domain.Workout{}, false
}

// EnsureWorkout returns the workout for a date, creating a default one
// on first access. The day index is computed from the current anchor
// here, once, and frozen on the stored record. Repeated calls with the
// same date return the same record.
func (s *Store) EnsureWorkout(ctx context.Context, date string) (domain.Workout, error) {
	d, err := calendar.ParseISO(date)
	if err != nil {
		return domain.Workout{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.findWorkout(date); ok {
		return w.Clone(), nil
	}
	anchor, err := calendar.ParseISO(s.log.StartDate)
	if err != nil {
		return domain.Workout{}, err
	}
	w := domain.Workout{
		ID:        uuid.NewString(),
		Date:      date,
		DayIndex:  calendar.DayIndex(d, anchor),
		Exercises: []domain.Exercise{},
		Cardio:    []domain.CardioEntry{},
	}
	s.log.Workouts = append(s.log.Workouts, w)
	s.persist(ctx)
	return w.Clone(), nil
}

func (s *Store) findWorkout(date string) (domain.Workout, bool) {
	for _, w := range s.log.Workouts {
		if w.Date == date {
			return w, true
		}
	}
	return domain.Workout{}, false
}

// rebuildWorkout replaces the workout matching date with a transformed
// copy, leaving every other entry untouched. Missing dates are a no-op;
// callers that need the workout to exist ensure it first.
func (s *Store) rebuildWorkout(date string, fn func(*domain.Workout)) {
	next := make([]domain.Workout, len(s.log.Workouts))
	for i, w := range s.log.Workouts {
		if w.Date == date {
			w = w.Clone()
			fn(&w)
		}
		next[i] = w
	}
	s.log.Workouts = next
}

// UpdateWorkout ensures the workout for date exists and applies fn to it.
func (s *Store) UpdateWorkout(ctx context.Context, date string, fn func(*domain.Workout)) error {
	if _, err := s.EnsureWorkout(ctx, date); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuildWorkout(date, fn)
	s.persist(ctx)
	return nil
}

// AddExercise appends a blank exercise to the workout for date,
// creating the workout first when needed.
func (s *Store) AddExercise(ctx context.Context, date string) (domain.Exercise, error) {
	ex := domain.Exercise{ID: uuid.NewString(), Sets: []domain.SetEntry{}}
	err := s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		w.Exercises = append(w.Exercises, ex)
	})
	return ex, err
}

// DeleteExercise removes an exercise (and all its sets) from the
// workout for date. An unknown exercise id is a no-op.
func (s *Store) DeleteExercise(ctx context.Context, date, exerciseID string) error {
	return s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		next := w.Exercises[:0]
		for _, ex := range w.Exercises {
			if ex.ID != exerciseID {
				next = append(next, ex)
			}
		}
		w.Exercises = next
	})
}

// UpdateExercise applies fn to the matching exercise. Unknown ids are
// a silent no-op, mirroring the rebuild-with-transform contract.
func (s *Store) UpdateExercise(ctx context.Context, date, exerciseID string, fn func(*domain.Exercise)) error {
	return s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		for i := range w.Exercises {
			if w.Exercises[i].ID == exerciseID {
				fn(&w.Exercises[i])
			}
		}
	})
}

// AddSet appends a default set (weight 0, reps 0, RPE 8) to an
// exercise. The workout is ensured; the exercise must already exist.
func (s *Store) AddSet(ctx context.Context, date, exerciseID string) (domain.SetEntry, error) {
	set := domain.SetEntry{ID: uuid.NewString(), RPE: 8}
	found := false
	err := s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		for i := range w.Exercises {
			if w.Exercises[i].ID == exerciseID {
				w.Exercises[i].Sets = append(w.Exercises[i].Sets, set)
				found = true
			}
		}
	})
	if err != nil {
		return domain.SetEntry{}, err
	}
	if !found {
		return domain.SetEntry{}, ErrExerciseNotFound
	}
	return set, nil
}

// UpdateSet applies fn to the matching set entry.
func (s *Store) UpdateSet(ctx context.Context, date, exerciseID, setID string, fn func(*domain.SetEntry)) error {
	return s.UpdateExercise(ctx, date, exerciseID, func(ex *domain.Exercise) {
		for i := range ex.Sets {
			if ex.Sets[i].ID == setID {
				fn(&ex.Sets[i])
			}
		}
	})
}

// AddCardio appends a default cardio entry to the workout for date.
func (s *Store) AddCardio(ctx context.Context, date string) (domain.CardioEntry, error) {
	c := domain.CardioEntry{ID: uuid.NewString(), Type: "Steady", Duration: 30}
	err := s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		w.Cardio = append(w.Cardio, c)
	})
	return c, err
}

// UpdateCardio applies fn to the matching cardio entry.
func (s *Store) UpdateCardio(ctx context.Context, date, cardioID string, fn func(*domain.CardioEntry)) error {
	return s.UpdateWorkout(ctx, date, func(w *domain.Workout) {
		for i := range w.Cardio {
			if w.Cardio[i].ID == cardioID {
				fn(&w.Cardio[i])
			}
		}
	})
}

// --- Meals ---

// Meals returns all meals in original collection order.
func (s *Store) Meals() []domain.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Meal{}, s.log.Meals...)
}

// MealsForDate returns the meals logged on one date.
func (s *Store) MealsForDate(date string) []domain.Meal {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Meal
	for _, m := range s.log.Meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// AddMeal appends a default meal for the given date.
func (s *Store) AddMeal(ctx context.Context, date string) (domain.Meal, error) {
	if _, err := calendar.ParseISO(date); err != nil {
		return domain.Meal{}, err
	}
	m := domain.Meal{ID: uuid.NewString(), Date: date, Name: "Meal"}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Meals = append(s.log.Meals, m)
	s.persist(ctx)
	return m, nil
}

// UpdateMeal applies fn to the matching meal; unknown ids are a no-op.
func (s *Store) UpdateMeal(ctx context.Context, mealID string, fn func(*domain.Meal)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Meal, len(s.log.Meals))
	for i, m := range s.log.Meals {
		if m.ID == mealID {
			fn(&m)
		}
		next[i] = m
	}
	s.log.Meals = next
	s.persist(ctx)
}

// DeleteMeal removes a meal by identity; unknown ids are a no-op.
func (s *Store) DeleteMeal(ctx context.Context, mealID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.Meal, 0, len(s.log.Meals))
	for _, m := range s.log.Meals {
		if m.ID != mealID {
			next = append(next, m)
		}
	}
	s.log.Meals = next
	s.persist(ctx)
}

// --- Supplements ---

// Supplements returns all supplement records in collection order.
func (s *Store) Supplements() []domain.SupplementRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SupplementRecord{}, s.log.Supplements...)
}

// EnsureSupplement returns the supplement record for a date, creating
// the default one (5 g creatine, nothing taken) on first access. Note
// that this read path may perform a write.
func (s *Store) EnsureSupplement(ctx context.Context, date string) (domain.SupplementRecord, error) {
	if _, err := calendar.ParseISO(date); err != nil {
		return domain.SupplementRecord{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.log.Supplements {
		if rec.Date == date {
			return rec, nil
		}
	}
	rec := domain.SupplementRecord{ID: uuid.NewString(), Date: date, CreatineG: 5}
	s.log.Supplements = append(s.log.Supplements, rec)
	s.persist(ctx)
	return rec, nil
}

// UpdateSupplement ensures the record for date exists and applies fn.
func (s *Store) UpdateSupplement(ctx context.Context, date string, fn func(*domain.SupplementRecord)) error {
	if _, err := s.EnsureSupplement(ctx, date); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.SupplementRecord, len(s.log.Supplements))
	for i, rec := range s.log.Supplements {
		if rec.Date == date {
			fn(&rec)
		}
		next[i] = rec
	}
	s.log.Supplements = next
	s.persist(ctx)
	return nil
}

// --- Weekly reviews ---

// Reviews returns all weekly reviews in collection order.
func (s *Store) Reviews() []domain.WeeklyReview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WeeklyReview{}, s.log.Reviews...)
}

// EnsureReview returns the review for the week bucket containing date,
// creating a blank one on first access. The bucket is resolved against
// the current anchor. Like EnsureSupplement, reading may write.
func (s *Store) EnsureReview(ctx context.Context, date string) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	weekStart, err := calendar.WeekStartISO(date, s.log.StartDate)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	for _, r := range s.log.Reviews {
		if r.WeekStart == weekStart {
			return r, nil
		}
	}
	r := domain.WeeklyReview{ID: uuid.NewString(), WeekStart: weekStart}
	s.log.Reviews = append(s.log.Reviews, r)
	s.persist(ctx)
	return r, nil
}

// UpdateReview ensures the review for date's week exists and applies fn.
func (s *Store) UpdateReview(ctx context.Context, date string, fn func(*domain.WeeklyReview)) error {
	rec, err := s.EnsureReview(ctx, date)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]domain.WeeklyReview, len(s.log.Reviews))
	for i, r := range s.log.Reviews {
		if r.WeekStart == rec.WeekStart {
			fn(&r)
		}
		next[i] = r
	}
	s.log.Reviews = next
	s.persist(ctx)
	return nil
}
