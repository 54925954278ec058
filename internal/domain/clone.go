package domain

// Clone returns a deep copy of the log. The store hands copies to
// readers so that no caller can alias its internal state.
func (l *TrackerLog) Clone() *TrackerLog {
	out := &TrackerLog{
		StartDate:   l.StartDate,
		Settings:    l.Settings,
		Workouts:    make([]Workout, len(l.Workouts)),
		Meals:       append([]Meal{}, l.Meals...),
		Supplements: append([]SupplementRecord{}, l.Supplements...),
		Reviews:     append([]WeeklyReview{}, l.Reviews...),
	}
	for i, w := range l.Workouts {
		out.Workouts[i] = w.Clone()
	}
	return out
}

// Clone returns a deep copy of the workout and its nested collections.
func (w Workout) Clone() Workout {
	cp := w
	cp.Exercises = make([]Exercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		e := ex
		e.Sets = append([]SetEntry{}, ex.Sets...)
		cp.Exercises[i] = e
	}
	cp.Cardio = append([]CardioEntry{}, w.Cardio...)
	return cp
}
