// Package aggregate holds the pure reducers that turn the raw log into
// the derived views: per-session volume, per-day macro totals and the
// weekly volume series. Nothing here caches; callers always pass the
// current snapshot and get a fresh result.
package aggregate

import (
	"math"
	"sort"
	"time"

	"alcyxob/gym-tracker/internal/calendar"
	"alcyxob/gym-tracker/internal/domain"
)

// MacroTotals is the field-wise sum of meals for one day.
type MacroTotals struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"p"`
	Carbs   float64 `json:"c"`
	Fat     float64 `json:"f"`
}

// WeeklyVolume is one point of the weekly volume series.
type WeeklyVolume struct {
	WeekStart string `json:"week"`
	Volume    int    `json:"volume"`
}

// SessionVolume sums weight×reps across every set of every exercise in
// a workout. A workout with no exercises, or exercises with no sets,
// has volume 0.
func SessionVolume(w domain.Workout) float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			total += set.Weight * float64(set.Reps)
		}
	}
	return total
}

// DayMacroTotals sums kcal/protein/carbs/fat across the given meals.
// Callers pass the meals already filtered to one date.
func DayMacroTotals(meals []domain.Meal) MacroTotals {
	var t MacroTotals
	for _, m := range meals {
		t.Kcal += m.Kcal
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// WeeklyVolumeSeries groups workouts into week buckets relative to the
// current anchor, sums session volume per bucket and returns the series
// sorted ascending by week start. Weeks with no workouts do not appear.
// Volumes are rounded to the nearest integer for display.
func WeeklyVolumeSeries(workouts []domain.Workout, anchor time.Time) []WeeklyVolume {
	buckets := make(map[string]float64)
	for _, w := range workouts {
		d, err := calendar.ParseISO(w.Date)
		if err != nil {
			continue // unparseable dates can't be bucketed
		}
		wk := calendar.FormatISO(calendar.WeekStart(d, anchor))
		buckets[wk] += SessionVolume(w)
	}

	series := make([]WeeklyVolume, 0, len(buckets))
	for wk, vol := range buckets {
		series = append(series, WeeklyVolume{WeekStart: wk, Volume: int(math.Round(vol))})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].WeekStart < series[j].WeekStart
	})
	return series
}
