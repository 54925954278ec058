// Package export serializes the full tracker log into the flat CSV
// backup format. The document is three header/row blocks concatenated
// (workouts+cardio, meals, supplements), not one normalized table, and
// every field is quoted with embedded quotes doubled.
package export

import (
	"strconv"
	"strings"

	"alcyxob/gym-tracker/internal/domain"
)

// Filename is the fixed name the export is offered under.
const Filename = "gym_tracker_export.csv"

// CSV renders the whole log. Row order follows the original collection
// order of each slice; nothing is re-sorted. An exercise with zero sets
// still emits one row, with the set-number/weight/reps/rpe fields empty.
func CSV(log domain.TrackerLog) string {
	var rows [][]string

	rows = append(rows, []string{"type", "date", "dayIndex", "name", "set_num", "weight", "reps", "rpe", "notes"})
	for _, w := range log.Workouts {
		for _, ex := range w.Exercises {
			if len(ex.Sets) == 0 {
				rows = append(rows, []string{"workout", w.Date, itoa(w.DayIndex), ex.Name, "", "", "", "", w.Notes})
			}
			for i, set := range ex.Sets {
				rows = append(rows, []string{
					"workout", w.Date, itoa(w.DayIndex), ex.Name,
					itoa(i + 1), ftoa(set.Weight), itoa(set.Reps), itoa(set.RPE), w.Notes,
				})
			}
		}
		for _, c := range w.Cardio {
			rows = append(rows, []string{
				"cardio", w.Date, itoa(w.DayIndex), c.Type,
				"", ftoa(c.Duration), ftoa(c.Distance), ftoa(c.HR), "",
			})
		}
	}

	rows = append(rows, []string{"type", "date", "name", "kcal", "protein", "carbs", "fat"})
	for _, m := range log.Meals {
		rows = append(rows, []string{
			"meal", m.Date, m.Name, ftoa(m.Kcal), ftoa(m.Protein), ftoa(m.Carbs), ftoa(m.Fat),
		})
	}

	rows = append(rows, []string{"type", "date", "creatine_g", "pre", "casein", "whey"})
	for _, rec := range log.Supplements {
		rows = append(rows, []string{
			"supps", rec.Date, ftoa(rec.CreatineG),
			strconv.FormatBool(rec.Pre), strconv.FormatBool(rec.Casein), strconv.FormatBool(rec.Whey),
		})
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, field := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(field))
		}
	}
	return b.String()
}

// quote wraps a field in double quotes, doubling embedded quotes.
// encoding/csv is not used because it only quotes when it has to, and
// the backup format quotes every field unconditionally.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// ftoa renders a number the way the original export did: no trailing
// zeros, no forced decimal point.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
