// Package calendar provides the date arithmetic behind the rotating
// 7-day split and the anchored week buckets. Everything here is pure.
package calendar

import "time"

// ISOLayout is the wire format for all dates in the log.
const ISOLayout = "2006-01-02"

// ParseISO parses an ISO calendar date, truncated to midnight UTC.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISOLayout, s)
}

// FormatISO renders a time as an ISO calendar date.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// TodayISO returns the current calendar date.
func TodayISO() string {
	return FormatISO(time.Now())
}

// DiffDays returns the whole-day difference between date and anchor,
// ignoring time-of-day. Negative when date is before anchor.
func DiffDays(date, anchor time.Time) int {
	d := truncate(date)
	a := truncate(anchor)
	return int(d.Sub(a).Hours() / 24)
}

// DayIndex maps a date onto the rotating 7-day split, anchored so that
// the anchor date itself is day 1. Dates before the anchor still land
// in [1,7] via a floor-style modulo.
func DayIndex(date, anchor time.Time) int {
	diff := DiffDays(date, anchor)
	return ((diff%7)+7)%7 + 1
}

// WeekStart returns the start of the week bucket containing date. Week
// buckets are 7-day spans anchored to the anchor's weekday, not to any
// calendar convention.
func WeekStart(date, anchor time.Time) time.Time {
	diff := DiffDays(date, anchor)
	weeks := diff / 7
	if diff%7 < 0 {
		weeks--
	}
	return truncate(anchor).AddDate(0, 0, weeks*7)
}

// WeekStartISO is WeekStart over ISO strings, for callers that keep
// dates in wire format.
func WeekStartISO(date, anchor string) (string, error) {
	d, err := ParseISO(date)
	if err != nil {
		return "", err
	}
	a, err := ParseISO(anchor)
	if err != nil {
		return "", err
	}
	return FormatISO(WeekStart(d, a)), nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
