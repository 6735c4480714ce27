// Package timeutil provides calendar-date helpers for the study dashboard.
// A date is a time.Time at midnight in the local time zone; all helpers
// normalize their inputs to that form so comparisons ignore the clock.
// No external dependencies - uses only standard library.
package timeutil

import (
	"math"
	"time"
)

// DateLayout is the textual form used for dates in exports and input.
const DateLayout = "2006-01-02"

// Now returns the current time in the local time zone.
func Now() time.Time {
	return time.Now().In(time.Local)
}

// Today returns the current calendar date.
func Today() time.Time {
	return StartOfDay(Now())
}

// Date creates a calendar date in the local time zone.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// StartOfDay returns the start of the day (00:00:00) in the local time zone.
func StartOfDay(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// AddDays moves a date by n calendar days. The result is always midnight,
// also across daylight saving changes.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// IsSameDay checks if two times fall on the same calendar date.
func IsSameDay(t1, t2 time.Time) bool {
	return StartOfDay(t1).Equal(StartOfDay(t2))
}

// Within reports whether day lies in [start, end], both ends inclusive.
func Within(day, start, end time.Time) bool {
	d := StartOfDay(day)
	return !d.Before(StartOfDay(start)) && !d.After(StartOfDay(end))
}

// DaysBetween calculates the number of calendar days from t1 to t2.
func DaysBetween(t1, t2 time.Time) int {
	a := StartOfDay(t1)
	b := StartOfDay(t2)
	// Rounding absorbs the 23h/25h days around DST switches.
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in the local time zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
