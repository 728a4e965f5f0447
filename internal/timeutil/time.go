// Package timeutil provides calendar helpers shared by the chat analyzers.
// All comparisons are date-only: timestamps are truncated to local midnight
// before any "future"/"days until" computation so a 23:59 deadline still
// counts as due today.
package timeutil

import (
	"math"
	"strings"
	"time"
)

// dayNames is Monday-indexed to match the timetable's day_0..day_6 keys.
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the weekday name for a Monday-indexed day (0..6).
// Out-of-range indexes return an empty string.
func DayName(index int) string {
	if index < 0 || index >= len(dayNames) {
		return ""
	}
	return dayNames[index]
}

// DayIndex returns the Monday-indexed weekday (0..6) of t.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayIndexByName resolves a lowercase weekday name to its Monday-indexed
// position. Returns -1 if the name is not a weekday.
func DayIndexByName(name string) int {
	for i, n := range dayNames {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of calendar days from now until target.
// Both sides are truncated to midnight first, so the result counts day
// boundaries rather than elapsed 24-hour periods. Negative for past dates.
// The span is rounded, not truncated: a DST transition makes the
// midnight-to-midnight gap 23 or 25 hours and must still count as one day.
func DaysUntil(now, target time.Time) int {
	from := StartOfDay(now)
	to := StartOfDay(target.In(now.Location()))
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// IsFutureDate reports whether target falls on today or a later date.
func IsFutureDate(now, target time.Time) bool {
	return !StartOfDay(target.In(now.Location())).Before(StartOfDay(now))
}

// ParseISODate parses an ISO date string ("2006-01-02", optionally with a
// trailing time component) into a midnight timestamp in loc.
func ParseISODate(value string, loc *time.Location) (time.Time, error) {
	if len(value) > 10 {
		value = value[:10]
	}
	t, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
