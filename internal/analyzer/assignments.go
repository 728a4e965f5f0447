package analyzer

import (
	"slices"
	"time"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/timeutil"
)

// dueThisWeekWindow is the inclusive upper bound (in days) for "this week".
const dueThisWeekWindow = 7

// Deadline is one upcoming assignment date.
type Deadline struct {
	Date      time.Time
	Count     int // assignments due on that date
	DaysUntil int // calendar days from now; 0 means due today
}

// UpcomingDeadlines returns future assignment deadlines (due today or
// later) sorted ascending by date. Unparseable date keys are skipped.
func UpcomingDeadlines(bundle *chat.RequestBundle, now time.Time) []Deadline {
	var out []Deadline
	for dateStr, count := range bundle.Assignments {
		due, err := timeutil.ParseISODate(dateStr, now.Location())
		if err != nil {
			continue
		}
		days := timeutil.DaysUntil(now, due)
		if days < 0 {
			continue
		}
		out = append(out, Deadline{Date: due, Count: count, DaysUntil: days})
	}

	slices.SortFunc(out, func(a, b Deadline) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// DueThisWeek filters deadlines to the 0..7 day window.
func DueThisWeek(deadlines []Deadline) []Deadline {
	var out []Deadline
	for _, d := range deadlines {
		if d.DaysUntil <= dueThisWeekWindow {
			out = append(out, d)
		}
	}
	return out
}

// TotalAssignments sums the assignment counts across deadlines.
func TotalAssignments(deadlines []Deadline) int {
	total := 0
	for _, d := range deadlines {
		total += d.Count
	}
	return total
}
