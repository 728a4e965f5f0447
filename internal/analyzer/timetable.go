// Package analyzer contains the pure per-domain computations behind the
// chat replies: weekly schedule shape, attendance thresholds, grade trends,
// expense rankings, assignment windows, and calendar filtering. Every
// function is side-effect free and operates only on its arguments.
package analyzer

import (
	"github.com/campusmate/chatbot-go/internal/chat"
)

// NoDay marks the busiest/lightest slots when no day qualifies.
const NoDay = -1

// WeeklyPattern summarizes the shape of a 7-day timetable.
type WeeklyPattern struct {
	ClassesPerDay   [7]int
	TotalClasses    int
	DaysWithClasses int
	BusiestDay      int // Monday-indexed; NoDay when the week is empty
	BusiestCount    int
	LightestDay     int // day with the fewest non-zero classes; NoDay when empty
	LightestCount   int
}

// AnalyzeWeek scans days 0..6 in order and accumulates the weekly pattern.
// Ties go to the earliest day encountered.
func AnalyzeWeek(bundle *chat.RequestBundle) WeeklyPattern {
	p := WeeklyPattern{BusiestDay: NoDay, LightestDay: NoDay}

	for day := range 7 {
		count := len(bundle.DayClasses(day))
		p.ClassesPerDay[day] = count
		p.TotalClasses += count
		if count == 0 {
			continue
		}
		p.DaysWithClasses++
		if count > p.BusiestCount {
			p.BusiestDay = day
			p.BusiestCount = count
		}
		if p.LightestDay == NoDay || count < p.LightestCount {
			p.LightestDay = day
			p.LightestCount = count
		}
	}

	return p
}

// FreeDays returns the Monday-indexed days with no classes.
func FreeDays(bundle *chat.RequestBundle) []int {
	var free []int
	for day := range 7 {
		if len(bundle.DayClasses(day)) == 0 {
			free = append(free, day)
		}
	}
	return free
}
