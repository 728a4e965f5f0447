// Package chat defines the request bundle, the intent enumeration, and the
// ordered rule registry that together form the chat engine's core. Every
// value here is request-scoped: nothing survives a single
// classify-and-respond pass.
package chat

import (
	"strings"
)

// DefaultUserName is used whenever the caller does not supply a name.
const DefaultUserName = "there"

// RequestBundle is the full data payload accompanying a chat message.
// Every field except Message is optional; zero values are safe inputs for
// all analyzers.
type RequestBundle struct {
	Message  string `json:"message" binding:"required,max=500"`
	UserName string `json:"userName"`

	// Assignments maps an ISO date string to the number of assignments due.
	Assignments map[string]int `json:"assignments"`

	// Timetable maps "day_N" (N=0..6, Monday-indexed) to that day's classes.
	Timetable map[string][]ClassEntry `json:"timetable"`

	// TodayIndex is the client's idea of today (0..6). Informational only;
	// the engine derives "today" from its injected clock.
	TodayIndex int `json:"todayIndex" binding:"omitempty,dayindex"`

	CGPA          []SemesterRecord  `json:"cgpa"`
	CalendarMarks []CalendarMark    `json:"calendarMarks"`
	Attendance    AttendanceSummary `json:"attendance"`
	Expenses      ExpenseSummary    `json:"expenses"`
}

// ClassEntry is one timetable slot. The time window arrives either as
// explicit start/end fields or as a single "HH:MM-HH:MM" string.
type ClassEntry struct {
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Time      string `json:"time"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Label returns the display name of the class, preferring Subject over Name.
func (c ClassEntry) Label() string {
	if c.Subject != "" {
		return c.Subject
	}
	if c.Name != "" {
		return c.Name
	}
	return "Class"
}

// Normalized returns a copy with StartTime/EndTime populated from the
// shorthand "HH:MM-HH:MM" form when the explicit fields are absent.
func (c ClassEntry) Normalized() ClassEntry {
	if c.StartTime != "" || c.Time == "" {
		return c
	}
	if start, end, ok := strings.Cut(c.Time, "-"); ok {
		c.StartTime = strings.TrimSpace(start)
		c.EndTime = strings.TrimSpace(end)
	}
	return c
}

// Window renders the class time window, or an empty string if unknown.
func (c ClassEntry) Window() string {
	n := c.Normalized()
	switch {
	case n.StartTime != "" && n.EndTime != "":
		return n.StartTime + "-" + n.EndTime
	case n.StartTime != "":
		return n.StartTime
	default:
		return ""
	}
}

// SemesterRecord carries one semester's score under one of three
// alternative keys.
type SemesterRecord struct {
	SGPA     *float64 `json:"sgpa"`
	GPA      *float64 `json:"gpa"`
	Score    *float64 `json:"score"`
	Semester string   `json:"semester"`
}

// ResolveScore returns the semester score by first-present-wins priority
// sgpa > gpa > score. The second return is false when no key is present.
func (s SemesterRecord) ResolveScore() (float64, bool) {
	for _, v := range []*float64{s.SGPA, s.GPA, s.Score} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

// CalendarMark is a dated calendar entry classified by its category name.
type CalendarMark struct {
	Date         string `json:"date"`
	CategoryName string `json:"categoryName"`
}

// AttendanceSummary aggregates overall and per-subject attendance.
type AttendanceSummary struct {
	TotalHeld     int                          `json:"totalHeld"`
	TotalAttended int                          `json:"totalAttended"`
	Percentage    float64                      `json:"percentage"`
	Subjects      map[string]SubjectAttendance `json:"subjects"`
}

// SubjectAttendance is one subject's attendance record.
type SubjectAttendance struct {
	Attended   int     `json:"attended"`
	Held       int     `json:"held"`
	Percentage float64 `json:"percentage"`
}

// ExpenseSummary aggregates spending totals and per-category amounts.
type ExpenseSummary struct {
	Total      float64            `json:"total"`
	ThisMonth  float64            `json:"thisMonth"`
	Categories map[string]float64 `json:"categories"`
}

// FirstName resolves the user's first name for personalization: the first
// whitespace-separated token of UserName, or DefaultUserName.
func (b *RequestBundle) FirstName() string {
	name := strings.TrimSpace(b.UserName)
	if name == "" {
		return DefaultUserName
	}
	if first, _, ok := strings.Cut(name, " "); ok {
		return first
	}
	return name
}

// DayClasses returns the normalized class list for a Monday-indexed day.
func (b *RequestBundle) DayClasses(day int) []ClassEntry {
	if b.Timetable == nil {
		return nil
	}
	entries := b.Timetable[dayKey(day)]
	if len(entries) == 0 {
		return nil
	}
	out := make([]ClassEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Normalized()
	}
	return out
}

func dayKey(day int) string {
	return "day_" + string(rune('0'+day))
}

// HasExpenses reports whether any expense data is present.
func (b *RequestBundle) HasExpenses() bool {
	return b.Expenses.Total > 0 || b.Expenses.ThisMonth > 0 || len(b.Expenses.Categories) > 0
}

// HasAttendance reports whether attendance data is present.
func (b *RequestBundle) HasAttendance() bool {
	return b.Attendance.TotalHeld > 0
}

// HasTimetable reports whether any day has at least one class.
func (b *RequestBundle) HasTimetable() bool {
	for _, entries := range b.Timetable {
		if len(entries) > 0 {
			return true
		}
	}
	return false
}

// HasAssignments reports whether any assignment entries are present.
func (b *RequestBundle) HasAssignments() bool {
	return len(b.Assignments) > 0
}

// HasCalendar reports whether any calendar marks are present.
func (b *RequestBundle) HasCalendar() bool {
	return len(b.CalendarMarks) > 0
}

// HasGrades reports whether any semester records are present.
func (b *RequestBundle) HasGrades() bool {
	return len(b.CGPA) > 0
}
