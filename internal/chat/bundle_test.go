package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		want     string
	}{
		{"full name", "Asha Verma", "Asha"},
		{"single token", "Asha", "Asha"},
		{"empty", "", DefaultUserName},
		{"whitespace only", "   ", DefaultUserName},
		{"leading space", "  Ravi Kumar", "Ravi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &RequestBundle{UserName: tt.userName}
			assert.Equal(t, tt.want, b.FirstName())
		})
	}
}

func TestClassEntryNormalized(t *testing.T) {
	t.Parallel()

	shorthand := ClassEntry{Subject: "Maths", Time: "09:00 - 10:00"}
	n := shorthand.Normalized()
	assert.Equal(t, "09:00", n.StartTime)
	assert.Equal(t, "10:00", n.EndTime)
	assert.Equal(t, "09:00-10:00", shorthand.Window())

	explicit := ClassEntry{Subject: "Maths", StartTime: "11:00", EndTime: "12:00", Time: "ignored"}
	assert.Equal(t, "11:00-12:00", explicit.Window())

	bare := ClassEntry{Subject: "Maths"}
	assert.Empty(t, bare.Window())
}

func TestClassEntryLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Physics", ClassEntry{Subject: "Physics", Name: "PHY101"}.Label())
	assert.Equal(t, "PHY101", ClassEntry{Name: "PHY101"}.Label())
	assert.Equal(t, "Class", ClassEntry{}.Label())
}

func TestResolveScorePriority(t *testing.T) {
	t.Parallel()

	sgpa, gpa, score := 8.1, 7.2, 6.3

	v, ok := SemesterRecord{SGPA: &sgpa, GPA: &gpa, Score: &score}.ResolveScore()
	require.True(t, ok)
	assert.Equal(t, 8.1, v)

	v, ok = SemesterRecord{GPA: &gpa, Score: &score}.ResolveScore()
	require.True(t, ok)
	assert.Equal(t, 7.2, v)

	v, ok = SemesterRecord{Score: &score}.ResolveScore()
	require.True(t, ok)
	assert.Equal(t, 6.3, v)

	_, ok = SemesterRecord{Semester: "Sem 1"}.ResolveScore()
	assert.False(t, ok)
}

func TestDayClasses(t *testing.T) {
	t.Parallel()

	b := &RequestBundle{Timetable: map[string][]ClassEntry{
		"day_0": {{Subject: "Maths", Time: "09:00-10:00"}},
		"day_2": {},
	}}

	monday := b.DayClasses(0)
	require.Len(t, monday, 1)
	assert.Equal(t, "09:00", monday[0].StartTime)

	assert.Nil(t, b.DayClasses(2))
	assert.Nil(t, b.DayClasses(5))
	assert.Nil(t, (&RequestBundle{}).DayClasses(0))
}

func TestAvailabilityFlags(t *testing.T) {
	t.Parallel()

	empty := &RequestBundle{}
	assert.False(t, empty.HasTimetable())
	assert.False(t, empty.HasAttendance())
	assert.False(t, empty.HasGrades())
	assert.False(t, empty.HasAssignments())
	assert.False(t, empty.HasCalendar())
	assert.False(t, empty.HasExpenses())

	score := 7.5
	full := &RequestBundle{
		Timetable:     map[string][]ClassEntry{"day_1": {{Subject: "Maths"}}},
		Attendance:    AttendanceSummary{TotalHeld: 10, TotalAttended: 8},
		CGPA:          []SemesterRecord{{SGPA: &score}},
		Assignments:   map[string]int{"2025-03-12": 2},
		CalendarMarks: []CalendarMark{{Date: "2025-03-20", CategoryName: "Holiday"}},
		Expenses:      ExpenseSummary{Total: 100},
	}

	got := availabilityFor(full)
	assert.Equal(t, DataAvailability{
		Timetable:   true,
		Attendance:  true,
		Grades:      true,
		Assignments: true,
		Calendar:    true,
		Expenses:    true,
	}, got)
}
