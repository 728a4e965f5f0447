package attendance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/modules/attendance"
	"github.com/campusmate/chatbot-go/internal/reply"
)

func newReq(message string, bundle *chat.RequestBundle) *chat.Request {
	return &chat.Request{
		Bundle:  bundle,
		Message: strings.ToLower(strings.TrimSpace(message)),
		Name:    bundle.FirstName(),
		Now:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Persona: reply.NewPersonalizer(nil),
	}
}

func attendanceBundle(held, attended int, pct float64) *chat.RequestBundle {
	return &chat.RequestBundle{
		UserName: "Asha Verma",
		Attendance: chat.AttendanceSummary{
			TotalHeld:     held,
			TotalAttended: attended,
			Percentage:    pct,
			Subjects: map[string]chat.SubjectAttendance{
				"Maths":   {Attended: 18, Held: 20, Percentage: 90},
				"Physics": {Attended: 12, Held: 20, Percentage: 60},
			},
		},
	}
}

func TestAttendanceMatch(t *testing.T) {
	t.Parallel()

	rule := attendance.Rule()

	assert.True(t, rule.Match(newReq("how is my attendance", attendanceBundle(40, 28, 70))))
	assert.True(t, rule.Match(newReq("what's my percentage", attendanceBundle(40, 28, 70))))
	assert.False(t, rule.Match(newReq("hello", attendanceBundle(40, 28, 70))))
}

func TestOverallBelowRequirement(t *testing.T) {
	t.Parallel()

	text := attendance.Rule().Respond(newReq("how is my attendance", attendanceBundle(40, 28, 70)))

	assert.Contains(t, text, "70.00% attendance (28 of 40 classes)")
	assert.Contains(t, text, "below the 75% requirement")
	assert.Contains(t, text, "2 more classes")
}

func TestOverallAcceptable(t *testing.T) {
	t.Parallel()

	text := attendance.Rule().Respond(newReq("attendance", attendanceBundle(40, 32, 80)))

	assert.Contains(t, text, "80.00%")
	assert.Contains(t, text, "keep showing up")
}

func TestOverallGood(t *testing.T) {
	t.Parallel()

	text := attendance.Rule().Respond(newReq("attendance", attendanceBundle(40, 36, 90)))

	assert.Contains(t, text, "90.00%")
	assert.Contains(t, text, "comfortable margin")
}

func TestBreakdownLowestFirst(t *testing.T) {
	t.Parallel()

	text := attendance.Rule().Respond(newReq("attendance breakdown", attendanceBundle(40, 30, 75)))

	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "Physics")
	assert.Contains(t, lines[1], "60.00%")
	assert.Contains(t, lines[2], "Maths")
	assert.Contains(t, text, "Focus on Physics first")
}

func TestLowestSubject(t *testing.T) {
	t.Parallel()

	text := attendance.Rule().Respond(newReq("which subject is my attendance lowest", attendanceBundle(40, 30, 75)))

	assert.Contains(t, text, "Physics")
	assert.Contains(t, text, "60.00%")
	assert.Contains(t, text, "below the 75% requirement")
}

func TestAttendanceNoData(t *testing.T) {
	t.Parallel()

	empty := &chat.RequestBundle{UserName: "Asha"}
	text := attendance.Rule().Respond(newReq("attendance", empty))

	assert.Contains(t, text, "don't have any attendance records")
}
