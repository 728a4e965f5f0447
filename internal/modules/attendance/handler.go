// Package attendance implements the attendance insight rules: overall
// standing, per-subject breakdown, and lowest-subject lookup.
package attendance

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
)

// ModuleName identifies this module in logs.
const ModuleName = "attendance"

var attendanceKeywords = []string{"attendance", "present", "absent", "percentage"}

const noDataReply = "I don't have any attendance records for you yet. Once your classes are marked I can track you against the 75% requirement."

// Rule answers attendance queries, selecting the sub-case by a second
// ordered predicate set: per-subject breakdown, then lowest subject, then
// the overall summary.
func Rule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentAttendanceInsights,
		Name:   "attendance_insights",
		Match: func(req *chat.Request) bool {
			return req.HasAny(attendanceKeywords...)
		},
		Respond: respond,
	}
}

func respond(req *chat.Request) string {
	if !req.Bundle.HasAttendance() {
		return noDataReply
	}

	switch {
	case wantsBreakdown(req) && len(req.Bundle.Attendance.Subjects) > 0:
		return respondBreakdown(req)
	case wantsLowest(req) && len(req.Bundle.Attendance.Subjects) > 0:
		return respondLowest(req)
	default:
		return respondOverall(req)
	}
}

func wantsBreakdown(req *chat.Request) bool {
	return req.HasAny("each subject", "per subject", "subject wise", "subjectwise", "breakdown", "all subjects")
}

func wantsLowest(req *chat.Request) bool {
	return req.HasAny("lowest", "worst", "least", "which subject", "danger")
}

func respondBreakdown(req *chat.Request) string {
	ranked := analyzer.RankSubjects(req.Bundle.Attendance.Subjects)

	lines := []string{"Here's your subject-wise attendance, lowest first:"}
	for _, s := range ranked {
		lines = append(lines, fmt.Sprintf("%s %s: %s (%d/%d)",
			marker(s.Band), s.Subject, reply.Percent(s.Percentage), s.Attended, s.Held))
	}

	if worst := ranked[0]; worst.Band == analyzer.BandBelow {
		needed := analyzer.ClassesNeeded(worst.Held, worst.Attended)
		lines = append(lines, fmt.Sprintf("Focus on %s first - you need %s there to reach 75%%.",
			worst.Subject, reply.Count(needed, "more class", "more classes")))
	}

	return reply.Lines(lines...)
}

func respondLowest(req *chat.Request) string {
	ranked := analyzer.RankSubjects(req.Bundle.Attendance.Subjects)
	worst := ranked[0]

	text := fmt.Sprintf("Your lowest attendance is %s at %s (%d of %d classes).",
		worst.Subject, reply.Percent(worst.Percentage), worst.Attended, worst.Held)

	if worst.Band == analyzer.BandBelow {
		needed := analyzer.ClassesNeeded(worst.Held, worst.Attended)
		text = reply.Paragraph(text, fmt.Sprintf("That's below the 75%% requirement - attend %s to get back on track.",
			reply.Count(needed, "more class", "more classes")))
	} else {
		text = reply.Paragraph(text, "Still above the 75% requirement, so no immediate risk.")
	}

	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func respondOverall(req *chat.Request) string {
	a := req.Bundle.Attendance
	text := fmt.Sprintf("You're at %s attendance (%d of %d classes).",
		reply.Percent(a.Percentage), a.TotalAttended, a.TotalHeld)

	switch analyzer.BandFor(a.Percentage) {
	case analyzer.BandBelow:
		needed := analyzer.ClassesNeeded(a.TotalHeld, a.TotalAttended)
		text = reply.Paragraph(text, fmt.Sprintf(
			"That's below the 75%% requirement - you need to attend %s to get back on track.",
			reply.Count(needed, "more class", "more classes")))
	case analyzer.BandAcceptable:
		text = reply.Paragraph(text, "You're above the 75% requirement, but there isn't much margin - keep showing up.")
	case analyzer.BandGood:
		text = reply.Paragraph(text, "That's a comfortable margin. Keep it up!")
	}

	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func marker(band analyzer.AttendanceBand) string {
	switch band {
	case analyzer.BandBelow:
		return "⚠️"
	case analyzer.BandGood:
		return "✅"
	default:
		return "•"
	}
}
