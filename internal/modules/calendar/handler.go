// Package calendar implements the calendar lookup rules: upcoming
// holidays, exams, and the general date overview.
package calendar

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
)

// ModuleName identifies this module in logs.
const ModuleName = "calendar"

var calendarKeywords = []string{"calendar", "event", "exam", "holiday", "important date", "meeting"}

// maxListedMarks caps the itemized calendar reply.
const maxListedMarks = 5

const noDataReply = "Your calendar is empty right now. Once dates are marked I can keep an eye on holidays and exams for you."

// Rule answers calendar queries. Sub-cases in order: holidays, exams,
// then the general upcoming listing.
func Rule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentCalendarManagement,
		Name:   "calendar_management",
		Match: func(req *chat.Request) bool {
			return req.HasAny(calendarKeywords...)
		},
		Respond: respond,
	}
}

func respond(req *chat.Request) string {
	if !req.Bundle.HasCalendar() {
		return noDataReply
	}

	upcoming := analyzer.UpcomingMarks(req.Bundle, req.Now)

	switch {
	case req.HasAny("holiday", "break", "vacation"):
		return respondFiltered(analyzer.Holidays(upcoming), "holidays", "No upcoming holidays on your calendar - heads down for now!")
	case req.HasAny("exam", "test"):
		return respondFiltered(analyzer.Exams(upcoming), "exams", "No upcoming exams on your calendar. Enjoy it while it lasts!")
	default:
		return respondUpcoming(upcoming)
	}
}

func respondFiltered(marks []analyzer.UpcomingMark, kind, emptyReply string) string {
	if len(marks) == 0 {
		return emptyReply
	}

	lines := []string{fmt.Sprintf("Here are your upcoming %s:", kind)}
	lines = append(lines, markLines(marks)...)
	return reply.Lines(lines...)
}

func respondUpcoming(marks []analyzer.UpcomingMark) string {
	if len(marks) == 0 {
		return "Nothing is coming up on your calendar. All clear ahead!"
	}

	lines := []string{fmt.Sprintf("You have %s coming up:",
		reply.Count(len(marks), "marked date", "marked dates"))}
	lines = append(lines, markLines(marks)...)
	if len(marks) > maxListedMarks {
		lines = append(lines, fmt.Sprintf("...and %d more after that.", len(marks)-maxListedMarks))
	}
	return reply.Lines(lines...)
}

func markLines(marks []analyzer.UpcomingMark) []string {
	if len(marks) > maxListedMarks {
		marks = marks[:maxListedMarks]
	}
	lines := make([]string, 0, len(marks))
	for _, m := range marks {
		lines = append(lines, fmt.Sprintf("• %s - %s (%s)",
			m.Date.Format("Mon, Jan 2"), m.Category, inDays(m.DaysUntil)))
	}
	return lines
}

func inDays(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
