// Package assignments implements the deadline planning rules: this-week
// windows, next due date, and the overall workload summary.
package assignments

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
	"github.com/campusmate/chatbot-go/internal/timeutil"
)

// ModuleName identifies this module in logs.
const ModuleName = "assignments"

var assignmentKeywords = []string{"assignment", "homework", "deadline", "due", "project"}

const noDataReply = "There are no assignments on your radar yet. I'll plan your deadlines once some are added."

// Rule answers assignment queries. Sub-cases in order: this-week window,
// next deadline, then the overall summary.
func Rule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentAssignmentPlanning,
		Name:   "assignment_planning",
		Match: func(req *chat.Request) bool {
			return req.HasAny(assignmentKeywords...)
		},
		Respond: respond,
	}
}

func respond(req *chat.Request) string {
	if !req.Bundle.HasAssignments() {
		return noDataReply
	}

	upcoming := analyzer.UpcomingDeadlines(req.Bundle, req.Now)
	if len(upcoming) == 0 {
		return "Everything on your assignment list is already past its due date. Nothing upcoming - nice and clear!"
	}

	switch {
	case req.HasAny("this week", "week"):
		return respondThisWeek(upcoming)
	case req.HasAny("next", "soonest", "first"):
		return respondNext(req, upcoming)
	default:
		return respondSummary(req, upcoming)
	}
}

func respondThisWeek(upcoming []analyzer.Deadline) string {
	week := analyzer.DueThisWeek(upcoming)
	if len(week) == 0 {
		return "Nothing is due this week. A good window to get ahead!"
	}

	lines := []string{fmt.Sprintf("You have %s due this week:",
		reply.Count(analyzer.TotalAssignments(week), "assignment", "assignments"))}
	for _, d := range week {
		lines = append(lines, fmt.Sprintf("• %s: %s (%s)",
			d.Date.Format("Mon, Jan 2"),
			reply.Count(d.Count, "assignment", "assignments"),
			dueIn(d.DaysUntil)))
	}
	return reply.Lines(lines...)
}

func respondNext(req *chat.Request, upcoming []analyzer.Deadline) string {
	next := upcoming[0]
	text := fmt.Sprintf("Your next deadline is %s on %s (%s) with %s due.",
		timeutil.DayName(timeutil.DayIndex(next.Date)),
		next.Date.Format("Jan 2"),
		dueIn(next.DaysUntil),
		reply.Count(next.Count, "assignment", "assignments"))
	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func respondSummary(req *chat.Request, upcoming []analyzer.Deadline) string {
	total := analyzer.TotalAssignments(upcoming)
	week := analyzer.DueThisWeek(upcoming)

	text := fmt.Sprintf("You have %s coming up across %s.",
		reply.Count(total, "assignment", "assignments"),
		reply.Count(len(upcoming), "due date", "due dates"))

	if len(week) > 0 {
		weekTotal := analyzer.TotalAssignments(week)
		verb := "are"
		if weekTotal == 1 {
			verb = "is"
		}
		text = reply.Paragraph(text, fmt.Sprintf("%d of them %s due within the week - the nearest is %s.",
			weekTotal, verb, dueIn(upcoming[0].DaysUntil)))
	} else {
		text = reply.Paragraph(text, "Nothing lands this week, so you have breathing room.")
	}

	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func dueIn(days int) string {
	switch days {
	case 0:
		return "due today"
	case 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
