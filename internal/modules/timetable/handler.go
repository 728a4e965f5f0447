// Package timetable implements the schedule analysis rules: single-day
// lookups (today, tomorrow, named weekdays), free days, busiest-day
// queries, and the weekly overview.
package timetable

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
	"github.com/campusmate/chatbot-go/internal/timeutil"
)

// ModuleName identifies this module in logs.
const ModuleName = "timetable"

var timetableKeywords = []string{
	"class", "lecture", "timetable", "schedule", "tomorrow", "today",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"free day", "off day", "day off", "week", "weekly",
	"busy", "packed", "workload", "busiest",
}

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

const noDataReply = "Your timetable is empty right now. Once your classes are added I can tell you how each day looks."

// Rule answers timetable queries. Sub-cases in order: today, tomorrow,
// a named weekday, free days, busiest day, then the weekly overview.
func Rule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentTimetableAnalysis,
		Name:   "timetable_analysis",
		Match: func(req *chat.Request) bool {
			return req.HasAny(timetableKeywords...)
		},
		Respond: respond,
	}
}

func respond(req *chat.Request) string {
	if !req.Bundle.HasTimetable() {
		return noDataReply
	}

	today := timeutil.DayIndex(req.Now)

	switch {
	case req.Has("today"):
		return respondDay(req, today)
	case req.Has("tomorrow"):
		return respondDay(req, (today+1)%7)
	case namedDay(req) >= 0:
		return respondDay(req, namedDay(req))
	case req.HasAny("free day", "off day", "day off", "free"):
		return respondFreeDays(req)
	case req.HasAny("busiest", "busy", "packed", "workload", "most classes", "hectic"):
		return respondBusiest(req)
	default:
		return respondWeek(req)
	}
}

func namedDay(req *chat.Request) int {
	for _, name := range weekdayNames {
		if req.Has(name) {
			return timeutil.DayIndexByName(name)
		}
	}
	return -1
}

func respondDay(req *chat.Request, day int) string {
	name := timeutil.DayName(day)
	classes := req.Bundle.DayClasses(day)
	if len(classes) == 0 {
		return fmt.Sprintf("You have no classes on %s. Enjoy the breather!", name)
	}

	lines := []string{fmt.Sprintf("Here's your %s schedule (%s):",
		name, reply.Count(len(classes), "class", "classes"))}
	for _, c := range classes {
		if window := c.Window(); window != "" {
			lines = append(lines, fmt.Sprintf("• %s %s", window, c.Label()))
		} else {
			lines = append(lines, fmt.Sprintf("• %s", c.Label()))
		}
	}
	return reply.Lines(lines...)
}

func respondFreeDays(req *chat.Request) string {
	free := analyzer.FreeDays(req.Bundle)
	if len(free) == 0 {
		return "No fully free days this week - every day has at least one class."
	}

	names := make([]string, len(free))
	for i, day := range free {
		names[i] = timeutil.DayName(day)
	}

	lines := []string{fmt.Sprintf("You have %s with no classes:",
		reply.Count(len(free), "day", "days"))}
	for _, name := range names {
		lines = append(lines, "• "+name)
	}
	return reply.Lines(lines...)
}

func respondBusiest(req *chat.Request) string {
	pattern := analyzer.AnalyzeWeek(req.Bundle)
	if pattern.BusiestDay == analyzer.NoDay {
		return "None of your days have classes scheduled, so there's no busiest day to report."
	}

	// Keep the day name out of the leading position: WithName lowercases
	// the first word when it prefixes the user's name.
	text := fmt.Sprintf("Your busiest day is %s with %s.",
		timeutil.DayName(pattern.BusiestDay),
		reply.Count(pattern.BusiestCount, "class", "classes"))

	if pattern.LightestDay != analyzer.NoDay && pattern.LightestDay != pattern.BusiestDay {
		text = reply.Paragraph(text, fmt.Sprintf("Your lightest is %s with %s.",
			timeutil.DayName(pattern.LightestDay),
			reply.Count(pattern.LightestCount, "class", "classes")))
	}

	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func respondWeek(req *chat.Request) string {
	pattern := analyzer.AnalyzeWeek(req.Bundle)

	lines := []string{fmt.Sprintf("Your week at a glance - %s across %s:",
		reply.Count(pattern.TotalClasses, "class", "classes"),
		reply.Count(pattern.DaysWithClasses, "day", "days"))}

	for day := range 7 {
		count := pattern.ClassesPerDay[day]
		if count == 0 {
			lines = append(lines, fmt.Sprintf("• %s: free", timeutil.DayName(day)))
		} else {
			lines = append(lines, fmt.Sprintf("• %s: %s", timeutil.DayName(day),
				reply.Count(count, "class", "classes")))
		}
	}

	if pattern.BusiestDay == analyzer.NoDay {
		lines = append(lines, "Busiest day: none. Lightest day: none.")
	} else {
		lines = append(lines, fmt.Sprintf("Busiest day: %s. Lightest day: %s.",
			timeutil.DayName(pattern.BusiestDay), timeutil.DayName(pattern.LightestDay)))
	}

	return reply.Lines(lines...)
}
