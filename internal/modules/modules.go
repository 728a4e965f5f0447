// Package modules assembles the individual rule packages into the ordered
// classification table the chat engine evaluates.
package modules

import (
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/modules/academics"
	"github.com/campusmate/chatbot-go/internal/modules/assignments"
	"github.com/campusmate/chatbot-go/internal/modules/attendance"
	"github.com/campusmate/chatbot-go/internal/modules/calendar"
	"github.com/campusmate/chatbot-go/internal/modules/expenses"
	"github.com/campusmate/chatbot-go/internal/modules/smalltalk"
	"github.com/campusmate/chatbot-go/internal/modules/timetable"
)

// All returns the full rule table in evaluation order. Order matters:
// specific rules come before broad ones (the monthly expense rule before
// the general expense rule, the name query before everything), and the
// guidance fallback is last because it matches any message.
func All() []chat.Rule {
	return []chat.Rule{
		smalltalk.NameRule(),
		expenses.MonthlyRule(),
		expenses.InsightsRule(),
		attendance.Rule(),
		academics.Rule(),
		assignments.Rule(),
		calendar.Rule(),
		timetable.Rule(),
		smalltalk.GreetingRule(),
		smalltalk.GratitudeRule(),
		smalltalk.GuidanceRule(),
	}
}
