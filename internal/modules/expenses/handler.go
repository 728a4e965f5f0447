// Package expenses implements the spending insight rules. The monthly rule
// must be evaluated before the general one: "this month" + "spend" would
// otherwise be swallowed by the broader keyword set.
package expenses

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
)

// ModuleName identifies this module in logs.
const ModuleName = "expenses"

var expenseKeywords = []string{
	"expense", "spend", "spent", "money", "budget", "cost", "expensive", "saving",
}

const noDataReply = "I don't have any expense data for you yet. Once you start logging your spending I can break it down by category and month."

// MonthlyRule answers "how much did I spend this month" style queries.
func MonthlyRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentExpenseMonthly,
		Name:   "expense_monthly",
		Match: func(req *chat.Request) bool {
			return req.Has("this month") && req.HasAny("spend", "expense")
		},
		Respond: respondMonthly,
	}
}

// InsightsRule answers general spending questions.
func InsightsRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentExpenseInsights,
		Name:   "expense_insights",
		Match: func(req *chat.Request) bool {
			return req.HasAny(expenseKeywords...)
		},
		Respond: respondInsights,
	}
}

func respondMonthly(req *chat.Request) string {
	if !req.Bundle.HasExpenses() {
		return noDataReply
	}

	e := req.Bundle.Expenses
	text := fmt.Sprintf("You've spent %s so far this month.", reply.Money(e.ThisMonth))
	if e.Total > 0 {
		text = reply.Paragraph(text, fmt.Sprintf("Your overall spending stands at %s.", reply.Money(e.Total)))
	}
	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func respondInsights(req *chat.Request) string {
	if !req.Bundle.HasExpenses() {
		return noDataReply
	}

	e := req.Bundle.Expenses
	fragments := []string{
		fmt.Sprintf("You've spent %s in total, %s of it this month.", reply.Money(e.Total), reply.Money(e.ThisMonth)),
	}

	top := analyzer.TopExpenseCategories(e)
	switch len(top) {
	case 1:
		fragments = append(fragments, fmt.Sprintf(
			"Almost all of it goes to %s at %s (%s of your spending).",
			top[0].Category, reply.Money(top[0].Amount), reply.Percent(top[0].Share),
		))
	case 2:
		fragments = append(fragments, fmt.Sprintf(
			"Your biggest category is %s at %s (%s of your spending), followed by %s at %s (%s).",
			top[0].Category, reply.Money(top[0].Amount), reply.Percent(top[0].Share),
			top[1].Category, reply.Money(top[1].Amount), reply.Percent(top[1].Share),
		))
	}

	return reply.WithName(reply.Paragraph(fragments...), req.Name, req.Persona.IncludeNameGeneral())
}
