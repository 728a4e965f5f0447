// Package smalltalk implements the conversational edges of the chat bot:
// name queries, greetings, gratitude, and the guidance fallback.
package smalltalk

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
)

// ModuleName identifies this module in logs.
const ModuleName = "smalltalk"

var greetingKeywords = []string{"hi", "hello", "hey"}

var gratitudeKeywords = []string{"thank", "thanks", "appreciate"}

// NameRule answers questions about the user's own name. It runs before
// every other rule so "what is my name" never falls through to guidance.
func NameRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentNameQuery,
		Name:   "name_query",
		Match: func(req *chat.Request) bool {
			return req.HasAny("my name", "who am i")
		},
		Respond: func(req *chat.Request) string {
			return fmt.Sprintf("Your name is %s. How can I help you today?", req.Name)
		},
	}
}

// GreetingRule matches hi/hello/hey and the empty message.
func GreetingRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentGreeting,
		Name:   "greeting",
		Match: func(req *chat.Request) bool {
			return req.Message == "" || req.HasAny(greetingKeywords...)
		},
		Respond: respondGreeting,
	}
}

func respondGreeting(req *chat.Request) string {
	salutation := reply.GreetingForHour(req.Now.Hour())
	if req.Persona.IncludeNameGreeting() {
		return fmt.Sprintf("%s, %s! How can I help you today?", salutation, req.Name)
	}
	return fmt.Sprintf("%s! How can I help you today?", salutation)
}

// GratitudeRule acknowledges thanks.
func GratitudeRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentGratitude,
		Name:   "gratitude",
		Match: func(req *chat.Request) bool {
			return req.HasAny(gratitudeKeywords...)
		},
		Respond: func(req *chat.Request) string {
			return "You're welcome! Happy to help anytime."
		},
	}
}

// GuidanceRule is the catch-all fallback. It always matches and must be
// registered last.
func GuidanceRule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentGuidance,
		Name:   "guidance",
		Match: func(req *chat.Request) bool {
			return true
		},
		Respond: func(req *chat.Request) string {
			return reply.Lines(
				"I can help you with things like:",
				"• \"How is my attendance?\"",
				"• \"Show my grade trend\"",
				"• \"What did I spend this month?\"",
				"• \"What's due this week?\"",
				"• \"Any holidays coming up?\"",
				"• \"How busy is my week?\"",
				"Ask me about any of those and I'll dig into your data.",
			)
		},
	}
}
