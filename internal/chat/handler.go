package chat

import (
	"strings"
	"time"

	"github.com/campusmate/chatbot-go/internal/reply"
)

// Request is the per-invocation context handed to every rule. Message is
// the lowercased, trimmed form of the bundle's message; Now is the single
// reference instant used for every date computation in the request.
type Request struct {
	Bundle  *RequestBundle
	Message string
	Name    string
	Now     time.Time
	Persona *reply.Personalizer
}

// Has reports whether the lowercased message contains the substring.
func (r *Request) Has(keyword string) bool {
	return strings.Contains(r.Message, keyword)
}

// HasAny reports whether the lowercased message contains any of the substrings.
func (r *Request) HasAny(keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(r.Message, k) {
			return true
		}
	}
	return false
}

// Rule is one entry in the ordered classification table: a predicate, the
// intent it produces, and the sub-handler that renders the reply.
type Rule struct {
	Intent  Intent
	Name    string // rule identifier for logging and tests
	Match   func(req *Request) bool
	Respond func(req *Request) string
}
