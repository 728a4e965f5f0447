// Package reply provides the text assembly primitives for the synthesizer:
// fragment joiners, numeric formatting, and the probabilistic name
// personalization draw.
package reply

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name inclusion probabilities per template class.
const (
	// GeneralNameChance is the draw probability for informational replies.
	GeneralNameChance = 0.35
	// GreetingNameChance is the draw probability for greetings.
	GreetingNameChance = 0.50
)

// RandSource yields uniform draws in [0, 1). math/rand/v2's *rand.Rand
// satisfies it; tests inject fixed sources to force both branches.
type RandSource interface {
	Float64() float64
}

// Personalizer decides whether a reply should address the user by name.
type Personalizer struct {
	rand RandSource
}

// NewPersonalizer creates a personalizer backed by the given random source.
func NewPersonalizer(rand RandSource) *Personalizer {
	return &Personalizer{rand: rand}
}

// IncludeNameGeneral draws for an informational reply.
func (p *Personalizer) IncludeNameGeneral() bool {
	return p.draw() < GeneralNameChance
}

// IncludeNameGreeting draws for a greeting reply.
func (p *Personalizer) IncludeNameGreeting() bool {
	return p.draw() < GreetingNameChance
}

func (p *Personalizer) draw() float64 {
	if p == nil || p.rand == nil {
		return 1 // no source: never include
	}
	return p.rand.Float64()
}

// Paragraph joins sentence fragments with single spaces into prose.
func Paragraph(fragments ...string) string {
	return strings.Join(compact(fragments), " ")
}

// Lines joins fragments with line breaks into an itemized reply.
func Lines(fragments ...string) string {
	return strings.Join(compact(fragments), "\n")
}

func compact(fragments []string) []string {
	out := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// WithName prefixes text with the user's name when include is true, e.g.
// "You've spent..." becomes "Asha, you've spent...".
func WithName(text, name string, include bool) string {
	if !include || name == "" {
		return text
	}
	return name + ", " + lowerFirst(text)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	// Leave all-caps acronym starts ("GPA", "CGPA") untouched.
	if next, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(next) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Money renders a currency amount with exactly two decimal places.
func Money(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// Score renders a grade value with exactly two decimal places.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Percent renders a percentage with exactly two decimal places.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// Count renders n with a singular or plural noun.
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// GreetingForHour returns the salutation for a 24h clock hour.
func GreetingForHour(hour int) string {
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
