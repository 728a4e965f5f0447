package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constRule(intent Intent, name string, match bool, text string) Rule {
	return Rule{
		Intent:  intent,
		Name:    name,
		Match:   func(req *Request) bool { return match },
		Respond: func(req *Request) string { return text },
	}
}

func TestRegistryFirstMatchWins(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(
		constRule(IntentExpenseMonthly, "first", true, "first reply"),
		constRule(IntentExpenseInsights, "second", true, "second reply"),
	)

	intent, text, ok := registry.Dispatch(&Request{})
	require.True(t, ok)
	assert.Equal(t, IntentExpenseMonthly, intent)
	assert.Equal(t, "first reply", text)
}

func TestRegistrySkipsNonMatching(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(
		constRule(IntentGreeting, "skipped", false, "never"),
		constRule(IntentGratitude, "matched", true, "thanks reply"),
	)

	intent, text, ok := registry.Dispatch(&Request{})
	require.True(t, ok)
	assert.Equal(t, IntentGratitude, intent)
	assert.Equal(t, "thanks reply", text)
}

func TestRegistryNoMatch(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(constRule(IntentGreeting, "off", false, ""))

	_, _, ok := registry.Dispatch(&Request{})
	assert.False(t, ok)
}

func TestRegistryRegisterAppends(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(constRule(IntentGreeting, "a", false, ""))
	registry.Register(constRule(IntentGuidance, "b", true, "fallback"))

	require.Len(t, registry.Rules(), 2)
	assert.Equal(t, "b", registry.Rules()[1].Name)

	intent, _, ok := registry.Dispatch(&Request{})
	require.True(t, ok)
	assert.Equal(t, IntentGuidance, intent)
}

func TestRequestHas(t *testing.T) {
	t.Parallel()

	req := &Request{Message: "how much did i spend this month"}

	assert.True(t, req.Has("this month"))
	assert.False(t, req.Has("attendance"))
	assert.True(t, req.HasAny("budget", "spend"))
	assert.False(t, req.HasAny("budget", "cost"))
}
