package analyzer

import (
	"testing"
	"time"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingDeadlines(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	bundle := &chat.RequestBundle{
		Assignments: map[string]int{
			"2026-03-10": 1, // due today
			"2026-03-12": 2,
			"2026-03-09": 4, // past, excluded
			"2026-04-01": 1,
			"garbage":    9, // unparseable, skipped
		},
	}

	deadlines := UpcomingDeadlines(bundle, now)
	require.Len(t, deadlines, 3)

	assert.Equal(t, 0, deadlines[0].DaysUntil)
	assert.Equal(t, 2, deadlines[1].DaysUntil)
	assert.Equal(t, 2, deadlines[1].Count)
	assert.Equal(t, 22, deadlines[2].DaysUntil)
}

func TestDueThisWeek(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	bundle := &chat.RequestBundle{
		Assignments: map[string]int{
			"2026-03-10": 1,
			"2026-03-17": 1, // exactly 7 days out, included
			"2026-03-18": 1, // 8 days out, excluded
		},
	}

	week := DueThisWeek(UpcomingDeadlines(bundle, now))
	require.Len(t, week, 2)
	assert.Equal(t, 7, week[1].DaysUntil)
}

func TestTotalAssignments(t *testing.T) {
	t.Parallel()

	assert.Zero(t, TotalAssignments(nil))
	assert.Equal(t, 5, TotalAssignments([]Deadline{{Count: 2}, {Count: 3}}))
}
