package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "", DayName(-1))
	assert.Equal(t, "", DayName(7))
}

func TestDayIndex(t *testing.T) {
	t.Parallel()

	// 2026-08-31 is a Monday.
	monday := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DayIndex(monday))
	assert.Equal(t, 6, DayIndex(monday.AddDate(0, 0, 6)))
}

func TestDayIndexByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, DayIndexByName("wednesday"))
	assert.Equal(t, 5, DayIndexByName("Saturday"))
	assert.Equal(t, -1, DayIndexByName("someday"))
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same day late evening", time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow early morning", time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC), 1},
		{"one week out", time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC), 7},
		{"yesterday", time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaysUntil(now, tt.target))
		})
	}
}

func TestDaysUntilAcrossDSTChange(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US DST starts 2026-03-08: that midnight-to-midnight span is 23 hours.
	beforeSpring := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(beforeSpring, time.Date(2026, 3, 8, 0, 0, 0, 0, loc)))
	assert.Equal(t, 2, DaysUntil(beforeSpring, time.Date(2026, 3, 9, 0, 0, 0, 0, loc)))

	springDay := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(springDay, time.Date(2026, 3, 9, 0, 0, 0, 0, loc)))

	// US DST ends 2026-11-01: that span is 25 hours.
	beforeFall := time.Date(2026, 10, 31, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysUntil(beforeFall, time.Date(2026, 11, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, 2, DaysUntil(beforeFall, time.Date(2026, 11, 2, 0, 0, 0, 0, loc)))
}

func TestIsFutureDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

	assert.True(t, IsFutureDate(now, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)), "today counts as future")
	assert.True(t, IsFutureDate(now, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsFutureDate(now, time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)))
}

func TestParseISODate(t *testing.T) {
	t.Parallel()

	got, err := ParseISODate("2026-04-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseISODate("2026-04-01T15:04:05Z", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseISODate("not-a-date", time.UTC)
	require.Error(t, err)
}
