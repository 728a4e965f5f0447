package analyzer

import (
	"testing"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesNeeded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		held     int
		attended int
		want     int
	}{
		{"spec example 40 held 28 attended", 40, 28, 2},
		{"already above threshold", 40, 36, 0},
		{"exactly at threshold", 40, 30, 0},
		{"attended everything", 10, 10, 0},
		{"nothing held", 0, 0, 0},
		{"attended more than needed never negative", 20, 20, 0},
		{"ceil rounds up", 10, 5, 3}, // ceil(7.5)=8, 8-5=3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ClassesNeeded(tt.held, tt.attended)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestBandFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BandBelow, BandFor(74.99))
	assert.Equal(t, BandAcceptable, BandFor(75))
	assert.Equal(t, BandAcceptable, BandFor(84.99))
	assert.Equal(t, BandGood, BandFor(85))
	assert.Equal(t, BandGood, BandFor(100))
}

func TestRankSubjects(t *testing.T) {
	t.Parallel()

	subjects := map[string]chat.SubjectAttendance{
		"Physics":   {Attended: 18, Held: 20, Percentage: 90},
		"Maths":     {Attended: 14, Held: 20, Percentage: 70},
		"Chemistry": {Attended: 16, Held: 20, Percentage: 80},
	}

	ranked := RankSubjects(subjects)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Maths", ranked[0].Subject)
	assert.Equal(t, BandBelow, ranked[0].Band)
	assert.Equal(t, "Chemistry", ranked[1].Subject)
	assert.Equal(t, BandAcceptable, ranked[1].Band)
	assert.Equal(t, "Physics", ranked[2].Subject)
	assert.Equal(t, BandGood, ranked[2].Band)
}

func TestRankSubjectsComputesMissingPercentage(t *testing.T) {
	t.Parallel()

	ranked := RankSubjects(map[string]chat.SubjectAttendance{
		"History": {Attended: 9, Held: 12},
	})
	require.Len(t, ranked, 1)
	assert.InDelta(t, 75.0, ranked[0].Percentage, 0.001)
	assert.Equal(t, BandAcceptable, ranked[0].Band)
}
