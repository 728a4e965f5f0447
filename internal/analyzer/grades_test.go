package analyzer

import (
	"testing"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestTrendFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change float64
		want   Trend
	}{
		{"strong improvement above boundary", 0.8, TrendStrongImprovement},
		{"slight improvement at boundary", 0.3, TrendSlightImprovement},
		{"slight improvement tiny", 0.01, TrendSlightImprovement},
		{"stable", 0, TrendStable},
		{"slight decline", -0.2, TrendSlightDecline},
		{"slight decline at boundary", -0.3, TrendSlightDecline},
		{"significant drop", -0.5, TrendSignificantDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TrendFor(tt.change))
		})
	}
}

func TestAnalyzeGradesResolvesScoreByPriority(t *testing.T) {
	t.Parallel()

	g, ok := AnalyzeGrades([]chat.SemesterRecord{
		{SGPA: ptr(7.0), GPA: ptr(9.9)}, // sgpa wins over gpa
		{GPA: ptr(7.5)},
		{Score: ptr(8.0)},
	})
	require.True(t, ok)
	require.Len(t, g.Semesters, 3)

	assert.InDelta(t, 7.0, g.Semesters[0].Score, 0.001)
	assert.InDelta(t, 7.5, g.Semesters[1].Score, 0.001)
	assert.InDelta(t, 8.0, g.Semesters[2].Score, 0.001)
}

func TestAnalyzeGradesTrendAndCGPA(t *testing.T) {
	t.Parallel()

	g, ok := AnalyzeGrades([]chat.SemesterRecord{
		{SGPA: ptr(7.0)},
		{SGPA: ptr(7.8)},
	})
	require.True(t, ok)

	assert.InDelta(t, 0.8, g.Change, 0.001)
	assert.Equal(t, TrendStrongImprovement, g.Trend)
	assert.True(t, g.HasCGPA)
	assert.InDelta(t, 7.4, g.CGPA, 0.001)
}

func TestAnalyzeGradesSingleSemesterHasNoCGPA(t *testing.T) {
	t.Parallel()

	g, ok := AnalyzeGrades([]chat.SemesterRecord{{SGPA: ptr(8.2)}})
	require.True(t, ok)

	assert.False(t, g.HasCGPA)
	assert.Equal(t, TrendStable, g.Trend)
	assert.InDelta(t, 8.2, g.Latest, 0.001)
}

func TestAnalyzeGradesDefaultsSemesterLabels(t *testing.T) {
	t.Parallel()

	g, ok := AnalyzeGrades([]chat.SemesterRecord{
		{SGPA: ptr(7.0)},
		{SGPA: ptr(7.5), Semester: "Monsoon 2025"},
	})
	require.True(t, ok)

	assert.Equal(t, "Semester 1", g.Semesters[0].Label)
	assert.Equal(t, "Monsoon 2025", g.Semesters[1].Label)
}

func TestAnalyzeGradesEmptyAndUnresolvable(t *testing.T) {
	t.Parallel()

	_, ok := AnalyzeGrades(nil)
	assert.False(t, ok)

	_, ok = AnalyzeGrades([]chat.SemesterRecord{{Semester: "S1"}})
	assert.False(t, ok)
}
