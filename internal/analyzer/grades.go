package analyzer

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/chat"
)

// Trend direction bands over the full semester span.
type Trend int

const (
	// TrendStable means the latest score equals the first.
	TrendStable Trend = iota
	// TrendSlightImprovement is a positive change of at most 0.3.
	TrendSlightImprovement
	// TrendStrongImprovement is a positive change greater than 0.3.
	TrendStrongImprovement
	// TrendSlightDecline is a negative change of at most 0.3 in magnitude.
	TrendSlightDecline
	// TrendSignificantDrop is a negative change greater than 0.3 in magnitude.
	TrendSignificantDrop
)

// trendBoundary separates slight from strong movement in either direction.
const trendBoundary = 0.3

// TrendFor classifies the score change latest-first into one of the five bands.
func TrendFor(change float64) Trend {
	switch {
	case change > trendBoundary:
		return TrendStrongImprovement
	case change > 0:
		return TrendSlightImprovement
	case change < -trendBoundary:
		return TrendSignificantDrop
	case change < 0:
		return TrendSlightDecline
	default:
		return TrendStable
	}
}

// SemesterScore is one resolved semester entry.
type SemesterScore struct {
	Label string
	Score float64
}

// GradeSummary is the full academic analysis over all semesters.
type GradeSummary struct {
	Semesters []SemesterScore
	First     float64
	Latest    float64
	Change    float64 // Latest - First
	Trend     Trend
	CGPA      float64 // arithmetic mean; only meaningful when HasCGPA
	HasCGPA   bool    // true when more than one semester exists
}

// AnalyzeGrades resolves every semester's score (sgpa > gpa > score,
// first-present-wins) and computes the trend over the full span. Records
// with no score under any key are skipped. Returns false when nothing
// usable remains.
func AnalyzeGrades(records []chat.SemesterRecord) (GradeSummary, bool) {
	var g GradeSummary

	for i, rec := range records {
		score, ok := rec.ResolveScore()
		if !ok {
			continue
		}
		label := rec.Semester
		if label == "" {
			label = fmt.Sprintf("Semester %d", i+1)
		}
		g.Semesters = append(g.Semesters, SemesterScore{Label: label, Score: score})
	}

	if len(g.Semesters) == 0 {
		return GradeSummary{}, false
	}

	g.First = g.Semesters[0].Score
	g.Latest = g.Semesters[len(g.Semesters)-1].Score
	g.Change = g.Latest - g.First
	g.Trend = TrendFor(g.Change)

	if len(g.Semesters) > 1 {
		var sum float64
		for _, s := range g.Semesters {
			sum += s.Score
		}
		g.CGPA = sum / float64(len(g.Semesters))
		g.HasCGPA = true
	}

	return g, true
}
