// Package academics implements the grade insight rules: semester listings
// and trend analysis over the full span of semesters.
package academics

import (
	"fmt"

	"github.com/campusmate/chatbot-go/internal/analyzer"
	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/reply"
)

// ModuleName identifies this module in logs.
const ModuleName = "academics"

var academicKeywords = []string{
	"cgpa", "gpa", "grade", "sgpa", "semester", "marks", "performance",
	"result", "academic", "progress", "improvement", "trend",
}

const noDataReply = "I don't have any semester results for you yet. Once your grades are in I can track your trend and CGPA."

// Rule answers academic queries. Sub-cases in order: semester listing,
// then the trend summary.
func Rule() chat.Rule {
	return chat.Rule{
		Intent: chat.IntentAcademicInsights,
		Name:   "academic_insights",
		Match: func(req *chat.Request) bool {
			return req.HasAny(academicKeywords...)
		},
		Respond: respond,
	}
}

func respond(req *chat.Request) string {
	summary, ok := analyzer.AnalyzeGrades(req.Bundle.CGPA)
	if !ok {
		return noDataReply
	}

	if wantsListing(req) && len(summary.Semesters) > 1 {
		return respondListing(summary)
	}
	return respondTrend(req, summary)
}

func wantsListing(req *chat.Request) bool {
	return req.HasAny("each semester", "all semesters", "semester wise", "semesterwise", "every semester", "list")
}

func respondListing(summary analyzer.GradeSummary) string {
	lines := []string{"Here are your semester results:"}
	for _, s := range summary.Semesters {
		lines = append(lines, fmt.Sprintf("• %s: %s", s.Label, reply.Score(s.Score)))
	}
	lines = append(lines, fmt.Sprintf("Overall CGPA: %s", reply.Score(summary.CGPA)))
	return reply.Lines(lines...)
}

func respondTrend(req *chat.Request, summary analyzer.GradeSummary) string {
	if len(summary.Semesters) == 1 {
		text := fmt.Sprintf("You have one semester on record: %s with a score of %s. I'll start tracking your trend once the next result is in.",
			summary.Semesters[0].Label, reply.Score(summary.Latest))
		return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
	}

	text := reply.Paragraph(
		fmt.Sprintf("Your CGPA stands at %s across %s.",
			reply.Score(summary.CGPA), reply.Count(len(summary.Semesters), "semester", "semesters")),
		fmt.Sprintf("You went from %s to %s - %s.",
			reply.Score(summary.First), reply.Score(summary.Latest), trendPhrase(summary)),
	)

	return reply.WithName(text, req.Name, req.Persona.IncludeNameGeneral())
}

func trendPhrase(summary analyzer.GradeSummary) string {
	switch summary.Trend {
	case analyzer.TrendStrongImprovement:
		return fmt.Sprintf("a strong improvement of %s. Keep the momentum going!", reply.Score(summary.Change))
	case analyzer.TrendSlightImprovement:
		return fmt.Sprintf("a slight improvement of %s. Nice and steady.", reply.Score(summary.Change))
	case analyzer.TrendSignificantDrop:
		return fmt.Sprintf("a significant drop of %s. Worth looking at what changed.", reply.Score(-summary.Change))
	case analyzer.TrendSlightDecline:
		return fmt.Sprintf("a slight decline of %s. A small course-correction should do it.", reply.Score(-summary.Change))
	default:
		return "holding perfectly stable"
	}
}
