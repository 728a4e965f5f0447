package analyzer

import (
	"math"
	"slices"
	"strings"

	"github.com/campusmate/chatbot-go/internal/chat"
)

// Attendance thresholds.
const (
	AttendanceRequired = 75.0 // minimum acceptable percentage
	AttendanceGood     = 85.0 // comfortable margin
)

// AttendanceBand classifies an attendance percentage for reply tone.
type AttendanceBand int

const (
	// BandBelow is under the 75% requirement.
	BandBelow AttendanceBand = iota
	// BandAcceptable is 75% up to (but not including) 85%.
	BandAcceptable
	// BandGood is 85% or above.
	BandGood
)

// BandFor returns the tone band for a percentage.
func BandFor(percentage float64) AttendanceBand {
	switch {
	case percentage < AttendanceRequired:
		return BandBelow
	case percentage < AttendanceGood:
		return BandAcceptable
	default:
		return BandGood
	}
}

// ClassesNeeded returns how many consecutive classes must be attended to
// reach the 75% requirement. Never negative.
func ClassesNeeded(held, attended int) int {
	if held <= 0 {
		return 0
	}
	needed := int(math.Ceil(float64(held)*AttendanceRequired/100)) - attended
	return max(0, needed)
}

// SubjectStanding is one subject's attendance with its tone band.
type SubjectStanding struct {
	Subject    string
	Attended   int
	Held       int
	Percentage float64
	Band       AttendanceBand
}

// RankSubjects sorts subjects ascending by percentage so the most
// concerning subject comes first. Name order breaks percentage ties to keep
// the output deterministic.
func RankSubjects(subjects map[string]chat.SubjectAttendance) []SubjectStanding {
	out := make([]SubjectStanding, 0, len(subjects))
	for name, s := range subjects {
		pct := s.Percentage
		if pct == 0 && s.Held > 0 {
			pct = float64(s.Attended) / float64(s.Held) * 100
		}
		out = append(out, SubjectStanding{
			Subject:    name,
			Attended:   s.Attended,
			Held:       s.Held,
			Percentage: pct,
			Band:       BandFor(pct),
		})
	}

	slices.SortFunc(out, func(a, b SubjectStanding) int {
		if a.Percentage != b.Percentage {
			if a.Percentage < b.Percentage {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Subject, b.Subject)
	})

	return out
}
