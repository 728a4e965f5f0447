package analyzer

import (
	"slices"
	"strings"
	"time"

	"github.com/campusmate/chatbot-go/internal/chat"
	"github.com/campusmate/chatbot-go/internal/timeutil"
)

// Category substrings, matched case-insensitively.
var (
	holidayCategories = []string{"holiday", "break", "vacation"}
	examCategories    = []string{"exam", "test"}
)

// UpcomingMark is a future calendar entry with its resolved date.
type UpcomingMark struct {
	Date      time.Time
	Category  string
	DaysUntil int
}

// UpcomingMarks returns marks dated today or later, sorted ascending.
// Marks with unparseable dates are skipped.
func UpcomingMarks(bundle *chat.RequestBundle, now time.Time) []UpcomingMark {
	var out []UpcomingMark
	for _, mark := range bundle.CalendarMarks {
		date, err := timeutil.ParseISODate(mark.Date, now.Location())
		if err != nil {
			continue
		}
		if !timeutil.IsFutureDate(now, date) {
			continue
		}
		out = append(out, UpcomingMark{
			Date:      date,
			Category:  mark.CategoryName,
			DaysUntil: timeutil.DaysUntil(now, date),
		})
	}

	slices.SortFunc(out, func(a, b UpcomingMark) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// Holidays filters marks whose category names a holiday, break, or vacation.
func Holidays(marks []UpcomingMark) []UpcomingMark {
	return filterByCategory(marks, holidayCategories)
}

// Exams filters marks whose category names an exam or test.
func Exams(marks []UpcomingMark) []UpcomingMark {
	return filterByCategory(marks, examCategories)
}

func filterByCategory(marks []UpcomingMark, substrings []string) []UpcomingMark {
	var out []UpcomingMark
	for _, mark := range marks {
		category := strings.ToLower(mark.Category)
		for _, sub := range substrings {
			if strings.Contains(category, sub) {
				out = append(out, mark)
				break
			}
		}
	}
	return out
}
