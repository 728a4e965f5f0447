package analyzer

import (
	"slices"
	"strings"

	"github.com/campusmate/chatbot-go/internal/chat"
)

// topCategories caps how many expense categories are surfaced in replies.
const topCategories = 2

// CategorySpend is one expense category with its share of the total.
type CategorySpend struct {
	Category string
	Amount   float64
	Share    float64 // percentage of total; 0 when total is 0
}

// TopExpenseCategories ranks categories descending by amount and returns at
// most the top two, each with its percentage share of the total. Amount
// ties break on category name for deterministic output.
func TopExpenseCategories(expenses chat.ExpenseSummary) []CategorySpend {
	ranked := make([]CategorySpend, 0, len(expenses.Categories))
	for name, amount := range expenses.Categories {
		share := 0.0
		if expenses.Total > 0 {
			share = amount / expenses.Total * 100
		}
		ranked = append(ranked, CategorySpend{Category: name, Amount: amount, Share: share})
	}

	slices.SortFunc(ranked, func(a, b CategorySpend) int {
		if a.Amount != b.Amount {
			if a.Amount > b.Amount {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Category, b.Category)
	})

	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}
	return ranked
}
