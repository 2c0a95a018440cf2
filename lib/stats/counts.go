package stats

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/filters"
	"github.com/pescuma/eotracker/lib/model"
)

type Summary struct {
	Total  int
	Counts map[model.Status]int
}

// CountBy counts the orders whose status is exactly each of the requested ones.
// Every requested status is present in the result, even if its count is zero.
func CountBy(col []*model.Order, statuses *set.Set[model.Status]) map[model.Status]int {
	result := make(map[model.Status]int, statuses.Size())
	for _, s := range statuses.Slice() {
		result[s] = 0
	}

	for _, o := range col {
		if statuses.Contains(o.Status) {
			result[o.Status]++
		}
	}

	return result
}

func Summarize(col []*model.Order) *Summary {
	return &Summary{
		Total:  len(col),
		Counts: CountBy(col, set.From(model.AllStatuses())),
	}
}

type Card struct {
	Title  string
	Value  int
	Filter filters.StatusFilter
}

// HomeCards are the figures shown on the landing page. Each one links to the
// list view pre-filtered by Filter.
func HomeCards(s *Summary) []Card {
	return []Card{
		{Title: "Total EOs", Value: s.Total, Filter: filters.All},
		{Title: "Blocked", Value: s.Counts[model.Blocked], Filter: filters.StatusOnly(model.Blocked)},
		{Title: "In Progress", Value: s.Counts[model.InProgress], Filter: filters.StatusOnly(model.InProgress)},
		{Title: "Unclear", Value: s.Counts[model.Unclear], Filter: filters.StatusOnly(model.Unclear)},
	}
}

type LawsuitSummary struct {
	Challenged int
	Lawsuits   int
}

func LawsuitTotals(col []*model.Order) LawsuitSummary {
	return LawsuitSummary{
		Challenged: lo.CountBy(col, func(o *model.Order) bool { return len(o.Lawsuits) > 0 }),
		Lawsuits:   lo.SumBy(col, func(o *model.Order) int { return len(o.Lawsuits) }),
	}
}
