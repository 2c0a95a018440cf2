package filters

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pescuma/eotracker/lib/model"
)

// Derive returns the orders the list view should show for q. The input slice
// is left untouched.
func Derive(col []*model.Order, q Query) ([]*model.Order, error) {
	match := NewMatcher(q)

	result := lo.Filter(col, func(o *model.Order, _ int) bool {
		return match(o)
	})

	err := Sort(result, q.Sort, q.Direction)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// NewMatcher returns the filter half of q. The returned func must not be
// shared between goroutines.
func NewMatcher(q Query) func(*model.Order) bool {
	status := q.Status
	if status == "" {
		status = All
	}

	if q.Search == "" {
		return func(o *model.Order) bool {
			return status.Matches(o.Status)
		}
	}

	lower := cases.Lower(language.Und)
	search := lower.String(q.Search)

	return func(o *model.Order) bool {
		if !status.Matches(o.Status) {
			return false
		}

		return strings.Contains(lower.String(o.Name), search) ||
			strings.Contains(lower.String(o.Summary), search)
	}
}

func Paginate[T any](col []T, offset, limit *int) []T {
	if offset != nil && *offset > 0 {
		if *offset > len(col) {
			return []T{}
		}

		col = col[*offset:]
	}

	if limit != nil && *limit >= 0 && *limit < len(col) {
		col = col[:*limit]
	}

	return col
}
