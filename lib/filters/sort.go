package filters

import (
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/pescuma/eotracker/lib/model"
)

type SortKey string

const (
	ByID             SortKey = "id"
	ByName           SortKey = "name"
	ByType           SortKey = "type"
	ByStatus         SortKey = "status"
	BySignedDate     SortKey = "signedDate"
	ByLastUpdated    SortKey = "lastUpdated"
	ByForecastImpact SortKey = "forecastImpact"
	ByForecastStall  SortKey = "forecastStall"
	ByLawsuits       SortKey = "lawsuits"
)

var sortKeys = []SortKey{
	ByID, ByName, ByType, ByStatus, BySignedDate, ByLastUpdated, ByForecastImpact, ByForecastStall, ByLawsuits,
}

func SortKeys() []SortKey {
	result := make([]SortKey, len(sortKeys))
	copy(result, sortKeys)
	return result
}

// Sort orders col in place by the field named by key.
func Sort(col []*model.Order, key SortKey, dir Direction) error {
	switch key {
	case ByID:
		sortBy(col, func(o *model.Order) string { return o.ID }, dir)
	case ByName:
		sortBy(col, func(o *model.Order) string { return o.Name }, dir)
	case ByType:
		sortBy(col, func(o *model.Order) string { return o.Type }, dir)
	case ByStatus:
		sortBy(col, func(o *model.Order) string { return string(o.Status) }, dir)
	case BySignedDate:
		sortBy(col, func(o *model.Order) string { return o.SignedDate }, dir)
	case ByLastUpdated:
		sortBy(col, func(o *model.Order) string { return o.LastUpdated }, dir)
	case ByForecastImpact:
		sortBy(col, func(o *model.Order) int { return o.ForecastImpact }, dir)
	case ByForecastStall:
		sortBy(col, func(o *model.Order) float64 { return o.ForecastStall }, dir)
	case ByLawsuits:
		sortBy(col, func(o *model.Order) int { return len(o.Lawsuits) }, dir)
	default:
		return errors.Errorf("unknown sort field: %v", key)
	}

	return nil
}

func sortBy[T any, R constraints.Ordered](col []T, get func(T) R, dir Direction) {
	if dir == Ascending {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[i]) < get(col[j])
		})
	} else {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[j]) < get(col[i])
		})
	}
}
