package stats

import (
	"testing"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/eotracker/lib/filters"
	"github.com/pescuma/eotracker/lib/model"
)

func collection() []*model.Order {
	return []*model.Order{
		{ID: "1", Status: model.Active, ForecastImpact: 4, ForecastStall: 0.1},
		{ID: "2", Status: model.Blocked, ForecastImpact: 5, ForecastStall: 0.9, Lawsuits: []model.Lawsuit{{CaseName: "A v. B"}, {CaseName: "C v. D"}}},
		{ID: "3", Status: model.InProgress, ForecastImpact: 2, ForecastStall: 0.3},
		{ID: "4", Status: model.Active, ForecastImpact: 1, ForecastStall: 0.5, Lawsuits: []model.Lawsuit{{CaseName: "E v. F"}}},
		{ID: "5", Status: model.Unclear, ForecastImpact: 3, ForecastStall: 0.2},
	}
}

func TestCountBy(t *testing.T) {
	t.Parallel()

	counts := CountBy(collection(), set.From([]model.Status{model.Active, model.Blocked, model.Rescinded}))

	assert.Equal(t, map[model.Status]int{
		model.Active:    2,
		model.Blocked:   1,
		model.Rescinded: 0,
	}, counts)
}

func TestCountByIsExactMatch(t *testing.T) {
	t.Parallel()

	col := []*model.Order{{ID: "1", Status: model.PartiallyBlocked}}

	counts := CountBy(col, set.From([]model.Status{model.Blocked}))

	assert.Equal(t, 0, counts[model.Blocked])
}

func TestCountByEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Len(t, s.Counts, len(model.AllStatuses()))
	for _, v := range s.Counts {
		assert.Equal(t, 0, v)
	}
}

func TestSummarySumsToTotal(t *testing.T) {
	t.Parallel()

	s := Summarize(collection())

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, s.Total, lo.Sum(lo.Values(s.Counts)))
}

func TestHomeCards(t *testing.T) {
	t.Parallel()

	cards := HomeCards(Summarize(collection()))

	assert.Equal(t, []Card{
		{Title: "Total EOs", Value: 5, Filter: filters.All},
		{Title: "Blocked", Value: 1, Filter: filters.StatusOnly(model.Blocked)},
		{Title: "In Progress", Value: 1, Filter: filters.StatusOnly(model.InProgress)},
		{Title: "Unclear", Value: 1, Filter: filters.StatusOnly(model.Unclear)},
	}, cards)
}

func TestLawsuitTotals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LawsuitSummary{Challenged: 2, Lawsuits: 3}, LawsuitTotals(collection()))
}

func TestTop(t *testing.T) {
	t.Parallel()

	top, err := Top(collection(), ByImpact, 3)
	assert.Nil(t, err)
	assert.Equal(t, []string{"2", "1", "5"}, lo.Map(top, func(o *model.Order, _ int) string { return o.ID }))

	top, err = Top(collection(), ByStall, 2)
	assert.Nil(t, err)
	assert.Equal(t, []string{"2", "4"}, lo.Map(top, func(o *model.Order, _ int) string { return o.ID }))

	top, err = Top(collection(), ByStall, 10)
	assert.Nil(t, err)
	assert.Len(t, top, 5)

	_, err = Top(collection(), "size", 1)
	assert.NotNil(t, err)
}

func TestParseRanking(t *testing.T) {
	t.Parallel()

	r, err := ParseRanking("")
	assert.Nil(t, err)
	assert.Equal(t, ByImpact, r)

	r, err = ParseRanking("stall")
	assert.Nil(t, err)
	assert.Equal(t, ByStall, r)

	_, err = ParseRanking("x")
	assert.NotNil(t, err)
}
