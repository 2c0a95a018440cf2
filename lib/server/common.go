package server

import (
	"github.com/pescuma/eotracker/lib/filters"
)

type GridParams struct {
	Sort   string `form:"sort"`
	Asc    *bool  `form:"asc"`
	Offset *int   `form:"offset"`
	Limit  *int   `form:"limit"`
}

type Filters struct {
	Search string `form:"q"`
	Status string `form:"status"`
}

type ListParams struct {
	GridParams
	Filters
}

type IDParams struct {
	ID string `uri:"id"`
}

type CountParams struct {
	Status []string `form:"status"`
}

type TopParams struct {
	By    string `form:"by"`
	Limit *int   `form:"limit"`
}

func (p *ListParams) toQuery() (filters.Query, error) {
	status, err := filters.ParseStatusFilter(p.Status)
	if err != nil {
		return filters.Query{}, badRequest(err)
	}

	key, err := filters.ParseSortKey(p.Sort)
	if err != nil {
		return filters.Query{}, badRequest(err)
	}

	q := filters.DefaultQuery().
		WithSearch(p.Search).
		WithStatus(status)

	dir := q.Direction
	if p.Asc != nil {
		dir = filters.Descending
		if *p.Asc {
			dir = filters.Ascending
		}
	}

	return q.WithSort(key, dir), nil
}
