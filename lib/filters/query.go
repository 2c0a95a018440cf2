package filters

import (
	"github.com/pescuma/eotracker/lib/model"
)

// StatusFilter is either a model.Status or All.
type StatusFilter string

const All StatusFilter = "ALL"

func StatusOnly(s model.Status) StatusFilter {
	return StatusFilter(s)
}

func (f StatusFilter) Matches(s model.Status) bool {
	return f == All || model.Status(f) == s
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "<unknown>"
	}
}

// Query holds everything the list view needs to derive what it shows.
// It is a value: transitions return a new Query and leave the receiver untouched.
type Query struct {
	Search    string
	Status    StatusFilter
	Sort      SortKey
	Direction Direction
}

func DefaultQuery() Query {
	return Query{
		Search:    "",
		Status:    All,
		Sort:      BySignedDate,
		Direction: Descending,
	}
}

func (q Query) WithSearch(search string) Query {
	q.Search = search
	return q
}

func (q Query) WithStatus(status StatusFilter) Query {
	q.Status = status
	return q
}

func (q Query) WithSort(key SortKey, dir Direction) Query {
	q.Sort = key
	q.Direction = dir
	return q
}

// ToggleSort is what happens when a column header is clicked: the same column
// flips the direction, another column starts ascending.
func (q Query) ToggleSort(key SortKey) Query {
	if key == q.Sort {
		q.Direction = q.Direction.Flip()
	} else {
		q.Sort = key
		q.Direction = Ascending
	}
	return q
}
