package sources

import (
	"context"
	"fmt"

	"github.com/pescuma/eotracker/lib/model"
)

// Source obtains the whole collection in one go.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Result, error)
}

type Result struct {
	Orders   []*model.Order
	Rejected []Rejection
}

// Rejection is a record that was left out of the collection because it breaks
// one of the order invariants.
type Rejection struct {
	Index int
	ID    string
	Err   error
}

func (r Rejection) String() string {
	if r.ID == "" {
		return fmt.Sprintf("record %v: %v", r.Index, r.Err)
	}
	return fmt.Sprintf("record %v (%v): %v", r.Index, r.ID, r.Err)
}

type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error loading orders from %v: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func newFetchError(source Source, err error) error {
	return &FetchError{
		Source: source.Name(),
		Err:    err,
	}
}
