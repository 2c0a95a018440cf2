package sources

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/model"
)

// Decode reads a JSON array of orders. A payload that is not an array is an
// error; records that are not valid orders are returned as rejections.
func Decode(r io.Reader) (*Result, error) {
	var raw []json.RawMessage

	dec := json.NewDecoder(r)

	err := dec.Decode(&raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payload")
	}

	var extra json.RawMessage
	err = dec.Decode(&extra)
	switch {
	case err == nil:
		return nil, errors.New("invalid payload: unexpected data after the array")
	case err != io.EOF:
		return nil, errors.Wrap(err, "invalid payload")
	}

	if raw == nil {
		return nil, errors.New("invalid payload: expected a JSON array of orders")
	}

	orders := make([]*model.Order, 0, len(raw))
	positions := make([]int, 0, len(raw))
	var rejected []Rejection

	for i, msg := range raw {
		o := &model.Order{}

		err = json.Unmarshal(msg, o)
		if err != nil {
			rejected = append(rejected, Rejection{Index: i, Err: errors.Wrap(err, "invalid record")})
			continue
		}

		orders = append(orders, o)
		positions = append(positions, i)
	}

	result := Validate(orders)

	// Validate reports indexes into orders, not into the payload
	for _, r := range result.Rejected {
		r.Index = positions[r.Index]
		rejected = append(rejected, r)
	}

	sort.Slice(rejected, func(i, j int) bool {
		return rejected[i].Index < rejected[j].Index
	})
	result.Rejected = rejected

	return result, nil
}

// Validate splits orders into the ones that hold every invariant and the ones
// that do not. Later duplicates of an id are rejected.
func Validate(orders []*model.Order) *Result {
	result := &Result{
		Orders: make([]*model.Order, 0, len(orders)),
	}

	seen := set.New[string](len(orders))

	for i, o := range orders {
		err := o.Validate()
		if err == nil && seen.Contains(o.ID) {
			err = errors.Errorf("duplicated id")
		}
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, ID: o.ID, Err: err})
			continue
		}

		seen.Insert(o.ID)

		if o.Lawsuits == nil {
			o.Lawsuits = []model.Lawsuit{}
		}

		result.Orders = append(result.Orders, o)
	}

	return result
}
