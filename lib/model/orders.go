package model

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Orders is a read only collection. It keeps the order it was created with.
type Orders struct {
	list []*Order
	byID map[string]*Order
}

func NewOrders(list []*Order) *Orders {
	result := &Orders{
		list: make([]*Order, len(list)),
		byID: make(map[string]*Order, len(list)),
	}

	copy(result.list, list)
	for _, o := range list {
		if _, ok := result.byID[o.ID]; !ok {
			result.byID[o.ID] = o
		}
	}

	return result
}

func EmptyOrders() *Orders {
	return NewOrders(nil)
}

// List returns a copy of the collection, so callers are free to reorder it.
func (s *Orders) List() []*Order {
	result := make([]*Order, len(s.list))
	copy(result, s.list)
	return result
}

func (s *Orders) Len() int {
	return len(s.list)
}

func (s *Orders) GetByID(id string) *Order {
	return s.byID[id]
}

func (s *Orders) Get(id string) (*Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "order %v", id)
	}
	return o, nil
}

func (s *Orders) IDs() []string {
	return lo.Map(s.list, func(o *Order, _ int) string { return o.ID })
}
