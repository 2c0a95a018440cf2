package model

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func validOrder() *Order {
	return &Order{
		ID:             "eo-1",
		Name:           "Tariff Order",
		Status:         Active,
		SignedDate:     "2025-01-20",
		ForecastImpact: 3,
		ForecastStall:  0.25,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validOrder().Validate())

	o := validOrder()
	o.ID = ""
	assert.NotNil(t, o.Validate())

	o = validOrder()
	o.Status = "Pending"
	assert.NotNil(t, o.Validate())

	o = validOrder()
	o.ForecastImpact = 6
	assert.NotNil(t, o.Validate())

	o = validOrder()
	o.ForecastImpact = -1
	assert.NotNil(t, o.Validate())

	o = validOrder()
	o.ForecastStall = 1.01
	assert.NotNil(t, o.Validate())

	o = validOrder()
	o.ForecastImpact = 5
	o.ForecastStall = 1
	assert.Nil(t, o.Validate())
}

func TestImpactSegments(t *testing.T) {
	t.Parallel()

	o := validOrder()

	assert.Equal(t, []bool{true, true, true, false, false}, o.ImpactSegments())

	o.ForecastImpact = 0
	assert.Equal(t, []bool{false, false, false, false, false}, o.ImpactSegments())
}

func TestStallPercent(t *testing.T) {
	t.Parallel()

	o := validOrder()
	o.ForecastStall = 0.456

	assert.Equal(t, 46, o.StallPercent())
}

func TestSignedTime(t *testing.T) {
	t.Parallel()

	o := validOrder()

	st, ok := o.SignedTime()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), st)

	o.LastUpdated = "2025-02-01T10:00:00Z"
	_, ok = o.LastUpdatedTime()
	assert.True(t, ok)

	o.LastUpdated = "yesterday"
	_, ok = o.LastUpdatedTime()
	assert.False(t, ok)
}

func TestOrdersGet(t *testing.T) {
	t.Parallel()

	a := validOrder()
	b := validOrder()
	b.ID = "eo-2"

	orders := NewOrders([]*Order{a, b})

	assert.Equal(t, 2, orders.Len())
	assert.Equal(t, []string{"eo-1", "eo-2"}, orders.IDs())
	assert.Same(t, b, orders.GetByID("eo-2"))

	_, err := orders.Get("eo-3")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOrdersListIsACopy(t *testing.T) {
	t.Parallel()

	a := validOrder()
	b := validOrder()
	b.ID = "eo-2"

	orders := NewOrders([]*Order{a, b})

	l := orders.List()
	l[0], l[1] = l[1], l[0]

	assert.Equal(t, []string{"eo-1", "eo-2"}, orders.IDs())
	assert.Equal(t, 0, EmptyOrders().Len())
}
