package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/filters"
	"github.com/pescuma/eotracker/lib/model"
)

func (s *server) initOrders(r *gin.Engine) {
	r.GET("/api/orders", getP[ListParams](s.ordersList))
	r.GET("/api/orders/:id", getP[IDParams](s.orderGet))
	r.GET("/api/statuses", get(s.statusesList))
}

func (s *server) ordersList(params *ListParams) (any, error) {
	q, err := params.toQuery()
	if err != nil {
		return nil, err
	}

	orders, err := filters.Derive(s.loader.Orders().List(), q)
	if err != nil {
		return nil, badRequest(err)
	}

	total := len(orders)

	orders = filters.Paginate(orders, params.Offset, params.Limit)

	result := lo.Map(orders, func(o *model.Order, _ int) gin.H {
		return s.toOrder(o)
	})

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) orderGet(params *IDParams) (any, error) {
	order := s.loader.Orders().GetByID(params.ID)
	if order == nil {
		return nil, errorNotFound
	}

	return s.toOrderDetails(order), nil
}

func (s *server) statusesList() (any, error) {
	return lo.Map(model.AllStatuses(), func(st model.Status, _ int) gin.H {
		return gin.H{
			"key":  st.Key(),
			"name": st.String(),
		}
	}), nil
}
