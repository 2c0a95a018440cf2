package server

import (
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/filters"
	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/stats"
)

const defaultTopLimit = 5

func (s *server) initStats(r *gin.Engine) {
	r.GET("/api/status", get(s.loaderStatus))
	r.GET("/api/stats/count", getP[CountParams](s.statsCount))
	r.GET("/api/stats/home", get(s.statsHome))
	r.GET("/api/stats/top", getP[TopParams](s.statsTop))
}

func (s *server) loaderStatus() (any, error) {
	state := s.loader.State()

	var errText *string
	if state.Err != nil {
		e := state.Err.Error()
		errText = &e
	}

	return gin.H{
		"loading":  state.Loading,
		"error":    errText,
		"source":   s.loader.Source().Name(),
		"total":    state.Orders.Len(),
		"rejected": len(state.Rejected),
	}, nil
}

func (s *server) statsCount(params *CountParams) (any, error) {
	statuses := set.From(model.AllStatuses())

	if len(params.Status) > 0 {
		statuses = set.New[model.Status](len(params.Status))
		for _, text := range params.Status {
			st, err := model.ParseStatus(text)
			if err != nil {
				return nil, badRequest(err)
			}

			statuses.Insert(st)
		}
	}

	col := s.loader.Orders().List()

	return gin.H{
		"total":  len(col),
		"counts": stats.CountBy(col, statuses),
	}, nil
}

func (s *server) statsHome() (any, error) {
	col := s.loader.Orders().List()
	summary := stats.Summarize(col)
	lawsuits := stats.LawsuitTotals(col)

	return gin.H{
		"cards": lo.Map(stats.HomeCards(summary), func(c stats.Card, _ int) gin.H {
			return gin.H{
				"title":  c.Title,
				"value":  c.Value,
				"filter": encodeStatusFilter(c.Filter),
			}
		}),
		"challenged": lawsuits.Challenged,
		"lawsuits":   lawsuits.Lawsuits,
	}, nil
}

func (s *server) statsTop(params *TopParams) (any, error) {
	by, err := stats.ParseRanking(params.By)
	if err != nil {
		return nil, badRequest(err)
	}

	limit := defaultTopLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	top, err := stats.Top(s.loader.Orders().List(), by, limit)
	if err != nil {
		return nil, badRequest(err)
	}

	return lo.Map(top, func(o *model.Order, _ int) gin.H {
		return s.toOrder(o)
	}), nil
}

func encodeStatusFilter(f filters.StatusFilter) string {
	if f == filters.All {
		return string(filters.All)
	}
	return model.Status(f).Key()
}
