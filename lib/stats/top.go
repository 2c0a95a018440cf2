package stats

import (
	"github.com/oleiade/lane/v2"
	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/model"
)

type Ranking string

const (
	ByImpact Ranking = "impact"
	ByStall  Ranking = "stall"
)

func ParseRanking(text string) (Ranking, error) {
	switch Ranking(text) {
	case "", ByImpact:
		return ByImpact, nil
	case ByStall:
		return ByStall, nil
	default:
		return "", errors.Errorf("unknown ranking: %v", text)
	}
}

// Top returns at most n orders with the highest forecast, highest first.
// Orders with the same forecast come out in no particular order.
func Top(col []*model.Order, by Ranking, n int) ([]*model.Order, error) {
	var priority func(*model.Order) float64
	switch by {
	case ByImpact:
		priority = func(o *model.Order) float64 { return float64(o.ForecastImpact) }
	case ByStall:
		priority = func(o *model.Order) float64 { return o.ForecastStall }
	default:
		return nil, errors.Errorf("unknown ranking: %v", by)
	}

	if n < 0 {
		n = 0
	}

	queue := lane.NewMaxPriorityQueue[*model.Order, float64]()
	for _, o := range col {
		queue.Push(o, priority(o))
	}

	result := make([]*model.Order, 0, n)
	for len(result) < n {
		o, _, ok := queue.Pop()
		if !ok {
			break
		}

		result = append(result, o)
	}

	return result, nil
}
