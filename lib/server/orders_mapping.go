package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/model"
	"github.com/pescuma/eotracker/lib/utils"
)

func (s *server) toOrder(o *model.Order) gin.H {
	return gin.H{
		"id":             o.ID,
		"name":           o.Name,
		"type":           o.Type,
		"link":           o.Link,
		"status":         o.Status,
		"statusKey":      o.Status.Key(),
		"signedDate":     o.SignedDate,
		"signedOn":       encodeDate(o.SignedTime()),
		"lastUpdated":    o.LastUpdated,
		"lastUpdatedOn":  encodeDate(o.LastUpdatedTime()),
		"forecastImpact": o.ForecastImpact,
		"forecastStall":  o.ForecastStall,
		"lawsuits":       len(o.Lawsuits),
	}
}

func (s *server) toOrderDetails(o *model.Order) gin.H {
	result := s.toOrder(o)
	result["summary"] = o.Summary
	result["notes"] = o.Notes
	result["impactSegments"] = o.ImpactSegments()
	result["stallPercent"] = o.StallPercent()
	result["lawsuits"] = lo.Map(o.Lawsuits, func(l model.Lawsuit, _ int) gin.H {
		return gin.H{
			"caseName":    l.CaseName,
			"description": l.Description,
		}
	})
	return result
}

// encodeDate normalizes a parsed date, or null when the source value did not parse.
func encodeDate(v time.Time, ok bool) *string {
	d := v.Format(time.DateOnly)
	return utils.IIf(ok, &d, nil)
}
