package model

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

const (
	MaxForecastImpact = 5
	ImpactSegments    = 5
)

var ErrNotFound = errors.New("not found")

type Order struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type,omitempty"`
	Link           string    `json:"link"`
	Summary        string    `json:"summary"`
	Notes          string    `json:"notes"`
	Status         Status    `json:"status"`
	SignedDate     string    `json:"signedDate"`
	LastUpdated    string    `json:"lastUpdated"`
	ForecastImpact int       `json:"forecastImpact"`
	ForecastStall  float64   `json:"forecastStall"`
	Lawsuits       []Lawsuit `json:"lawsuits"`
}

type Lawsuit struct {
	CaseName    string `json:"caseName"`
	Description string `json:"description"`
}

// Validate checks the invariants every loaded order must hold.
func (o *Order) Validate() error {
	switch {
	case o.ID == "":
		return errors.New("missing id")
	case !o.Status.IsValid():
		return errors.Errorf("unknown status %q", o.Status)
	case o.ForecastImpact < 0 || o.ForecastImpact > MaxForecastImpact:
		return errors.Errorf("forecastImpact out of range [0,%v]: %v", MaxForecastImpact, o.ForecastImpact)
	case math.IsNaN(o.ForecastStall) || o.ForecastStall < 0 || o.ForecastStall > 1:
		return errors.Errorf("forecastStall out of range [0,1]: %v", o.ForecastStall)
	default:
		return nil
	}
}

// ImpactSegments returns which of the indicator segments are filled.
func (o *Order) ImpactSegments() []bool {
	result := make([]bool, ImpactSegments)
	for i := range result {
		result[i] = i < o.ForecastImpact
	}
	return result
}

func (o *Order) StallPercent() int {
	return int(math.Round(o.ForecastStall * 100))
}

func (o *Order) SignedTime() (time.Time, bool) {
	return parseDate(o.SignedDate)
}

func (o *Order) LastUpdatedTime() (time.Time, bool) {
	return parseDate(o.LastUpdated)
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05"} {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
