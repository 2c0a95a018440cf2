package orm

import (
	"time"

	"github.com/samber/lo"

	"github.com/pescuma/eotracker/lib/model"
)

type sqlTable interface {
	CacheKey() string
}

type sqlConfig struct {
	Key   string `gorm:"primaryKey"`
	Value string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlConfig(k string, v string) *sqlConfig {
	return &sqlConfig{
		Key:   k,
		Value: v,
	}
}

func (s *sqlConfig) CacheKey() string {
	return s.Key
}

type sqlSnapshot struct {
	ID         model.UUID `gorm:"primaryKey"`
	Source     string
	ImportedAt time.Time `gorm:"index"`
	Orders     int
	Rejected   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlSnapshot(s *model.Snapshot) *sqlSnapshot {
	return &sqlSnapshot{
		ID:         s.ID,
		Source:     s.Source,
		ImportedAt: s.ImportedAt,
		Orders:     s.Orders,
		Rejected:   s.Rejected,
	}
}

func (s *sqlSnapshot) CacheKey() string {
	return string(s.ID)
}

func (s *sqlSnapshot) ToModel() *model.Snapshot {
	return &model.Snapshot{
		ID:         s.ID,
		Source:     s.Source,
		ImportedAt: s.ImportedAt,
		Orders:     s.Orders,
		Rejected:   s.Rejected,
	}
}

type sqlOrder struct {
	SnapshotID model.UUID `gorm:"primaryKey"`
	OrderID    string     `gorm:"primaryKey"`
	Position   int        `gorm:"index"`

	Name           string
	Type           string
	Link           string
	Summary        string
	Notes          string
	Status         model.Status `gorm:"index"`
	SignedDate     string
	LastUpdated    string
	ForecastImpact int
	ForecastStall  float64
	Lawsuits       []sqlLawsuit `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type sqlLawsuit struct {
	CaseName    string `json:"caseName"`
	Description string `json:"description"`
}

func newSqlOrder(snapshotID model.UUID, position int, o *model.Order) *sqlOrder {
	return &sqlOrder{
		SnapshotID:     snapshotID,
		OrderID:        o.ID,
		Position:       position,
		Name:           o.Name,
		Type:           o.Type,
		Link:           o.Link,
		Summary:        o.Summary,
		Notes:          o.Notes,
		Status:         o.Status,
		SignedDate:     o.SignedDate,
		LastUpdated:    o.LastUpdated,
		ForecastImpact: o.ForecastImpact,
		ForecastStall:  o.ForecastStall,
		Lawsuits: lo.Map(o.Lawsuits, func(l model.Lawsuit, _ int) sqlLawsuit {
			return sqlLawsuit{CaseName: l.CaseName, Description: l.Description}
		}),
	}
}

func (s *sqlOrder) CacheKey() string {
	return compositeKey(string(s.SnapshotID), s.OrderID)
}

func (s *sqlOrder) ToModel() *model.Order {
	return &model.Order{
		ID:             s.OrderID,
		Name:           s.Name,
		Type:           s.Type,
		Link:           s.Link,
		Summary:        s.Summary,
		Notes:          s.Notes,
		Status:         s.Status,
		SignedDate:     s.SignedDate,
		LastUpdated:    s.LastUpdated,
		ForecastImpact: s.ForecastImpact,
		ForecastStall:  s.ForecastStall,
		Lawsuits: lo.Map(s.Lawsuits, func(l sqlLawsuit, _ int) model.Lawsuit {
			return model.Lawsuit{CaseName: l.CaseName, Description: l.Description}
		}),
	}
}
