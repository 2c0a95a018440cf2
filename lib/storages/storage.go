package storages

import (
	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/model"
)

var ErrNoSnapshot = errors.New("no snapshot imported into the workspace")

type Storage interface {
	// LoadLatestSnapshot returns the most recent snapshot and its orders, in
	// the order they were imported. Returns ErrNoSnapshot if there is none.
	LoadLatestSnapshot() (*model.Snapshot, []*model.Order, error)
	ListSnapshots() ([]*model.Snapshot, error)
	WriteSnapshot(snapshot *model.Snapshot, orders []*model.Order, progress func(int)) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}
