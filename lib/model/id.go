package model

import (
	"time"

	"github.com/teris-io/shortid"
	"golang.org/x/exp/rand"
)

type UUID string

func NewUUID(t string) UUID {
	return UUID(shortid.MustGenerate() + t)
}

func init() {
	sid := shortid.MustNew(0, "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_.", rand.Uint64())
	shortid.SetDefault(sid)
}

// Snapshot is one import of a collection into the workspace.
type Snapshot struct {
	ID         UUID
	Source     string
	ImportedAt time.Time
	Orders     int
	Rejected   int
}

func NewSnapshot(source string) *Snapshot {
	return &Snapshot{
		ID:         NewUUID("s"),
		Source:     source,
		ImportedAt: time.Now(),
	}
}
