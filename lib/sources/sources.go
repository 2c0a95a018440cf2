package sources

import (
	"bytes"
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/data"
	"github.com/pescuma/eotracker/lib/storages"
)

const (
	BundledName   = "bundled"
	WorkspaceName = "workspace"
)

type bundledSource struct {
	payload []byte
}

// NewBundledSource reads the collection embedded in the binary.
func NewBundledSource() Source {
	return &bundledSource{payload: data.ExecutiveOrders}
}

func (s *bundledSource) Name() string {
	return BundledName
}

func (s *bundledSource) Load(_ context.Context) (*Result, error) {
	result, err := Decode(bytes.NewReader(s.payload))
	if err != nil {
		return nil, newFetchError(s, err)
	}

	return result, nil
}

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Load(_ context.Context) (*Result, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, newFetchError(s, err)
	}
	defer f.Close()

	result, err := Decode(f)
	if err != nil {
		return nil, newFetchError(s, err)
	}

	return result, nil
}

type storageSource struct {
	storage storages.Storage
}

// NewStorageSource reads the latest snapshot imported into the workspace.
func NewStorageSource(storage storages.Storage) Source {
	return &storageSource{storage: storage}
}

func (s *storageSource) Name() string {
	return WorkspaceName
}

func (s *storageSource) Load(_ context.Context) (*Result, error) {
	_, orders, err := s.storage.LoadLatestSnapshot()
	if err != nil {
		return nil, newFetchError(s, errors.Wrap(err, "load snapshot"))
	}

	return Validate(orders), nil
}
