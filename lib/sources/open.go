package sources

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/storages"
)

// Open resolves a location into a Source. Known locations are "bundled",
// "workspace", http(s) URLs and paths to local files.
func Open(location string, storage storages.Storage, opts *HTTPOptions) (Source, error) {
	location = strings.TrimSpace(location)

	switch {
	case location == "":
		return nil, errors.New("empty source location")

	case location == BundledName:
		return NewBundledSource(), nil

	case location == WorkspaceName:
		if storage == nil {
			return nil, errors.New("workspace source needs a workspace")
		}
		return NewStorageSource(storage), nil

	case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, opts), nil

	default:
		return NewFileSource(location), nil
	}
}
