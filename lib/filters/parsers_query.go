package filters

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/eotracker/lib/model"
)

func ParseStatusFilter(text string) (StatusFilter, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, string(All)) {
		return All, nil
	}

	s, err := model.ParseStatus(text)
	if err != nil {
		return "", err
	}

	return StatusOnly(s), nil
}

func ParseSortKey(text string) (SortKey, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return BySignedDate, nil
	}

	for _, k := range sortKeys {
		if strings.EqualFold(text, string(k)) {
			return k, nil
		}
	}

	return "", errors.Errorf("unknown sort field: %v", text)
}

func ParseDirection(text string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, errors.Errorf("unknown sort direction: %v", text)
	}
}
