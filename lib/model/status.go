package model

import (
	"strings"

	"github.com/pkg/errors"
)

type Status string

const (
	Active           Status = "Active"
	InProgress       Status = "Implementation in progress"
	Blocked          Status = "Blocked by lawsuit"
	PartiallyBlocked Status = "Partially blocked"
	Rescinded        Status = "Rescinded"
	AwaitingReview   Status = "Awaiting Review"
	Unclear          Status = "Unclear / Hard to implement"
	Complete         Status = "Fully implemented"
)

var allStatuses = []Status{
	Active,
	InProgress,
	Blocked,
	PartiallyBlocked,
	Rescinded,
	AwaitingReview,
	Unclear,
	Complete,
}

var statusKeys = map[Status]string{
	Active:           "ACTIVE",
	InProgress:       "IN_PROGRESS",
	Blocked:          "BLOCKED",
	PartiallyBlocked: "PARTIALLY_BLOCKED",
	Rescinded:        "RESCINDED",
	AwaitingReview:   "AWAITING_REVIEW",
	Unclear:          "UNCLEAR",
	Complete:         "COMPLETE",
}

// AllStatuses returns the closed status enumeration, in display order.
func AllStatuses() []Status {
	result := make([]Status, len(allStatuses))
	copy(result, allStatuses)
	return result
}

func (s Status) IsValid() bool {
	_, ok := statusKeys[s]
	return ok
}

// Key returns the short upper case name of the status, or "" if it is not valid.
func (s Status) Key() string {
	return statusKeys[s]
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts either the display value or the short key, ignoring case.
func ParseStatus(text string) (Status, error) {
	text = strings.TrimSpace(text)

	for _, s := range allStatuses {
		if strings.EqualFold(text, string(s)) || strings.EqualFold(text, statusKeys[s]) {
			return s, nil
		}
	}

	return "", errors.Errorf("unknown status: %v", text)
}
