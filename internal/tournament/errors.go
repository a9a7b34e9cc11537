package tournament

import "errors"

var (
	// ErrInconsistentSetResult is returned when a recorded set cannot be reconciled with the schedule.
	ErrInconsistentSetResult = errors.New("inconsistent set result")
	// ErrUnknownCategory is returned for a category that has no counting rule.
	ErrUnknownCategory = errors.New("unknown format category")
)
