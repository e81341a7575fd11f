package splitter

import (
	"errors"
)

var (
	// ErrEmptyPlanSet is returned when Export is invoked with no plans.
	// Callers must run Analyze first.
	ErrEmptyPlanSet = errors.New("splitter: empty plan set")

	// ErrDegenerateRange is returned when a plan's start page exceeds its end
	// page. Export rejects the whole operation before writing anything.
	ErrDegenerateRange = errors.New("splitter: degenerate page range")
)
