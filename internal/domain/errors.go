package domain

import (
	"errors"
	"fmt"
)

// InsufficientDataError means the universe is too small, in securities
// or periods, for the regressions to mean anything
type InsufficientDataError struct {
	Securities    int
	Periods       int
	MinSecurities int
	MinPeriods    int
	Reason        string
}

func (e InsufficientDataError) Error() string {
	if e.Reason != "" {
		return "insufficient data: " + e.Reason
	}
	return fmt.Sprintf(
		"insufficient data: got %d securities over %d periods, need at least %d securities and %d periods",
		e.Securities, e.Periods, e.MinSecurities, e.MinPeriods,
	)
}

// DegenerateSeriesError is returned when a regression input has zero
// variance and the slope is undefined
type DegenerateSeriesError struct {
	Symbol string
	Series string
}

func (e DegenerateSeriesError) Error() string {
	return fmt.Sprintf("degenerate series for %s: %s has zero variance", e.Symbol, e.Series)
}

// ZeroVarianceError is returned when a loading is constant across the
// universe, so it cannot be standardized
type ZeroVarianceError struct {
	Field string
}

func (e ZeroVarianceError) Error() string {
	return fmt.Sprintf("cannot standardize %s: zero variance across universe", e.Field)
}

type InsufficientMembersError struct {
	Basket  int
	Members int
	TopK    int
}

func (e InsufficientMembersError) Error() string {
	return fmt.Sprintf("basket %d has %d members, need at least %d", e.Basket, e.Members, e.TopK)
}

// StageError tags a failure with the pipeline stage it came from
type StageError struct {
	Stage string
	Err   error
}

func (e StageError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Stage, e.Err.Error())
}

func (e StageError) Unwrap() error {
	return e.Err
}

var ErrRunNotFound = errors.New("analysis run not found")
