package gapgo

import (
	"errors"
	"fmt"
)

// Inputs are bounded so that every intermediate value the solvers compute
// (diagonal coordinates, intercepts and their sums) fits in an int32.
const (
	MaxCoordinate = 1 << 28
	MaxDimension  = 1 << 28
)

// Precondition failures. These are caller errors.
var (
	ErrNoSensors        = errors.New("at least one sensor is required")
	ErrInvalidDimension = errors.New("dimension out of range")
	ErrNegativeRadius   = errors.New("sensor radius is negative")
	ErrCoordinateRange  = errors.New("sensor coordinate out of range")
	ErrUnsorted         = errors.New("sensors are not sorted by diagonal start")
)

// Search failures.
var (
	ErrNoSolution     = errors.New("no solution")
	ErrAmbiguous      = errors.New("more than one uncovered point")
	ErrIterationLimit = errors.New("iteration limit exceeded")
	ErrDisagreement   = errors.New("solvers disagree")
)

func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoSensors) ||
		errors.Is(err, ErrInvalidDimension) ||
		errors.Is(err, ErrNegativeRadius) ||
		errors.Is(err, ErrCoordinateRange) ||
		errors.Is(err, ErrUnsorted)
}

// SolveError records which strategy failed.
type SolveError struct {
	Solver Strategy
	Err    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Solver, e.Err)
}

func (e *SolveError) Unwrap() error {
	return e.Err
}

// ParseError is returned for an input line that is not a sensor reading.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func validate(sensors []Sensor, dimension int32) error {
	if dimension < 0 || dimension > MaxDimension {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, dimension)
	}
	if len(sensors) == 0 {
		return ErrNoSensors
	}
	for i, s := range sensors {
		if s.Radius < 0 {
			return fmt.Errorf("%w: sensor %d at %v has radius %d", ErrNegativeRadius, i, s.Pos, s.Radius)
		}
		if outOfRange(s.Pos.X) || outOfRange(s.Pos.Y) || s.Radius > MaxCoordinate {
			return fmt.Errorf("%w: sensor %d is %v", ErrCoordinateRange, i, s)
		}
	}
	return nil
}

func outOfRange(v int32) bool {
	return v < -MaxCoordinate || v > MaxCoordinate
}
