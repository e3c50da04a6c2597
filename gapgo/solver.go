package gapgo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

type Strategy int

const (
	BruteForce Strategy = iota
	ColumnSkipping
	RangeExclusion
	BorderIntersection
)

var strategyNames = [...]string{
	BruteForce:         "brute-force",
	ColumnSkipping:     "column-skipping",
	RangeExclusion:     "range-exclusion",
	BorderIntersection: "border-intersection",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}
	return strategyNames[s]
}

func Strategies() []Strategy {
	return []Strategy{BruteForce, ColumnSkipping, RangeExclusion, BorderIntersection}
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown solver %q (want one of %s)", name, strings.Join(strategyNames[:], ", "))
}

// Default iteration caps. Brute force counts visited points; range exclusion
// counts visited chains.
const (
	DefaultBruteForceLimit = 10_000_000
	DefaultChainLimit      = 1 << 20
)

// Result is the uncovered point and its score, x*dimension + y.
type Result struct {
	Point Vec2
	Score int64
}

func (r Result) String() string {
	return fmt.Sprintf("point=%v score=%d", r.Point, r.Score)
}

func Score(p Vec2, dimension int32) int64 {
	return int64(p.X)*int64(dimension) + int64(p.Y)
}

type ProgressUpdate struct {
	Solver        string
	CurrentAction string
	Scanned       int64
	Total         int64
}

type Options struct {
	// MaxIterations caps the search. Zero selects the strategy default; column
	// skipping has no default cap since its cursor always leaves the square.
	MaxIterations int64
	// Workers > 1 scans row bands concurrently (column skipping only).
	Workers  int
	Progress chan ProgressUpdate
	Watch    *Stopwatch
}

// GapSolver finds the single lattice point of [0,dimension]^2 that no sensor
// covers.
type GapSolver interface {
	Name() string
	Solve(ctx context.Context, sensors []Sensor, dimension int32) (Result, error)
}

// Solver runs one strategy. Each Solve call works on its own copy of the
// sensors.
type Solver struct {
	Strategy Strategy
	Options
	Action string
}

var _ GapSolver = (*Solver)(nil)

func New(strategy Strategy, opts Options) *Solver {
	return &Solver{Strategy: strategy, Options: opts}
}

func (s *Solver) Name() string {
	return s.Strategy.String()
}

func (s *Solver) Solve(ctx context.Context, sensors []Sensor, dimension int32) (Result, error) {
	if err := validate(sensors, dimension); err != nil {
		return Result{}, &SolveError{s.Strategy, err}
	}
	sensors = slices.Clone(sensors)
	var p Vec2
	var err error
	switch s.Strategy {
	case BruteForce:
		p, err = s.bruteForce(ctx, sensors, dimension)
	case ColumnSkipping:
		p, err = s.columnSkipping(ctx, sensors, dimension)
	case RangeExclusion:
		p, err = s.rangeExclusion(ctx, sensors, dimension)
	case BorderIntersection:
		p, err = s.borderIntersection(ctx, sensors, dimension)
	default:
		err = fmt.Errorf("unknown strategy %d", int(s.Strategy))
	}
	if err != nil {
		return Result{}, &SolveError{s.Strategy, err}
	}
	return Result{p, Score(p, dimension)}, nil
}

func (s *Solver) UpdateAction(a string) {
	s.Action = a
	s.SendProgress(0, 0)
}

// SendProgress never blocks; updates are dropped while the consumer is behind.
func (s *Solver) SendProgress(scanned, total int64) {
	if s.Progress == nil {
		return
	}
	select {
	case s.Progress <- ProgressUpdate{s.Name(), s.Action, scanned, total}:
	default:
	}
}

func (s *Solver) limit(def int64) int64 {
	if s.MaxIterations > 0 {
		return s.MaxIterations
	}
	return def
}

type Outcome struct {
	Strategy Strategy
	Result   Result
	Err      error
	Elapsed  time.Duration
}

// SolveAll runs each strategy (all of them when none are given) on the same
// input and fails with ErrDisagreement if two successful runs differ.
func SolveAll(ctx context.Context, sensors []Sensor, dimension int32, opts Options, strategies ...Strategy) ([]Outcome, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	out := make([]Outcome, 0, len(strategies))
	first := -1
	for _, st := range strategies {
		start := time.Now()
		res, err := New(st, opts).Solve(ctx, sensors, dimension)
		out = append(out, Outcome{st, res, err, time.Since(start)})
		if err != nil {
			continue
		}
		if first < 0 {
			first = len(out) - 1
		} else if out[first].Result != res {
			return out, fmt.Errorf("%w: %s found %v, %s found %v", ErrDisagreement, out[first].Strategy, out[first].Result.Point, st, res.Point)
		}
	}
	return out, nil
}
