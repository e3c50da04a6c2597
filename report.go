package main

import (
	"fmt"
	"time"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"github.com/google/uuid"
)

// Report is one solver's line of output. Every solver in the same run shares
// the run ID so that lines from watch mode can be told apart.
type Report struct {
	RunID   uuid.UUID
	Solver  gapgo.Strategy
	Result  gapgo.Result
	Err     error
	Elapsed time.Duration
}

func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("run %s solver=%s error=%q elapsed=%v", r.RunID, r.Solver, r.Err.Error(), r.Elapsed)
	}
	return fmt.Sprintf("run %s solver=%s point=%v score=%d elapsed=%v", r.RunID, r.Solver, r.Result.Point, r.Result.Score, r.Elapsed)
}

func newReports(id uuid.UUID, outcomes []gapgo.Outcome) []Report {
	out := make([]Report, len(outcomes))
	for i, o := range outcomes {
		out[i] = Report{id, o.Strategy, o.Result, o.Err, o.Elapsed}
	}
	return out
}
