package main

import (
	"errors"
	"testing"
	"time"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"github.com/google/uuid"
)

func TestReportString(t *testing.T) {
	id := uuid.MustParse("6f1c2b0e-8a3d-4c55-9e3f-0d2a1b4c5e6f")
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			"success",
			Report{id, gapgo.RangeExclusion, gapgo.Result{Point: gapgo.Vec2{X: 14, Y: 11}, Score: 291}, nil, 1500 * time.Microsecond},
			"run 6f1c2b0e-8a3d-4c55-9e3f-0d2a1b4c5e6f solver=range-exclusion point=(14, 11) score=291 elapsed=1.5ms",
		},
		{
			"failure",
			Report{id, gapgo.BruteForce, gapgo.Result{}, errors.New("iteration limit exceeded"), time.Second},
			`run 6f1c2b0e-8a3d-4c55-9e3f-0d2a1b4c5e6f solver=brute-force error="iteration limit exceeded" elapsed=1s`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.String(); got != tt.want {
				t.Errorf("String() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestNewReportsShareRunID(t *testing.T) {
	id := uuid.New()
	outcomes := []gapgo.Outcome{
		{Strategy: gapgo.ColumnSkipping},
		{Strategy: gapgo.BorderIntersection},
	}
	reports := newReports(id, outcomes)
	if len(reports) != 2 {
		t.Fatalf("got %d reports", len(reports))
	}
	for i, r := range reports {
		if r.RunID != id || r.Solver != outcomes[i].Strategy {
			t.Errorf("report %d = %+v", i, r)
		}
	}
}
