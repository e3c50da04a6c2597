package gapgo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// columnSkipping sweeps the square row by row. Whenever a sensor covers the
// cursor, the cursor jumps to the first column past that sensor's diamond on
// the current row. A full pass over the live sensors without a jump means the
// cursor is uncovered.
func (s *Solver) columnSkipping(ctx context.Context, sensors []Sensor, dimension int32) (Vec2, error) {
	s.UpdateAction("Skipping covered columns")
	// Sensors that stop reaching the cursor's row form a prefix of this order
	// and can be retired as the sweep moves down.
	sort.Stable(byReach(sensors))

	sc := &skipScan{Solver: s, sensors: sensors, dimension: dimension}
	workers := s.Workers
	if rows := int(dimension) + 1; workers > rows {
		workers = rows
	}
	if workers <= 1 {
		start := time.Now()
		p, ok, err := sc.band(ctx, 0, dimension, nil)
		s.Watch.Add("scan", time.Since(start))
		if err != nil {
			return Vec2{}, err
		}
		if !ok {
			return Vec2{}, ErrNoSolution
		}
		return p, nil
	}
	return sc.bands(ctx, workers)
}

type skipScan struct {
	*Solver
	sensors   []Sensor
	dimension int32
	rows      atomic.Int64
}

type bandResult struct {
	p   Vec2
	ok  bool
	err error
}

// bands splits the rows into contiguous bands scanned concurrently. The gap
// from the lowest band that finds one wins, so the answer matches a single
// sequential sweep. Bands above a successful band stop early.
func (sc *skipScan) bands(ctx context.Context, workers int) (Vec2, error) {
	rows := sc.dimension + 1
	size := (rows + int32(workers) - 1) / int32(workers)
	results := make([]bandResult, workers)

	var best atomic.Int32
	best.Store(int32(workers))
	var wg sync.WaitGroup
	for b := 0; b < workers; b++ {
		first := int32(b) * size
		if first > sc.dimension {
			break
		}
		last := min(first+size-1, sc.dimension)
		wg.Add(1)
		go func(b int32, first, last int32) {
			defer wg.Done()
			start := time.Now()
			p, ok, err := sc.band(ctx, first, last, func() bool { return best.Load() < b })
			sc.Watch.Add("scan", time.Since(start))
			results[b] = bandResult{p, ok, err}
			if !ok {
				return
			}
			for {
				cur := best.Load()
				if b >= cur || best.CompareAndSwap(cur, b) {
					return
				}
			}
		}(int32(b), first, last)
	}
	wg.Wait()

	for _, r := range results {
		if r.err != nil {
			return Vec2{}, r.err
		}
		if r.ok {
			return r.p, nil
		}
	}
	return Vec2{}, ErrNoSolution
}

// band sweeps rows [first, last] starting at the left edge of row first. It
// reports ok=false if the cursor leaves the band, or if stop says a lower
// band already has the answer.
func (sc *skipScan) band(ctx context.Context, first, last int32, stop func() bool) (Vec2, bool, error) {
	sensors := sc.sensors
	n := len(sensors)
	total := int64(sc.dimension) + 1
	live := 0
	for live < n && sensors[live].Reach() < first {
		live++
	}

	pos := Vec2{0, first}
	i := live
	checked := 0
	var jumps int64
	for {
		if live == n {
			return pos, true, nil
		}
		if i < live {
			i = live
		}
		sensor := sensors[i]
		if sensor.Covers(pos) {
			pos.X = sensor.Pos.X + sensor.Radius - abs(sensor.Pos.Y-pos.Y) + 1
			checked = 0
			jumps++
			if sc.MaxIterations > 0 && jumps > sc.MaxIterations {
				return Vec2{}, false, fmt.Errorf("%w: %d jumps", ErrIterationLimit, jumps)
			}
			if pos.X > sc.dimension {
				pos = Vec2{0, pos.Y + 1}
				if pos.Y > last {
					return Vec2{}, false, nil
				}
				for live < n && sensors[live].Reach() < pos.Y {
					live++
				}
				if done := sc.rows.Add(1); done&1023 == 0 {
					sc.SendProgress(done, total)
					if err := ctx.Err(); err != nil {
						return Vec2{}, false, err
					}
					if stop != nil && stop() {
						return Vec2{}, false, nil
					}
				}
			}
		} else {
			checked++
			if checked >= n-live {
				return pos, true, nil
			}
		}
		i++
		if i >= n {
			i = live
		}
	}
}
