package gapgo

import (
	"context"
	"fmt"
	"sort"
)

// rangeExclusion works in diagonal space, where every sensor is a box. It
// first narrows the diagonal X axis down to the one column that is not fully
// covered, then narrows that column's Y axis down to the uncovered point.
func (s *Solver) rangeExclusion(ctx context.Context, sensors []Sensor, dimension int32) (Vec2, error) {
	s.UpdateAction("Excluding diagonal ranges")
	s.Watch.Start("aabb")
	boxes := make([]Aabb, len(sensors))
	for i, sensor := range sensors {
		boxes[i] = SensorAabb(sensor, dimension)
	}
	sort.Stable(byDiagonalStart(boxes))
	s.Watch.Stop("aabb")

	s.Watch.Start("exclude-x")
	column, err := s.excludeColumns(ctx, boxes, dimension)
	s.Watch.Stop("exclude-x")
	if err != nil {
		return Vec2{}, err
	}

	s.Watch.Start("exclude-y")
	defer s.Watch.Stop("exclude-y")
	rows := excludeRows(boxes, column, dimension)
	var found []Vec2
	for _, r := range rows.Ranges() {
		y := r.Start
		if !IsLattice(Vec2{column, y}, dimension) {
			y++
		}
		for ; y < r.End; y += 2 {
			found = append(found, Vec2{column, y})
			if len(found) > 1 {
				return Vec2{}, fmt.Errorf("%w: %v and %v", ErrAmbiguous,
					FromDiagonal(found[0], dimension), FromDiagonal(found[1], dimension))
			}
		}
	}
	if len(found) == 0 {
		return Vec2{}, fmt.Errorf("%w: diagonal column %d is covered", ErrNoSolution, column)
	}
	return FromDiagonal(found[0], dimension), nil
}

// excludeColumns finds the only diagonal column holding an uncovered lattice
// point. Columns of each parity are handled in their own pass because a
// column's lattice points sit on every other Y; see widenToLattice.
func (s *Solver) excludeColumns(ctx context.Context, boxes []Aabb, dimension int32) (int32, error) {
	var columns []int32
	for parity := int32(0); parity < 2; parity++ {
		remaining, err := s.excludeXDiagonal(ctx, boxes, dimension, parity)
		if err != nil {
			return 0, err
		}
		for _, r := range remaining.Ranges() {
			x := r.Start
			if x&1 != parity {
				x++
			}
			for ; x < r.End; x += 2 {
				columns = append(columns, x)
				if len(columns) > 1 {
					return 0, fmt.Errorf("%w: diagonal columns %d and %d", ErrAmbiguous, columns[0], columns[1])
				}
			}
		}
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("%w: every diagonal column is covered", ErrNoSolution)
	}
	return columns[0], nil
}

// chain is a run of sensors whose X ranges all share x and whose Y ranges
// join into the single interval y. first is the chain's lowest sensor index;
// chains only grow with sensors after it.
type chain struct {
	x     Range
	y     Range
	first int
}

// excludeXDiagonal removes every diagonal column that some chain covers from
// edge to edge of the search square. Only columns with X&1 == parity are
// decided by the returned set.
//
// Preconditions: boxes is non-empty and sorted by X.Start.
func (s *Solver) excludeXDiagonal(ctx context.Context, boxes []Aabb, dimension int32, parity int32) (*RangeSet, error) {
	if len(boxes) == 0 {
		return nil, ErrNoSensors
	}
	for i := 1; i < len(boxes); i++ {
		if boxes[i-1].X.Start > boxes[i].X.Start {
			return nil, fmt.Errorf("%w: box %d starts at %d after box %d at %d",
				ErrUnsorted, i-1, boxes[i-1].X.Start, i, boxes[i].X.Start)
		}
	}

	ys := make([]Range, len(boxes))
	for i, b := range boxes {
		ys[i] = widenToLattice(b.Y, dimension, parity)
	}

	top := 2 * dimension
	remaining := NewRangeSet(diagonalBounds(dimension))
	toVisit := make([]chain, 0, len(boxes))
	seen := make(map[chain]struct{}, len(boxes))
	for i, b := range boxes {
		c := chain{b.X, ys[i], i}
		toVisit = append(toVisit, c)
		seen[c] = struct{}{}
	}

	limit := s.limit(DefaultChainLimit)
	var visits int64
	for len(toVisit) > 0 {
		current := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		visits++
		if visits > limit {
			return nil, fmt.Errorf("%w: %d chains visited", ErrIterationLimit, visits-1)
		}
		if visits&4095 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// The chain covers Y within reach of the square's diagonal midline.
		// Columns close enough to the square's left and right corners need no
		// more than that.
		reach := min(dimension-current.y.Start, current.y.End-1-dimension)
		remaining.SubtractRange(Range{0, reach + 1}.Intersect(current.x))
		remaining.SubtractRange(Range{top - reach, top + 1}.Intersect(current.x))

		for j := current.first + 1; j < len(boxes); j++ {
			candidate := boxes[j].X
			shared := candidate.Intersect(current.x)
			if shared.Len() <= 0 {
				if candidate.Start >= current.x.End {
					// Later boxes start even further right.
					break
				}
				continue
			}
			joined := ys[j].Union(current.y)
			if joined.Len() == current.y.Len() || ys[j].Intersect(current.y).Len() < 0 {
				continue
			}
			next := chain{shared, joined, current.first}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			toVisit = append(toVisit, next)
		}
	}
	return remaining, nil
}

// widenToLattice grows y by one at either end when the neighbouring Y is not
// a lattice point for columns of the given parity. Those points can never be
// the gap, and filling them lets two boxes that cover adjacent lattice points
// join into one chain.
func widenToLattice(y Range, dimension int32, parity int32) Range {
	want := (dimension + parity) & 1
	if (y.Start-1)&1 != want {
		y.Start--
	}
	if y.End&1 != want {
		y.End++
	}
	return y
}

// excludeRows subtracts from the square's extent at diagonal column x the Y
// range of every box covering that column.
func excludeRows(boxes []Aabb, x int32, dimension int32) *RangeSet {
	remaining := NewRangeSet(diagonalSpan(x, dimension))
	for _, b := range boxes {
		if b.X.Contains(x) {
			remaining.SubtractRange(b.Y)
		}
	}
	return remaining
}
