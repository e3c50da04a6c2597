package gapgo

import (
	"context"
	"time"
)

// Segment is a piece of a sensor's outer border: the line y = x + Intercept
// (positive slope) or y = -x + Intercept (negative slope), clipped to Bounds.
type Segment struct {
	Intercept int32
	Bounds    Aabb
}

// borderIntersection relies on the gap sitting just outside at least two
// sensor diamonds, so it lies on or next to a crossing of two border lines of
// opposite slope. Every crossing yields at most four candidates, each checked
// against all sensors.
func (s *Solver) borderIntersection(ctx context.Context, sensors []Sensor, dimension int32) (Vec2, error) {
	s.UpdateAction("Checking corners")
	for _, p := range [...]Vec2{{0, 0}, {0, dimension}, {dimension, dimension}, {dimension, 0}} {
		if !covered(p, sensors) {
			return p, nil
		}
	}

	s.UpdateAction("Intersecting borders")
	s.Watch.Start("segments")
	pos := make([]Segment, 0, 2*len(sensors))
	neg := make([]Segment, 0, 2*len(sensors))
	for _, sensor := range sensors {
		ps := positiveSlopeSegments(sensor)
		ns := negativeSlopeSegments(sensor)
		pos = append(pos, ps[:]...)
		neg = append(neg, ns[:]...)
	}
	s.Watch.Stop("segments")

	start := time.Now()
	defer func() { s.Watch.Add("intersect", time.Since(start)) }()
	total := int64(len(pos))
	for i, a := range pos {
		if err := ctx.Err(); err != nil {
			return Vec2{}, err
		}
		for _, b := range neg {
			p, center, ok := segmentIntersection(a, b)
			if !ok {
				continue
			}
			candidates := [4]Vec2{p, {p.X + 1, p.Y}, {p.X, p.Y + 1}, {p.X + 1, p.Y + 1}}
			n := 1
			if center {
				n = 4
			}
			for _, c := range candidates[:n] {
				if inSquare(c, dimension) && !covered(c, sensors) {
					return c, nil
				}
			}
		}
		s.SendProgress(int64(i)+1, total)
	}
	return Vec2{}, ErrNoSolution
}

// positiveSlopeSegments returns the sensor's lower-right and upper-left border
// lines, one step outside its diamond.
func positiveSlopeSegments(s Sensor) [2]Segment {
	r := s.Radius + 1
	x, y := s.Pos.X, s.Pos.Y
	return [2]Segment{
		{
			Intercept: y - x - r,
			Bounds:    Aabb{X: Range{x, x + r + 1}, Y: Range{y - r, y + 1}},
		},
		{
			Intercept: y - x + r,
			Bounds:    Aabb{X: Range{x - r, x + 1}, Y: Range{y, y + r + 1}},
		},
	}
}

// negativeSlopeSegments returns the sensor's upper-left and lower-right border
// lines, one step outside its diamond.
func negativeSlopeSegments(s Sensor) [2]Segment {
	r := s.Radius + 1
	x, y := s.Pos.X, s.Pos.Y
	return [2]Segment{
		{
			Intercept: y + x - r,
			Bounds:    Aabb{X: Range{x - r, x + 1}, Y: Range{y - r, y + 1}},
		},
		{
			Intercept: y + x + r,
			Bounds:    Aabb{X: Range{x, x + r + 1}, Y: Range{y, y + r + 1}},
		},
	}
}

// segmentIntersection crosses y = x + a with y = -x + b. The lines meet at
// ((b-a)/2, (a+b)/2). When a+b is odd that point is the centre of a unit cell
// and the returned point is the cell's top-left corner, with center set.
func segmentIntersection(pos, neg Segment) (p Vec2, center bool, ok bool) {
	sum := pos.Intercept + neg.Intercept
	y := sum >> 1 // floor, also for negative sums
	p = Vec2{y - pos.Intercept, y}
	if !pos.Bounds.Contains(p) || !neg.Bounds.Contains(p) {
		return Vec2{}, false, false
	}
	return p, sum&1 != 0, true
}
