package gapgo

import (
	"context"
	"fmt"
)

// bruteForce tests every point of the square in row-major order. It exists to
// check the other strategies on small inputs and gives up after the iteration
// cap rather than grinding through a large square.
func (s *Solver) bruteForce(ctx context.Context, sensors []Sensor, dimension int32) (Vec2, error) {
	s.UpdateAction("Scanning every point")
	s.Watch.Start("brute-force")
	defer s.Watch.Stop("brute-force")

	limit := s.limit(DefaultBruteForceLimit)
	rows := int64(dimension) + 1
	var count int64
	for y := int32(0); y <= dimension; y++ {
		if err := ctx.Err(); err != nil {
			return Vec2{}, err
		}
	nextPoint:
		for x := int32(0); x <= dimension; x++ {
			if count >= limit {
				return Vec2{}, fmt.Errorf("%w: %d points checked", ErrIterationLimit, count)
			}
			count++
			p := Vec2{x, y}
			for _, sensor := range sensors {
				if sensor.Covers(p) {
					continue nextPoint
				}
			}
			return p, nil
		}
		s.SendProgress(int64(y)+1, rows)
	}
	return Vec2{}, ErrNoSolution
}
