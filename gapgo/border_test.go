package gapgo

import "testing"

func seg(intercept, x0, x1, y0, y1 int32) Segment {
	return Segment{intercept, Aabb{Range{x0, x1}, Range{y0, y1}}}
}

func TestBorderSegments(t *testing.T) {
	tests := []struct {
		sensor Sensor
		pos    [2]Segment
		neg    [2]Segment
	}{
		{
			Sensor{Vec2{0, 0}, 0},
			[2]Segment{seg(-1, 0, 2, -1, 1), seg(1, -1, 1, 0, 2)},
			[2]Segment{seg(-1, -1, 1, -1, 1), seg(1, 0, 2, 0, 2)},
		},
		{
			Sensor{Vec2{2, 1}, 0},
			[2]Segment{seg(-2, 2, 4, 0, 2), seg(0, 1, 3, 1, 3)},
			[2]Segment{seg(2, 1, 3, 0, 2), seg(4, 2, 4, 1, 3)},
		},
		{
			Sensor{Vec2{1, 4}, 2},
			[2]Segment{seg(0, 1, 5, 1, 5), seg(6, -2, 2, 4, 8)},
			[2]Segment{seg(2, -2, 2, 1, 5), seg(8, 1, 5, 4, 8)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.sensor.String(), func(t *testing.T) {
			if got := positiveSlopeSegments(tt.sensor); got != tt.pos {
				t.Errorf("positiveSlopeSegments = %v, want %v", got, tt.pos)
			}
			if got := negativeSlopeSegments(tt.sensor); got != tt.neg {
				t.Errorf("negativeSlopeSegments = %v, want %v", got, tt.neg)
			}
		})
	}
}

// Every point on a border segment is exactly one step outside the diamond.
func TestBorderSegmentsHugDiamond(t *testing.T) {
	s := Sensor{Vec2{3, -2}, 4}
	check := func(sg Segment, slope int32) {
		t.Helper()
		for x := sg.Bounds.X.Start; x < sg.Bounds.X.End; x++ {
			p := Vec2{x, slope*x + sg.Intercept}
			if !sg.Bounds.Contains(p) {
				continue
			}
			if d := s.Pos.ManhattanDistance(p); d != s.Radius+1 {
				t.Errorf("segment %v: %v is %d from the sensor, want %d", sg, p, d, s.Radius+1)
			}
		}
	}
	for _, sg := range positiveSlopeSegments(s) {
		check(sg, 1)
	}
	for _, sg := range negativeSlopeSegments(s) {
		check(sg, -1)
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name       string
		pos, neg   Segment
		want       Vec2
		wantCenter bool
		wantOK     bool
	}{
		{"cell centre", seg(0, 0, 4, 0, 4), seg(3, 0, 4, 0, 4), Vec2{1, 1}, true, true},
		{"lattice point", seg(0, 0, 4, 0, 4), seg(4, 0, 4, 0, 4), Vec2{2, 2}, false, true},
		{"outside negative bounds", seg(0, 0, 4, 0, 4), seg(4, 3, 6, -1, 2), Vec2{}, false, false},
		{"outside positive bounds", seg(0, 0, 2, 0, 2), seg(4, 0, 4, 0, 4), Vec2{}, false, false},
		{"negative centre rounds down", seg(-3, -5, 5, -5, 5), seg(0, -5, 5, -5, 5), Vec2{1, -2}, true, true},
		{"negative lattice point", seg(-4, -5, 5, -5, 5), seg(-2, -5, 5, -5, 5), Vec2{1, -3}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, center, ok := segmentIntersection(tt.pos, tt.neg)
			if ok != tt.wantOK || p != tt.want || center != tt.wantCenter {
				t.Errorf("segmentIntersection = (%v, %v, %v), want (%v, %v, %v)", p, center, ok, tt.want, tt.wantCenter, tt.wantOK)
			}
		})
	}
}
