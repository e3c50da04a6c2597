package gapgo

import "testing"

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want int32
	}{
		{Vec2{0, 0}, Vec2{0, 0}, 0},
		{Vec2{1, 2}, Vec2{4, 6}, 7},
		{Vec2{-3, 5}, Vec2{2, -1}, 11},
	}
	for _, tt := range tests {
		if got := tt.a.ManhattanDistance(tt.b); got != tt.want {
			t.Errorf("%v.ManhattanDistance(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.ManhattanDistance(tt.a); got != tt.want {
			t.Errorf("%v.ManhattanDistance(%v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{3, -2}, Vec2{-1, 5}
	if got := a.Add(b); got != (Vec2{2, 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{4, -7}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Min(b); got != (Vec2{-1, -2}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != (Vec2{3, 5}) {
		t.Errorf("Max = %v", got)
	}
}

func TestRotate(t *testing.T) {
	const dimension = 20
	p := Vec2{14, 11}
	want := []Vec2{{9, 14}, {6, 9}, {11, 6}, {14, 11}}
	for i, w := range want {
		p = p.Rotate(dimension)
		if p != w {
			t.Fatalf("rotation %d = %v, want %v", i+1, p, w)
		}
	}
}

func TestSensorCovers(t *testing.T) {
	s := Sensor{Vec2{8, 7}, 9}
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{8, 7}, true},
		{Vec2{8, 16}, true},
		{Vec2{8, 17}, false},
		{Vec2{-1, 7}, true},
		{Vec2{12, 12}, true},
		{Vec2{13, 12}, false},
	}
	for _, tt := range tests {
		if got := s.Covers(tt.p); got != tt.want {
			t.Errorf("%v.Covers(%v) = %v, want %v", s, tt.p, got, tt.want)
		}
	}
	if got := s.Reach(); got != 16 {
		t.Errorf("Reach() = %d, want 16", got)
	}
}
