package gapgo

import "fmt"

// Vec2 is a lattice point. In rectangular space X grows to the right and Y
// grows downward, matching the puzzle input.
type Vec2 struct {
	X int32
	Y int32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{min(v.X, o.X), min(v.Y, o.Y)}
}

func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{max(v.X, o.X), max(v.Y, o.Y)}
}

func (v Vec2) ManhattanDistance(o Vec2) int32 {
	return abs(v.X-o.X) + abs(v.Y-o.Y)
}

// Rotate turns v 90 degrees clockwise about the centre of the square
// [0,dimension]x[0,dimension]. Four rotations are the identity.
func (v Vec2) Rotate(dimension int32) Vec2 {
	return Vec2{dimension - v.Y, v.X}
}

// Sensor covers every lattice point within Radius of Pos.
type Sensor struct {
	Pos    Vec2
	Radius int32
}

func (s Sensor) String() string {
	return fmt.Sprintf("%v r=%d", s.Pos, s.Radius)
}

func (s Sensor) Covers(p Vec2) bool {
	return s.Pos.ManhattanDistance(p) <= s.Radius
}

// Reach is the largest row the sensor covers.
func (s Sensor) Reach() int32 {
	return s.Pos.Y + s.Radius
}

// Aabb is an axis-aligned box of half-open ranges.
type Aabb struct {
	X Range
	Y Range
}

func (b Aabb) Contains(p Vec2) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y)
}

func (b Aabb) String() string {
	return fmt.Sprintf("{x: %v, y: %v}", b.X, b.Y)
}

func covered(p Vec2, sensors []Sensor) bool {
	for _, s := range sensors {
		if s.Covers(p) {
			return true
		}
	}
	return false
}

func inSquare(p Vec2, dimension int32) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= dimension && p.Y <= dimension
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

type byReach []Sensor

func (s byReach) Len() int           { return len(s) }
func (s byReach) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byReach) Less(i, j int) bool { return s[i].Reach() < s[j].Reach() }

type byDiagonalStart []Aabb

func (b byDiagonalStart) Len() int           { return len(b) }
func (b byDiagonalStart) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byDiagonalStart) Less(i, j int) bool { return b[i].X.Start < b[j].X.Start }
