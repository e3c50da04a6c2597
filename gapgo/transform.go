package gapgo

// Diagonal space rotates the plane 45 degrees so that every sensor diamond
// becomes an axis-aligned square:
//
//	X = x - y + D
//	Y = x + y
//
// where D is the dimension of the search square. The square [0,D]x[0,D]
// itself becomes the diamond |X-D| + |Y-D| <= D, so all of its diagonal
// coordinates lie in [0, 2D]. Only points with X+Y-D even map back onto the
// lattice; the others are ghosts of the rotation.

func ToDiagonal(p Vec2, dimension int32) Vec2 {
	return Vec2{p.X - p.Y + dimension, p.X + p.Y}
}

// FromDiagonal inverts ToDiagonal. The result is only meaningful for lattice
// points (see IsLattice).
func FromDiagonal(d Vec2, dimension int32) Vec2 {
	return Vec2{(d.X + d.Y - dimension) / 2, (d.Y - d.X + dimension) / 2}
}

func IsLattice(d Vec2, dimension int32) bool {
	return (d.X+d.Y-dimension)&1 == 0
}

// SensorAabb is the sensor's diamond as a box in diagonal space.
func SensorAabb(s Sensor, dimension int32) Aabb {
	c := ToDiagonal(s.Pos, dimension)
	return Aabb{
		X: Range{c.X - s.Radius, c.X + s.Radius + 1},
		Y: Range{c.Y - s.Radius, c.Y + s.Radius + 1},
	}
}

// diagonalSpan is the extent of the search square along diagonal axis Y at
// diagonal column X, endpoints included.
func diagonalSpan(x, dimension int32) Range {
	d := abs(x - dimension)
	return Range{d, 2*dimension - d + 1}
}

// diagonalBounds is the extent of the search square along either diagonal axis.
func diagonalBounds(dimension int32) Range {
	return Range{0, 2*dimension + 1}
}
