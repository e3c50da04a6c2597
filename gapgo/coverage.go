package gapgo

// RowCoverage returns the columns of row that at least one sensor covers.
func RowCoverage(sensors []Sensor, row int32) *RangeSet {
	set := &RangeSet{}
	for _, s := range sensors {
		w := s.Radius - abs(s.Pos.Y-row)
		if w < 0 {
			continue
		}
		set.AddRange(Range{s.Pos.X - w, s.Pos.X + w + 1})
	}
	return set
}

// CountExcluded counts the positions on row where a beacon cannot be: every
// covered column except those holding a known beacon.
func CountExcluded(readings []Reading, row int32) int64 {
	set := RowCoverage(SensorsFromReadings(readings), row)
	n := set.Size()
	beacons := make(map[int32]struct{})
	for _, r := range readings {
		if r.Beacon.Y != row {
			continue
		}
		if _, dup := beacons[r.Beacon.X]; dup {
			continue
		}
		beacons[r.Beacon.X] = struct{}{}
		if set.Contains(r.Beacon.X) {
			n--
		}
	}
	return n
}
