package gapgo

import "testing"

func TestRowCoverage(t *testing.T) {
	sensors := []Sensor{{Vec2{8, 7}, 9}, {Vec2{20, 10}, 1}}
	tests := []struct {
		row  int32
		want *RangeSet
	}{
		{7, NewRangeSet(Range{-1, 18})},
		{10, NewRangeSet(Range{2, 15}, Range{19, 22})},
		{16, NewRangeSet(Range{8, 9})},
		{17, NewRangeSet()},
	}
	for _, tt := range tests {
		if got := RowCoverage(sensors, tt.row); !got.Equals(tt.want) {
			t.Errorf("RowCoverage(row %d) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestCountExcluded(t *testing.T) {
	for _, f := range loadFixtures(t) {
		if f.Row == nil {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			if got := CountExcluded(f.Readings, *f.Row); got != f.Excluded {
				t.Errorf("CountExcluded(row %d) = %d, want %d", *f.Row, got, f.Excluded)
			}
		})
	}
}

func TestCountExcludedSkipsKnownBeacons(t *testing.T) {
	readings := []Reading{
		{Vec2{0, 0}, Vec2{2, 0}},
		{Vec2{4, 0}, Vec2{2, 0}},
	}
	// Columns -2..6 are covered; the shared beacon at 2 is counted once.
	if got := CountExcluded(readings, 0); got != 8 {
		t.Errorf("CountExcluded = %d, want 8", got)
	}
}
