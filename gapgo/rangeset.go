package gapgo

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Range is the half-open interval [Start, End). It is empty when Start >= End;
// reversed ranges are legal and simply empty.
type Range struct {
	Start int32
	End   int32
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Len is End-Start. It is negative for reversed ranges, which the chain search
// relies on to tell a gap from a touch.
func (r Range) Len() int32 {
	return r.End - r.Start
}

func (r Range) Contains(v int32) bool {
	return v >= r.Start && v < r.End
}

func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

// Touches reports whether r and o overlap or are adjacent.
func (r Range) Touches(o Range) bool {
	return r.Start <= o.End && r.End >= o.Start
}

// After reports whether r lies entirely at or beyond the end of o.
func (r Range) After(o Range) bool {
	return r.Start >= o.End
}

func (r Range) Before(o Range) bool {
	return o.After(r)
}

// TruncateAfter drops everything at or after the exclusive bound at.
func (r Range) TruncateAfter(at int32) Range {
	return Range{r.Start, min(r.End, at)}
}

// TruncateBefore drops everything before the inclusive bound at.
func (r Range) TruncateBefore(at int32) Range {
	return Range{max(r.Start, at), r.End}
}

func (r Range) Intersect(o Range) Range {
	return Range{max(r.Start, o.Start), min(r.End, o.End)}
}

// Union is the smallest range spanning both r and o, gap included.
func (r Range) Union(o Range) Range {
	return Range{min(r.Start, o.Start), max(r.End, o.End)}
}

// RangeSet is a sorted list of ranges that never overlap or touch. The zero
// value is an empty set.
type RangeSet struct {
	ranges []Range
}

func NewRangeSet(ranges ...Range) *RangeSet {
	s := &RangeSet{}
	for _, r := range ranges {
		s.AddRange(r)
	}
	return s
}

// AddRange merges r with every stored range it touches in a single splice.
func (s *RangeSet) AddRange(r Range) {
	if r.Empty() {
		return
	}
	i := sort.Search(len(s.ranges), func(k int) bool { return s.ranges[k].End >= r.Start })
	j := sort.Search(len(s.ranges), func(k int) bool { return s.ranges[k].Start > r.End })
	if i < j {
		r = r.Union(s.ranges[i]).Union(s.ranges[j-1])
	}
	s.ranges = slices.Replace(s.ranges, i, j, r)
}

// SubtractRange removes r from the set. Ranges strictly between the last one
// before r and the first one after r are dropped; the two boundary ranges are
// truncated and kept when something is left of them.
func (s *RangeSet) SubtractRange(r Range) {
	if r.Empty() {
		return
	}
	i := sort.Search(len(s.ranges), func(k int) bool { return !s.ranges[k].Before(r) })
	j := sort.Search(len(s.ranges), func(k int) bool { return s.ranges[k].After(r) })
	if i == j {
		return
	}
	keep := make([]Range, 0, 2)
	if left := s.ranges[i].TruncateAfter(r.Start); !left.Empty() {
		keep = append(keep, left)
	}
	if right := s.ranges[j-1].TruncateBefore(r.End); !right.Empty() {
		keep = append(keep, right)
	}
	s.ranges = slices.Replace(s.ranges, i, j, keep...)
}

// Ranges returns a copy of the stored ranges in ascending order.
func (s *RangeSet) Ranges() []Range {
	return slices.Clone(s.ranges)
}

func (s *RangeSet) Len() int {
	return len(s.ranges)
}

func (s *RangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Size counts the integers in the set.
func (s *RangeSet) Size() int64 {
	var n int64
	for _, r := range s.ranges {
		n += int64(r.Len())
	}
	return n
}

func (s *RangeSet) Contains(v int32) bool {
	k := sort.Search(len(s.ranges), func(k int) bool { return s.ranges[k].End > v })
	return k < len(s.ranges) && s.ranges[k].Contains(v)
}

func (s *RangeSet) Equals(o *RangeSet) bool {
	return slices.Equal(s.ranges, o.ranges)
}

func (s *RangeSet) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
