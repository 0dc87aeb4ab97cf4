// Package segments provides arithmetic over half-open GPS time intervals.
//
// A Segment is a [start, end) interval of GPS seconds during which a named
// condition holds (for example "detector producing valid data"). Segment
// lists returned by the archive are sorted and disjoint; the search helpers
// in this package rely on that ordering.
package segments

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Segment is a half-open [Start, End) interval of GPS seconds.
type Segment struct {
	Start int64
	End   int64
}

// New returns a Segment covering [start, end).
func New(start, end int64) Segment {
	return Segment{Start: start, End: end}
}

// Duration returns the length of the segment in seconds.
func (s Segment) Duration() int64 {
	return s.End - s.Start
}

// IsValid reports whether the segment is well formed (Start < End).
func (s Segment) IsValid() bool {
	return s.Start < s.End
}

// Contains reports whether the GPS time falls inside the segment,
// honouring the half-open convention: Start <= gps < End.
func (s Segment) Contains(gps int64) bool {
	return s.Start <= gps && gps < s.End
}

// Overlaps reports whether two segments share any time.
// Touching endpoints do not overlap: [0, 10) and [10, 20) are disjoint.
func (s Segment) Overlaps(o Segment) bool {
	return s.End > o.Start && s.Start < o.End
}

// Intersect returns the overlap of two segments. The boolean is false when
// the segments are disjoint.
func (s Segment) Intersect(o Segment) (Segment, bool) {
	if !s.Overlaps(o) {
		return Segment{}, false
	}
	out := s
	if o.Start > out.Start {
		out.Start = o.Start
	}
	if o.End < out.End {
		out.End = o.End
	}
	return out, true
}

// String renders the segment in interval notation.
func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// MarshalJSON encodes the segment as a two-element array, the wire form
// used by the Timeline API.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{s.Start, s.End})
}

// UnmarshalJSON decodes a two-element [start, end] array.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var pair [2]int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("invalid segment: %w", err)
	}
	s.Start, s.End = pair[0], pair[1]
	return nil
}

// Extent returns the smallest segment covering every segment in the list.
// The boolean is false for an empty list.
func Extent(list []Segment) (Segment, bool) {
	if len(list) == 0 {
		return Segment{}, false
	}
	out := list[0]
	for _, s := range list[1:] {
		if s.Start < out.Start {
			out.Start = s.Start
		}
		if s.End > out.End {
			out.End = s.End
		}
	}
	return out, true
}

// Intersecting returns all members of a sorted, disjoint segment list that
// overlap the query window. The input ordering is preserved.
func Intersecting(list []Segment, window Segment) []Segment {
	// first segment that could overlap: End > window.Start
	lo := sort.Search(len(list), func(i int) bool {
		return list[i].End > window.Start
	})

	var out []Segment
	for _, s := range list[lo:] {
		if s.Start >= window.End {
			break
		}
		if s.Overlaps(window) {
			out = append(out, s)
		}
	}
	return out
}

// Clip intersects every member of the list with the window, dropping
// segments that fall entirely outside it.
func Clip(list []Segment, window Segment) []Segment {
	var out []Segment
	for _, s := range list {
		if c, ok := s.Intersect(window); ok {
			out = append(out, c)
		}
	}
	return out
}

// Coverage reports whether the list extent covers the whole window. The
// list is presumed contiguous, so only the extent endpoints are checked.
func Coverage(list []Segment, window Segment) bool {
	ext, ok := Extent(list)
	if !ok {
		return false
	}
	return ext.Start <= window.Start && ext.End >= window.End
}
