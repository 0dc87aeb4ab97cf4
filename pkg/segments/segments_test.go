package segments

import (
	"encoding/json"
	"testing"
)

func TestSegment_Contains(t *testing.T) {
	s := New(100, 200)

	tests := []struct {
		name string
		gps  int64
		want bool
	}{
		{"before start", 99, false},
		{"at start", 100, true},
		{"inside", 150, true},
		{"at end", 200, false},
		{"after end", 201, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.gps); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.gps, got, tt.want)
			}
		})
	}
}

func TestSegment_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"identical", New(0, 10), New(0, 10), true},
		{"partial", New(0, 10), New(5, 15), true},
		{"contained", New(0, 10), New(2, 8), true},
		{"touching endpoints", New(0, 10), New(10, 20), false},
		{"disjoint", New(0, 10), New(20, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSegment_Intersect(t *testing.T) {
	got, ok := New(0, 10).Intersect(New(5, 15))
	if !ok {
		t.Fatal("expected overlap")
	}
	if got != New(5, 10) {
		t.Errorf("Intersect = %v, want [5, 10)", got)
	}

	if _, ok := New(0, 10).Intersect(New(10, 20)); ok {
		t.Error("touching segments should not intersect")
	}
}

func TestSegment_JSON(t *testing.T) {
	data, err := json.Marshal(New(1126073529, 1126114861))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "[1126073529,1126114861]" {
		t.Errorf("unexpected wire form: %s", data)
	}

	var s Segment
	if err := json.Unmarshal([]byte("[100,200]"), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != New(100, 200) {
		t.Errorf("unmarshal = %v, want [100, 200)", s)
	}

	if err := json.Unmarshal([]byte(`{"start":1}`), &s); err == nil {
		t.Error("expected error for non-array segment")
	}
}

func TestExtent(t *testing.T) {
	list := []Segment{New(10, 20), New(0, 5), New(30, 40)}
	ext, ok := Extent(list)
	if !ok {
		t.Fatal("expected extent")
	}
	if ext != New(0, 40) {
		t.Errorf("Extent = %v, want [0, 40)", ext)
	}

	if _, ok := Extent(nil); ok {
		t.Error("empty list should have no extent")
	}
}

func TestIntersecting(t *testing.T) {
	list := []Segment{New(0, 10), New(20, 30), New(40, 50), New(60, 70)}

	got := Intersecting(list, New(25, 45))
	if len(got) != 2 {
		t.Fatalf("expected 2 segments, got %d: %v", len(got), got)
	}
	if got[0] != New(20, 30) || got[1] != New(40, 50) {
		t.Errorf("unexpected segments: %v", got)
	}

	if got := Intersecting(list, New(10, 20)); len(got) != 0 {
		t.Errorf("gap window should match nothing, got %v", got)
	}
}

func TestClip(t *testing.T) {
	list := []Segment{New(0, 10), New(20, 30), New(40, 50)}

	got := Clip(list, New(5, 45))
	want := []Segment{New(5, 10), New(20, 30), New(40, 45)}
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoverage(t *testing.T) {
	list := []Segment{New(0, 100)}

	if !Coverage(list, New(10, 90)) {
		t.Error("window inside extent should be covered")
	}
	if Coverage(list, New(10, 110)) {
		t.Error("window past extent should not be covered")
	}
	if Coverage(nil, New(0, 1)) {
		t.Error("empty list covers nothing")
	}
}
