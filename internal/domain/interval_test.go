package domain

import (
	"testing"
	"time"
)

func TestIntersects(t *testing.T) {
	base := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	busy := []Interval{{Start: base, End: base.Add(time.Hour)}}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "identical", start: base, end: base.Add(time.Hour), want: true},
		{name: "contained", start: base.Add(15 * time.Minute), end: base.Add(30 * time.Minute), want: true},
		{name: "overlaps start", start: base.Add(-30 * time.Minute), end: base.Add(time.Minute), want: true},
		{name: "touches end", start: base.Add(time.Hour), end: base.Add(2 * time.Hour), want: false},
		{name: "touches start", start: base.Add(-time.Hour), end: base, want: false},
		{name: "disjoint", start: base.Add(3 * time.Hour), end: base.Add(4 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.start, tt.end, busy); got != tt.want {
				t.Fatalf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}

	if Intersects(base, base.Add(time.Hour), nil) {
		t.Fatalf("empty busy list must not intersect")
	}
}

func TestFormatTimestamp_RendersUTCMillis(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	got := FormatTimestamp(time.Date(2026, 2, 5, 18, 0, 0, 1500000, loc))
	if want := "2026-02-05T09:00:00.001Z"; got != want {
		t.Fatalf("FormatTimestamp = %s, want %s", got, want)
	}
}
