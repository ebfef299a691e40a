package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func collect(t *testing.T, weekly []WeeklyDay, zone string, from, to civil.Date, duration, buffer time.Duration) []Interval {
	t.Helper()
	loc, err := LoadZone(zone)
	if err != nil {
		t.Fatalf("LoadZone error: %v", err)
	}
	seq, err := CandidateSlots(weekly, loc, from, to, duration, buffer)
	if err != nil {
		t.Fatalf("CandidateSlots error: %v", err)
	}
	var out []Interval
	for iv := range seq {
		out = append(out, iv)
	}
	return out
}

func TestCandidateSlots_ThursdayMorning(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 4, Ranges: []TimeRange{{Start: "09:00", End: "11:00"}}}}
	day := civil.Date{Year: 2026, Month: time.February, Day: 5}

	got := collect(t, weekly, "UTC", day, day, time.Hour, 0)
	if len(got) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(got))
	}
	want := []string{"2026-02-05T09:00:00.000Z", "2026-02-05T10:00:00.000Z"}
	for i, iv := range got {
		if FormatTimestamp(iv.Start) != want[i] {
			t.Fatalf("slot[%d].start = %s, want %s", i, FormatTimestamp(iv.Start), want[i])
		}
		if iv.End.Sub(iv.Start) != time.Hour {
			t.Fatalf("slot[%d] duration = %v, want 1h", i, iv.End.Sub(iv.Start))
		}
	}
}

func TestCandidateSlots_BufferAdvancesStep(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 1, Ranges: []TimeRange{{Start: "09:00", End: "12:00"}}}}
	day := civil.Date{Year: 2026, Month: time.January, Day: 5}

	got := collect(t, weekly, "UTC", day, day, 45*time.Minute, 15*time.Minute)
	starts := []string{"09:00", "10:00", "11:00"}
	if len(got) != len(starts) {
		t.Fatalf("len(slots) = %d, want %d", len(got), len(starts))
	}
	for i, iv := range got {
		if iv.Start.Format("15:04") != starts[i] {
			t.Fatalf("slot[%d].start = %s, want %s", i, iv.Start.Format("15:04"), starts[i])
		}
	}
}

func TestCandidateSlots_SkipsPartialTail(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 1, Ranges: []TimeRange{{Start: "09:00", End: "10:30"}}}}
	day := civil.Date{Year: 2026, Month: time.January, Day: 5}

	got := collect(t, weekly, "UTC", day, day, time.Hour, 0)
	if len(got) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(got))
	}
}

func TestCandidateSlots_OrderDayRangeStep(t *testing.T) {
	weekly := []WeeklyDay{
		{DayOfWeek: 2, Ranges: []TimeRange{{Start: "08:00", End: "09:00"}, {Start: "14:00", End: "15:00"}}},
		{DayOfWeek: 1, Ranges: []TimeRange{{Start: "10:00", End: "11:00"}}},
	}
	from := civil.Date{Year: 2026, Month: time.January, Day: 5}
	to := from.AddDays(1)

	got := collect(t, weekly, "UTC", from, to, 30*time.Minute, 0)
	if len(got) != 6 {
		t.Fatalf("len(slots) = %d, want 6", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Start.Before(got[i].Start) {
			t.Fatalf("slots not ordered: %v then %v", got[i-1].Start, got[i].Start)
		}
	}
}

func TestCandidateSlots_ConvertsProviderZoneToUTC(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 0, Ranges: []TimeRange{{Start: "09:00", End: "10:00"}}}}
	// 2026-03-08 is the US spring-forward Sunday; 09:00 local is EDT (UTC-4).
	before := civil.Date{Year: 2026, Month: time.March, Day: 1}
	after := civil.Date{Year: 2026, Month: time.March, Day: 8}

	got := collect(t, weekly, "America/New_York", before, after, time.Hour, 0)
	if len(got) != 2 {
		t.Fatalf("len(slots) = %d, want 2", len(got))
	}
	if got[0].Start.Hour() != 14 {
		t.Fatalf("EST slot UTC hour = %d, want 14", got[0].Start.Hour())
	}
	if got[1].Start.Hour() != 13 {
		t.Fatalf("EDT slot UTC hour = %d, want 13", got[1].Start.Hour())
	}
	if got[0].Start.Location() != time.UTC {
		t.Fatalf("expected UTC instants, got %v", got[0].Start.Location())
	}
}

func TestCandidateSlots_SkipsSpringForwardGap(t *testing.T) {
	// 02:00-03:00 local does not exist in New York on 2026-03-08.
	weekly := []WeeklyDay{{DayOfWeek: 0, Ranges: []TimeRange{{Start: "01:30", End: "03:30"}}}}
	day := civil.Date{Year: 2026, Month: time.March, Day: 8}

	got := collect(t, weekly, "America/New_York", day, day, 30*time.Minute, 0)
	want := []string{"2026-03-08T07:00:00.000Z"}
	if len(got) != len(want) {
		t.Fatalf("len(slots) = %d, want %d: %v", len(got), len(want), got)
	}
	for i, iv := range got {
		if FormatTimestamp(iv.Start) != want[i] {
			t.Fatalf("slot[%d].start = %s, want %s", i, FormatTimestamp(iv.Start), want[i])
		}
		if iv.End.Sub(iv.Start) != 30*time.Minute {
			t.Fatalf("slot[%d] duration = %v, want 30m", i, iv.End.Sub(iv.Start))
		}
	}
}

func TestCandidateSlots_FallBackKeepsFixedLength(t *testing.T) {
	// 01:00-02:00 local repeats in New York on 2026-11-01.
	weekly := []WeeklyDay{{DayOfWeek: 0, Ranges: []TimeRange{{Start: "00:30", End: "03:00"}}}}
	day := civil.Date{Year: 2026, Month: time.November, Day: 1}

	got := collect(t, weekly, "America/New_York", day, day, 30*time.Minute, 0)
	if len(got) == 0 {
		t.Fatalf("expected slots around the fall-back hour")
	}
	for i, iv := range got {
		if iv.End.Sub(iv.Start) != 30*time.Minute {
			t.Fatalf("slot[%d] = %s..%s, want 30m", i, FormatTimestamp(iv.Start), FormatTimestamp(iv.End))
		}
		if i > 0 && !iv.Start.After(got[i-1].Start) {
			t.Fatalf("slot[%d].start %s not after %s", i, FormatTimestamp(iv.Start), FormatTimestamp(got[i-1].Start))
		}
	}
}

func TestCandidateSlots_EndOfDayRange(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 1, Ranges: []TimeRange{{Start: "23:00", End: "24:00"}}}}
	day := civil.Date{Year: 2026, Month: time.January, Day: 5}

	got := collect(t, weekly, "UTC", day, day, time.Hour, 0)
	if len(got) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(got))
	}
	wantEnd := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)
	if !got[0].End.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", got[0].End, wantEnd)
	}
}

func TestCandidateSlots_SequenceIsRestartable(t *testing.T) {
	weekly := []WeeklyDay{{DayOfWeek: 4, Ranges: []TimeRange{{Start: "09:00", End: "12:00"}}}}
	day := civil.Date{Year: 2026, Month: time.February, Day: 5}

	seq, err := CandidateSlots(weekly, time.UTC, day, day, time.Hour, 0)
	if err != nil {
		t.Fatalf("CandidateSlots error: %v", err)
	}
	first := 0
	for range seq {
		first++
		if first == 2 {
			break
		}
	}
	second := 0
	for range seq {
		second++
	}
	if first != 2 || second != 3 {
		t.Fatalf("first pass = %d, second pass = %d; want 2 and 3", first, second)
	}
}

func TestCandidateSlots_RangeValidation(t *testing.T) {
	from := civil.Date{Year: 2026, Month: time.February, Day: 1}

	tests := []struct {
		name    string
		to      civil.Date
		wantErr string
	}{
		{name: "to before from", to: from.AddDays(-1), wantErr: "to must not be before from"},
		{name: "fifteen days", to: from.AddDays(14), wantErr: "date range must not exceed 14 days"},
		{name: "fourteen days", to: from.AddDays(13)},
		{name: "single day", to: from},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CandidateSlots(nil, time.UTC, from, tt.to, time.Hour, 0)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	loc, err := LoadZone("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadZone error: %v", err)
	}
	day := civil.Date{Year: 2026, Month: time.January, Day: 10}

	start, end := DayBounds(day, day, loc)
	if !start.Equal(time.Date(2026, 1, 9, 23, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("span = %v, want 24h", end.Sub(start))
	}
}
