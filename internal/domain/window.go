package domain

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"cloud.google.com/go/civil"
)

// MaxRangeDays caps the inclusive day span a single slot query may cover.
const MaxRangeDays = 14

// CheckDayRange validates an inclusive civil day range.
func CheckDayRange(from, to civil.Date) error {
	if !from.IsValid() || !to.IsValid() {
		return errors.New("invalid date")
	}
	if to.Before(from) {
		return errors.New("to must not be before from")
	}
	if span := to.DaysSince(from) + 1; span > MaxRangeDays {
		return fmt.Errorf("date range must not exceed %d days", MaxRangeDays)
	}
	return nil
}

// DayBounds returns the UTC instants of local midnight on from and on the day
// after to.
func DayBounds(from, to civil.Date, loc *time.Location) (time.Time, time.Time) {
	return from.In(loc).UTC(), to.AddDays(1).In(loc).UTC()
}

// CandidateSlots yields every slot the weekly template produces for the days
// from..to (inclusive) in loc. For each matching range, starts step from the
// range start by duration+buffer while the slot still fits before the range
// end. Wall-clock times are resolved in loc and yielded in UTC, ordered by
// day, then range, then step. Slots touching a wall time that does not exist
// in loc, or whose real length differs from duration across a DST shift, are
// skipped.
//
// The sequence is lazy and may be ranged over any number of times.
func CandidateSlots(weekly []WeeklyDay, loc *time.Location, from, to civil.Date, duration, buffer time.Duration) (iter.Seq[Interval], error) {
	if loc == nil {
		return nil, errors.New("invalid time_zone")
	}
	if err := CheckDayRange(from, to); err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, errors.New("invalid duration")
	}
	if buffer < 0 {
		return nil, errors.New("invalid buffer")
	}

	type clockRange struct{ start, end int }
	byDay := make(map[time.Weekday][]clockRange, len(weekly))
	for _, d := range weekly {
		for _, r := range d.Ranges {
			start, err := ParseClock(r.Start)
			if err != nil {
				return nil, err
			}
			end, err := ParseClock(r.End)
			if err != nil {
				return nil, err
			}
			if end <= start {
				return nil, fmt.Errorf("range %s-%s must end after it starts", r.Start, r.End)
			}
			wd := time.Weekday(d.DayOfWeek)
			byDay[wd] = append(byDay[wd], clockRange{start: start, end: end})
		}
	}

	durMin := int(duration / time.Minute)
	stepMin := int((duration + buffer) / time.Minute)

	return func(yield func(Interval) bool) {
		for day := from; !day.After(to); day = day.AddDays(1) {
			for _, r := range byDay[day.In(time.UTC).Weekday()] {
				for off := r.start; off+durMin <= r.end; off += stepMin {
					start, ok := wallClock(day, off, loc)
					if !ok {
						continue
					}
					end, ok := wallClock(day, off+durMin, loc)
					if !ok || end.Sub(start) != duration {
						continue
					}
					if !yield(Interval{Start: start, End: end}) {
						return
					}
				}
			}
		}
	}, nil
}

// wallClock resolves a minute-of-day on day in loc. It reports false when the
// wall time does not exist there, as inside a spring-forward gap.
func wallClock(day civil.Date, minutes int, loc *time.Location) (time.Time, bool) {
	wall := time.Date(day.Year, day.Month, day.Day, 0, minutes, 0, 0, time.UTC)
	t := time.Date(day.Year, day.Month, day.Day, 0, minutes, 0, 0, loc)
	y, mo, d := t.Date()
	if y != wall.Year() || mo != wall.Month() || d != wall.Day() || t.Hour() != wall.Hour() || t.Minute() != wall.Minute() {
		return time.Time{}, false
	}
	return t.UTC(), true
}
