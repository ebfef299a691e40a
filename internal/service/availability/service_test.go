package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

type fakeProfiles struct {
	getFn    func(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error)
	upsertFn func(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error)
}

func (f *fakeProfiles) GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
	if f.getFn == nil {
		panic("GetAvailability not configured")
	}
	return f.getFn(ctx, providerUserID)
}

func (f *fakeProfiles) UpsertAvailability(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error) {
	if f.upsertFn == nil {
		panic("UpsertAvailability not configured")
	}
	return f.upsertFn(ctx, a)
}

type fakeBlackouts struct {
	createFn    func(ctx context.Context, b domain.ProviderBlackout) (domain.ProviderBlackout, error)
	deleteFn    func(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error
	setActiveFn func(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error)
	listFn      func(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error)
	intervals   []domain.Interval
}

func (f *fakeBlackouts) CreateBlackout(ctx context.Context, b domain.ProviderBlackout) (domain.ProviderBlackout, error) {
	if f.createFn == nil {
		panic("CreateBlackout not configured")
	}
	return f.createFn(ctx, b)
}

func (f *fakeBlackouts) DeleteBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error {
	if f.deleteFn == nil {
		panic("DeleteBlackout not configured")
	}
	return f.deleteFn(ctx, providerUserID, blackoutID)
}

func (f *fakeBlackouts) SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error) {
	if f.setActiveFn == nil {
		panic("SetBlackoutActive not configured")
	}
	return f.setActiveFn(ctx, providerUserID, blackoutID, active)
}

func (f *fakeBlackouts) ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error) {
	if f.listFn == nil {
		panic("ListBlackouts not configured")
	}
	return f.listFn(ctx, providerUserID, window)
}

func (f *fakeBlackouts) ListActiveBlackoutIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	return overlapping(f.intervals, windowStart, windowEnd), nil
}

type fakeBookings struct {
	intervals []domain.Interval
}

func (f *fakeBookings) GetBooking(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	return domain.Booking{}, store.ErrNotFound
}

func (f *fakeBookings) ListActiveBookingIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error) {
	return overlapping(f.intervals, windowStart, windowEnd), nil
}

type fakeProviders struct {
	exists bool
}

func (f fakeProviders) ProviderExists(ctx context.Context, providerUserID string) (bool, error) {
	return f.exists, nil
}

func overlapping(all []domain.Interval, start, end time.Time) []domain.Interval {
	var out []domain.Interval
	for _, iv := range all {
		if iv.Start.Before(end) && iv.End.After(start) {
			out = append(out, iv)
		}
	}
	return out
}

func utc(h, m int) time.Time {
	return time.Date(2026, 10, 22, h, m, 0, 0, time.UTC)
}

// thursdayProfile offers 09:00-11:00 on Thursdays in UTC.
func thursdayProfile() domain.ProviderAvailability {
	return domain.ProviderAvailability{
		ProviderUserID:  "p1",
		TimeZone:        "UTC",
		SlotDurationMin: 60,
		IsActive:        true,
		Weekly: []domain.WeeklyDay{
			{DayOfWeek: 4, Ranges: []domain.TimeRange{{Start: "09:00", End: "11:00"}}},
		},
	}
}

func newSlotService(profile *domain.ProviderAvailability, blackouts, bookings []domain.Interval, now time.Time) *Service {
	profiles := &fakeProfiles{
		getFn: func(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
			if profile == nil {
				return domain.ProviderAvailability{}, store.ErrNotFound
			}
			return *profile, nil
		},
	}
	return NewService(
		profiles,
		&fakeBlackouts{intervals: blackouts},
		&fakeBookings{intervals: bookings},
		fakeProviders{exists: true},
		WithClock(func() time.Time { return now }),
	)
}

func thursday() *civil.Date {
	d := civil.Date{Year: 2026, Month: time.October, Day: 22}
	return &d
}

func TestGetSlots_FiltersBusyTime(t *testing.T) {
	profile := thursdayProfile()
	earlier := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		blackouts []domain.Interval
		bookings  []domain.Interval
		want      []time.Time
	}{
		{
			name: "free",
			want: []time.Time{utc(9, 0), utc(10, 0)},
		},
		{
			name:      "blackout straddles both slots",
			blackouts: []domain.Interval{{Start: utc(9, 30), End: utc(10, 30)}},
		},
		{
			name:     "booked second hour",
			bookings: []domain.Interval{{Start: utc(10, 0), End: utc(11, 0)}},
			want:     []time.Time{utc(9, 0)},
		},
		{
			name:      "touching intervals do not block",
			blackouts: []domain.Interval{{Start: utc(8, 0), End: utc(9, 0)}},
			bookings:  []domain.Interval{{Start: utc(11, 0), End: utc(12, 0)}},
			want:      []time.Time{utc(9, 0), utc(10, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSlotService(&profile, tt.blackouts, tt.bookings, earlier)
			slots, err := svc.GetSlots(context.Background(), SlotQuery{
				ProviderUserID: "p1",
				From:           thursday(),
				To:             thursday(),
			})
			if err != nil {
				t.Fatalf("GetSlots error: %v", err)
			}
			if len(slots) != len(tt.want) {
				t.Fatalf("slots = %v, want starts %v", slots, tt.want)
			}
			for i, s := range slots {
				if !s.StartAt.Equal(tt.want[i]) {
					t.Fatalf("slot %d start = %v, want %v", i, s.StartAt, tt.want[i])
				}
				if s.EndAt.Sub(s.StartAt) != time.Hour {
					t.Fatalf("slot %d length = %v, want 1h", i, s.EndAt.Sub(s.StartAt))
				}
			}
		})
	}
}

func TestGetSlots_DropsSlotsThatAlreadyEnded(t *testing.T) {
	profile := thursdayProfile()

	svc := newSlotService(&profile, nil, nil, utc(9, 30))
	slots, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday()})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2 (in-progress slot kept)", len(slots))
	}

	svc = newSlotService(&profile, nil, nil, utc(10, 0))
	slots, err = svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday()})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != 1 || !slots[0].StartAt.Equal(utc(10, 0)) {
		t.Fatalf("slots = %v, want only 10:00", slots)
	}
}

func TestGetSlots_MissingOrInactiveProfileIsEmpty(t *testing.T) {
	earlier := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	svc := newSlotService(nil, nil, nil, earlier)
	slots, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday()})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("slots = %v, want empty non-nil", slots)
	}

	inactive := thursdayProfile()
	inactive.IsActive = false
	svc = newSlotService(&inactive, nil, nil, earlier)
	slots, err = svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday()})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slots = %v, want empty", slots)
	}
}

func TestGetSlots_RangeValidation(t *testing.T) {
	profile := thursdayProfile()
	svc := newSlotService(&profile, nil, nil, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	from := civil.Date{Year: 2026, Month: time.October, Day: 5}
	ok := from.AddDays(13)
	tooLong := from.AddDays(14)
	before := from.AddDays(-1)

	if _, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: &from, To: &ok}); err != nil {
		t.Fatalf("14-day range error: %v", err)
	}
	for _, to := range []civil.Date{tooLong, before} {
		_, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: &from, To: &to})
		if !apperr.IsValidation(err) {
			t.Fatalf("to=%s: error = %v, want validation error", to, err)
		}
	}
}

func TestGetSlots_DefaultsToAWeekFromToday(t *testing.T) {
	profile := thursdayProfile()
	// Monday 2026-10-19; the default range runs through the following Monday
	// and contains exactly one Thursday.
	svc := newSlotService(&profile, nil, nil, time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC))

	slots, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1"})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
}

func TestGetSlots_TimeZoneOverride(t *testing.T) {
	profile := thursdayProfile()
	svc := newSlotService(&profile, nil, nil, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))

	slots, err := svc.GetSlots(context.Background(), SlotQuery{
		ProviderUserID: "p1",
		From:           thursday(),
		To:             thursday(),
		TimeZone:       "Europe/Berlin",
	})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	// Berlin is UTC+2 in October before the switch back.
	if len(slots) != 2 || !slots[0].StartAt.Equal(utc(7, 0)) {
		t.Fatalf("slots = %v, want first at 07:00Z", slots)
	}

	_, err = svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday(), TimeZone: "Mars/Olympus"})
	if !apperr.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestGetSlots_CapsResultSize(t *testing.T) {
	allDay := make([]domain.WeeklyDay, 0, 7)
	for d := 0; d < 7; d++ {
		allDay = append(allDay, domain.WeeklyDay{DayOfWeek: d, Ranges: []domain.TimeRange{{Start: "00:00", End: "24:00"}}})
	}
	profile := domain.ProviderAvailability{
		ProviderUserID:  "p1",
		TimeZone:        "UTC",
		SlotDurationMin: 15,
		IsActive:        true,
		Weekly:          allDay,
	}
	svc := newSlotService(&profile, nil, nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	from := civil.Date{Year: 2026, Month: time.March, Day: 1}
	to := from.AddDays(13)
	slots, err := svc.GetSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: &from, To: &to})
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != MaxSlots {
		t.Fatalf("slots = %d, want %d", len(slots), MaxSlots)
	}
}

func TestListSlots_DurationOverride(t *testing.T) {
	profile := thursdayProfile()
	svc := newSlotService(&profile, nil, nil, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC))

	slots, err := svc.ListSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday(), DurationMin: 90})
	if err != nil {
		t.Fatalf("ListSlots error: %v", err)
	}
	if len(slots) != 1 || !slots[0].EndAt.Equal(utc(10, 30)) {
		t.Fatalf("slots = %v, want single 09:00-10:30", slots)
	}

	_, err = svc.ListSlots(context.Background(), SlotQuery{ProviderUserID: "p1", From: thursday(), To: thursday(), DurationMin: 5})
	if !apperr.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestUpdateAvailability_AppliesPatchOverDefaults(t *testing.T) {
	var saved domain.ProviderAvailability
	svc := NewService(
		&fakeProfiles{
			getFn: func(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
				return domain.ProviderAvailability{}, store.ErrNotFound
			},
			upsertFn: func(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error) {
				saved = a
				return a, nil
			},
		},
		&fakeBlackouts{},
		&fakeBookings{},
		fakeProviders{exists: true},
	)

	buffer := 15
	weekly := []domain.WeeklyDay{
		{DayOfWeek: 5, Ranges: []domain.TimeRange{{Start: "13:00", End: "17:00"}, {Start: "08:00", End: "12:00"}}},
		{DayOfWeek: 1, Ranges: []domain.TimeRange{{Start: "09:00", End: "10:00"}}},
	}
	_, err := svc.UpdateAvailability(context.Background(), "p1", AvailabilityPatch{BufferMin: &buffer, Weekly: &weekly})
	if err != nil {
		t.Fatalf("UpdateAvailability error: %v", err)
	}
	if saved.TimeZone != domain.DefaultTimeZone || saved.SlotDurationMin != domain.DefaultSlotDurationMin || !saved.IsActive {
		t.Fatalf("defaults not applied: %+v", saved)
	}
	if saved.BufferMin != 15 {
		t.Fatalf("buffer = %d, want 15", saved.BufferMin)
	}
	if saved.Weekly[0].DayOfWeek != 1 || saved.Weekly[1].Ranges[0].Start != "08:00" {
		t.Fatalf("weekly not normalized: %+v", saved.Weekly)
	}
}

func TestUpdateAvailability_RejectsWithoutWriting(t *testing.T) {
	bad := []struct {
		name  string
		patch AvailabilityPatch
	}{
		{name: "zone", patch: AvailabilityPatch{TimeZone: ptr("Nowhere/City")}},
		{name: "duration", patch: AvailabilityPatch{SlotDurationMin: ptr(10)}},
		{name: "buffer", patch: AvailabilityPatch{BufferMin: ptr(121)}},
		{name: "weekly", patch: AvailabilityPatch{Weekly: &[]domain.WeeklyDay{{DayOfWeek: 7}}}},
		{name: "range", patch: AvailabilityPatch{Weekly: &[]domain.WeeklyDay{{DayOfWeek: 1, Ranges: []domain.TimeRange{{Start: "10:00", End: "09:00"}}}}}},
	}

	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				&fakeProfiles{
					getFn: func(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
						return thursdayProfile(), nil
					},
				},
				&fakeBlackouts{},
				&fakeBookings{},
				fakeProviders{exists: true},
			)
			_, err := svc.UpdateAvailability(context.Background(), "p1", tt.patch)
			if !apperr.IsValidation(err) {
				t.Fatalf("error = %v, want validation error", err)
			}
		})
	}
}

func TestUpdateAvailability_UnknownProvider(t *testing.T) {
	svc := NewService(&fakeProfiles{}, &fakeBlackouts{}, &fakeBookings{}, fakeProviders{exists: false})
	_, err := svc.UpdateAvailability(context.Background(), "ghost", AvailabilityPatch{IsActive: ptr(false)})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestAddBlackout_Validation(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	long := make([]byte, domain.MaxBlackoutReasonLen+1)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name    string
		in      BlackoutInput
		wantErr bool
	}{
		{name: "ok", in: BlackoutInput{StartAt: start, EndAt: start.Add(2 * time.Hour), Reason: " vacation "}},
		{name: "sixty days", in: BlackoutInput{StartAt: start, EndAt: start.Add(domain.MaxBlackoutSpan)}},
		{name: "too long", in: BlackoutInput{StartAt: start, EndAt: start.Add(domain.MaxBlackoutSpan + time.Minute)}, wantErr: true},
		{name: "inverted", in: BlackoutInput{StartAt: start, EndAt: start}, wantErr: true},
		{name: "reason", in: BlackoutInput{StartAt: start, EndAt: start.Add(time.Hour), Reason: string(long)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.ProviderBlackout
			svc := NewService(&fakeProfiles{}, &fakeBlackouts{
				createFn: func(ctx context.Context, b domain.ProviderBlackout) (domain.ProviderBlackout, error) {
					got = b
					return b, nil
				},
			}, &fakeBookings{}, fakeProviders{exists: true})

			_, err := svc.AddBlackout(context.Background(), "p1", tt.in)
			if tt.wantErr {
				if !apperr.IsValidation(err) {
					t.Fatalf("error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddBlackout error: %v", err)
			}
			if !got.IsActive {
				t.Fatalf("blackout should default to active")
			}
			if got.Reason != "" && got.Reason != "vacation" {
				t.Fatalf("reason = %q, want trimmed", got.Reason)
			}
		})
	}
}

func TestRemoveBlackout_NotFound(t *testing.T) {
	svc := NewService(&fakeProfiles{}, &fakeBlackouts{
		deleteFn: func(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error {
			return store.ErrNotFound
		},
	}, &fakeBookings{}, fakeProviders{exists: true})

	err := svc.RemoveBlackout(context.Background(), "p1", uuid.New())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
	if err := svc.RemoveBlackout(context.Background(), "p1", uuid.Nil); !apperr.IsValidation(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
}

func TestBusyResolver_MergesBlackoutsAndBookings(t *testing.T) {
	r := NewBusyResolver(
		&fakeBlackouts{intervals: []domain.Interval{{Start: utc(9, 0), End: utc(10, 0)}}},
		&fakeBookings{intervals: []domain.Interval{{Start: utc(12, 0), End: utc(13, 0)}, {Start: utc(20, 0), End: utc(21, 0)}}},
	)
	busy, err := r.Resolve(context.Background(), "p1", utc(8, 0), utc(14, 0), uuid.Nil)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("busy = %v, want 2 intervals", busy)
	}
}

func ptr[T any](v T) *T {
	return &v
}
