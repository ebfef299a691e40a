package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/service/availability"
	"servicebook/backend/internal/service/bookings"
	"servicebook/backend/internal/store"
)

// openTestDB migrates a fresh schema and returns a pool pinned to it. Tests
// skip unless SERVICEBOOK_TEST_DATABASE_URL is set.
func openTestDB(t *testing.T) *bun.DB {
	t.Helper()

	databaseURL := strings.TrimSpace(os.Getenv("SERVICEBOOK_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("SERVICEBOOK_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := Open(ctx, databaseURL, PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(admin)
	})

	schema := "servicebook_test_" + randomHex(t, 8)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = admin.NewRaw("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Exec(ctx)
	})

	err = admin.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewRaw("CREATE SCHEMA " + schema).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewRaw("SET LOCAL search_path TO " + schema + ", public").Exec(ctx); err != nil {
			return err
		}
		return applyMigrations(ctx, tx)
	})
	if err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	db, err := Open(ctx, withSearchPath(t, databaseURL, schema), PoolConfig{MaxOpenConns: 4})
	if err != nil {
		t.Fatalf("Open schema error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}

func withSearchPath(t *testing.T, databaseURL, schema string) string {
	t.Helper()
	u, err := url.Parse(databaseURL)
	if err != nil || u.Scheme == "" {
		return databaseURL + " search_path=" + schema + ",public"
	}
	q := u.Query()
	q.Set("search_path", schema+",public")
	u.RawQuery = q.Encode()
	return u.String()
}

func seedProvider(t *testing.T, db *bun.DB, providerUserID string) {
	t.Helper()
	_, err := db.NewRaw("INSERT INTO provider_profiles (user_id) VALUES (?)", providerUserID).Exec(context.Background())
	if err != nil {
		t.Fatalf("seed provider: %v", err)
	}
}

func insertBooking(ctx context.Context, repo *BookingRepo, b domain.Booking) (domain.Booking, error) {
	var out domain.Booking
	err := repo.InBookingTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		var err error
		out, err = tx.InsertBooking(ctx, b)
		return err
	})
	return out, err
}

func newBooking(providerUserID string, start time.Time) domain.Booking {
	return domain.Booking{
		RequestID:      uuid.New(),
		ResponseID:     uuid.New(),
		ProviderUserID: providerUserID,
		ClientID:       "client-1",
		StartAt:        start,
		EndAt:          start.Add(time.Hour),
		DurationMin:    60,
		Status:         domain.BookingStatusConfirmed,
	}
}

func wantDuplicate(t *testing.T, err error, constraint string) {
	t.Helper()
	var dup *store.DuplicateError
	if !errors.As(err, &dup) || dup.Constraint != constraint {
		t.Fatalf("error = %v, want duplicate on %s", err, constraint)
	}
}

func TestPostgresIntegration_AvailabilityAndBlackouts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedProvider(t, db, "prov-1")

	dir := NewProviderDirectory(db)
	ok, err := dir.ProviderExists(ctx, "prov-1")
	if err != nil || !ok {
		t.Fatalf("ProviderExists(prov-1) = %v, %v", ok, err)
	}
	ok, err = dir.ProviderExists(ctx, "nobody")
	if err != nil || ok {
		t.Fatalf("ProviderExists(nobody) = %v, %v", ok, err)
	}

	profiles := NewAvailabilityRepo(db)
	if _, err := profiles.GetAvailability(ctx, "prov-1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetAvailability before upsert = %v, want not found", err)
	}

	a := domain.DefaultAvailability("prov-1")
	a.Weekly = []domain.WeeklyDay{{DayOfWeek: 4, Ranges: []domain.TimeRange{{Start: "09:00", End: "11:00"}}}}
	saved, err := profiles.UpsertAvailability(ctx, a)
	if err != nil {
		t.Fatalf("UpsertAvailability error: %v", err)
	}
	if len(saved.Weekly) != 1 || saved.Weekly[0].Ranges[0].End != "11:00" {
		t.Fatalf("weekly = %+v", saved.Weekly)
	}

	a.TimeZone = "Europe/Berlin"
	a.Weekly = nil
	saved, err = profiles.UpsertAvailability(ctx, a)
	if err != nil {
		t.Fatalf("UpsertAvailability update error: %v", err)
	}
	if saved.TimeZone != "Europe/Berlin" || len(saved.Weekly) != 0 {
		t.Fatalf("updated profile = %+v", saved)
	}

	blackouts := NewBlackoutRepo(db)
	start := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	b, err := blackouts.CreateBlackout(ctx, domain.ProviderBlackout{
		ProviderUserID: "prov-1",
		StartAt:        start,
		EndAt:          start.Add(time.Hour),
		Reason:         "dentist",
		IsActive:       true,
	})
	if err != nil {
		t.Fatalf("CreateBlackout error: %v", err)
	}
	if b.ID == uuid.Nil {
		t.Fatalf("blackout id not assigned")
	}

	intervals, err := blackouts.ListActiveBlackoutIntervals(ctx, "prov-1", start.Add(-time.Hour), start.Add(2*time.Hour))
	if err != nil || len(intervals) != 1 || !intervals[0].Start.Equal(start) {
		t.Fatalf("active intervals = %+v, %v", intervals, err)
	}
	// Touching the window edge is not an overlap.
	intervals, err = blackouts.ListActiveBlackoutIntervals(ctx, "prov-1", start.Add(time.Hour), start.Add(2*time.Hour))
	if err != nil || len(intervals) != 0 {
		t.Fatalf("touching intervals = %+v, %v", intervals, err)
	}

	updated, err := blackouts.SetBlackoutActive(ctx, "prov-1", b.ID, false)
	if err != nil || updated.IsActive {
		t.Fatalf("SetBlackoutActive = %+v, %v", updated, err)
	}
	intervals, err = blackouts.ListActiveBlackoutIntervals(ctx, "prov-1", start, start.Add(time.Hour))
	if err != nil || len(intervals) != 0 {
		t.Fatalf("intervals after deactivate = %+v, %v", intervals, err)
	}
	all, err := blackouts.ListBlackouts(ctx, "prov-1", nil)
	if err != nil || len(all) != 1 {
		t.Fatalf("ListBlackouts = %+v, %v", all, err)
	}

	if _, err := blackouts.SetBlackoutActive(ctx, "other", b.ID, true); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("SetBlackoutActive other provider = %v, want not found", err)
	}
	if err := blackouts.DeleteBlackout(ctx, "prov-1", b.ID); err != nil {
		t.Fatalf("DeleteBlackout error: %v", err)
	}
	if err := blackouts.DeleteBlackout(ctx, "prov-1", b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second DeleteBlackout = %v, want not found", err)
	}
}

func TestPostgresIntegration_BookingConstraints(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepo(db)
	start := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)

	first, err := insertBooking(ctx, repo, newBooking("prov-1", start))
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}
	if first.ID == uuid.Nil || first.CreatedAt.IsZero() {
		t.Fatalf("insert did not assign id/created_at: %+v", first)
	}

	_, err = insertBooking(ctx, repo, newBooking("prov-1", start.Add(30*time.Minute)))
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("overlapping insert = %v, want conflict", err)
	}
	var dup *store.DuplicateError
	if errors.As(err, &dup) {
		t.Fatalf("overlap reported as duplicate on %s", dup.Constraint)
	}

	if _, err := insertBooking(ctx, repo, newBooking("prov-1", start.Add(time.Hour))); err != nil {
		t.Fatalf("adjacent insert error: %v", err)
	}
	if _, err := insertBooking(ctx, repo, newBooking("prov-2", start)); err != nil {
		t.Fatalf("other provider insert error: %v", err)
	}

	sameID := newBooking("prov-3", start)
	sameID.ID = first.ID
	_, err = insertBooking(ctx, repo, sameID)
	wantDuplicate(t, err, constraintPrimaryKeyName)

	sameRequest := newBooking("prov-3", start.Add(4*time.Hour))
	sameRequest.RequestID = first.RequestID
	_, err = insertBooking(ctx, repo, sameRequest)
	wantDuplicate(t, err, "bookings_active_request_uniq")

	intervals, err := repo.ListActiveBookingIntervals(ctx, "prov-1", start, start.Add(2*time.Hour), uuid.Nil)
	if err != nil || len(intervals) != 2 {
		t.Fatalf("active intervals = %+v, %v", intervals, err)
	}
	intervals, err = repo.ListActiveBookingIntervals(ctx, "prov-1", start, start.Add(2*time.Hour), first.ID)
	if err != nil || len(intervals) != 1 {
		t.Fatalf("active intervals excluding first = %+v, %v", intervals, err)
	}

	cancelled, err := repo.CancelIfConfirmed(ctx, first.ID, store.Cancellation{At: time.Now().UTC(), By: domain.RoleProvider})
	if err != nil || !cancelled {
		t.Fatalf("CancelIfConfirmed = %v, %v", cancelled, err)
	}
	cancelled, err = repo.CancelIfConfirmed(ctx, first.ID, store.Cancellation{At: time.Now().UTC(), By: domain.RoleProvider})
	if err != nil || cancelled {
		t.Fatalf("second CancelIfConfirmed = %v, %v", cancelled, err)
	}

	stale := first
	clientRole := domain.RoleClient
	stale.Status = domain.BookingStatusCancelled
	stale.CancelledBy = &clientRole
	saved, err := repo.SaveCancellation(ctx, stale, domain.BookingStatusConfirmed)
	if err != nil || saved {
		t.Fatalf("stale SaveCancellation = %v, %v", saved, err)
	}

	got, err := repo.GetBooking(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetBooking error: %v", err)
	}
	if got.Status != domain.BookingStatusCancelled || got.CancelledBy == nil || *got.CancelledBy != domain.RoleProvider {
		t.Fatalf("cancelled booking = %+v", got)
	}

	// The cancelled booking no longer holds the slot or the request.
	again := newBooking("prov-1", start)
	again.RequestID = first.RequestID
	if _, err := insertBooking(ctx, repo, again); err != nil {
		t.Fatalf("rebook cancelled slot error: %v", err)
	}

	if _, err := repo.GetBooking(ctx, uuid.New()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("GetBooking unknown = %v, want not found", err)
	}
}

func TestPostgresIntegration_RescheduleChain(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookingRepo(db)
	start := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)

	a, err := insertBooking(ctx, repo, newBooking("prov-1", start))
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}

	reschedule := func(from domain.Booking, to time.Time) (domain.Booking, error) {
		var out domain.Booking
		err := repo.InBookingTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
			locked, err := tx.GetBookingForUpdate(ctx, from.ID)
			if err != nil {
				return err
			}
			reason := "moved"
			if err := tx.MarkRescheduled(ctx, locked.ID, store.Cancellation{At: time.Now().UTC(), By: domain.RoleClient}, &reason); err != nil {
				return err
			}
			next := locked
			next.ID = uuid.Nil
			next.StartAt = to
			next.EndAt = to.Add(time.Hour)
			next.Status = domain.BookingStatusConfirmed
			next.CancelledAt, next.CancelledBy, next.CancelReason = nil, nil, nil
			next.RescheduledAt, next.RescheduleReason, next.RescheduledToID = nil, nil, nil
			next.CreatedAt, next.UpdatedAt = time.Time{}, time.Time{}
			next.RescheduledFromID = &locked.ID
			if out, err = tx.InsertBooking(ctx, next); err != nil {
				return err
			}
			return tx.SetRescheduledTo(ctx, locked.ID, out.ID)
		})
		return out, err
	}

	b, err := reschedule(a, start.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("reschedule a->b error: %v", err)
	}
	c, err := reschedule(b, start.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("reschedule b->c error: %v", err)
	}

	// A second reschedule of the same booking fails and rolls back.
	if _, err := reschedule(a, start.Add(72*time.Hour)); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("reschedule of cancelled booking = %v, want conflict", err)
	}

	succ, err := repo.FindSuccessor(ctx, a.ID)
	if err != nil || succ.ID != b.ID {
		t.Fatalf("FindSuccessor(a) = %s, %v; want %s", succ.ID, err, b.ID)
	}
	bySlot, err := repo.FindActiveBySlot(ctx, c.RequestID, c.ResponseID, c.StartAt)
	if err != nil || bySlot.ID != c.ID {
		t.Fatalf("FindActiveBySlot = %s, %v; want %s", bySlot.ID, err, c.ID)
	}

	lineage, err := repo.ListLineage(ctx, store.LineageKey{
		RequestID:      a.RequestID,
		ResponseID:     a.ResponseID,
		ProviderUserID: a.ProviderUserID,
		ClientID:       a.ClientID,
	})
	if err != nil {
		t.Fatalf("ListLineage error: %v", err)
	}
	requested, err := repo.GetBooking(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBooking error: %v", err)
	}
	h, err := domain.ResolveHistory(requested, lineage)
	if err != nil {
		t.Fatalf("ResolveHistory error: %v", err)
	}
	if h.RootID != a.ID || h.LatestID != c.ID || h.CurrentIndex != 1 || len(h.Items) != 3 {
		t.Fatalf("history = root %s latest %s index %d items %d", h.RootID, h.LatestID, h.CurrentIndex, len(h.Items))
	}

	dupSuccessor := newBooking("prov-9", start)
	dupSuccessor.RescheduledFromID = &a.ID
	_, err = insertBooking(ctx, repo, dupSuccessor)
	wantDuplicate(t, err, "bookings_rescheduled_from_uniq")

	completed, err := repo.CompleteIfConfirmed(ctx, c.ID, time.Now().UTC())
	if err != nil || !completed {
		t.Fatalf("CompleteIfConfirmed = %v, %v", completed, err)
	}
	completed, err = repo.CompleteIfConfirmed(ctx, a.ID, time.Now().UTC())
	if err != nil || completed {
		t.Fatalf("CompleteIfConfirmed on cancelled = %v, %v", completed, err)
	}
}

// TestPostgresIntegration_ServicesEndToEnd runs the booking flow against the
// real schema: Thursday 2026-02-05 with 09:00-11:00 hours, a blackout on the
// first hour, then a reschedule to the following month.
func TestPostgresIntegration_ServicesEndToEnd(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedProvider(t, db, "prov-1")

	now := func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) }
	bookingRepo := NewBookingRepo(db)
	avail := availability.NewService(NewAvailabilityRepo(db), NewBlackoutRepo(db), bookingRepo, NewProviderDirectory(db), availability.WithClock(now))
	svc := bookings.NewService(bookingRepo, avail, avail.Busy(), bookings.WithClock(now))

	weekly := []domain.WeeklyDay{{DayOfWeek: 4, Ranges: []domain.TimeRange{{Start: "09:00", End: "11:00"}}}}
	tz, slotMin := "UTC", 60
	if _, err := avail.UpdateAvailability(ctx, "prov-1", availability.AvailabilityPatch{TimeZone: &tz, SlotDurationMin: &slotMin, Weekly: &weekly}); err != nil {
		t.Fatalf("UpdateAvailability error: %v", err)
	}

	slotsOn := func(day civil.Date) []time.Time {
		t.Helper()
		slots, err := avail.GetSlots(ctx, availability.SlotQuery{ProviderUserID: "prov-1", From: &day, To: &day})
		if err != nil {
			t.Fatalf("GetSlots error: %v", err)
		}
		out := make([]time.Time, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.StartAt)
		}
		return out
	}

	feb5 := civil.Date{Year: 2026, Month: time.February, Day: 5}
	mar5 := civil.Date{Year: 2026, Month: time.March, Day: 5}
	nine := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	if got := slotsOn(feb5); len(got) != 2 || !got[0].Equal(nine) {
		t.Fatalf("slots on 02-05 = %v, want 09:00 and 10:00", got)
	}

	bo, err := avail.AddBlackout(ctx, "prov-1", availability.BlackoutInput{StartAt: nine, EndAt: nine.Add(time.Hour)})
	if err != nil {
		t.Fatalf("AddBlackout error: %v", err)
	}
	if got := slotsOn(feb5); len(got) != 1 || !got[0].Equal(nine.Add(time.Hour)) {
		t.Fatalf("slots with blackout = %v, want only 10:00", got)
	}
	if err := avail.RemoveBlackout(ctx, "prov-1", bo.ID); err != nil {
		t.Fatalf("RemoveBlackout error: %v", err)
	}

	b, err := svc.Create(ctx, "client-1", bookings.CreateInput{
		RequestID:      uuid.New(),
		ResponseID:     uuid.New(),
		ProviderUserID: "prov-1",
		StartAt:        nine,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got := slotsOn(feb5); len(got) != 1 {
		t.Fatalf("slots after booking = %v, want one", got)
	}

	target := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	next, err := svc.Reschedule(ctx, domain.Actor{UserID: "client-1", Role: domain.RoleClient}, b.ID, bookings.RescheduleInput{StartAt: target})
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if next.RescheduledFromID == nil || *next.RescheduledFromID != b.ID {
		t.Fatalf("successor = %+v", next)
	}
	if got := slotsOn(feb5); len(got) != 2 {
		t.Fatalf("slots on 02-05 after reschedule = %v, want both", got)
	}
	for _, s := range slotsOn(mar5) {
		if s.Equal(target) {
			t.Fatalf("03-05 10:00 still offered after reschedule")
		}
	}

	old, err := svc.Get(ctx, domain.Actor{UserID: "prov-1", Role: domain.RoleProvider}, b.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if old.Status != domain.BookingStatusCancelled || old.RescheduledToID == nil || *old.RescheduledToID != next.ID {
		t.Fatalf("old booking = %+v", old)
	}
}

const constraintPrimaryKeyName = "bookings_pkey"

func randomHex(t *testing.T, bytesLen int) string {
	t.Helper()
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}

type rawExecutor interface {
	NewRaw(query string, args ...any) *bun.RawQuery
}

func applyMigrations(ctx context.Context, exec rawExecutor) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(paths)

	for _, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		upSQL, err := extractGooseUp(string(b))
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		for _, stmt := range splitSQLStatements(upSQL) {
			if _, err := exec.NewRaw(pinExtensionSchema(stmt)).Exec(ctx); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
		}
	}
	return nil
}

func migrationsDir() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("runtime.Caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")), nil
}

func extractGooseUp(sql string) (string, error) {
	const upMarker, downMarker = "-- +goose Up", "-- +goose Down"

	_, afterUp, ok := strings.Cut(sql, upMarker)
	if !ok {
		return "", fmt.Errorf("missing goose up marker")
	}
	up, _, _ := strings.Cut(afterUp, downMarker)
	return strings.TrimSpace(up), nil
}

// pinExtensionSchema installs extensions into public so that dropping a test
// schema does not drop them.
func pinExtensionSchema(stmt string) string {
	upper := strings.ToUpper(stmt)
	if !strings.HasPrefix(upper, "CREATE EXTENSION") || strings.Contains(upper, " SCHEMA ") {
		return stmt
	}
	return stmt + " SCHEMA public"
}

func splitSQLStatements(sql string) []string {
	var out []string
	for _, p := range strings.Split(sql, ";") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
