package bookings

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

// memRepo is an in-memory BookingRepository that enforces the same
// constraints as the bookings table. Transactions hold the lock for their
// whole duration and roll back on error.
type memRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]domain.Booking
	blackouts []domain.Interval
	seq       int

	// interfere runs once, with the lock held, at the start of the next
	// transaction or conditional update. Tests use it to play a concurrent
	// writer.
	interfere func(r *memRepo)
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[uuid.UUID]domain.Booking)}
}

func (r *memRepo) runInterference() {
	if f := r.interfere; f != nil {
		r.interfere = nil
		f(r)
	}
}

func (r *memRepo) get(id uuid.UUID) domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memRepo) put(b domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[b.ID] = b
}

func (r *memRepo) InBookingTransaction(ctx context.Context, fn func(ctx context.Context, tx store.BookingTx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runInterference()

	snapshot := make(map[uuid.UUID]domain.Booking, len(r.rows))
	for k, v := range r.rows {
		snapshot[k] = v
	}
	if err := fn(ctx, memTx{r: r}); err != nil {
		r.rows = snapshot
		return err
	}
	return nil
}

func (r *memRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[bookingID]
	if !ok {
		return domain.Booking{}, store.ErrNotFound
	}
	return b, nil
}

func (r *memRepo) ListActiveBookingIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Interval
	for _, b := range r.rows {
		if b.ProviderUserID == providerUserID && b.Status.Active() && b.ID != exclude &&
			b.StartAt.Before(windowEnd) && b.EndAt.After(windowStart) {
			out = append(out, b.Interval())
		}
	}
	return out, nil
}

func (r *memRepo) SaveCancellation(ctx context.Context, b domain.Booking, loaded domain.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runInterference()
	cur, ok := r.rows[b.ID]
	if !ok || cur.Status != loaded {
		return false, nil
	}
	cur.Status = b.Status
	cur.CancelledAt = b.CancelledAt
	cur.CancelledBy = b.CancelledBy
	cur.CancelReason = b.CancelReason
	r.rows[b.ID] = cur
	return true, nil
}

func (r *memRepo) CancelIfConfirmed(ctx context.Context, bookingID uuid.UUID, c store.Cancellation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runInterference()
	cur, ok := r.rows[bookingID]
	if !ok || cur.Status != domain.BookingStatusConfirmed {
		return false, nil
	}
	by := c.By
	at := c.At
	cur.Status = domain.BookingStatusCancelled
	cur.CancelledAt = &at
	cur.CancelledBy = &by
	cur.CancelReason = c.Reason
	r.rows[bookingID] = cur
	return true, nil
}

func (r *memRepo) CompleteIfConfirmed(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runInterference()
	cur, ok := r.rows[bookingID]
	if !ok || cur.Status != domain.BookingStatusConfirmed {
		return false, nil
	}
	cur.Status = domain.BookingStatusCompleted
	cur.CompletedAt = &at
	r.rows[bookingID] = cur
	return true, nil
}

func (r *memRepo) FindSuccessor(ctx context.Context, predecessorID uuid.UUID) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.rows {
		if b.RescheduledFromID != nil && *b.RescheduledFromID == predecessorID {
			return b, nil
		}
	}
	return domain.Booking{}, store.ErrNotFound
}

func (r *memRepo) FindActiveBySlot(ctx context.Context, requestID, responseID uuid.UUID, startAt time.Time) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.rows {
		if b.RequestID == requestID && b.ResponseID == responseID && b.StartAt.Equal(startAt) && b.Status.Active() {
			return b, nil
		}
	}
	return domain.Booking{}, store.ErrNotFound
}

func (r *memRepo) ListLineage(ctx context.Context, key store.LineageKey) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Booking
	for _, b := range r.rows {
		if b.RequestID == key.RequestID && b.ResponseID == key.ResponseID &&
			b.ProviderUserID == key.ProviderUserID && b.ClientID == key.ClientID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// insert applies the bookings table constraints. The caller holds the lock.
func (r *memRepo) insert(b domain.Booking) (domain.Booking, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if _, ok := r.rows[b.ID]; ok {
		return domain.Booking{}, &store.DuplicateError{Constraint: "bookings_pkey"}
	}
	for _, o := range r.rows {
		if b.RescheduledFromID != nil && o.RescheduledFromID != nil && *o.RescheduledFromID == *b.RescheduledFromID {
			return domain.Booking{}, &store.DuplicateError{Constraint: "bookings_rescheduled_from_uniq"}
		}
		if !o.Status.Active() || !b.Status.Active() {
			continue
		}
		if o.RequestID == b.RequestID && o.ResponseID == b.ResponseID && o.StartAt.Equal(b.StartAt) {
			return domain.Booking{}, &store.DuplicateError{Constraint: "bookings_active_slot_uniq"}
		}
		if o.RequestID == b.RequestID {
			return domain.Booking{}, &store.DuplicateError{Constraint: "bookings_active_request_uniq"}
		}
		if o.ProviderUserID == b.ProviderUserID && o.StartAt.Before(b.EndAt) && o.EndAt.After(b.StartAt) {
			return domain.Booking{}, store.ErrConflict
		}
	}
	r.seq++
	b.CreatedAt = time.Date(2026, 1, 1, 0, 0, r.seq, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	r.rows[b.ID] = b
	return b, nil
}

type memTx struct {
	r *memRepo
}

func (t memTx) GetBookingForUpdate(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	b, ok := t.r.rows[bookingID]
	if !ok {
		return domain.Booking{}, store.ErrNotFound
	}
	return b, nil
}

func (t memTx) CountActiveBookingOverlaps(ctx context.Context, providerUserID string, start, end time.Time, exclude uuid.UUID) (int, error) {
	n := 0
	for _, b := range t.r.rows {
		if b.ProviderUserID == providerUserID && b.Status.Active() && b.ID != exclude &&
			b.StartAt.Before(end) && b.EndAt.After(start) {
			n++
		}
	}
	return n, nil
}

func (t memTx) CountActiveBlackoutOverlaps(ctx context.Context, providerUserID string, start, end time.Time) (int, error) {
	n := 0
	for _, iv := range t.r.blackouts {
		if iv.Start.Before(end) && iv.End.After(start) {
			n++
		}
	}
	return n, nil
}

func (t memTx) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	return t.r.insert(b)
}

func (t memTx) MarkRescheduled(ctx context.Context, bookingID uuid.UUID, c store.Cancellation, reason *string) error {
	cur, ok := t.r.rows[bookingID]
	if !ok || cur.Status != domain.BookingStatusConfirmed {
		return store.ErrConflict
	}
	by := c.By
	at := c.At
	cur.Status = domain.BookingStatusCancelled
	cur.CancelledAt = &at
	cur.CancelledBy = &by
	cur.CancelReason = c.Reason
	cur.RescheduledAt = &at
	cur.RescheduleReason = reason
	t.r.rows[bookingID] = cur
	return nil
}

func (t memTx) SetRescheduledTo(ctx context.Context, bookingID, successorID uuid.UUID) error {
	cur, ok := t.r.rows[bookingID]
	if !ok || cur.RescheduledToID != nil {
		return store.ErrConflict
	}
	cur.RescheduledToID = &successorID
	t.r.rows[bookingID] = cur
	return nil
}

// memBlackouts exposes the repo's blackout intervals to the availability
// service.
type memBlackouts struct {
	r *memRepo
}

func (b memBlackouts) CreateBlackout(ctx context.Context, pb domain.ProviderBlackout) (domain.ProviderBlackout, error) {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()
	b.r.blackouts = append(b.r.blackouts, pb.Interval())
	return pb, nil
}

func (b memBlackouts) DeleteBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error {
	return store.ErrNotFound
}

func (b memBlackouts) SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error) {
	return domain.ProviderBlackout{}, store.ErrNotFound
}

func (b memBlackouts) ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error) {
	return nil, nil
}

func (b memBlackouts) ListActiveBlackoutIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	b.r.mu.Lock()
	defer b.r.mu.Unlock()
	var out []domain.Interval
	for _, iv := range b.r.blackouts {
		if iv.Start.Before(windowEnd) && iv.End.After(windowStart) {
			out = append(out, iv)
		}
	}
	return out, nil
}

type staticProfiles struct {
	profile domain.ProviderAvailability
}

func (p staticProfiles) GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
	if providerUserID != p.profile.ProviderUserID {
		return domain.ProviderAvailability{}, store.ErrNotFound
	}
	return p.profile, nil
}

func (p staticProfiles) UpsertAvailability(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error) {
	return a, nil
}

type allProviders struct{}

func (allProviders) ProviderExists(ctx context.Context, providerUserID string) (bool, error) {
	return true, nil
}
