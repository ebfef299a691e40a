package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

const msgStateChanged = "booking state changed"

// Cancel cancels a booking by id. Clients go through the load-and-save path;
// providers and admins use a conditional update. Cancelling an already
// cancelled booking succeeds.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, bookingID uuid.UUID, reason *string) error {
	b, err := s.load(ctx, actor, bookingID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleClient {
		_, err := s.CancelLoaded(ctx, actor, b, reason)
		return err
	}

	if !b.CanManage(actor) {
		return apperr.ErrAccessDenied
	}
	r, err := normalizeReason(reason)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	done, err := s.checkCancellable(b, now)
	if err != nil || done {
		return err
	}

	ok, err := s.repo.CancelIfConfirmed(ctx, b.ID, store.Cancellation{At: now, By: actor.Role, Reason: r})
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	cur, err := s.repo.GetBooking(ctx, b.ID)
	if err != nil {
		return err
	}
	if cur.Status == domain.BookingStatusCancelled {
		return nil
	}
	return apperr.Conflict(msgStateChanged)
}

// CancelLoaded cancels a booking the caller has just loaded and writes it
// back, provided the stored row still has the loaded status. Otherwise it
// re-reads: a cancelled booking is returned as is, anything else is a
// conflict.
func (s *Service) CancelLoaded(ctx context.Context, actor domain.Actor, b domain.Booking, reason *string) (domain.Booking, error) {
	if err := checkActor(actor); err != nil {
		return domain.Booking{}, err
	}
	if !b.CanManage(actor) {
		return domain.Booking{}, apperr.ErrAccessDenied
	}
	r, err := normalizeReason(reason)
	if err != nil {
		return domain.Booking{}, err
	}
	now := s.now().UTC()
	done, err := s.checkCancellable(b, now)
	if err != nil {
		return domain.Booking{}, err
	}
	if done {
		return b, nil
	}

	loaded := b.Status
	role := actor.Role
	b.Status = domain.BookingStatusCancelled
	b.CancelledAt = &now
	b.CancelledBy = &role
	b.CancelReason = r
	b.UpdatedAt = now
	ok, err := s.repo.SaveCancellation(ctx, b, loaded)
	if err != nil {
		return domain.Booking{}, err
	}
	if ok {
		return b, nil
	}

	cur, err := s.repo.GetBooking(ctx, b.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Booking{}, apperr.NotFound("booking")
		}
		return domain.Booking{}, err
	}
	if cur.Status == domain.BookingStatusCancelled {
		return cur, nil
	}
	return domain.Booking{}, apperr.Conflict(msgStateChanged)
}

// checkCancellable reports done for bookings that are already cancelled.
func (s *Service) checkCancellable(b domain.Booking, now time.Time) (bool, error) {
	switch b.Status {
	case domain.BookingStatusCancelled:
		return true, nil
	case domain.BookingStatusCompleted:
		return false, apperr.Conflict("completed bookings cannot be cancelled")
	}
	if !b.StartAt.After(now) {
		return false, apperr.Validation("booking has already started")
	}
	if b.StartAt.Sub(now) < s.leadTime {
		return false, apperr.Validationf("bookings must be cancelled at least %s before start", leadTimeText(s.leadTime))
	}
	return false, nil
}

// Complete marks a finished booking as completed. Only the provider or an
// admin may do so.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.Booking, error) {
	b, err := s.load(ctx, actor, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if !b.CanComplete(actor) {
		return domain.Booking{}, apperr.ErrAccessDenied
	}
	switch b.Status {
	case domain.BookingStatusCompleted:
		return b, nil
	case domain.BookingStatusCancelled:
		return domain.Booking{}, apperr.Conflict("cancelled bookings cannot be completed")
	}

	now := s.now().UTC()
	if b.EndAt.After(now) {
		return domain.Booking{}, apperr.Validation("booking has not ended yet")
	}

	ok, err := s.repo.CompleteIfConfirmed(ctx, b.ID, now)
	if err != nil {
		return domain.Booking{}, err
	}
	cur, err := s.repo.GetBooking(ctx, b.ID)
	if err != nil {
		return domain.Booking{}, err
	}
	if !ok && cur.Status != domain.BookingStatusCompleted {
		return domain.Booking{}, apperr.Conflict(msgStateChanged)
	}
	return cur, nil
}

type RescheduleInput struct {
	StartAt     time.Time
	DurationMin *int
	Reason      *string
}

// Reschedule moves a confirmed booking by cancelling it and creating its
// successor in one transaction. A booking that was already rescheduled
// resolves to its successor.
func (s *Service) Reschedule(ctx context.Context, actor domain.Actor, bookingID uuid.UUID, in RescheduleInput) (domain.Booking, error) {
	b, err := s.load(ctx, actor, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if !b.CanManage(actor) {
		return domain.Booking{}, apperr.ErrAccessDenied
	}
	if b.Status != domain.BookingStatusConfirmed {
		if b.RescheduledToID != nil {
			return s.successor(ctx, *b.RescheduledToID)
		}
		return domain.Booking{}, apperr.Conflict("only confirmed bookings can be rescheduled")
	}

	now := s.now().UTC()
	if b.StartAt.Sub(now) < s.leadTime {
		return domain.Booking{}, apperr.Validationf("bookings must be rescheduled at least %s before start", leadTimeText(s.leadTime))
	}

	durationMin := b.DurationMin
	if in.DurationMin != nil {
		durationMin = *in.DurationMin
	}
	if err := validateDuration(durationMin); err != nil {
		return domain.Booking{}, err
	}
	start := in.StartAt.UTC()
	if !start.After(now) {
		return domain.Booking{}, apperr.Validation("startAt must be in the future")
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)
	reason, err := normalizeReason(in.Reason)
	if err != nil {
		return domain.Booking{}, err
	}

	busy, err := s.busy.Resolve(ctx, b.ProviderUserID, start, end, b.ID)
	if err != nil {
		return domain.Booking{}, err
	}
	if domain.Intersects(start, end, busy) {
		return domain.Booking{}, apperr.Conflict("slot not available")
	}

	var (
		moved   domain.Booking
		adoptID uuid.UUID
	)
	err = s.repo.InBookingTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		cur, err := tx.GetBookingForUpdate(ctx, b.ID)
		if err != nil {
			return err
		}
		if cur.Status != domain.BookingStatusConfirmed {
			if cur.RescheduledToID != nil {
				adoptID = *cur.RescheduledToID
				return nil
			}
			return apperr.Conflict(msgStateChanged)
		}

		if err := requireFree(ctx, tx, cur.ProviderUserID, start, end, cur.ID); err != nil {
			return err
		}

		c := store.Cancellation{At: now, By: actor.Role}
		if err := tx.MarkRescheduled(ctx, cur.ID, c, reason); err != nil {
			return err
		}

		from := cur.ID
		inserted, err := tx.InsertBooking(ctx, domain.Booking{
			RequestID:         cur.RequestID,
			ResponseID:        cur.ResponseID,
			ProviderUserID:    cur.ProviderUserID,
			ClientID:          cur.ClientID,
			StartAt:           start,
			EndAt:             end,
			DurationMin:       durationMin,
			Note:              cur.Note,
			Metadata:          cur.Metadata,
			Status:            domain.BookingStatusConfirmed,
			RescheduledFromID: &from,
		})
		if err != nil {
			return err
		}
		if err := tx.SetRescheduledTo(ctx, cur.ID, inserted.ID); err != nil {
			return err
		}
		moved = inserted
		return nil
	})

	switch {
	case err == nil && adoptID != uuid.Nil:
		return s.successor(ctx, adoptID)
	case err == nil:
		return moved, nil
	}

	var dup *store.DuplicateError
	switch {
	case errors.As(err, &dup):
		return s.adopt(ctx, b, start)
	case isConflictMessage(err):
		return domain.Booking{}, err
	case errors.Is(err, store.ErrConflict):
		return domain.Booking{}, apperr.Conflict("slot not available")
	case errors.Is(err, store.ErrNotFound):
		return domain.Booking{}, apperr.NotFound("booking")
	}
	return domain.Booking{}, err
}

// adopt resolves a reschedule that lost a duplicate-key race to the booking
// the winner created.
func (s *Service) adopt(ctx context.Context, b domain.Booking, start time.Time) (domain.Booking, error) {
	succ, err := s.repo.FindSuccessor(ctx, b.ID)
	if err == nil {
		return succ, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, err
	}

	succ, err = s.repo.FindActiveBySlot(ctx, b.RequestID, b.ResponseID, start)
	if err == nil {
		return succ, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, err
	}
	return domain.Booking{}, apperr.Conflict(msgStateChanged)
}

func (s *Service) successor(ctx context.Context, id uuid.UUID) (domain.Booking, error) {
	succ, err := s.repo.GetBooking(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, apperr.Conflict(msgStateChanged)
	}
	return succ, err
}
