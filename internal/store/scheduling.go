package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"servicebook/backend/internal/domain"
)

type AvailabilityRepository interface {
	GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error)
	UpsertAvailability(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error)
}

type BlackoutRepository interface {
	CreateBlackout(ctx context.Context, b domain.ProviderBlackout) (domain.ProviderBlackout, error)
	DeleteBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error
	SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error)
	ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error)
	ListActiveBlackoutIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time) ([]domain.Interval, error)
}

// BookingReader is the read side other components may use.
type BookingReader interface {
	GetBooking(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error)
	// ListActiveBookingIntervals returns confirmed or completed bookings of
	// the provider overlapping the window. A non-nil exclude is skipped.
	ListActiveBookingIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error)
}

type Cancellation struct {
	At     time.Time
	By     domain.Role
	Reason *string
}

type LineageKey struct {
	RequestID      uuid.UUID
	ResponseID     uuid.UUID
	ProviderUserID string
	ClientID       string
}

type BookingRepository interface {
	BookingReader

	// SaveCancellation writes the cancellation fields of an already loaded
	// booking while its stored status is still loaded. It reports false when
	// the row changed since it was read.
	SaveCancellation(ctx context.Context, b domain.Booking, loaded domain.BookingStatus) (bool, error)
	// CancelIfConfirmed and CompleteIfConfirmed report whether a confirmed
	// booking was transitioned.
	CancelIfConfirmed(ctx context.Context, bookingID uuid.UUID, c Cancellation) (bool, error)
	CompleteIfConfirmed(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error)

	FindSuccessor(ctx context.Context, predecessorID uuid.UUID) (domain.Booking, error)
	FindActiveBySlot(ctx context.Context, requestID, responseID uuid.UUID, startAt time.Time) (domain.Booking, error)
	ListLineage(ctx context.Context, key LineageKey) ([]domain.Booking, error)

	InBookingTransaction(ctx context.Context, fn func(ctx context.Context, tx BookingTx) error) error
}

// BookingTx is the set of operations available inside a booking transaction.
type BookingTx interface {
	GetBookingForUpdate(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error)
	CountActiveBookingOverlaps(ctx context.Context, providerUserID string, start, end time.Time, exclude uuid.UUID) (int, error)
	CountActiveBlackoutOverlaps(ctx context.Context, providerUserID string, start, end time.Time) (int, error)
	InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error)
	// MarkRescheduled cancels a confirmed booking on behalf of a reschedule.
	// It returns ErrConflict when the booking is no longer confirmed.
	MarkRescheduled(ctx context.Context, bookingID uuid.UUID, c Cancellation, reason *string) error
	SetRescheduledTo(ctx context.Context, bookingID, successorID uuid.UUID) error
}

type ProviderDirectory interface {
	ProviderExists(ctx context.Context, providerUserID string) (bool, error)
}
