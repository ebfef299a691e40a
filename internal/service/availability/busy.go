package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

// BusyResolver loads everything that blocks a provider's time in a window:
// active blackouts and active bookings. The result is fetched once and then
// tested in memory with domain.Intersects.
type BusyResolver struct {
	blackouts store.BlackoutRepository
	bookings  store.BookingReader
}

func NewBusyResolver(blackouts store.BlackoutRepository, bookings store.BookingReader) *BusyResolver {
	return &BusyResolver{blackouts: blackouts, bookings: bookings}
}

// Resolve returns the busy intervals overlapping [windowStart, windowEnd).
// A non-nil exclude leaves that booking out, so a booking being moved does
// not block itself.
func (r *BusyResolver) Resolve(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error) {
	blackouts, err := r.blackouts.ListActiveBlackoutIntervals(ctx, providerUserID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	bookings, err := r.bookings.ListActiveBookingIntervals(ctx, providerUserID, windowStart, windowEnd, exclude)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(blackouts)+len(bookings))
	out = append(out, blackouts...)
	out = append(out, bookings...)
	return out, nil
}
