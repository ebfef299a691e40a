package bookings

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

// History returns the reschedule chain the booking belongs to, root first.
func (s *Service) History(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.BookingHistory, error) {
	b, err := s.Get(ctx, actor, bookingID)
	if err != nil {
		return domain.BookingHistory{}, err
	}

	lineage, err := s.repo.ListLineage(ctx, store.LineageKey{
		RequestID:      b.RequestID,
		ResponseID:     b.ResponseID,
		ProviderUserID: b.ProviderUserID,
		ClientID:       b.ClientID,
	})
	if err != nil {
		return domain.BookingHistory{}, err
	}

	h, err := domain.ResolveHistory(b, lineage)
	if errors.Is(err, domain.ErrHistoryCycle) || errors.Is(err, domain.ErrHistoryBroken) {
		return domain.BookingHistory{}, apperr.Conflict(err.Error())
	}
	return h, err
}
