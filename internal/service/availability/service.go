package availability

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

const (
	// MaxSlots caps a single slot listing regardless of range and step size.
	MaxSlots         = 500
	DefaultRangeDays = 7
)

type Service struct {
	profiles  store.AvailabilityRepository
	blackouts store.BlackoutRepository
	providers store.ProviderDirectory
	busy      *BusyResolver
	now       func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	profiles store.AvailabilityRepository,
	blackouts store.BlackoutRepository,
	bookings store.BookingReader,
	providers store.ProviderDirectory,
	opts ...Option,
) *Service {
	s := &Service{
		profiles:  profiles,
		blackouts: blackouts,
		providers: providers,
		busy:      NewBusyResolver(blackouts, bookings),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Busy() *BusyResolver {
	return s.busy
}

type SlotQuery struct {
	ProviderUserID string
	From           *civil.Date
	To             *civil.Date
	// TimeZone overrides the profile zone when set.
	TimeZone string
	// DurationMin overrides the profile slot duration when non-zero.
	DurationMin int
}

// GetSlots lists the provider's bookable slots using the profile's slot
// duration. A missing or inactive profile yields no slots.
func (s *Service) GetSlots(ctx context.Context, q SlotQuery) ([]domain.Slot, error) {
	q.DurationMin = 0
	return s.ListSlots(ctx, q)
}

// ListSlots is GetSlots with an optional duration override.
func (s *Service) ListSlots(ctx context.Context, q SlotQuery) ([]domain.Slot, error) {
	providerUserID := strings.TrimSpace(q.ProviderUserID)
	if providerUserID == "" {
		return nil, apperr.Validation("provider_user_id is required")
	}

	profile, err := s.profiles.GetAvailability(ctx, providerUserID)
	if errors.Is(err, store.ErrNotFound) {
		return []domain.Slot{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !profile.IsActive {
		return []domain.Slot{}, nil
	}

	zone := profile.TimeZone
	if tz := strings.TrimSpace(q.TimeZone); tz != "" {
		zone = tz
	}
	loc, err := domain.LoadZone(zone)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	now := s.now().UTC()
	from := civil.DateOf(now.In(loc))
	if q.From != nil {
		from = *q.From
	}
	to := from.AddDays(DefaultRangeDays)
	if q.To != nil {
		to = *q.To
	}

	durationMin := profile.SlotDurationMin
	if q.DurationMin != 0 {
		if q.DurationMin < domain.MinBookingDurationMin || q.DurationMin > domain.MaxBookingDurationMin {
			return nil, apperr.Validationf("durationMin must be between %d and %d", domain.MinBookingDurationMin, domain.MaxBookingDurationMin)
		}
		durationMin = q.DurationMin
	}
	duration := time.Duration(durationMin) * time.Minute
	buffer := time.Duration(profile.BufferMin) * time.Minute

	candidates, err := domain.CandidateSlots(profile.Weekly, loc, from, to, duration, buffer)
	if err != nil {
		return nil, apperr.Validation(err.Error())
	}

	windowStart, windowEnd := domain.DayBounds(from, to, loc)
	busy, err := s.busy.Resolve(ctx, providerUserID, windowStart, windowEnd, uuid.Nil)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Slot, 0, 16)
	for c := range candidates {
		if !c.End.After(now) {
			continue
		}
		if domain.Intersects(c.Start, c.End, busy) {
			continue
		}
		out = append(out, domain.Slot{StartAt: c.Start, EndAt: c.End})
		if len(out) >= MaxSlots {
			break
		}
	}
	return out, nil
}

func (s *Service) GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
	providerUserID = strings.TrimSpace(providerUserID)
	if providerUserID == "" {
		return domain.ProviderAvailability{}, apperr.Validation("provider_user_id is required")
	}
	a, err := s.profiles.GetAvailability(ctx, providerUserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProviderAvailability{}, apperr.NotFound("availability")
	}
	return a, err
}

// AvailabilityPatch changes only the fields that are set.
type AvailabilityPatch struct {
	TimeZone        *string
	SlotDurationMin *int
	BufferMin       *int
	IsActive        *bool
	Weekly          *[]domain.WeeklyDay
}

// UpdateAvailability applies the patch to the provider's profile, creating
// it from defaults on first use. Every field is validated before anything is
// written.
func (s *Service) UpdateAvailability(ctx context.Context, providerUserID string, patch AvailabilityPatch) (domain.ProviderAvailability, error) {
	providerUserID = strings.TrimSpace(providerUserID)
	if providerUserID == "" {
		return domain.ProviderAvailability{}, apperr.Validation("provider_user_id is required")
	}

	exists, err := s.providers.ProviderExists(ctx, providerUserID)
	if err != nil {
		return domain.ProviderAvailability{}, err
	}
	if !exists {
		return domain.ProviderAvailability{}, apperr.NotFound("provider")
	}

	current, err := s.profiles.GetAvailability(ctx, providerUserID)
	if errors.Is(err, store.ErrNotFound) {
		current = domain.DefaultAvailability(providerUserID)
	} else if err != nil {
		return domain.ProviderAvailability{}, err
	}

	next := current
	if patch.TimeZone != nil {
		tz := strings.TrimSpace(*patch.TimeZone)
		if _, err := domain.LoadZone(tz); err != nil {
			return domain.ProviderAvailability{}, apperr.Validation(err.Error())
		}
		next.TimeZone = tz
	}
	if patch.SlotDurationMin != nil {
		if err := domain.ValidateSlotDuration(*patch.SlotDurationMin); err != nil {
			return domain.ProviderAvailability{}, apperr.Validation(err.Error())
		}
		next.SlotDurationMin = *patch.SlotDurationMin
	}
	if patch.BufferMin != nil {
		if err := domain.ValidateBuffer(*patch.BufferMin); err != nil {
			return domain.ProviderAvailability{}, apperr.Validation(err.Error())
		}
		next.BufferMin = *patch.BufferMin
	}
	if patch.IsActive != nil {
		next.IsActive = *patch.IsActive
	}
	if patch.Weekly != nil {
		weekly, err := domain.NormalizeWeekly(*patch.Weekly)
		if err != nil {
			return domain.ProviderAvailability{}, apperr.Validation(err.Error())
		}
		next.Weekly = weekly
	}

	return s.profiles.UpsertAvailability(ctx, next)
}

type BlackoutInput struct {
	StartAt  time.Time
	EndAt    time.Time
	Reason   string
	IsActive *bool
}

func (s *Service) AddBlackout(ctx context.Context, providerUserID string, in BlackoutInput) (domain.ProviderBlackout, error) {
	providerUserID = strings.TrimSpace(providerUserID)
	if providerUserID == "" {
		return domain.ProviderBlackout{}, apperr.Validation("provider_user_id is required")
	}

	start := in.StartAt.UTC()
	end := in.EndAt.UTC()
	if start.IsZero() || end.IsZero() {
		return domain.ProviderBlackout{}, apperr.Validation("startAt and endAt are required")
	}
	if !end.After(start) {
		return domain.ProviderBlackout{}, apperr.Validation("endAt must be after startAt")
	}
	if end.Sub(start) > domain.MaxBlackoutSpan {
		return domain.ProviderBlackout{}, apperr.Validation("blackout must not span more than 60 days")
	}
	reason := strings.TrimSpace(in.Reason)
	if len(reason) > domain.MaxBlackoutReasonLen {
		return domain.ProviderBlackout{}, apperr.Validationf("reason must not exceed %d characters", domain.MaxBlackoutReasonLen)
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return s.blackouts.CreateBlackout(ctx, domain.ProviderBlackout{
		ProviderUserID: providerUserID,
		StartAt:        start,
		EndAt:          end,
		Reason:         reason,
		IsActive:       active,
	})
}

func (s *Service) RemoveBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error {
	if strings.TrimSpace(providerUserID) == "" {
		return apperr.Validation("provider_user_id is required")
	}
	if blackoutID == uuid.Nil {
		return apperr.Validation("blackout_id is required")
	}
	err := s.blackouts.DeleteBlackout(ctx, strings.TrimSpace(providerUserID), blackoutID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("blackout")
	}
	return err
}

func (s *Service) SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error) {
	if strings.TrimSpace(providerUserID) == "" {
		return domain.ProviderBlackout{}, apperr.Validation("provider_user_id is required")
	}
	if blackoutID == uuid.Nil {
		return domain.ProviderBlackout{}, apperr.Validation("blackout_id is required")
	}
	b, err := s.blackouts.SetBlackoutActive(ctx, strings.TrimSpace(providerUserID), blackoutID, active)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ProviderBlackout{}, apperr.NotFound("blackout")
	}
	return b, err
}

// ListBlackouts returns the provider's blackouts, active or not, optionally
// limited to those overlapping window.
func (s *Service) ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error) {
	if strings.TrimSpace(providerUserID) == "" {
		return nil, apperr.Validation("provider_user_id is required")
	}
	if window != nil && !window.End.After(window.Start) {
		return nil, apperr.Validation("window end must be after window start")
	}
	return s.blackouts.ListBlackouts(ctx, strings.TrimSpace(providerUserID), window)
}
