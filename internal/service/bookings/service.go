package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/service/availability"
	"servicebook/backend/internal/store"
)

const (
	DefaultCancelLeadTime = 24 * time.Hour
	maxIdempotencyKeyLen  = 256

	constraintPrimaryKey = "bookings_pkey"
)

// Availability is the part of the availability service bookings rely on.
type Availability interface {
	GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error)
	ListSlots(ctx context.Context, q availability.SlotQuery) ([]domain.Slot, error)
}

// Busy resolves the intervals that block a provider's time.
type Busy interface {
	Resolve(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error)
}

type Service struct {
	repo     store.BookingRepository
	slots    Availability
	busy     Busy
	now      func() time.Time
	leadTime time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithCancelLeadTime sets how long before start a booking may still be
// cancelled or rescheduled.
func WithCancelLeadTime(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.leadTime = d
		}
	}
}

func NewService(repo store.BookingRepository, slots Availability, busy Busy, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		slots:    slots,
		busy:     busy,
		now:      time.Now,
		leadTime: DefaultCancelLeadTime,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	RequestID      uuid.UUID
	ResponseID     uuid.UUID
	ProviderUserID string
	StartAt        time.Time
	DurationMin    *int
	Note           string
	Metadata       domain.Metadata
	IdempotencyKey string
}

// Create books a slot for the client. The requested interval must be one the
// availability service currently offers; the overlap checks are repeated in
// the insert transaction and the database constraints have the final say.
func (s *Service) Create(ctx context.Context, clientID string, in CreateInput) (domain.Booking, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return domain.Booking{}, apperr.Validation("client_id is required")
	}
	if in.RequestID == uuid.Nil {
		return domain.Booking{}, apperr.Validation("requestId is required")
	}
	if in.ResponseID == uuid.Nil {
		return domain.Booking{}, apperr.Validation("responseId is required")
	}
	providerUserID := strings.TrimSpace(in.ProviderUserID)
	if providerUserID == "" {
		return domain.Booking{}, apperr.Validation("providerUserId is required")
	}

	now := s.now().UTC()
	start := in.StartAt.UTC()
	if !start.After(now) {
		return domain.Booking{}, apperr.Validation("startAt must be in the future")
	}
	note := strings.TrimSpace(in.Note)
	if len(note) > domain.MaxNoteLen {
		return domain.Booking{}, apperr.Validationf("note must not exceed %d characters", domain.MaxNoteLen)
	}
	if err := in.Metadata.Validate(); err != nil {
		return domain.Booking{}, apperr.Validation(err.Error())
	}

	profile, err := s.slots.GetAvailability(ctx, providerUserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, apperr.Conflict("slot not available")
	}
	if err != nil {
		return domain.Booking{}, err
	}

	durationMin := profile.SlotDurationMin
	if in.DurationMin != nil {
		durationMin = *in.DurationMin
	}
	if err := validateDuration(durationMin); err != nil {
		return domain.Booking{}, err
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	b := domain.Booking{
		RequestID:      in.RequestID,
		ResponseID:     in.ResponseID,
		ProviderUserID: providerUserID,
		ClientID:       clientID,
		StartAt:        start,
		EndAt:          end,
		DurationMin:    durationMin,
		Note:           note,
		Metadata:       in.Metadata,
		Status:         domain.BookingStatusConfirmed,
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		if len(key) > maxIdempotencyKeyLen {
			return domain.Booking{}, apperr.Validation("idempotency_key too long")
		}
		b.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("servicebook:create_booking:"+clientID+":"+key))

		existing, err := s.repo.GetBooking(ctx, b.ID)
		if err == nil {
			return replay(existing, b)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Booking{}, err
		}
	}

	if err := s.requireOfferedSlot(ctx, profile, b); err != nil {
		return domain.Booking{}, err
	}

	var created domain.Booking
	err = s.repo.InBookingTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		if err := requireFree(ctx, tx, providerUserID, start, end, uuid.Nil); err != nil {
			return err
		}
		inserted, err := tx.InsertBooking(ctx, b)
		if err != nil {
			return err
		}
		created = inserted
		return nil
	})
	if err == nil {
		return created, nil
	}

	var dup *store.DuplicateError
	switch {
	case errors.As(err, &dup) && dup.Constraint == constraintPrimaryKey && key != "":
		existing, getErr := s.repo.GetBooking(ctx, b.ID)
		if getErr != nil {
			return domain.Booking{}, getErr
		}
		return replay(existing, b)
	case errors.As(err, &dup):
		return domain.Booking{}, apperr.Conflict("booking already exists")
	case isConflictMessage(err):
		return domain.Booking{}, err
	case errors.Is(err, store.ErrConflict):
		return domain.Booking{}, apperr.Conflict("slot not available")
	}
	return domain.Booking{}, err
}

// requireOfferedSlot checks b against the slots offered on its
// provider-local day.
func (s *Service) requireOfferedSlot(ctx context.Context, profile domain.ProviderAvailability, b domain.Booking) error {
	loc, err := domain.LoadZone(profile.TimeZone)
	if err != nil {
		return apperr.Conflict("slot not available")
	}
	day := civil.DateOf(b.StartAt.In(loc))
	offered, err := s.slots.ListSlots(ctx, availability.SlotQuery{
		ProviderUserID: b.ProviderUserID,
		From:           &day,
		To:             &day,
		DurationMin:    b.DurationMin,
	})
	if err != nil {
		return err
	}
	for _, slot := range offered {
		if slot.StartAt.Equal(b.StartAt) && slot.EndAt.Equal(b.EndAt) {
			return nil
		}
	}
	return apperr.Conflict("slot not available")
}

// replay returns the booking created earlier under the same idempotency key,
// provided it describes the same request.
func replay(existing, want domain.Booking) (domain.Booking, error) {
	same := existing.ClientID == want.ClientID &&
		existing.RequestID == want.RequestID &&
		existing.ResponseID == want.ResponseID &&
		existing.ProviderUserID == want.ProviderUserID &&
		existing.StartAt.Equal(want.StartAt) &&
		existing.DurationMin == want.DurationMin
	if !same {
		return domain.Booking{}, store.ErrIdempotencyConflict
	}
	return existing, nil
}

func requireFree(ctx context.Context, tx store.BookingTx, providerUserID string, start, end time.Time, exclude uuid.UUID) error {
	bookings, err := tx.CountActiveBookingOverlaps(ctx, providerUserID, start, end, exclude)
	if err != nil {
		return err
	}
	blackouts, err := tx.CountActiveBlackoutOverlaps(ctx, providerUserID, start, end)
	if err != nil {
		return err
	}
	if bookings+blackouts > 0 {
		return apperr.Conflict("slot not available")
	}
	return nil
}

func validateDuration(min int) error {
	if min < domain.MinBookingDurationMin || min > domain.MaxBookingDurationMin {
		return apperr.Validationf("durationMin must be between %d and %d", domain.MinBookingDurationMin, domain.MaxBookingDurationMin)
	}
	return nil
}

func normalizeReason(reason *string) (*string, error) {
	if reason == nil {
		return nil, nil
	}
	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil, nil
	}
	if len(r) > domain.MaxReasonLen {
		return nil, apperr.Validationf("reason must not exceed %d characters", domain.MaxReasonLen)
	}
	return &r, nil
}

func isConflictMessage(err error) bool {
	var cErr *apperr.ConflictError
	return errors.As(err, &cErr)
}

func checkActor(a domain.Actor) error {
	if strings.TrimSpace(a.UserID) == "" || !a.Role.Valid() {
		return apperr.ErrAccessDenied
	}
	return nil
}

func leadTimeText(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
	return d.String()
}

// Get returns a booking visible to the actor.
func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.Booking, error) {
	b, err := s.load(ctx, actor, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if !b.CanManage(actor) {
		return domain.Booking{}, apperr.ErrAccessDenied
	}
	return b, nil
}

func (s *Service) load(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.Booking, error) {
	if err := checkActor(actor); err != nil {
		return domain.Booking{}, err
	}
	if bookingID == uuid.Nil {
		return domain.Booking{}, apperr.Validation("booking_id is required")
	}
	b, err := s.repo.GetBooking(ctx, bookingID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Booking{}, apperr.NotFound("booking")
	}
	return b, err
}
