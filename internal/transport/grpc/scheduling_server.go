package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"servicebook/backend/internal/apperr"
	"servicebook/backend/internal/domain"
	servicebookv1 "servicebook/backend/internal/gen/proto/servicebook/v1"
	"servicebook/backend/internal/service/availability"
	"servicebook/backend/internal/service/bookings"
	"servicebook/backend/internal/store"
)

type SchedulingServer struct {
	servicebookv1.UnimplementedSchedulingServiceServer

	avail    availabilityService
	bookings bookingsService
	log      *slog.Logger
}

type availabilityService interface {
	GetSlots(ctx context.Context, q availability.SlotQuery) ([]domain.Slot, error)
	ListSlots(ctx context.Context, q availability.SlotQuery) ([]domain.Slot, error)
	GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error)
	UpdateAvailability(ctx context.Context, providerUserID string, patch availability.AvailabilityPatch) (domain.ProviderAvailability, error)
	AddBlackout(ctx context.Context, providerUserID string, in availability.BlackoutInput) (domain.ProviderBlackout, error)
	RemoveBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error
	SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error)
	ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error)
}

type bookingsService interface {
	Create(ctx context.Context, clientID string, in bookings.CreateInput) (domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, bookingID uuid.UUID, reason *string) error
	Reschedule(ctx context.Context, actor domain.Actor, bookingID uuid.UUID, in bookings.RescheduleInput) (domain.Booking, error)
	Complete(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.Booking, error)
	History(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (domain.BookingHistory, error)
}

func NewSchedulingServer(avail availabilityService, bookingSvc bookingsService, log *slog.Logger) *SchedulingServer {
	if log == nil {
		log = slog.Default()
	}
	return &SchedulingServer{
		avail:    avail,
		bookings: bookingSvc,
		log:      log.With(slog.String("component", "grpc.scheduling")),
	}
}

func (s *SchedulingServer) GetSlots(ctx context.Context, req *servicebookv1.GetSlotsRequest) (*servicebookv1.GetSlotsResponse, error) {
	log := s.log.With(slog.String("rpc", "GetSlots"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	q := availability.SlotQuery{
		ProviderUserID: req.ProviderUserId,
		TimeZone:       req.TimeZone,
		DurationMin:    int(req.DurationMin),
	}
	var err error
	if q.From, err = parseDay(req.From); err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_from"))
		return nil, status.Error(codes.InvalidArgument, "from must be YYYY-MM-DD")
	}
	if q.To, err = parseDay(req.To); err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_to"))
		return nil, status.Error(codes.InvalidArgument, "to must be YYYY-MM-DD")
	}

	var slots []domain.Slot
	if req.DurationMin != 0 {
		slots, err = s.avail.ListSlots(ctx, q)
	} else {
		slots, err = s.avail.GetSlots(ctx, q)
	}
	if err != nil {
		return nil, s.fail(log, "slots list", err)
	}

	out := make([]*servicebookv1.Slot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, toProtoSlot(slot))
	}

	log.Debug("slots listed", slog.Int("count", len(out)))
	return &servicebookv1.GetSlotsResponse{Slots: out}, nil
}

func (s *SchedulingServer) GetAvailability(ctx context.Context, req *servicebookv1.GetAvailabilityRequest) (*servicebookv1.GetAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "GetAvailability"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	a, err := s.avail.GetAvailability(ctx, req.ProviderUserId)
	if err != nil {
		return nil, s.fail(log, "availability get", err)
	}
	return &servicebookv1.GetAvailabilityResponse{Availability: toProtoAvailability(a)}, nil
}

func (s *SchedulingServer) UpdateAvailability(ctx context.Context, req *servicebookv1.UpdateAvailabilityRequest) (*servicebookv1.UpdateAvailabilityResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAvailability"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	if err := s.requireProviderAccess(ctx, log, req.ProviderUserId); err != nil {
		return nil, err
	}

	patch := availability.AvailabilityPatch{
		TimeZone:        req.TimeZone,
		SlotDurationMin: optionalInt(req.SlotDurationMin),
		BufferMin:       optionalInt(req.BufferMin),
		IsActive:        req.IsActive,
	}
	if req.Weekly != nil {
		weekly := fromProtoWeekly(req.Weekly.Days)
		patch.Weekly = &weekly
	}

	a, err := s.avail.UpdateAvailability(ctx, req.ProviderUserId, patch)
	if err != nil {
		return nil, s.fail(log, "availability update", err)
	}

	log.Info("availability updated", slog.Bool("is_active", a.IsActive), slog.String("time_zone", a.TimeZone))
	return &servicebookv1.UpdateAvailabilityResponse{Availability: toProtoAvailability(a)}, nil
}

func (s *SchedulingServer) AddBlackout(ctx context.Context, req *servicebookv1.AddBlackoutRequest) (*servicebookv1.AddBlackoutResponse, error) {
	log := s.log.With(slog.String("rpc", "AddBlackout"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	if err := s.requireProviderAccess(ctx, log, req.ProviderUserId); err != nil {
		return nil, err
	}
	if req.StartAt == nil || req.EndAt == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"))
		return nil, status.Error(codes.InvalidArgument, "start_at and end_at are required")
	}

	b, err := s.avail.AddBlackout(ctx, req.ProviderUserId, availability.BlackoutInput{
		StartAt:  req.StartAt.AsTime(),
		EndAt:    req.EndAt.AsTime(),
		Reason:   req.Reason,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, s.fail(log, "blackout add", err)
	}

	log.Info(
		"blackout added",
		slog.String("blackout_id", b.ID.String()),
		slog.Time("start_at", b.StartAt),
		slog.Time("end_at", b.EndAt),
	)
	return &servicebookv1.AddBlackoutResponse{Blackout: toProtoBlackout(b)}, nil
}

func (s *SchedulingServer) RemoveBlackout(ctx context.Context, req *servicebookv1.RemoveBlackoutRequest) (*servicebookv1.RemoveBlackoutResponse, error) {
	log := s.log.With(slog.String("rpc", "RemoveBlackout"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	if err := s.requireProviderAccess(ctx, log, req.ProviderUserId); err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BlackoutId, "blackout_id")
	if err != nil {
		return nil, err
	}

	if err := s.avail.RemoveBlackout(ctx, req.ProviderUserId, id); err != nil {
		return nil, s.fail(log, "blackout remove", err, slog.String("blackout_id", id.String()))
	}

	log.Info("blackout removed", slog.String("blackout_id", id.String()))
	return &servicebookv1.RemoveBlackoutResponse{}, nil
}

func (s *SchedulingServer) SetBlackoutActive(ctx context.Context, req *servicebookv1.SetBlackoutActiveRequest) (*servicebookv1.SetBlackoutActiveResponse, error) {
	log := s.log.With(slog.String("rpc", "SetBlackoutActive"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	if err := s.requireProviderAccess(ctx, log, req.ProviderUserId); err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BlackoutId, "blackout_id")
	if err != nil {
		return nil, err
	}

	b, err := s.avail.SetBlackoutActive(ctx, req.ProviderUserId, id, req.IsActive)
	if err != nil {
		return nil, s.fail(log, "blackout update", err, slog.String("blackout_id", id.String()))
	}

	log.Info("blackout updated", slog.String("blackout_id", id.String()), slog.Bool("is_active", b.IsActive))
	return &servicebookv1.SetBlackoutActiveResponse{Blackout: toProtoBlackout(b)}, nil
}

func (s *SchedulingServer) ListBlackouts(ctx context.Context, req *servicebookv1.ListBlackoutsRequest) (*servicebookv1.ListBlackoutsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListBlackouts"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	if err := s.requireProviderAccess(ctx, log, req.ProviderUserId); err != nil {
		return nil, err
	}

	var window *domain.Interval
	if req.WindowStart != nil || req.WindowEnd != nil {
		if req.WindowStart == nil || req.WindowEnd == nil {
			log.Warn("invalid request", slog.String("reason", "partial_window"))
			return nil, status.Error(codes.InvalidArgument, "window_start and window_end must be given together")
		}
		window = &domain.Interval{Start: req.WindowStart.AsTime(), End: req.WindowEnd.AsTime()}
	}

	list, err := s.avail.ListBlackouts(ctx, req.ProviderUserId, window)
	if err != nil {
		return nil, s.fail(log, "blackouts list", err)
	}

	out := make([]*servicebookv1.Blackout, 0, len(list))
	for _, b := range list {
		out = append(out, toProtoBlackout(b))
	}
	log.Debug("blackouts listed", slog.Int("count", len(out)))
	return &servicebookv1.ListBlackoutsResponse{Blackouts: out}, nil
}

func (s *SchedulingServer) CreateBooking(ctx context.Context, req *servicebookv1.CreateBookingRequest) (*servicebookv1.CreateBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateBooking"))

	if req == nil {
		return nil, nilRequest(log)
	}
	log = log.With(slog.String("provider_user_id", req.ProviderUserId))

	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleClient {
		log.Info("access denied", slog.String("user_id", actor.UserID), slog.String("role", string(actor.Role)))
		return nil, status.Error(codes.PermissionDenied, "only clients can create bookings")
	}
	requestID, err := parseID(log, req.RequestId, "request_id")
	if err != nil {
		return nil, err
	}
	responseID, err := parseID(log, req.ResponseId, "response_id")
	if err != nil {
		return nil, err
	}
	if req.StartAt == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start"))
		return nil, status.Error(codes.InvalidArgument, "start_at is required")
	}
	meta, err := fromProtoMetadata(req.Metadata)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_metadata"), slog.Any("err", err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	b, err := s.bookings.Create(ctx, actor.UserID, bookings.CreateInput{
		RequestID:      requestID,
		ResponseID:     responseID,
		ProviderUserID: req.ProviderUserId,
		StartAt:        req.StartAt.AsTime(),
		DurationMin:    optionalInt(req.DurationMin),
		Note:           req.Note,
		Metadata:       meta,
		IdempotencyKey: idempotencyKey(ctx),
	})
	if err != nil {
		return nil, s.fail(log, "booking create", err, slog.String("client_id", actor.UserID), slog.Time("start_at", req.StartAt.AsTime()))
	}

	log.Info(
		"booking created",
		slog.String("booking_id", b.ID.String()),
		slog.String("client_id", b.ClientID),
		slog.Time("start_at", b.StartAt),
		slog.Time("end_at", b.EndAt),
	)
	return &servicebookv1.CreateBookingResponse{Booking: toProtoBooking(b)}, nil
}

func (s *SchedulingServer) CancelBooking(ctx context.Context, req *servicebookv1.CancelBookingRequest) (*servicebookv1.CancelBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "CancelBooking"))

	if req == nil {
		return nil, nilRequest(log)
	}
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BookingId, "booking_id")
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Cancel(ctx, actor, id, req.Reason); err != nil {
		return nil, s.fail(log, "booking cancel", err, slog.String("booking_id", id.String()), slog.String("user_id", actor.UserID))
	}

	log.Info("booking cancelled", slog.String("booking_id", id.String()), slog.String("role", string(actor.Role)))
	return &servicebookv1.CancelBookingResponse{}, nil
}

func (s *SchedulingServer) RescheduleBooking(ctx context.Context, req *servicebookv1.RescheduleBookingRequest) (*servicebookv1.RescheduleBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "RescheduleBooking"))

	if req == nil {
		return nil, nilRequest(log)
	}
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BookingId, "booking_id")
	if err != nil {
		return nil, err
	}
	if req.StartAt == nil {
		log.Warn("invalid request", slog.String("reason", "missing_start"))
		return nil, status.Error(codes.InvalidArgument, "start_at is required")
	}

	b, err := s.bookings.Reschedule(ctx, actor, id, bookings.RescheduleInput{
		StartAt:     req.StartAt.AsTime(),
		DurationMin: optionalInt(req.DurationMin),
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, s.fail(log, "booking reschedule", err, slog.String("booking_id", id.String()), slog.String("user_id", actor.UserID))
	}

	log.Info(
		"booking rescheduled",
		slog.String("booking_id", id.String()),
		slog.String("successor_id", b.ID.String()),
		slog.Time("start_at", b.StartAt),
	)
	return &servicebookv1.RescheduleBookingResponse{Booking: toProtoBooking(b)}, nil
}

func (s *SchedulingServer) CompleteBooking(ctx context.Context, req *servicebookv1.CompleteBookingRequest) (*servicebookv1.CompleteBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "CompleteBooking"))

	if req == nil {
		return nil, nilRequest(log)
	}
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BookingId, "booking_id")
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.Complete(ctx, actor, id)
	if err != nil {
		return nil, s.fail(log, "booking complete", err, slog.String("booking_id", id.String()), slog.String("user_id", actor.UserID))
	}

	log.Info("booking completed", slog.String("booking_id", id.String()))
	return &servicebookv1.CompleteBookingResponse{Booking: toProtoBooking(b)}, nil
}

func (s *SchedulingServer) GetBooking(ctx context.Context, req *servicebookv1.GetBookingRequest) (*servicebookv1.GetBookingResponse, error) {
	log := s.log.With(slog.String("rpc", "GetBooking"))

	if req == nil {
		return nil, nilRequest(log)
	}
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BookingId, "booking_id")
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.Get(ctx, actor, id)
	if err != nil {
		return nil, s.fail(log, "booking get", err, slog.String("booking_id", id.String()), slog.String("user_id", actor.UserID))
	}
	return &servicebookv1.GetBookingResponse{Booking: toProtoBooking(b)}, nil
}

func (s *SchedulingServer) GetBookingHistory(ctx context.Context, req *servicebookv1.GetBookingHistoryRequest) (*servicebookv1.GetBookingHistoryResponse, error) {
	log := s.log.With(slog.String("rpc", "GetBookingHistory"))

	if req == nil {
		return nil, nilRequest(log)
	}
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return nil, err
	}
	id, err := parseID(log, req.BookingId, "booking_id")
	if err != nil {
		return nil, err
	}

	h, err := s.bookings.History(ctx, actor, id)
	if err != nil {
		return nil, s.fail(log, "booking history", err, slog.String("booking_id", id.String()), slog.String("user_id", actor.UserID))
	}

	log.Debug("booking history resolved", slog.String("root_id", h.RootID.String()), slog.Int("count", len(h.Items)))
	return toProtoHistory(h), nil
}

// fail maps a service error onto a status and logs it at a level matching
// its kind.
func (s *SchedulingServer) fail(log *slog.Logger, op string, err error, attrs ...any) error {
	args := append([]any{slog.Any("err", err)}, attrs...)

	var cErr *apperr.ConflictError
	switch {
	case apperr.IsValidation(err):
		log.Warn("invalid request", args...)
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, apperr.ErrAccessDenied):
		log.Info(op+" access denied", args...)
		return status.Error(codes.PermissionDenied, "access denied")
	case errors.Is(err, store.ErrNotFound):
		log.Info(op+" not found", args...)
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, store.ErrIdempotencyConflict):
		log.Info(op+" idempotency conflict", args...)
		return status.Error(codes.FailedPrecondition, "This request key was already used for a different booking. Try again.")
	case errors.As(err, &cErr):
		log.Info(op+" conflict", args...)
		return status.Error(codes.FailedPrecondition, cErr.Error())
	case errors.Is(err, store.ErrConflict):
		log.Info(op+" conflict", args...)
		return status.Error(codes.FailedPrecondition, "The booking changed in the meantime. Refresh and try again.")
	}
	log.Error(op+" failed", args...)
	return status.Error(codes.Internal, "internal error")
}

func nilRequest(log *slog.Logger) error {
	log.Warn("invalid request", slog.String("reason", "nil_request"))
	return status.Error(codes.InvalidArgument, "request is required")
}

func (s *SchedulingServer) requireActor(ctx context.Context, log *slog.Logger) (domain.Actor, error) {
	actor, ok := actorFromContext(ctx)
	if !ok {
		log.Warn("unauthenticated", slog.String("reason", "missing_actor"))
		return domain.Actor{}, status.Error(codes.Unauthenticated, "x-user-id and x-user-role are required")
	}
	return actor, nil
}

// requireProviderAccess allows the provider itself or an admin.
func (s *SchedulingServer) requireProviderAccess(ctx context.Context, log *slog.Logger, providerUserID string) error {
	actor, err := s.requireActor(ctx, log)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleProvider && actor.UserID == strings.TrimSpace(providerUserID) {
		return nil
	}
	log.Info("access denied", slog.String("user_id", actor.UserID), slog.String("role", string(actor.Role)))
	return status.Error(codes.PermissionDenied, "access denied")
}

func actorFromContext(ctx context.Context) (domain.Actor, bool) {
	id := firstHeader(ctx, "x-user-id")
	role := domain.Role(strings.ToLower(firstHeader(ctx, "x-user-role")))
	if id == "" || !role.Valid() {
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: id, Role: role}, true
}

func idempotencyKey(ctx context.Context) string {
	if key := firstHeader(ctx, "idempotency-key"); key != "" {
		return key
	}
	return firstHeader(ctx, "x-idempotency-key")
}

func firstHeader(ctx context.Context, name string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(name)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func parseID(log *slog.Logger, raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("field", field))
		return uuid.Nil, status.Error(codes.InvalidArgument, field+" must be a UUID")
	}
	return id, nil
}

func parseDay(raw string) (*civil.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
