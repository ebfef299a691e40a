package grpc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"servicebook/backend/internal/domain"
	servicebookv1 "servicebook/backend/internal/gen/proto/servicebook/v1"
)

func toProtoSlot(s domain.Slot) *servicebookv1.Slot {
	return &servicebookv1.Slot{
		StartAt: timestamppb.New(s.StartAt),
		EndAt:   timestamppb.New(s.EndAt),
	}
}

func toProtoAvailability(a domain.ProviderAvailability) *servicebookv1.Availability {
	return &servicebookv1.Availability{
		ProviderUserId:  a.ProviderUserID,
		TimeZone:        a.TimeZone,
		SlotDurationMin: int32(a.SlotDurationMin),
		BufferMin:       int32(a.BufferMin),
		IsActive:        a.IsActive,
		Weekly:          toProtoWeekly(a.Weekly),
		UpdatedAt:       optionalTimestamp(a.UpdatedAt),
	}
}

func toProtoWeekly(days []domain.WeeklyDay) []*servicebookv1.WeeklyDay {
	out := make([]*servicebookv1.WeeklyDay, 0, len(days))
	for _, d := range days {
		ranges := make([]*servicebookv1.TimeRange, 0, len(d.Ranges))
		for _, r := range d.Ranges {
			ranges = append(ranges, &servicebookv1.TimeRange{Start: r.Start, End: r.End})
		}
		out = append(out, &servicebookv1.WeeklyDay{DayOfWeek: int32(d.DayOfWeek), Ranges: ranges})
	}
	return out
}

// fromProtoWeekly never returns nil so an empty schedule clears the template.
func fromProtoWeekly(days []*servicebookv1.WeeklyDay) []domain.WeeklyDay {
	out := make([]domain.WeeklyDay, 0, len(days))
	for _, d := range days {
		if d == nil {
			continue
		}
		ranges := make([]domain.TimeRange, 0, len(d.Ranges))
		for _, r := range d.Ranges {
			if r == nil {
				continue
			}
			ranges = append(ranges, domain.TimeRange{Start: r.Start, End: r.End})
		}
		out = append(out, domain.WeeklyDay{DayOfWeek: int(d.DayOfWeek), Ranges: ranges})
	}
	return out
}

func toProtoBlackout(b domain.ProviderBlackout) *servicebookv1.Blackout {
	return &servicebookv1.Blackout{
		Id:             b.ID.String(),
		ProviderUserId: b.ProviderUserID,
		StartAt:        timestamppb.New(b.StartAt),
		EndAt:          timestamppb.New(b.EndAt),
		Reason:         b.Reason,
		IsActive:       b.IsActive,
	}
}

func toProtoBooking(b domain.Booking) *servicebookv1.Booking {
	out := &servicebookv1.Booking{
		Id:                b.ID.String(),
		RequestId:         b.RequestID.String(),
		ResponseId:        b.ResponseID.String(),
		ProviderUserId:    b.ProviderUserID,
		ClientId:          b.ClientID,
		StartAt:           timestamppb.New(b.StartAt),
		EndAt:             timestamppb.New(b.EndAt),
		DurationMin:       int32(b.DurationMin),
		Note:              b.Note,
		Metadata:          toProtoMetadata(b.Metadata),
		Status:            toProtoStatus(b.Status),
		CancelledAt:       optionalTimestampPtr(b.CancelledAt),
		CancelReason:      b.CancelReason,
		CompletedAt:       optionalTimestampPtr(b.CompletedAt),
		RescheduledFromId: optionalID(b.RescheduledFromID),
		RescheduledToId:   optionalID(b.RescheduledToID),
		RescheduledAt:     optionalTimestampPtr(b.RescheduledAt),
		RescheduleReason:  b.RescheduleReason,
		CreatedAt:         optionalTimestamp(b.CreatedAt),
	}
	if b.CancelledBy != nil {
		out.CancelledBy = toProtoRole(*b.CancelledBy)
	}
	return out
}

func toProtoHistory(h domain.BookingHistory) *servicebookv1.GetBookingHistoryResponse {
	items := make([]*servicebookv1.Booking, 0, len(h.Items))
	for _, b := range h.Items {
		items = append(items, toProtoBooking(b))
	}
	return &servicebookv1.GetBookingHistoryResponse{
		RootId:       h.RootID.String(),
		RequestedId:  h.RequestedID.String(),
		LatestId:     h.LatestID.String(),
		CurrentIndex: int32(h.CurrentIndex),
		Items:        items,
	}
}

func toProtoStatus(s domain.BookingStatus) servicebookv1.BookingStatus {
	switch s {
	case domain.BookingStatusConfirmed:
		return servicebookv1.BookingStatus_BOOKING_STATUS_CONFIRMED
	case domain.BookingStatusCancelled:
		return servicebookv1.BookingStatus_BOOKING_STATUS_CANCELLED
	case domain.BookingStatusCompleted:
		return servicebookv1.BookingStatus_BOOKING_STATUS_COMPLETED
	}
	return servicebookv1.BookingStatus_BOOKING_STATUS_UNSPECIFIED
}

func toProtoRole(r domain.Role) servicebookv1.Role {
	switch r {
	case domain.RoleClient:
		return servicebookv1.Role_ROLE_CLIENT
	case domain.RoleProvider:
		return servicebookv1.Role_ROLE_PROVIDER
	case domain.RoleAdmin:
		return servicebookv1.Role_ROLE_ADMIN
	}
	return servicebookv1.Role_ROLE_UNSPECIFIED
}

func toProtoMetadata(m domain.Metadata) map[string]*servicebookv1.MetadataValue {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]*servicebookv1.MetadataValue, len(m))
	for k, v := range m {
		switch v.Kind() {
		case domain.MetaString:
			s, _ := v.Str()
			out[k] = &servicebookv1.MetadataValue{Kind: &servicebookv1.MetadataValue_StringValue{StringValue: s}}
		case domain.MetaInt:
			i, _ := v.Int()
			out[k] = &servicebookv1.MetadataValue{Kind: &servicebookv1.MetadataValue_IntValue{IntValue: i}}
		case domain.MetaBool:
			b, _ := v.Bool()
			out[k] = &servicebookv1.MetadataValue{Kind: &servicebookv1.MetadataValue_BoolValue{BoolValue: b}}
		}
	}
	return out
}

func fromProtoMetadata(m map[string]*servicebookv1.MetadataValue) (domain.Metadata, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(domain.Metadata, len(m))
	for k, v := range m {
		switch kind := v.GetKind().(type) {
		case *servicebookv1.MetadataValue_StringValue:
			out[k] = domain.StringValue(kind.StringValue)
		case *servicebookv1.MetadataValue_IntValue:
			out[k] = domain.IntValue(kind.IntValue)
		case *servicebookv1.MetadataValue_BoolValue:
			out[k] = domain.BoolValue(kind.BoolValue)
		default:
			return nil, fmt.Errorf("metadata %q has no value", k)
		}
	}
	return out, nil
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func optionalTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func optionalTimestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
