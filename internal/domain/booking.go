package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	MinBookingDurationMin = 15
	MaxBookingDurationMin = 1440
	MaxNoteLen            = 1000
	MaxReasonLen          = 500
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses count toward the no-overlap and one-per-request invariants.
var ActiveStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusCompleted}

func (s BookingStatus) Active() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCompleted
}

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Actor is the already-authenticated caller of a lifecycle operation.
type Actor struct {
	UserID string
	Role   Role
}

type Booking struct {
	bun.BaseModel `bun:"table:bookings"`

	ID                uuid.UUID     `bun:"id,pk,type:uuid"`
	RequestID         uuid.UUID     `bun:"request_id,notnull,type:uuid"`
	ResponseID        uuid.UUID     `bun:"response_id,notnull,type:uuid"`
	ProviderUserID    string        `bun:"provider_user_id,notnull"`
	ClientID          string        `bun:"client_id,notnull"`
	StartAt           time.Time     `bun:"start_at,notnull"`
	EndAt             time.Time     `bun:"end_at,notnull"`
	DurationMin       int           `bun:"duration_min,notnull"`
	Note              string        `bun:"note"`
	Metadata          Metadata      `bun:"metadata,type:jsonb"`
	Status            BookingStatus `bun:"status,notnull"`
	CancelledAt       *time.Time    `bun:"cancelled_at"`
	CancelledBy       *Role         `bun:"cancelled_by"`
	CancelReason      *string       `bun:"cancel_reason"`
	CompletedAt       *time.Time    `bun:"completed_at"`
	RescheduledFromID *uuid.UUID    `bun:"rescheduled_from_id,type:uuid"`
	RescheduledToID   *uuid.UUID    `bun:"rescheduled_to_id,type:uuid"`
	RescheduledAt     *time.Time    `bun:"rescheduled_at"`
	RescheduleReason  *string       `bun:"reschedule_reason"`
	CreatedAt         time.Time     `bun:"created_at,notnull"`
	UpdatedAt         time.Time     `bun:"updated_at,notnull"`
}

func (b *Booking) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if b.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			b.ID = id
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		if b.UpdatedAt.IsZero() {
			b.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		b.UpdatedAt = now
	}
	return nil
}

func (b Booking) Interval() Interval {
	return Interval{Start: b.StartAt, End: b.EndAt}
}

// Participant reports whether the actor is the booking's client or provider.
func (b Booking) Participant(a Actor) bool {
	switch a.Role {
	case RoleClient:
		return a.UserID == b.ClientID
	case RoleProvider:
		return a.UserID == b.ProviderUserID
	}
	return false
}

// CanManage allows the owning client, the owning provider, or an admin.
func (b Booking) CanManage(a Actor) bool {
	return a.Role == RoleAdmin || b.Participant(a)
}

// CanComplete allows the owning provider or an admin.
func (b Booking) CanComplete(a Actor) bool {
	return a.Role == RoleAdmin || (a.Role == RoleProvider && a.UserID == b.ProviderUserID)
}
