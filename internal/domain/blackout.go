package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	MaxBlackoutSpan      = 60 * 24 * time.Hour
	MaxBlackoutReasonLen = 500
)

type ProviderBlackout struct {
	bun.BaseModel `bun:"table:provider_blackouts"`

	ID             uuid.UUID `bun:"id,pk,type:uuid"`
	ProviderUserID string    `bun:"provider_user_id,notnull"`
	StartAt        time.Time `bun:"start_at,notnull"`
	EndAt          time.Time `bun:"end_at,notnull"`
	Reason         string    `bun:"reason"`
	IsActive       bool      `bun:"is_active,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
	UpdatedAt      time.Time `bun:"updated_at,notnull"`
}

func (b *ProviderBlackout) BeforeAppendModel(ctx context.Context, query bun.Query) error {
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

func (b ProviderBlackout) Interval() Interval {
	return Interval{Start: b.StartAt, End: b.EndAt}
}
