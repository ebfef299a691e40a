package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"servicebook/backend/internal/domain"
)

type AvailabilityRepo struct {
	db *bun.DB
}

func NewAvailabilityRepo(db *bun.DB) *AvailabilityRepo {
	return &AvailabilityRepo{db: db}
}

func (r *AvailabilityRepo) GetAvailability(ctx context.Context, providerUserID string) (domain.ProviderAvailability, error) {
	var row domain.ProviderAvailability
	err := r.db.NewSelect().
		Model(&row).
		Where("provider_user_id = ?", providerUserID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.ProviderAvailability{}, translateError(err)
	}
	return row, nil
}

func (r *AvailabilityRepo) UpsertAvailability(ctx context.Context, a domain.ProviderAvailability) (domain.ProviderAvailability, error) {
	m := a
	_, err := r.db.NewInsert().
		Model(&m).
		On("CONFLICT (provider_user_id) DO UPDATE").
		Set("time_zone = EXCLUDED.time_zone").
		Set("slot_duration_min = EXCLUDED.slot_duration_min").
		Set("buffer_min = EXCLUDED.buffer_min").
		Set("is_active = EXCLUDED.is_active").
		Set("weekly = EXCLUDED.weekly").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return domain.ProviderAvailability{}, translateError(err)
	}
	return r.GetAvailability(ctx, a.ProviderUserID)
}

type providerProfile struct {
	bun.BaseModel `bun:"table:provider_profiles"`

	UserID string `bun:"user_id,pk"`
}

// ProviderDirectory answers existence checks against the marketplace's
// provider profiles.
type ProviderDirectory struct {
	db *bun.DB
}

func NewProviderDirectory(db *bun.DB) *ProviderDirectory {
	return &ProviderDirectory{db: db}
}

func (d *ProviderDirectory) ProviderExists(ctx context.Context, providerUserID string) (bool, error) {
	return d.db.NewSelect().
		Model((*providerProfile)(nil)).
		Where("user_id = ?", providerUserID).
		Exists(ctx)
}
