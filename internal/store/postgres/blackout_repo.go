package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

type BlackoutRepo struct {
	db *bun.DB
}

func NewBlackoutRepo(db *bun.DB) *BlackoutRepo {
	return &BlackoutRepo{db: db}
}

func (r *BlackoutRepo) CreateBlackout(ctx context.Context, b domain.ProviderBlackout) (domain.ProviderBlackout, error) {
	m := b
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.ProviderBlackout{}, translateError(err)
	}
	return m, nil
}

func (r *BlackoutRepo) DeleteBlackout(ctx context.Context, providerUserID string, blackoutID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.ProviderBlackout)(nil)).
		Where("provider_user_id = ?", providerUserID).
		Where("id = ?", blackoutID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *BlackoutRepo) SetBlackoutActive(ctx context.Context, providerUserID string, blackoutID uuid.UUID, active bool) (domain.ProviderBlackout, error) {
	res, err := r.db.NewUpdate().
		Model((*domain.ProviderBlackout)(nil)).
		Set("is_active = ?", active).
		Set("updated_at = ?", time.Now().UTC()).
		Where("provider_user_id = ?", providerUserID).
		Where("id = ?", blackoutID).
		Exec(ctx)
	if err != nil {
		return domain.ProviderBlackout{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.ProviderBlackout{}, err
	}
	if affected == 0 {
		return domain.ProviderBlackout{}, store.ErrNotFound
	}

	var row domain.ProviderBlackout
	err = r.db.NewSelect().
		Model(&row).
		Where("id = ?", blackoutID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.ProviderBlackout{}, translateError(err)
	}
	return row, nil
}

func (r *BlackoutRepo) ListBlackouts(ctx context.Context, providerUserID string, window *domain.Interval) ([]domain.ProviderBlackout, error) {
	var rows []domain.ProviderBlackout
	q := r.db.NewSelect().
		Model(&rows).
		Where("provider_user_id = ?", providerUserID)
	if window != nil {
		q = q.Where("start_at < ?", window.End).Where("end_at > ?", window.Start)
	}
	if err := q.OrderExpr("start_at ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BlackoutRepo) ListActiveBlackoutIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	var rows []domain.ProviderBlackout
	err := r.db.NewSelect().
		Model(&rows).
		Column("start_at", "end_at").
		Where("provider_user_id = ?", providerUserID).
		Where("is_active").
		Where("start_at < ?", windowEnd).
		Where("end_at > ?", windowStart).
		OrderExpr("start_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Interval, 0, len(rows))
	for _, b := range rows {
		out = append(out, b.Interval())
	}
	return out, nil
}
