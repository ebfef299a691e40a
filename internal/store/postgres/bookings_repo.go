package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"servicebook/backend/internal/domain"
	"servicebook/backend/internal/store"
)

type BookingRepo struct {
	db *bun.DB
}

func NewBookingRepo(db *bun.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingTx struct {
	tx bun.Tx
}

// bun.DB and bun.Tx both satisfy this, so reads are shared between the
// repository and its transactions.
type queryer interface {
	NewSelect() *bun.SelectQuery
	NewUpdate() *bun.UpdateQuery
}

func (r *BookingRepo) InBookingTransaction(ctx context.Context, fn func(ctx context.Context, tx store.BookingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, bookingTx{tx: tx})
	})
}

func (r *BookingRepo) GetBooking(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	return getBooking(ctx, r.db, bookingID, false)
}

func (r *BookingRepo) ListActiveBookingIntervals(ctx context.Context, providerUserID string, windowStart, windowEnd time.Time, exclude uuid.UUID) ([]domain.Interval, error) {
	var rows []domain.Booking
	err := activeOverlapQuery(r.db.NewSelect().Model(&rows), providerUserID, windowStart, windowEnd, exclude).
		Column("start_at", "end_at").
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

func (r *BookingRepo) SaveCancellation(ctx context.Context, b domain.Booking, loaded domain.BookingStatus) (bool, error) {
	m := b
	res, err := r.db.NewUpdate().
		Model(&m).
		Column("status", "cancelled_at", "cancelled_by", "cancel_reason", "updated_at").
		WherePK().
		Where("status = ?", loaded).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	return affectedAny(res)
}

func (r *BookingRepo) CancelIfConfirmed(ctx context.Context, bookingID uuid.UUID, c store.Cancellation) (bool, error) {
	res, err := cancelQuery(r.db, bookingID, c).Exec(ctx)
	if err != nil {
		return false, err
	}
	return affectedAny(res)
}

func (r *BookingRepo) CompleteIfConfirmed(ctx context.Context, bookingID uuid.UUID, at time.Time) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*domain.Booking)(nil)).
		Set("status = ?", domain.BookingStatusCompleted).
		Set("completed_at = ?", at).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", bookingID).
		Where("status = ?", domain.BookingStatusConfirmed).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	return affectedAny(res)
}

func (r *BookingRepo) FindSuccessor(ctx context.Context, predecessorID uuid.UUID) (domain.Booking, error) {
	var row domain.Booking
	err := r.db.NewSelect().
		Model(&row).
		Where("rescheduled_from_id = ?", predecessorID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Booking{}, translateError(err)
	}
	return row, nil
}

func (r *BookingRepo) FindActiveBySlot(ctx context.Context, requestID, responseID uuid.UUID, startAt time.Time) (domain.Booking, error) {
	var row domain.Booking
	err := r.db.NewSelect().
		Model(&row).
		Where("request_id = ?", requestID).
		Where("response_id = ?", responseID).
		Where("start_at = ?", startAt).
		Where("status IN (?)", bun.In(domain.ActiveStatuses)).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Booking{}, translateError(err)
	}
	return row, nil
}

func (r *BookingRepo) ListLineage(ctx context.Context, key store.LineageKey) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.NewSelect().
		Model(&rows).
		Where("request_id = ?", key.RequestID).
		Where("response_id = ?", key.ResponseID).
		Where("provider_user_id = ?", key.ProviderUserID).
		Where("client_id = ?", key.ClientID).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t bookingTx) GetBookingForUpdate(ctx context.Context, bookingID uuid.UUID) (domain.Booking, error) {
	return getBooking(ctx, t.tx, bookingID, true)
}

func (t bookingTx) CountActiveBookingOverlaps(ctx context.Context, providerUserID string, start, end time.Time, exclude uuid.UUID) (int, error) {
	return activeOverlapQuery(t.tx.NewSelect().Model((*domain.Booking)(nil)), providerUserID, start, end, exclude).Count(ctx)
}

func (t bookingTx) CountActiveBlackoutOverlaps(ctx context.Context, providerUserID string, start, end time.Time) (int, error) {
	return t.tx.NewSelect().
		Model((*domain.ProviderBlackout)(nil)).
		Where("provider_user_id = ?", providerUserID).
		Where("is_active").
		Where("start_at < ?", end).
		Where("end_at > ?", start).
		Count(ctx)
}

func (t bookingTx) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	m := b
	if m.Metadata == nil {
		m.Metadata = domain.Metadata{}
	}
	if _, err := t.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Booking{}, translateError(err)
	}
	return m, nil
}

func (t bookingTx) MarkRescheduled(ctx context.Context, bookingID uuid.UUID, c store.Cancellation, reason *string) error {
	res, err := cancelQuery(t.tx, bookingID, c).
		Set("rescheduled_at = ?", c.At).
		Set("reschedule_reason = ?", reason).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res, store.ErrConflict)
}

func (t bookingTx) SetRescheduledTo(ctx context.Context, bookingID, successorID uuid.UUID) error {
	res, err := t.tx.NewUpdate().
		Model((*domain.Booking)(nil)).
		Set("rescheduled_to_id = ?", successorID).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", bookingID).
		Where("rescheduled_to_id IS NULL").
		Exec(ctx)
	if err != nil {
		return translateError(err)
	}
	return requireAffected(res, store.ErrConflict)
}

func getBooking(ctx context.Context, q queryer, bookingID uuid.UUID, forUpdate bool) (domain.Booking, error) {
	var row domain.Booking
	sel := q.NewSelect().
		Model(&row).
		Where("id = ?", bookingID).
		Limit(1)
	if forUpdate {
		sel = sel.For("UPDATE")
	}
	if err := sel.Scan(ctx); err != nil {
		return domain.Booking{}, translateError(err)
	}
	return row, nil
}

func activeOverlapQuery(q *bun.SelectQuery, providerUserID string, start, end time.Time, exclude uuid.UUID) *bun.SelectQuery {
	q = q.Where("provider_user_id = ?", providerUserID).
		Where("status IN (?)", bun.In(domain.ActiveStatuses)).
		Where("start_at < ?", end).
		Where("end_at > ?", start)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	return q
}

func cancelQuery(q queryer, bookingID uuid.UUID, c store.Cancellation) *bun.UpdateQuery {
	return q.NewUpdate().
		Model((*domain.Booking)(nil)).
		Set("status = ?", domain.BookingStatusCancelled).
		Set("cancelled_at = ?", c.At).
		Set("cancelled_by = ?", c.By).
		Set("cancel_reason = ?", c.Reason).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", bookingID).
		Where("status = ?", domain.BookingStatusConfirmed)
}

func affectedAny(res sql.Result) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func requireAffected(res sql.Result, otherwise error) error {
	ok, err := affectedAny(res)
	if err != nil {
		return err
	}
	if !ok {
		return otherwise
	}
	return nil
}
