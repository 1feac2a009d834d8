package postgres

import (
	"context"

	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type OutboxRepo struct {
	db *bun.DB
}

func NewOutboxRepo(db *bun.DB) *OutboxRepo {
	return &OutboxRepo{db: db}
}

var _ store.OutboxRepository = (*OutboxRepo)(nil)

type outboxTx struct {
	tx bun.Tx
}

func (r *OutboxRepo) InOutboxTransaction(ctx context.Context, fn func(ctx context.Context, tx store.OutboxTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, outboxTx{tx: tx})
	})
}

// FetchUnpublished claims up to limit pending events. Rows locked by a concurrent
// publisher are skipped.
func (r outboxTx) FetchUnpublished(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	var rows []domain.OutboxEvent
	err := r.tx.NewSelect().
		Model(&rows).
		Where("published_at IS NULL").
		OrderExpr("id ASC").
		Limit(limit).
		For("UPDATE SKIP LOCKED").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r outboxTx) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.tx.NewUpdate().
		Model((*domain.OutboxEvent)(nil)).
		Set("published_at = now()").
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx)
	return err
}
