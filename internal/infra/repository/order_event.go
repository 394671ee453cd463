package repository

import (
	"context"
	"time"

	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
	"travel-deals/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderEventWriteQueries interface {
	CreateOrderEvent(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateOrderEventParams) error
	ClaimQueuedOrderEvents(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimQueuedOrderEventsParams) ([]pgquery.OrderEvents, error)
	MarkOrderEventSent(ctx context.Context, db pgquery.DBTX, id uuid.UUID) error
	MarkOrderEventRetry(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkOrderEventRetryParams) error
	MarkOrderEventFailed(ctx context.Context, db pgquery.DBTX, id uuid.UUID, lastError pgtype.Text) error
}

type OrderEventRepository struct {
	queries OrderEventWriteQueries
}

func NewOrderEventRepository(queries OrderEventWriteQueries) *OrderEventRepository {
	return &OrderEventRepository{
		queries: queries,
	}
}

func (r *OrderEventRepository) Enqueue(ctx context.Context, tx pgquery.DBTX, ev shared.OutboxEvent) error {
	params := pgquery.CreateOrderEventParams{
		ID:          ev.ID,
		Kind:        ev.Kind,
		Topic:       ev.Topic,
		AggregateID: ev.AggregateID,
		Payload:     ev.Payload,
		RunAt:       pgconv.TimeToPgtype(ev.RunAt),
	}

	if err := r.queries.CreateOrderEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue order event", err)
	}
	return nil
}

// ClaimQueued locks due rows until tx ends; concurrent relays skip them.
func (r *OrderEventRepository) ClaimQueued(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimQueuedOrderEvents(ctx, tx, pgquery.ClaimQueuedOrderEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim order events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
			Attempts:    row.Attempts,
		}
	}
	return events, nil
}

func (r *OrderEventRepository) MarkSent(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOrderEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark order event sent", err)
	}
	return nil
}

func (r *OrderEventRepository) MarkRetry(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string, runAt time.Time) error {
	params := pgquery.MarkOrderEventRetryParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
	}
	if err := r.queries.MarkOrderEventRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule order event", err)
	}
	return nil
}

func (r *OrderEventRepository) MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string) error {
	if err := r.queries.MarkOrderEventFailed(ctx, tx, id, pgconv.StringToPgtype(lastError)); err != nil {
		return infra.WrapRepoErr("failed to mark order event failed", err)
	}
	return nil
}
