package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrderEvent = `INSERT INTO order_events (id, kind, topic, aggregate_id, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6, 'queued')`

type CreateOrderEventParams struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) CreateOrderEvent(ctx context.Context, db DBTX, arg CreateOrderEventParams) error {
	_, err := db.Exec(ctx, createOrderEvent,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.AggregateID,
		arg.Payload,
		arg.RunAt,
	)
	return err
}

const claimQueuedOrderEvents = `SELECT id, kind, topic, aggregate_id, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM order_events
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at ASC, created_at ASC
LIMIT $2
FOR UPDATE SKIP LOCKED`

type ClaimQueuedOrderEventsParams struct {
	Now   pgtype.Timestamptz `json:"now"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimQueuedOrderEvents(ctx context.Context, db DBTX, arg ClaimQueuedOrderEventsParams) ([]OrderEvents, error) {
	rows, err := db.Query(ctx, claimQueuedOrderEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderEvents{}
	for rows.Next() {
		var i OrderEvents
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.AggregateID,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOrderEventSent = `UPDATE order_events SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = NOW()
WHERE id = $1`

func (q *Queries) MarkOrderEventSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markOrderEventSent, id)
	return err
}

const markOrderEventRetry = `UPDATE order_events SET attempts = attempts + 1, last_error = $2, run_at = $3, updated_at = NOW()
WHERE id = $1`

type MarkOrderEventRetryParams struct {
	ID        uuid.UUID          `json:"id"`
	LastError pgtype.Text        `json:"last_error"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
}

func (q *Queries) MarkOrderEventRetry(ctx context.Context, db DBTX, arg MarkOrderEventRetryParams) error {
	_, err := db.Exec(ctx, markOrderEventRetry, arg.ID, arg.LastError, arg.RunAt)
	return err
}

const markOrderEventFailed = `UPDATE order_events SET status = 'failed', attempts = attempts + 1, last_error = $2, updated_at = NOW()
WHERE id = $1`

func (q *Queries) MarkOrderEventFailed(ctx context.Context, db DBTX, id uuid.UUID, lastError pgtype.Text) error {
	_, err := db.Exec(ctx, markOrderEventFailed, id, lastError)
	return err
}

const countOrderEventsByAggregate = `SELECT COUNT(*) FROM order_events WHERE aggregate_id = $1 AND kind = $2`

func (q *Queries) CountOrderEventsByAggregate(ctx context.Context, db DBTX, aggregateID uuid.UUID, kind string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countOrderEventsByAggregate, aggregateID, kind).Scan(&count)
	return count, err
}
