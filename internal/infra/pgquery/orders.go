package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, user_id, status, subtotal_cents, total_cents, currency, payment_session_id, paid_at, created_at, updated_at`

func orderScanTargets(i *Orders) []any {
	return []any{
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.SubtotalCents,
		&i.TotalCents,
		&i.Currency,
		&i.PaymentSessionID,
		&i.PaidAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const createOrder = `INSERT INTO orders (id, user_id, status, subtotal_cents, total_cents, currency, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

type CreateOrderParams struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	Status        string             `json:"status"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TotalCents    int64              `json:"total_cents"`
	Currency      string             `json:"currency"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder,
		arg.ID,
		arg.UserID,
		arg.Status,
		arg.SubtotalCents,
		arg.TotalCents,
		arg.Currency,
		arg.CreatedAt,
	)
	return err
}

const createOrderItem = `INSERT INTO order_items (
    id, order_id, deal_id, deal_option_id, qty, unit_price_cents, original_price_cents,
    deal_title_snapshot, option_name_snapshot
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type CreateOrderItemParams struct {
	ID                 uuid.UUID   `json:"id"`
	OrderID            uuid.UUID   `json:"order_id"`
	DealID             uuid.UUID   `json:"deal_id"`
	DealOptionID       uuid.UUID   `json:"deal_option_id"`
	Qty                int32       `json:"qty"`
	UnitPriceCents     int64       `json:"unit_price_cents"`
	OriginalPriceCents pgtype.Int8 `json:"original_price_cents"`
	DealTitleSnapshot  string      `json:"deal_title_snapshot"`
	OptionNameSnapshot string      `json:"option_name_snapshot"`
}

func (q *Queries) CreateOrderItem(ctx context.Context, db DBTX, arg CreateOrderItemParams) error {
	_, err := db.Exec(ctx, createOrderItem,
		arg.ID,
		arg.OrderID,
		arg.DealID,
		arg.DealOptionID,
		arg.Qty,
		arg.UnitPriceCents,
		arg.OriginalPriceCents,
		arg.DealTitleSnapshot,
		arg.OptionNameSnapshot,
	)
	return err
}

const setOrderPaymentSession = `UPDATE orders SET payment_session_id = $2, updated_at = NOW()
WHERE id = $1 AND payment_session_id IS NULL`

func (q *Queries) SetOrderPaymentSession(ctx context.Context, db DBTX, id uuid.UUID, sessionID string) (int64, error) {
	result, err := db.Exec(ctx, setOrderPaymentSession, id, sessionID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) GetOrderByID(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	var i Orders
	err := db.QueryRow(ctx, getOrderByID, id).Scan(orderScanTargets(&i)...)
	return i, err
}

const getOrderByIDForUpdate = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

func (q *Queries) GetOrderByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Orders, error) {
	var i Orders
	err := db.QueryRow(ctx, getOrderByIDForUpdate, id).Scan(orderScanTargets(&i)...)
	return i, err
}

const markOrderPaid = `UPDATE orders SET status = 'paid', subtotal_cents = $2, total_cents = $3, paid_at = $4, updated_at = $4
WHERE id = $1 AND status = ANY($5::text[])`

type MarkOrderPaidParams struct {
	ID            uuid.UUID          `json:"id"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TotalCents    int64              `json:"total_cents"`
	PaidAt        pgtype.Timestamptz `json:"paid_at"`
	FromStatuses  []string           `json:"from_statuses"`
}

// MarkOrderPaid only touches an order still in one of FromStatuses, so a
// redelivered settlement affects zero rows.
func (q *Queries) MarkOrderPaid(ctx context.Context, db DBTX, arg MarkOrderPaidParams) (int64, error) {
	result, err := db.Exec(ctx, markOrderPaid,
		arg.ID,
		arg.SubtotalCents,
		arg.TotalCents,
		arg.PaidAt,
		arg.FromStatuses,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const transitionOrderStatus = `UPDATE orders SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2`

type TransitionOrderStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) TransitionOrderStatus(ctx context.Context, db DBTX, arg TransitionOrderStatusParams) (int64, error) {
	result, err := db.Exec(ctx, transitionOrderStatus, arg.ID, arg.From, arg.To, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listExpirableOrders = `SELECT ` + orderColumns + ` FROM orders
WHERE status = 'created' AND created_at < $1
ORDER BY created_at ASC
LIMIT $2
FOR UPDATE SKIP LOCKED`

type ListExpirableOrdersParams struct {
	CreatedBefore pgtype.Timestamptz `json:"created_before"`
	Limit         int32              `json:"limit"`
}

func (q *Queries) ListExpirableOrders(ctx context.Context, db DBTX, arg ListExpirableOrdersParams) ([]Orders, error) {
	rows, err := db.Query(ctx, listExpirableOrders, arg.CreatedBefore, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Orders{}
	for rows.Next() {
		var i Orders
		if err := rows.Scan(orderScanTargets(&i)...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrderItems = `SELECT id, order_id, deal_id, deal_option_id, qty, unit_price_cents, original_price_cents,
    deal_title_snapshot, option_name_snapshot, created_at
FROM order_items WHERE order_id = $1
ORDER BY created_at ASC, id ASC`

func (q *Queries) ListOrderItems(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderItems, error) {
	rows, err := db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItems{}
	for rows.Next() {
		var i OrderItems
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.DealID,
			&i.DealOptionID,
			&i.Qty,
			&i.UnitPriceCents,
			&i.OriginalPriceCents,
			&i.DealTitleSnapshot,
			&i.OptionNameSnapshot,
			&i.CreatedAt,
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

const listOrdersByUser = `SELECT o.id, o.user_id, o.status, o.subtotal_cents, o.total_cents, o.currency, o.payment_session_id,
    o.paid_at, o.created_at, o.updated_at,
    COALESCE(i.deal_title_snapshot, '') AS deal_title,
    COALESCE(i.option_name_snapshot, '') AS option_name,
    COALESCE(i.qty, 0)::int AS qty,
    d.slug AS deal_slug
FROM orders o
LEFT JOIN LATERAL (
    SELECT deal_id, deal_title_snapshot, option_name_snapshot, qty
    FROM order_items WHERE order_id = o.id ORDER BY created_at ASC, id ASC LIMIT 1
) i ON TRUE
LEFT JOIN deals d ON d.id = i.deal_id
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id DESC
LIMIT $2`

type ListOrdersByUserParams struct {
	UserID uuid.UUID `json:"user_id"`
	Limit  int32     `json:"limit"`
}

type ListOrdersByUserRow struct {
	Orders
	DealTitle  string      `json:"deal_title"`
	OptionName string      `json:"option_name"`
	Qty        int32       `json:"qty"`
	DealSlug   pgtype.Text `json:"deal_slug"`
}

func (q *Queries) ListOrdersByUser(ctx context.Context, db DBTX, arg ListOrdersByUserParams) ([]ListOrdersByUserRow, error) {
	rows, err := db.Query(ctx, listOrdersByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ListOrdersByUserRow{}
	for rows.Next() {
		var i ListOrdersByUserRow
		targets := append(orderScanTargets(&i.Orders), &i.DealTitle, &i.OptionName, &i.Qty, &i.DealSlug)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
