package repository

import (
	"context"
	"time"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/infra/repository/converter"
	"travel-deals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateOrderItemParams) error
	SetOrderPaymentSession(ctx context.Context, db pgquery.DBTX, id uuid.UUID, sessionID string) (int64, error)
	GetOrderByIDForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Orders, error)
	MarkOrderPaid(ctx context.Context, db pgquery.DBTX, arg pgquery.MarkOrderPaidParams) (int64, error)
	ListExpirableOrders(ctx context.Context, db pgquery.DBTX, arg pgquery.ListExpirableOrdersParams) ([]pgquery.Orders, error)
	TransitionOrderStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.TransitionOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{
		queries: queries,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgquery.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range o.Items() {
		params, err := converter.OrderItemToInfra(o, item)
		if err != nil {
			return infra.WrapRepoErr("invalid order item", err, infra.KindInvalidValue)
		}
		if err := r.queries.CreateOrderItem(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return nil
}

func (r *OrderRepository) AttachSession(ctx context.Context, tx pgquery.DBTX, orderID uuid.UUID, sessionID string) error {
	affected, err := r.queries.SetOrderPaymentSession(ctx, tx, orderID, sessionID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach payment session", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found or session already attached", nil, infra.KindNotFound)
	}
	return nil
}

// FindForUpdate locks the order row; items are not loaded.
func (r *OrderRepository) FindForUpdate(ctx context.Context, tx pgquery.DBTX, orderID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	o, err := converter.OrderToDomain(row, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert order", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, tx pgquery.DBTX, o *order.Order, from []order.Status) (bool, error) {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = s.String()
	}

	affected, err := r.queries.MarkOrderPaid(ctx, tx, pgquery.MarkOrderPaidParams{
		ID:            o.ID(),
		SubtotalCents: o.Subtotal().Cents(),
		TotalCents:    o.Total().Cents(),
		PaidAt:        pgconv.TimePtrToPgtype(o.PaidAt()),
		FromStatuses:  statuses,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return affected == 1, nil
}

func (r *OrderRepository) ListExpirable(ctx context.Context, tx pgquery.DBTX, createdBefore time.Time, limit int32) ([]*order.Order, error) {
	rows, err := r.queries.ListExpirableOrders(ctx, tx, pgquery.ListExpirableOrdersParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expirable orders", err)
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OrderToDomain(row, nil)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert order", err, infra.KindDBFailure)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Transition persists o's current status, guarded by the status it had before.
func (r *OrderRepository) Transition(ctx context.Context, tx pgquery.DBTX, o *order.Order, from order.Status) (bool, error) {
	affected, err := r.queries.TransitionOrderStatus(ctx, tx, pgquery.TransitionOrderStatusParams{
		ID:        o.ID(),
		From:      from.String(),
		To:        o.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition order status", err)
	}
	return affected == 1, nil
}
