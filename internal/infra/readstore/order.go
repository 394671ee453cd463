package readstore

import (
	"context"

	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Orders, error)
	ListOrderItems(ctx context.Context, db pgquery.DBTX, orderID uuid.UUID) ([]pgquery.OrderItems, error)
	ListOrdersByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOrdersByUserParams) ([]pgquery.ListOrdersByUserRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgquery.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db pgquery.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:               row.ID,
		UserID:           row.UserID,
		Status:           row.Status,
		SubtotalCents:    row.SubtotalCents,
		TotalCents:       row.TotalCents,
		Currency:         row.Currency,
		PaymentSessionID: pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		Items:            make([]queries.OrderItemView, len(items)),
	}
	for i, item := range items {
		view.Items[i] = queries.OrderItemView{
			ID:                 item.ID,
			DealID:             item.DealID,
			OptionID:           item.DealOptionID,
			Qty:                item.Qty,
			UnitPriceCents:     item.UnitPriceCents,
			OriginalPriceCents: pgconv.Int64PtrFromPgtype(item.OriginalPriceCents),
			DealTitle:          item.DealTitleSnapshot,
			OptionName:         item.OptionNameSnapshot,
		}
	}
	return view, nil
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]queries.OrderListItem, error) {
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, pgquery.ListOrdersByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}

	result := make([]queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = queries.OrderListItem{
			ID:         row.ID,
			Status:     row.Status,
			TotalCents: row.TotalCents,
			Currency:   row.Currency,
			DealTitle:  row.DealTitle,
			DealSlug:   pgconv.StringPtrFromPgtype(row.DealSlug),
			OptionName: row.OptionName,
			Qty:        row.Qty,
			PaidAt:     pgconv.TimePtrFromPgtype(row.PaidAt),
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
