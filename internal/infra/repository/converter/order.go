package converter

import (
	"fmt"
	"math"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
)

func OrderToInfra(o *order.Order) pgquery.CreateOrderParams {
	return pgquery.CreateOrderParams{
		ID:            o.ID(),
		UserID:        o.UserID(),
		Status:        o.Status().String(),
		SubtotalCents: o.Subtotal().Cents(),
		TotalCents:    o.Total().Cents(),
		Currency:      o.Currency(),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemToInfra(o *order.Order, item order.Item) (pgquery.CreateOrderItemParams, error) {
	qty := item.Quantity().Int()
	if qty > math.MaxInt32 {
		return pgquery.CreateOrderItemParams{}, fmt.Errorf("quantity out of int32 range: %d", qty)
	}

	return pgquery.CreateOrderItemParams{
		ID:                 item.ID(),
		OrderID:            o.ID(),
		DealID:             item.DealID(),
		DealOptionID:       item.OptionID(),
		Qty:                int32(qty), // #nosec G115 -- bounds checked above
		UnitPriceCents:     item.UnitPrice().Cents(),
		OriginalPriceCents: pgconv.Int64PtrToPgtype(item.OriginalPriceCents()),
		DealTitleSnapshot:  item.DealTitle(),
		OptionNameSnapshot: item.OptionName(),
	}, nil
}

func OrderItemToDomain(row pgquery.OrderItems) (order.Item, error) {
	qty, err := order.NewQuantity(int(row.Qty))
	if err != nil {
		return order.Item{}, fmt.Errorf("invalid quantity in database: %w", err)
	}
	unit, err := order.NewMoney(row.UnitPriceCents)
	if err != nil {
		return order.Item{}, fmt.Errorf("invalid unit price in database: %w", err)
	}

	return order.ReconstructItem(
		row.ID,
		row.DealID,
		row.DealOptionID,
		qty,
		unit,
		pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		row.DealTitleSnapshot,
		row.OptionNameSnapshot,
	), nil
}

func OrderToDomain(row pgquery.Orders, itemRows []pgquery.OrderItems) (*order.Order, error) {
	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in database: %w", err)
	}
	subtotal, err := order.NewMoney(row.SubtotalCents)
	if err != nil {
		return nil, fmt.Errorf("invalid subtotal in database: %w", err)
	}
	total, err := order.NewMoney(row.TotalCents)
	if err != nil {
		return nil, fmt.Errorf("invalid total in database: %w", err)
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := OrderItemToDomain(ir)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.Reconstruct(
		row.ID,
		row.UserID,
		status,
		subtotal,
		total,
		row.Currency,
		pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		pgconv.TimePtrFromPgtype(row.PaidAt),
		items,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
