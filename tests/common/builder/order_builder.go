//go:build unit || e2e

package builder

import (
	"time"

	"travel-deals/internal/domain/order"
	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderID    uuid.UUID
	UserID     uuid.UUID
	Status     order.Status
	Qty        int
	Option     *order.PurchasableOption
	Currency   string
	SessionID  *string
	PaidAt     *time.Time
	CreatedAt  time.Time
	TotalCents *int64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:   uuid.New(),
		UserID:    uuid.New(),
		Status:    order.StatusCreated,
		Qty:       2,
		Option:    NewDealBuilder().BuildPurchasable(),
		Currency:  "usd",
		CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) WithUser(userID uuid.UUID) *OrderBuilder {
	b.UserID = userID
	return b
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) WithQty(qty int) *OrderBuilder {
	b.Qty = qty
	return b
}

func (b *OrderBuilder) WithSession(sessionID string) *OrderBuilder {
	b.SessionID = &sessionID
	return b
}

func (b *OrderBuilder) WithCreatedAt(t time.Time) *OrderBuilder {
	b.CreatedAt = t
	return b
}

// AsPaid also overrides the totals with the settled amount.
func (b *OrderBuilder) AsPaid(totalCents int64, paidAt time.Time) *OrderBuilder {
	b.Status = order.StatusPaid
	b.TotalCents = &totalCents
	b.PaidAt = &paidAt
	return b
}

func (b *OrderBuilder) subtotalCents() int64 {
	return b.Option.PriceCents * int64(b.Qty)
}

func (b *OrderBuilder) totalCents() int64 {
	if b.TotalCents != nil {
		return *b.TotalCents
	}
	return b.subtotalCents()
}

// BuildDomain reconstructs a persisted order in the builder's status.
func (b *OrderBuilder) BuildDomain() *order.Order {
	qty, _ := order.NewQuantity(b.Qty)
	unit, _ := order.NewMoney(b.Option.PriceCents)
	subtotal, _ := order.NewMoney(b.subtotalCents())
	total, _ := order.NewMoney(b.totalCents())

	item := order.ReconstructItem(uuid.New(), b.Option.DealID, b.Option.OptionID, qty, unit,
		b.Option.OriginalPriceCents, b.Option.DealTitle, b.Option.OptionName)

	return order.Reconstruct(b.OrderID, b.UserID, b.Status, subtotal, total, b.Currency,
		b.SessionID, b.PaidAt, []order.Item{item}, b.CreatedAt, b.CreatedAt)
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:               b.OrderID,
		UserID:           b.UserID,
		Status:           b.Status.String(),
		SubtotalCents:    b.subtotalCents(),
		TotalCents:       b.totalCents(),
		Currency:         b.Currency,
		PaymentSessionID: b.SessionID,
		PaidAt:           b.PaidAt,
		CreatedAt:        b.CreatedAt,
		Items: []queries.OrderItemView{{
			ID:             uuid.New(),
			DealID:         b.Option.DealID,
			OptionID:       b.Option.OptionID,
			Qty:            int32(b.Qty),
			UnitPriceCents: b.Option.PriceCents,
			DealTitle:      b.Option.DealTitle,
			OptionName:     b.Option.OptionName,
		}},
	}
}

func (b *OrderBuilder) BuildListItem() queries.OrderListItem {
	slug := b.Option.DealSlug
	return queries.OrderListItem{
		ID:         b.OrderID,
		Status:     b.Status.String(),
		TotalCents: b.totalCents(),
		Currency:   b.Currency,
		DealTitle:  b.Option.DealTitle,
		DealSlug:   &slug,
		OptionName: b.Option.OptionName,
		Qty:        int32(b.Qty),
		PaidAt:     b.PaidAt,
		CreatedAt:  b.CreatedAt,
	}
}
