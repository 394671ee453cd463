package response

import (
	"time"

	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	DealID             uuid.UUID `json:"deal_id"`
	OptionID           uuid.UUID `json:"option_id"`
	Qty                int32     `json:"qty"`
	UnitPriceCents     int64     `json:"unit_price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents"`
	DealTitle          string    `json:"deal_title"`
	OptionName         string    `json:"option_name"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Status        string              `json:"status"`
	SubtotalCents int64               `json:"subtotal_cents"`
	TotalCents    int64               `json:"total_cents"`
	Currency      string              `json:"currency"`
	PaidAt        *time.Time          `json:"paid_at"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	ID         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	TotalCents int64      `json:"total_cents"`
	Currency   string     `json:"currency"`
	DealTitle  string     `json:"deal_title"`
	DealSlug   *string    `json:"deal_slug"`
	OptionName string     `json:"option_name"`
	Qty        int32      `json:"qty"`
	PaidAt     *time.Time `json:"paid_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var out OrderResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []OrderItemResponse{}
	}
	return &out, nil
}

func FromOrderList(items []queries.OrderListItem) ([]OrderListResponse, error) {
	out := make([]OrderListResponse, 0, len(items))
	if err := copier.Copy(&out, &items); err != nil {
		return nil, err
	}
	return out, nil
}
