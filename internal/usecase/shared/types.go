package shared

import (
	"encoding/json"
	"time"

	"travel-deals/internal/domain/order"

	"github.com/google/uuid"
)

// UserSnapshot is the write side's view of an account.
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	GoogleID     *string
	Name         string
	Role         string
	IsActive     bool
}

const (
	EventOrderCreated = "order.created"
	EventOrderPaid    = "order.paid"
	EventOrderExpired = "order.expired"

	OrderEventTopic = "orders"
)

// OutboxEvent is a row of the order_events table.
type OutboxEvent struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	RunAt       time.Time
	Attempts    int32
}

type OrderEventPayload struct {
	OrderID       uuid.UUID  `json:"order_id"`
	UserID        uuid.UUID  `json:"user_id"`
	Status        string     `json:"status"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TotalCents    int64      `json:"total_cents"`
	Currency      string     `json:"currency"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// NewOrderEvent snapshots o into an outbox row of the given kind.
func NewOrderEvent(kind string, o *order.Order, now time.Time) (OutboxEvent, error) {
	payload, err := json.Marshal(OrderEventPayload{
		OrderID:       o.ID(),
		UserID:        o.UserID(),
		Status:        o.Status().String(),
		SubtotalCents: o.Subtotal().Cents(),
		TotalCents:    o.Total().Cents(),
		Currency:      o.Currency(),
		PaidAt:        o.PaidAt(),
		OccurredAt:    now,
	})
	if err != nil {
		return OutboxEvent{}, err
	}

	return OutboxEvent{
		ID:          uuid.New(),
		Kind:        kind,
		Topic:       OrderEventTopic,
		AggregateID: o.ID(),
		Payload:     payload,
		RunAt:       now,
	}, nil
}
