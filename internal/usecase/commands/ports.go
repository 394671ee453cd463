package commands

import (
	"context"

	"travel-deals/internal/domain/user"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/shared"
)

var (
	ErrProviderFailure  = errs.New("payment provider failure")
	ErrInvalidSignature = errs.New("invalid webhook signature")
	ErrPaymentsDisabled = errs.New("payments are disabled")
)

// PaymentEventCheckoutCompleted is the only event type that settles an order.
const PaymentEventCheckoutCompleted = "checkout.session.completed"

// MetadataOrderID is the session metadata key that carries our order id.
const MetadataOrderID = "order_id"

type LineItem struct {
	Name            string
	UnitAmountCents int64
	Quantity        int
}

type SessionRequest struct {
	LineItem      LineItem
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
	Currency      string
	CustomerEmail string
}

type PaymentSession struct {
	ID          string
	RedirectURL string
}

// PaymentEvent is a verified processor notification. Amount fields are only
// meaningful for checkout.session.completed.
type PaymentEvent struct {
	ID             string
	Type           string
	OrderID        string
	AmountTotal    int64
	AmountSubtotal int64
}

type PaymentProcessor interface {
	Enabled() bool
	CreateSession(ctx context.Context, req SessionRequest) (*PaymentSession, error)
	VerifyAndParseEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)
}

// ProcessedEventLedger remembers processor event ids already handled.
type ProcessedEventLedger interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Remember(ctx context.Context, eventID string) error
}

// CatalogInvalidator drops cached catalog reads after an admin write.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ImageStore keeps uploaded deal images and returns their public URL.
type ImageStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, publicURL string) error
}

// EventPublisher delivers relayed outbox events to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, ev shared.OutboxEvent) error
}

// IdentityProvider is an external login (Google).
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (user.FederatedProfile, error)
}
