package shared

import (
	"context"
	"time"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/domain/order"
	"travel-deals/internal/domain/user"
	"travel-deals/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Deals() DealRepository
	Users() UserRepository
	OrderEvents() OrderEventRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	PurchasableOption(ctx context.Context, optionID uuid.UUID) (*order.PurchasableOption, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByGoogleID(ctx context.Context, googleID string) (*UserSnapshot, error)
}

type OrderRepository interface {
	// Create writes the order and all of its items.
	Create(ctx context.Context, tx pgquery.DBTX, o *order.Order) error
	AttachSession(ctx context.Context, tx pgquery.DBTX, orderID uuid.UUID, sessionID string) error
	FindForUpdate(ctx context.Context, tx pgquery.DBTX, orderID uuid.UUID) (*order.Order, error)
	// MarkPaid reports whether the row actually moved to paid.
	MarkPaid(ctx context.Context, tx pgquery.DBTX, o *order.Order, from []order.Status) (bool, error)
	ListExpirable(ctx context.Context, tx pgquery.DBTX, createdBefore time.Time, limit int32) ([]*order.Order, error)
	Transition(ctx context.Context, tx pgquery.DBTX, o *order.Order, from order.Status) (bool, error)
}

type DealRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, d *deal.Deal) error
	Update(ctx context.Context, tx pgquery.DBTX, d *deal.Deal) error
	FindForUpdate(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*deal.Deal, error)
	SlugExists(ctx context.Context, tx pgquery.DBTX, slug deal.Slug) (bool, error)
	CreateOption(ctx context.Context, tx pgquery.DBTX, opt *deal.Option) error
	UpdateOption(ctx context.Context, tx pgquery.DBTX, opt *deal.Option) error
	FindOption(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*deal.Option, error)
	FirstOption(ctx context.Context, tx pgquery.DBTX, dealID uuid.UUID) (*deal.Option, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error
	LinkGoogleID(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, googleID string) error
	UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error
}

type OrderEventRepository interface {
	Enqueue(ctx context.Context, tx pgquery.DBTX, ev OutboxEvent) error
	ClaimQueued(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error
	MarkRetry(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string, runAt time.Time) error
	MarkFailed(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, lastError string) error
}
