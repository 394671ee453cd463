package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash pgtype.Text        `json:"password_hash"`
	GoogleID     pgtype.Text        `json:"google_id"`
	Name         string             `json:"name"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Deals struct {
	ID             uuid.UUID          `json:"id"`
	Slug           string             `json:"slug"`
	Title          string             `json:"title"`
	Category       string             `json:"category"`
	Teaser         pgtype.Text        `json:"teaser"`
	Description    pgtype.Text        `json:"description"`
	ImageUrl       pgtype.Text        `json:"image_url"`
	ListPriceCents pgtype.Int8        `json:"list_price_cents"`
	MerchantName   pgtype.Text        `json:"merchant_name"`
	BadgeText      pgtype.Text        `json:"badge_text"`
	PromoCode      pgtype.Text        `json:"promo_code"`
	PromoNote      pgtype.Text        `json:"promo_note"`
	RatingAvg      pgtype.Float8      `json:"rating_avg"`
	RatingCount    pgtype.Int4        `json:"rating_count"`
	FeaturedRank   pgtype.Int4        `json:"featured_rank"`
	EndsAt         pgtype.Timestamptz `json:"ends_at"`
	IsActive       bool               `json:"is_active"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type DealOptions struct {
	ID                 uuid.UUID          `json:"id"`
	DealID             uuid.UUID          `json:"deal_id"`
	Name               string             `json:"name"`
	PriceCents         int64              `json:"price_cents"`
	OriginalPriceCents pgtype.Int8        `json:"original_price_cents"`
	StockTotal         int32              `json:"stock_total"`
	StockSold          int32              `json:"stock_sold"`
	Status             string             `json:"status"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type Orders struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	Status           string             `json:"status"`
	SubtotalCents    int64              `json:"subtotal_cents"`
	TotalCents       int64              `json:"total_cents"`
	Currency         string             `json:"currency"`
	PaymentSessionID pgtype.Text        `json:"payment_session_id"`
	PaidAt           pgtype.Timestamptz `json:"paid_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type OrderItems struct {
	ID                 uuid.UUID          `json:"id"`
	OrderID            uuid.UUID          `json:"order_id"`
	DealID             uuid.UUID          `json:"deal_id"`
	DealOptionID       uuid.UUID          `json:"deal_option_id"`
	Qty                int32              `json:"qty"`
	UnitPriceCents     int64              `json:"unit_price_cents"`
	OriginalPriceCents pgtype.Int8        `json:"original_price_cents"`
	DealTitleSnapshot  string             `json:"deal_title_snapshot"`
	OptionNameSnapshot string             `json:"option_name_snapshot"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
}

type OrderEvents struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Topic       string             `json:"topic"`
	AggregateID uuid.UUID          `json:"aggregate_id"`
	Payload     []byte             `json:"payload"`
	RunAt       pgtype.Timestamptz `json:"run_at"`
	Attempts    int32              `json:"attempts"`
	Status      string             `json:"status"`
	LastError   pgtype.Text        `json:"last_error"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}
