package queries

import (
	"time"

	"github.com/google/uuid"
)

const PlaceholderImageURL = "/img/placeholder.jpg"

// DealSummary is one card of the public catalog listing.
type DealSummary struct {
	ID              uuid.UUID  `json:"id"`
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Teaser          string     `json:"teaser"`
	Category        string     `json:"category"`
	ImageURL        string     `json:"image_url"`
	FromPriceCents  *int64     `json:"from_price_cents,omitempty"`
	ListPriceCents  *int64     `json:"list_price_cents,omitempty"`
	MerchantName    string     `json:"merchant_name"`
	BadgeText       string     `json:"badge_text"`
	RatingAvg       *float64   `json:"rating_avg,omitempty"`
	RatingCount     *int32     `json:"rating_count,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	DiscountPercent *int       `json:"discount_percent,omitempty"`
}

type OptionView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty"`
	StockTotal         int32     `json:"stock_total"`
	StockSold          int32     `json:"stock_sold"`
	Status             string    `json:"status"`
}

type DealDetail struct {
	ID              uuid.UUID    `json:"id"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Category        string       `json:"category"`
	Teaser          string       `json:"teaser"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"image_url"`
	ListPriceCents  *int64       `json:"list_price_cents,omitempty"`
	MerchantName    string       `json:"merchant_name"`
	BadgeText       string       `json:"badge_text"`
	PromoCode       string       `json:"promo_code"`
	PromoNote       string       `json:"promo_note"`
	RatingAvg       *float64     `json:"rating_avg,omitempty"`
	RatingCount     *int32       `json:"rating_count,omitempty"`
	EndsAt          *time.Time   `json:"ends_at,omitempty"`
	FromPriceCents  *int64       `json:"from_price_cents,omitempty"`
	MainOptionID    *uuid.UUID   `json:"main_option_id,omitempty"`
	DiscountPercent *int         `json:"discount_percent,omitempty"`
	TimeLeftDays    *int         `json:"time_left_days,omitempty"`
	Options         []OptionView `json:"options"`
}

// AdminDealView includes inactive deals and options.
type AdminDealView struct {
	ID             uuid.UUID    `json:"id"`
	Slug           string       `json:"slug"`
	Title          string       `json:"title"`
	Category       string       `json:"category"`
	Teaser         string       `json:"teaser"`
	Description    string       `json:"description"`
	ImageURL       string       `json:"image_url"`
	ListPriceCents *int64       `json:"list_price_cents,omitempty"`
	MerchantName   string       `json:"merchant_name"`
	BadgeText      string       `json:"badge_text"`
	PromoCode      string       `json:"promo_code"`
	PromoNote      string       `json:"promo_note"`
	RatingAvg      *float64     `json:"rating_avg,omitempty"`
	RatingCount    *int32       `json:"rating_count,omitempty"`
	FeaturedRank   *int32       `json:"featured_rank,omitempty"`
	EndsAt         *time.Time   `json:"ends_at,omitempty"`
	IsActive       bool         `json:"is_active"`
	FromPriceCents *int64       `json:"from_price_cents,omitempty"`
	Options        []OptionView `json:"options,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type SitemapEntry struct {
	Slug      string
	UpdatedAt time.Time
}

type OrderItemView struct {
	ID                 uuid.UUID `json:"id"`
	DealID             uuid.UUID `json:"deal_id"`
	OptionID           uuid.UUID `json:"option_id"`
	Qty                int32     `json:"qty"`
	UnitPriceCents     int64     `json:"unit_price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents,omitempty"`
	DealTitle          string    `json:"deal_title"`
	OptionName         string    `json:"option_name"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Status           string          `json:"status"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	TotalCents       int64           `json:"total_cents"`
	Currency         string          `json:"currency"`
	PaymentSessionID *string         `json:"payment_session_id,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []OrderItemView `json:"items"`
}

type OrderListItem struct {
	ID         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	TotalCents int64      `json:"total_cents"`
	Currency   string     `json:"currency"`
	DealTitle  string     `json:"deal_title"`
	DealSlug   *string    `json:"deal_slug,omitempty"`
	OptionName string     `json:"option_name"`
	Qty        int32      `json:"qty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	HasGoogle bool       `json:"has_google"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
