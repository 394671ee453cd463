package response

import (
	"time"

	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AdminDealResponse struct {
	ID             uuid.UUID        `json:"id"`
	Slug           string           `json:"slug"`
	Title          string           `json:"title"`
	Category       string           `json:"category"`
	Teaser         string           `json:"teaser"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"image_url"`
	ListPriceCents *int64           `json:"list_price_cents"`
	MerchantName   string           `json:"merchant_name"`
	BadgeText      string           `json:"badge_text"`
	PromoCode      string           `json:"promo_code"`
	PromoNote      string           `json:"promo_note"`
	RatingAvg      *float64         `json:"rating_avg"`
	RatingCount    *int32           `json:"rating_count"`
	FeaturedRank   *int32           `json:"featured_rank"`
	EndsAt         *time.Time       `json:"ends_at"`
	IsActive       bool             `json:"is_active"`
	FromPriceCents *int64           `json:"from_price_cents"`
	Options        []OptionResponse `json:"options"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type CreatedDealResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type CreatedOptionResponse struct {
	ID uuid.UUID `json:"id"`
}

type ToggleDealResponse struct {
	IsActive bool `json:"is_active"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"image_url"`
}

func FromAdminDeals(views []queries.AdminDealView) ([]AdminDealResponse, error) {
	out := make([]AdminDealResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAdminDeal(v *queries.AdminDealView) (*AdminDealResponse, error) {
	var out AdminDealResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
