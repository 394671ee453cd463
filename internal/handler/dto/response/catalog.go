package response

import (
	"time"

	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DealSummaryResponse struct {
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Teaser          string     `json:"teaser"`
	Category        string     `json:"category"`
	ImageURL        string     `json:"image_url"`
	FromPriceCents  *int64     `json:"from_price_cents"`
	ListPriceCents  *int64     `json:"list_price_cents"`
	MerchantName    string     `json:"merchant_name"`
	BadgeText       string     `json:"badge_text"`
	RatingAvg       *float64   `json:"rating_avg"`
	RatingCount     *int32     `json:"rating_count"`
	EndsAt          *time.Time `json:"ends_at"`
	DiscountPercent *int       `json:"discount_percent"`
}

type OptionResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"price_cents"`
	OriginalPriceCents *int64    `json:"original_price_cents"`
	StockTotal         int32     `json:"stock_total"`
	StockSold          int32     `json:"stock_sold"`
	Status             string    `json:"status"`
}

type DealDetailResponse struct {
	ID              uuid.UUID        `json:"id"`
	Slug            string           `json:"slug"`
	Title           string           `json:"title"`
	Category        string           `json:"category"`
	Teaser          string           `json:"teaser"`
	Description     string           `json:"description"`
	ImageURL        string           `json:"image_url"`
	ListPriceCents  *int64           `json:"list_price_cents"`
	MerchantName    string           `json:"merchant_name"`
	BadgeText       string           `json:"badge_text"`
	PromoCode       string           `json:"promo_code"`
	PromoNote       string           `json:"promo_note"`
	RatingAvg       *float64         `json:"rating_avg"`
	RatingCount     *int32           `json:"rating_count"`
	EndsAt          *time.Time       `json:"ends_at"`
	FromPriceCents  *int64           `json:"from_price_cents"`
	MainOptionID    *uuid.UUID       `json:"main_option_id"`
	DiscountPercent *int             `json:"discount_percent"`
	TimeLeftDays    *int             `json:"time_left_days"`
	Options         []OptionResponse `json:"options"`
}

type DealListResponse struct {
	Deals    []DealSummaryResponse `json:"deals"`
	Category string                `json:"category,omitempty"`
	Sort     string                `json:"sort"`
}

func FromDealSummaries(views []queries.DealSummary) ([]DealSummaryResponse, error) {
	out := make([]DealSummaryResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromDealDetail(v *queries.DealDetail) (*DealDetailResponse, error) {
	var out DealDetailResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	if out.Options == nil {
		out.Options = []OptionResponse{}
	}
	return &out, nil
}
