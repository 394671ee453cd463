package request

import (
	"time"

	"travel-deals/internal/usecase/commands"
)

type CreateDealRequest struct {
	Title          string     `json:"title" binding:"required,max=200"`
	Category       string     `json:"category" binding:"required,oneof=hotel restaurant experience"`
	Teaser         string     `json:"teaser" binding:"max=500"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url" binding:"omitempty,max=2048"`
	ListPriceCents *int64     `json:"list_price_cents" binding:"omitempty,gt=0"`
	MerchantName   string     `json:"merchant_name"`
	BadgeText      string     `json:"badge_text"`
	PromoCode      string     `json:"promo_code"`
	PromoNote      string     `json:"promo_note"`
	RatingAvg      *float64   `json:"rating_avg" binding:"omitempty,gte=0,lte=5"`
	RatingCount    *int32     `json:"rating_count" binding:"omitempty,gte=0"`
	FeaturedRank   *int32     `json:"featured_rank"`
	EndsAt         *time.Time `json:"ends_at"`
	IsActive       *bool      `json:"is_active"`
	PriceCents     *int64     `json:"price_cents" binding:"omitempty,gt=0"`
}

// ToInput treats a missing is_active as active.
func (r *CreateDealRequest) ToInput() commands.DealInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return commands.DealInput{
		Title:          r.Title,
		Category:       r.Category,
		Teaser:         r.Teaser,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		ListPriceCents: r.ListPriceCents,
		MerchantName:   r.MerchantName,
		BadgeText:      r.BadgeText,
		PromoCode:      r.PromoCode,
		PromoNote:      r.PromoNote,
		RatingAvg:      r.RatingAvg,
		RatingCount:    r.RatingCount,
		FeaturedRank:   r.FeaturedRank,
		EndsAt:         r.EndsAt,
		Active:         active,
		PriceCents:     r.PriceCents,
	}
}

type UpdateDealRequest struct {
	Title          *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Category       *string    `json:"category" binding:"omitempty,oneof=hotel restaurant experience"`
	Teaser         *string    `json:"teaser" binding:"omitempty,max=500"`
	Description    *string    `json:"description"`
	ImageURL       *string    `json:"image_url" binding:"omitempty,max=2048"`
	RemoveImage    bool       `json:"remove_image"`
	ListPriceCents *int64     `json:"list_price_cents" binding:"omitempty,gt=0"`
	MerchantName   *string    `json:"merchant_name"`
	BadgeText      *string    `json:"badge_text"`
	PromoCode      *string    `json:"promo_code"`
	PromoNote      *string    `json:"promo_note"`
	RatingAvg      *float64   `json:"rating_avg" binding:"omitempty,gte=0,lte=5"`
	RatingCount    *int32     `json:"rating_count" binding:"omitempty,gte=0"`
	FeaturedRank   *int32     `json:"featured_rank"`
	EndsAt         *time.Time `json:"ends_at"`
	IsActive       *bool      `json:"is_active"`
	PriceCents     *int64     `json:"price_cents" binding:"omitempty,gt=0"`
}

func (r *UpdateDealRequest) ToPatch() commands.DealPatch {
	return commands.DealPatch{
		Title:          r.Title,
		Category:       r.Category,
		Teaser:         r.Teaser,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		RemoveImage:    r.RemoveImage,
		ListPriceCents: r.ListPriceCents,
		MerchantName:   r.MerchantName,
		BadgeText:      r.BadgeText,
		PromoCode:      r.PromoCode,
		PromoNote:      r.PromoNote,
		RatingAvg:      r.RatingAvg,
		RatingCount:    r.RatingCount,
		FeaturedRank:   r.FeaturedRank,
		EndsAt:         r.EndsAt,
		Active:         r.IsActive,
		PriceCents:     r.PriceCents,
	}
}

type CreateOptionRequest struct {
	Name               string `json:"name" binding:"required,max=200"`
	PriceCents         int64  `json:"price_cents" binding:"required,gt=0"`
	OriginalPriceCents *int64 `json:"original_price_cents" binding:"omitempty,gt=0"`
	StockTotal         int32  `json:"stock_total" binding:"gte=0"`
}

func (r *CreateOptionRequest) ToInput() commands.OptionInput {
	return commands.OptionInput{
		Name:               r.Name,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		StockTotal:         r.StockTotal,
	}
}

type UpdateOptionRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1,max=200"`
	PriceCents         *int64  `json:"price_cents" binding:"omitempty,gt=0"`
	OriginalPriceCents *int64  `json:"original_price_cents" binding:"omitempty,gt=0"`
	StockTotal         *int32  `json:"stock_total" binding:"omitempty,gte=0"`
	StockSold          *int32  `json:"stock_sold" binding:"omitempty,gte=0"`
	Status             *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (r *UpdateOptionRequest) ToPatch() commands.OptionPatch {
	return commands.OptionPatch{
		Name:               r.Name,
		PriceCents:         r.PriceCents,
		OriginalPriceCents: r.OriginalPriceCents,
		StockTotal:         r.StockTotal,
		StockSold:          r.StockSold,
		Status:             r.Status,
	}
}
