//go:build unit || e2e

package builder

import (
	"time"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/domain/order"
	reqdto "travel-deals/internal/handler/dto/request"
	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealBuilder struct {
	DealID         uuid.UUID
	OptionID       uuid.UUID
	Title          string
	Slug           string
	Category       string
	Teaser         string
	ListPriceCents *int64
	PriceCents     int64
	OptionName     string
	EndsAt         *time.Time
	DealActive     bool
	OptionActive   bool
}

func NewDealBuilder() *DealBuilder {
	list := int64(9000)
	return &DealBuilder{
		DealID:         uuid.New(),
		OptionID:       uuid.New(),
		Title:          "Harbour Hotel Weekend",
		Slug:           "harbour-hotel-weekend",
		Category:       "hotel",
		Teaser:         "Two nights by the sea",
		ListPriceCents: &list,
		PriceCents:     4500,
		OptionName:     deal.DefaultOptionName,
		DealActive:     true,
		OptionActive:   true,
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) WithTitle(title string) *DealBuilder {
	b.Title = title
	return b
}

func (b *DealBuilder) WithCategory(category string) *DealBuilder {
	b.Category = category
	return b
}

func (b *DealBuilder) WithPrice(cents int64) *DealBuilder {
	b.PriceCents = cents
	return b
}

func (b *DealBuilder) WithEndsAt(t time.Time) *DealBuilder {
	b.EndsAt = &t
	return b
}

func (b *DealBuilder) AsInactiveDeal() *DealBuilder {
	b.DealActive = false
	return b
}

func (b *DealBuilder) AsInactiveOption() *DealBuilder {
	b.OptionActive = false
	return b
}

func (b *DealBuilder) BuildDomain() (*deal.Deal, error) {
	category, err := deal.NewCategory(b.Category)
	if err != nil {
		return nil, err
	}
	slug, err := deal.ParseSlug(b.Slug)
	if err != nil {
		return nil, err
	}
	details := deal.Details{
		Teaser:         b.Teaser,
		ListPriceCents: b.ListPriceCents,
		EndsAt:         b.EndsAt,
	}
	now := time.Now()
	return deal.ReconstructDeal(b.DealID, slug, b.Title, category, details, b.DealActive, now, now), nil
}

func (b *DealBuilder) BuildOption() *deal.Option {
	status := deal.OptionStatusActive
	if !b.OptionActive {
		status = deal.OptionStatusInactive
	}
	return deal.ReconstructOption(b.OptionID, b.DealID, b.OptionName, b.PriceCents, nil, 0, 0, status)
}

func (b *DealBuilder) BuildPurchasable() *order.PurchasableOption {
	return &order.PurchasableOption{
		OptionID:     b.OptionID,
		DealID:       b.DealID,
		DealSlug:     b.Slug,
		DealTitle:    b.Title,
		OptionName:   b.OptionName,
		PriceCents:   b.PriceCents,
		OptionActive: b.OptionActive,
		DealActive:   b.DealActive,
	}
}

func (b *DealBuilder) BuildSummary() queries.DealSummary {
	from := b.PriceCents
	return queries.DealSummary{
		ID:             b.DealID,
		Slug:           b.Slug,
		Title:          b.Title,
		Teaser:         b.Teaser,
		Category:       b.Category,
		FromPriceCents: &from,
		ListPriceCents: b.ListPriceCents,
		EndsAt:         b.EndsAt,
	}
}

func (b *DealBuilder) BuildDetail() *queries.DealDetail {
	from := b.PriceCents
	optionID := b.OptionID
	return &queries.DealDetail{
		ID:             b.DealID,
		Slug:           b.Slug,
		Title:          b.Title,
		Category:       b.Category,
		Teaser:         b.Teaser,
		ListPriceCents: b.ListPriceCents,
		EndsAt:         b.EndsAt,
		FromPriceCents: &from,
		MainOptionID:   &optionID,
		Options: []queries.OptionView{{
			ID:         b.OptionID,
			Name:       b.OptionName,
			PriceCents: b.PriceCents,
			Status:     deal.OptionStatusActive.String(),
		}},
	}
}

func (b *DealBuilder) BuildAdminView() *queries.AdminDealView {
	from := b.PriceCents
	now := time.Now()
	return &queries.AdminDealView{
		ID:             b.DealID,
		Slug:           b.Slug,
		Title:          b.Title,
		Category:       b.Category,
		Teaser:         b.Teaser,
		ListPriceCents: b.ListPriceCents,
		EndsAt:         b.EndsAt,
		IsActive:       b.DealActive,
		FromPriceCents: &from,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *DealBuilder) BuildCreateRequestDTO() reqdto.CreateDealRequest {
	price := b.PriceCents
	return reqdto.CreateDealRequest{
		Title:          b.Title,
		Category:       b.Category,
		Teaser:         b.Teaser,
		ListPriceCents: b.ListPriceCents,
		EndsAt:         b.EndsAt,
		PriceCents:     &price,
	}
}
