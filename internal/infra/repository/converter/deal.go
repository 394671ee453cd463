package converter

import (
	"fmt"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
)

func DealToInfra(d *deal.Deal) pgquery.CreateDealParams {
	det := d.Details()
	return pgquery.CreateDealParams{
		ID:             d.ID(),
		Slug:           d.Slug().String(),
		Title:          d.Title(),
		Category:       d.Category().String(),
		Teaser:         pgconv.NullableStringToPgtype(det.Teaser),
		Description:    pgconv.NullableStringToPgtype(det.Description),
		ImageUrl:       pgconv.NullableStringToPgtype(det.ImageURL),
		ListPriceCents: pgconv.Int64PtrToPgtype(det.ListPriceCents),
		MerchantName:   pgconv.NullableStringToPgtype(det.MerchantName),
		BadgeText:      pgconv.NullableStringToPgtype(det.BadgeText),
		PromoCode:      pgconv.NullableStringToPgtype(det.PromoCode),
		PromoNote:      pgconv.NullableStringToPgtype(det.PromoNote),
		RatingAvg:      pgconv.Float64PtrToPgtype(det.RatingAvg),
		RatingCount:    pgconv.Int32PtrToPgtype(det.RatingCount),
		FeaturedRank:   pgconv.Int32PtrToPgtype(det.FeaturedRank),
		EndsAt:         pgconv.TimePtrToPgtype(det.EndsAt),
		IsActive:       d.IsActive(),
	}
}

func DealToDomain(row pgquery.Deals) (*deal.Deal, error) {
	category, err := deal.NewCategory(row.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in database: %w", err)
	}
	slug, err := deal.ParseSlug(row.Slug)
	if err != nil {
		return nil, fmt.Errorf("invalid slug in database: %w", err)
	}

	return deal.ReconstructDeal(
		row.ID,
		slug,
		row.Title,
		category,
		DealDetailsFromRow(row),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DealDetailsFromRow(row pgquery.Deals) deal.Details {
	return deal.Details{
		Teaser:         pgconv.StringFromPgtype(row.Teaser),
		Description:    pgconv.StringFromPgtype(row.Description),
		ImageURL:       pgconv.StringFromPgtype(row.ImageUrl),
		ListPriceCents: pgconv.Int64PtrFromPgtype(row.ListPriceCents),
		MerchantName:   pgconv.StringFromPgtype(row.MerchantName),
		BadgeText:      pgconv.StringFromPgtype(row.BadgeText),
		PromoCode:      pgconv.StringFromPgtype(row.PromoCode),
		PromoNote:      pgconv.StringFromPgtype(row.PromoNote),
		RatingAvg:      pgconv.Float64PtrFromPgtype(row.RatingAvg),
		RatingCount:    pgconv.Int32PtrFromPgtype(row.RatingCount),
		FeaturedRank:   pgconv.Int32PtrFromPgtype(row.FeaturedRank),
		EndsAt:         pgconv.TimePtrFromPgtype(row.EndsAt),
	}
}

func OptionToInfra(o *deal.Option) pgquery.CreateDealOptionParams {
	return pgquery.CreateDealOptionParams{
		ID:                 o.ID(),
		DealID:             o.DealID(),
		Name:               o.Name(),
		PriceCents:         o.PriceCents(),
		OriginalPriceCents: pgconv.Int64PtrToPgtype(o.OriginalPriceCents()),
		StockTotal:         o.StockTotal(),
		StockSold:          o.StockSold(),
		Status:             o.Status().String(),
	}
}

func OptionToUpdateParams(o *deal.Option) pgquery.UpdateDealOptionParams {
	return pgquery.UpdateDealOptionParams{
		ID:                 o.ID(),
		Name:               o.Name(),
		PriceCents:         o.PriceCents(),
		OriginalPriceCents: pgconv.Int64PtrToPgtype(o.OriginalPriceCents()),
		StockTotal:         o.StockTotal(),
		StockSold:          o.StockSold(),
		Status:             o.Status().String(),
	}
}

func OptionToDomain(row pgquery.DealOptions) (*deal.Option, error) {
	status, err := deal.NewOptionStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid option status in database: %w", err)
	}

	return deal.ReconstructOption(
		row.ID,
		row.DealID,
		row.Name,
		row.PriceCents,
		pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		row.StockTotal,
		row.StockSold,
		status,
	), nil
}
