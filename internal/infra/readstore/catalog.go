package readstore

import (
	"context"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/domain/order"
	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/pkg/pgconv"
	"travel-deals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	ListActiveDeals(ctx context.Context, db pgquery.DBTX, arg pgquery.ListActiveDealsParams) ([]pgquery.DealWithFromPriceRow, error)
	GetActiveDealBySlug(ctx context.Context, db pgquery.DBTX, slug string) (pgquery.GetActiveDealBySlugRow, error)
	ListActiveDealOptions(ctx context.Context, db pgquery.DBTX, dealID uuid.UUID) ([]pgquery.DealOptions, error)
	ListDealOptions(ctx context.Context, db pgquery.DBTX, dealID uuid.UUID) ([]pgquery.DealOptions, error)
	ListAllDeals(ctx context.Context, db pgquery.DBTX) ([]pgquery.DealWithFromPriceRow, error)
	GetDealByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Deals, error)
	ListActiveDealSlugs(ctx context.Context, db pgquery.DBTX) ([]pgquery.ListActiveDealSlugsRow, error)
	GetPurchasableOption(ctx context.Context, db pgquery.DBTX, optionID uuid.UUID) (pgquery.GetPurchasableOptionRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      pgquery.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db pgquery.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

var sortOrderKeys = map[deal.SortOrder]string{
	deal.SortPopular: pgquery.DealOrderPopular,
	deal.SortPrice:   pgquery.DealOrderPrice,
	deal.SortEnding:  pgquery.DealOrderEnding,
}

func (r *CatalogReadStore) ListActive(ctx context.Context, category *deal.Category, sort deal.SortOrder) ([]queries.DealSummary, error) {
	params := pgquery.ListActiveDealsParams{
		Category: pgtype.Text{Valid: false},
		OrderBy:  sortOrderKeys[sort],
	}
	if category != nil {
		params.Category = pgconv.StringToPgtype(category.String())
	}

	rows, err := r.queries.ListActiveDeals(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active deals", err)
	}

	result := make([]queries.DealSummary, len(rows))
	for i, row := range rows {
		result[i] = toDealSummary(row)
	}
	return result, nil
}

func (r *CatalogReadStore) FindActiveBySlug(ctx context.Context, slug string) (*queries.DealDetail, error) {
	row, err := r.queries.GetActiveDealBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by slug", err)
	}

	options, err := r.queries.ListActiveDealOptions(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal options", err)
	}

	detail := toDealDetail(row)
	detail.Options = toOptionViews(options)
	return detail, nil
}

func (r *CatalogReadStore) ListAll(ctx context.Context) ([]queries.AdminDealView, error) {
	rows, err := r.queries.ListAllDeals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}

	result := make([]queries.AdminDealView, len(rows))
	for i, row := range rows {
		view := toAdminDealView(row.Deals)
		view.FromPriceCents = pgconv.Int64PtrFromPgtype(row.FromPriceCents)
		result[i] = view
	}
	return result, nil
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminDealView, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by ID", err)
	}

	options, err := r.queries.ListDealOptions(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal options", err)
	}

	view := toAdminDealView(row)
	view.Options = toOptionViews(options)
	view.FromPriceCents = minActivePrice(view.Options)
	return &view, nil
}

func (r *CatalogReadStore) ListSitemap(ctx context.Context) ([]queries.SitemapEntry, error) {
	rows, err := r.queries.ListActiveDealSlugs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deal slugs", err)
	}

	result := make([]queries.SitemapEntry, len(rows))
	for i, row := range rows {
		result[i] = queries.SitemapEntry{
			Slug:      row.Slug,
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// FindPurchasableOption returns the option even when it or its deal is
// inactive; the caller decides purchasability.
func (r *CatalogReadStore) FindPurchasableOption(ctx context.Context, optionID uuid.UUID) (*order.PurchasableOption, error) {
	row, err := r.queries.GetPurchasableOption(ctx, r.db, optionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal option", err)
	}

	return &order.PurchasableOption{
		OptionID:           row.OptionID,
		DealID:             row.DealID,
		DealSlug:           row.DealSlug,
		DealTitle:          row.DealTitle,
		OptionName:         row.OptionName,
		PriceCents:         row.PriceCents,
		OriginalPriceCents: pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
		OptionActive:       row.OptionActive,
		DealActive:         row.DealActive,
	}, nil
}

func toDealSummary(row pgquery.DealWithFromPriceRow) queries.DealSummary {
	return queries.DealSummary{
		ID:             row.ID,
		Slug:           row.Slug,
		Title:          row.Title,
		Teaser:         pgconv.StringFromPgtype(row.Teaser),
		Category:       row.Category,
		ImageURL:       pgconv.StringFromPgtype(row.ImageUrl),
		FromPriceCents: pgconv.Int64PtrFromPgtype(row.FromPriceCents),
		ListPriceCents: pgconv.Int64PtrFromPgtype(row.ListPriceCents),
		MerchantName:   pgconv.StringFromPgtype(row.MerchantName),
		BadgeText:      pgconv.StringFromPgtype(row.BadgeText),
		RatingAvg:      pgconv.Float64PtrFromPgtype(row.RatingAvg),
		RatingCount:    pgconv.Int32PtrFromPgtype(row.RatingCount),
		EndsAt:         pgconv.TimePtrFromPgtype(row.EndsAt),
	}
}

func toDealDetail(row pgquery.GetActiveDealBySlugRow) *queries.DealDetail {
	return &queries.DealDetail{
		ID:             row.ID,
		Slug:           row.Slug,
		Title:          row.Title,
		Category:       row.Category,
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
		EndsAt:         pgconv.TimePtrFromPgtype(row.EndsAt),
		FromPriceCents: pgconv.Int64PtrFromPgtype(row.FromPriceCents),
		MainOptionID:   pgconv.UUIDPtrFromPgtype(row.MainOptionID),
	}
}

func toAdminDealView(row pgquery.Deals) queries.AdminDealView {
	return queries.AdminDealView{
		ID:             row.ID,
		Slug:           row.Slug,
		Title:          row.Title,
		Category:       row.Category,
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
		IsActive:       row.IsActive,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toOptionViews(rows []pgquery.DealOptions) []queries.OptionView {
	result := make([]queries.OptionView, len(rows))
	for i, row := range rows {
		result[i] = queries.OptionView{
			ID:                 row.ID,
			Name:               row.Name,
			PriceCents:         row.PriceCents,
			OriginalPriceCents: pgconv.Int64PtrFromPgtype(row.OriginalPriceCents),
			StockTotal:         row.StockTotal,
			StockSold:          row.StockSold,
			Status:             row.Status,
		}
	}
	return result
}

func minActivePrice(options []queries.OptionView) *int64 {
	var lowest *int64
	for _, o := range options {
		if o.Status != deal.OptionStatusActive.String() {
			continue
		}
		if lowest == nil || o.PriceCents < *lowest {
			p := o.PriceCents
			lowest = &p
		}
	}
	return lowest
}
