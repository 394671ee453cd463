package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const dealColumns = `d.id, d.slug, d.title, d.category, d.teaser, d.description, d.image_url, d.list_price_cents,
d.merchant_name, d.badge_text, d.promo_code, d.promo_note, d.rating_avg, d.rating_count, d.featured_rank,
d.ends_at, d.is_active, d.created_at, d.updated_at`

func dealScanTargets(i *Deals) []any {
	return []any{
		&i.ID,
		&i.Slug,
		&i.Title,
		&i.Category,
		&i.Teaser,
		&i.Description,
		&i.ImageUrl,
		&i.ListPriceCents,
		&i.MerchantName,
		&i.BadgeText,
		&i.PromoCode,
		&i.PromoNote,
		&i.RatingAvg,
		&i.RatingCount,
		&i.FeaturedRank,
		&i.EndsAt,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const fromPriceSubquery = `(SELECT MIN(o.price_cents) FROM deal_options o WHERE o.deal_id = d.id AND o.status = 'active')`

const createDeal = `INSERT INTO deals (
    id, slug, title, category, teaser, description, image_url, list_price_cents, merchant_name,
    badge_text, promo_code, promo_note, rating_avg, rating_count, featured_rank, ends_at, is_active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

type CreateDealParams struct {
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
}

func (q *Queries) CreateDeal(ctx context.Context, db DBTX, arg CreateDealParams) error {
	_, err := db.Exec(ctx, createDeal,
		arg.ID,
		arg.Slug,
		arg.Title,
		arg.Category,
		arg.Teaser,
		arg.Description,
		arg.ImageUrl,
		arg.ListPriceCents,
		arg.MerchantName,
		arg.BadgeText,
		arg.PromoCode,
		arg.PromoNote,
		arg.RatingAvg,
		arg.RatingCount,
		arg.FeaturedRank,
		arg.EndsAt,
		arg.IsActive,
	)
	return err
}

const updateDeal = `UPDATE deals SET
    title = $2, category = $3, teaser = $4, description = $5, image_url = $6, list_price_cents = $7,
    merchant_name = $8, badge_text = $9, promo_code = $10, promo_note = $11, rating_avg = $12,
    rating_count = $13, featured_rank = $14, ends_at = $15, is_active = $16, updated_at = NOW()
WHERE id = $1`

// UpdateDealParams shares the column set of CreateDealParams; the slug is immutable.
type UpdateDealParams = CreateDealParams

func (q *Queries) UpdateDeal(ctx context.Context, db DBTX, arg UpdateDealParams) (int64, error) {
	result, err := db.Exec(ctx, updateDeal,
		arg.ID,
		arg.Title,
		arg.Category,
		arg.Teaser,
		arg.Description,
		arg.ImageUrl,
		arg.ListPriceCents,
		arg.MerchantName,
		arg.BadgeText,
		arg.PromoCode,
		arg.PromoNote,
		arg.RatingAvg,
		arg.RatingCount,
		arg.FeaturedRank,
		arg.EndsAt,
		arg.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const dealSlugExists = `SELECT EXISTS (SELECT 1 FROM deals WHERE slug = $1)`

func (q *Queries) DealSlugExists(ctx context.Context, db DBTX, slug string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, dealSlugExists, slug).Scan(&exists)
	return exists, err
}

const getDealByID = `SELECT ` + dealColumns + ` FROM deals d WHERE d.id = $1`

func (q *Queries) GetDealByID(ctx context.Context, db DBTX, id uuid.UUID) (Deals, error) {
	var i Deals
	err := db.QueryRow(ctx, getDealByID, id).Scan(dealScanTargets(&i)...)
	return i, err
}

const getDealByIDForUpdate = `SELECT ` + dealColumns + ` FROM deals d WHERE d.id = $1 FOR UPDATE`

func (q *Queries) GetDealByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Deals, error) {
	var i Deals
	err := db.QueryRow(ctx, getDealByIDForUpdate, id).Scan(dealScanTargets(&i)...)
	return i, err
}

type DealWithFromPriceRow struct {
	Deals
	FromPriceCents pgtype.Int8 `json:"from_price_cents"`
}

// The three listing orders are fixed statements; the caller picks one by key.
const listActiveDealsBase = `SELECT ` + dealColumns + `, ` + fromPriceSubquery + ` AS from_price_cents
FROM deals d
WHERE d.is_active = TRUE AND ($1::text IS NULL OR d.category = $1::text)
`

const (
	listActiveDealsPopular = listActiveDealsBase + `ORDER BY d.featured_rank ASC NULLS LAST, d.created_at DESC`
	listActiveDealsByPrice = listActiveDealsBase + `ORDER BY from_price_cents ASC NULLS LAST, d.created_at DESC`
	listActiveDealsEnding  = listActiveDealsBase + `ORDER BY d.ends_at ASC NULLS LAST, d.created_at DESC`
)

const (
	DealOrderPopular = "popular"
	DealOrderPrice   = "price"
	DealOrderEnding  = "ending"
)

var listActiveDealsByOrder = map[string]string{
	DealOrderPopular: listActiveDealsPopular,
	DealOrderPrice:   listActiveDealsByPrice,
	DealOrderEnding:  listActiveDealsEnding,
}

type ListActiveDealsParams struct {
	Category pgtype.Text `json:"category"`
	OrderBy  string      `json:"order_by"`
}

func (q *Queries) ListActiveDeals(ctx context.Context, db DBTX, arg ListActiveDealsParams) ([]DealWithFromPriceRow, error) {
	stmt, ok := listActiveDealsByOrder[arg.OrderBy]
	if !ok {
		stmt = listActiveDealsPopular
	}
	return q.queryDealsWithFromPrice(ctx, db, stmt, arg.Category)
}

const listAllDeals = `SELECT ` + dealColumns + `, ` + fromPriceSubquery + ` AS from_price_cents
FROM deals d
ORDER BY d.created_at DESC`

func (q *Queries) ListAllDeals(ctx context.Context, db DBTX) ([]DealWithFromPriceRow, error) {
	return q.queryDealsWithFromPrice(ctx, db, listAllDeals)
}

func (q *Queries) queryDealsWithFromPrice(ctx context.Context, db DBTX, stmt string, args ...any) ([]DealWithFromPriceRow, error) {
	rows, err := db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []DealWithFromPriceRow{}
	for rows.Next() {
		var i DealWithFromPriceRow
		targets := append(dealScanTargets(&i.Deals), &i.FromPriceCents)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getActiveDealBySlug = `SELECT ` + dealColumns + `, ` + fromPriceSubquery + ` AS from_price_cents,
    (SELECT o.id FROM deal_options o WHERE o.deal_id = d.id AND o.status = 'active'
     ORDER BY o.created_at ASC, o.id ASC LIMIT 1) AS main_option_id
FROM deals d
WHERE d.slug = $1 AND d.is_active = TRUE`

type GetActiveDealBySlugRow struct {
	Deals
	FromPriceCents pgtype.Int8 `json:"from_price_cents"`
	MainOptionID   pgtype.UUID `json:"main_option_id"`
}

func (q *Queries) GetActiveDealBySlug(ctx context.Context, db DBTX, slug string) (GetActiveDealBySlugRow, error) {
	var i GetActiveDealBySlugRow
	targets := append(dealScanTargets(&i.Deals), &i.FromPriceCents, &i.MainOptionID)
	err := db.QueryRow(ctx, getActiveDealBySlug, slug).Scan(targets...)
	return i, err
}

const listActiveDealSlugs = `SELECT slug, updated_at FROM deals WHERE is_active = TRUE ORDER BY updated_at DESC`

type ListActiveDealSlugsRow struct {
	Slug      string             `json:"slug"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) ListActiveDealSlugs(ctx context.Context, db DBTX) ([]ListActiveDealSlugsRow, error) {
	rows, err := db.Query(ctx, listActiveDealSlugs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ListActiveDealSlugsRow{}
	for rows.Next() {
		var i ListActiveDealSlugsRow
		if err := rows.Scan(&i.Slug, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
