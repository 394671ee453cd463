package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const optionColumns = `id, deal_id, name, price_cents, original_price_cents, stock_total, stock_sold, status, created_at, updated_at`

func scanOption(row interface{ Scan(dest ...any) error }) (DealOptions, error) {
	var i DealOptions
	err := row.Scan(
		&i.ID,
		&i.DealID,
		&i.Name,
		&i.PriceCents,
		&i.OriginalPriceCents,
		&i.StockTotal,
		&i.StockSold,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createDealOption = `INSERT INTO deal_options (id, deal_id, name, price_cents, original_price_cents, stock_total, stock_sold, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreateDealOptionParams struct {
	ID                 uuid.UUID   `json:"id"`
	DealID             uuid.UUID   `json:"deal_id"`
	Name               string      `json:"name"`
	PriceCents         int64       `json:"price_cents"`
	OriginalPriceCents pgtype.Int8 `json:"original_price_cents"`
	StockTotal         int32       `json:"stock_total"`
	StockSold          int32       `json:"stock_sold"`
	Status             string      `json:"status"`
}

func (q *Queries) CreateDealOption(ctx context.Context, db DBTX, arg CreateDealOptionParams) error {
	_, err := db.Exec(ctx, createDealOption,
		arg.ID,
		arg.DealID,
		arg.Name,
		arg.PriceCents,
		arg.OriginalPriceCents,
		arg.StockTotal,
		arg.StockSold,
		arg.Status,
	)
	return err
}

const updateDealOption = `UPDATE deal_options SET
    name = $2, price_cents = $3, original_price_cents = $4, stock_total = $5, stock_sold = $6,
    status = $7, updated_at = NOW()
WHERE id = $1`

type UpdateDealOptionParams struct {
	ID                 uuid.UUID   `json:"id"`
	Name               string      `json:"name"`
	PriceCents         int64       `json:"price_cents"`
	OriginalPriceCents pgtype.Int8 `json:"original_price_cents"`
	StockTotal         int32       `json:"stock_total"`
	StockSold          int32       `json:"stock_sold"`
	Status             string      `json:"status"`
}

func (q *Queries) UpdateDealOption(ctx context.Context, db DBTX, arg UpdateDealOptionParams) (int64, error) {
	result, err := db.Exec(ctx, updateDealOption,
		arg.ID,
		arg.Name,
		arg.PriceCents,
		arg.OriginalPriceCents,
		arg.StockTotal,
		arg.StockSold,
		arg.Status,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getDealOptionByID = `SELECT ` + optionColumns + ` FROM deal_options WHERE id = $1`

func (q *Queries) GetDealOptionByID(ctx context.Context, db DBTX, id uuid.UUID) (DealOptions, error) {
	return scanOption(db.QueryRow(ctx, getDealOptionByID, id))
}

const getFirstDealOption = `SELECT ` + optionColumns + ` FROM deal_options WHERE deal_id = $1
ORDER BY created_at ASC, id ASC LIMIT 1`

func (q *Queries) GetFirstDealOption(ctx context.Context, db DBTX, dealID uuid.UUID) (DealOptions, error) {
	return scanOption(db.QueryRow(ctx, getFirstDealOption, dealID))
}

const listDealOptions = `SELECT ` + optionColumns + ` FROM deal_options WHERE deal_id = $1
ORDER BY created_at ASC, id ASC`

func (q *Queries) ListDealOptions(ctx context.Context, db DBTX, dealID uuid.UUID) ([]DealOptions, error) {
	return q.queryOptions(ctx, db, listDealOptions, dealID)
}

const listActiveDealOptions = `SELECT ` + optionColumns + ` FROM deal_options WHERE deal_id = $1 AND status = 'active'
ORDER BY created_at ASC, id ASC`

func (q *Queries) ListActiveDealOptions(ctx context.Context, db DBTX, dealID uuid.UUID) ([]DealOptions, error) {
	return q.queryOptions(ctx, db, listActiveDealOptions, dealID)
}

func (q *Queries) queryOptions(ctx context.Context, db DBTX, stmt string, args ...any) ([]DealOptions, error) {
	rows, err := db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []DealOptions{}
	for rows.Next() {
		i, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPurchasableOption = `SELECT o.id, o.deal_id, d.slug, d.title, o.name, o.price_cents, o.original_price_cents,
    o.status = 'active' AS option_active, d.is_active AS deal_active
FROM deal_options o
JOIN deals d ON d.id = o.deal_id
WHERE o.id = $1`

type GetPurchasableOptionRow struct {
	OptionID           uuid.UUID   `json:"option_id"`
	DealID             uuid.UUID   `json:"deal_id"`
	DealSlug           string      `json:"deal_slug"`
	DealTitle          string      `json:"deal_title"`
	OptionName         string      `json:"option_name"`
	PriceCents         int64       `json:"price_cents"`
	OriginalPriceCents pgtype.Int8 `json:"original_price_cents"`
	OptionActive       bool        `json:"option_active"`
	DealActive         bool        `json:"deal_active"`
}

func (q *Queries) GetPurchasableOption(ctx context.Context, db DBTX, optionID uuid.UUID) (GetPurchasableOptionRow, error) {
	var i GetPurchasableOptionRow
	err := db.QueryRow(ctx, getPurchasableOption, optionID).Scan(
		&i.OptionID,
		&i.DealID,
		&i.DealSlug,
		&i.DealTitle,
		&i.OptionName,
		&i.PriceCents,
		&i.OriginalPriceCents,
		&i.OptionActive,
		&i.DealActive,
	)
	return i, err
}
