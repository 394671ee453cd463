package repository

import (
	"context"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/infra"
	"travel-deals/internal/infra/pgquery"
	"travel-deals/internal/infra/repository/converter"
	"travel-deals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DealWriteQueries interface {
	CreateDeal(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateDealParams) error
	UpdateDeal(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateDealParams) (int64, error)
	GetDealByIDForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Deals, error)
	DealSlugExists(ctx context.Context, db pgquery.DBTX, slug string) (bool, error)
	CreateDealOption(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateDealOptionParams) error
	UpdateDealOption(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateDealOptionParams) (int64, error)
	GetDealOptionByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.DealOptions, error)
	GetFirstDealOption(ctx context.Context, db pgquery.DBTX, dealID uuid.UUID) (pgquery.DealOptions, error)
}

type DealRepository struct {
	queries DealWriteQueries
}

func NewDealRepository(queries DealWriteQueries) *DealRepository {
	return &DealRepository{
		queries: queries,
	}
}

func (r *DealRepository) Create(ctx context.Context, tx pgquery.DBTX, d *deal.Deal) error {
	if err := r.queries.CreateDeal(ctx, tx, converter.DealToInfra(d)); err != nil {
		return infra.WrapRepoErr("failed to create deal", err)
	}
	return nil
}

func (r *DealRepository) Update(ctx context.Context, tx pgquery.DBTX, d *deal.Deal) error {
	affected, err := r.queries.UpdateDeal(ctx, tx, converter.DealToInfra(d))
	if err != nil {
		return infra.WrapRepoErr("failed to update deal", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) FindForUpdate(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock deal", err)
	}

	d, err := converter.DealToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deal", err, infra.KindDBFailure)
	}
	return d, nil
}

func (r *DealRepository) SlugExists(ctx context.Context, tx pgquery.DBTX, slug deal.Slug) (bool, error) {
	exists, err := r.queries.DealSlugExists(ctx, tx, slug.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug", err)
	}
	return exists, nil
}

func (r *DealRepository) CreateOption(ctx context.Context, tx pgquery.DBTX, opt *deal.Option) error {
	if err := r.queries.CreateDealOption(ctx, tx, converter.OptionToInfra(opt)); err != nil {
		return infra.WrapRepoErr("failed to create deal option", err)
	}
	return nil
}

func (r *DealRepository) UpdateOption(ctx context.Context, tx pgquery.DBTX, opt *deal.Option) error {
	affected, err := r.queries.UpdateDealOption(ctx, tx, converter.OptionToUpdateParams(opt))
	if err != nil {
		return infra.WrapRepoErr("failed to update deal option", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("deal option not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) FindOption(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*deal.Option, error) {
	row, err := r.queries.GetDealOptionByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal option", err)
	}
	return toOption(row)
}

func (r *DealRepository) FirstOption(ctx context.Context, tx pgquery.DBTX, dealID uuid.UUID) (*deal.Option, error) {
	row, err := r.queries.GetFirstDealOption(ctx, tx, dealID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal has no options", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find first deal option", err)
	}
	return toOption(row)
}

func toOption(row pgquery.DealOptions) (*deal.Option, error) {
	opt, err := converter.OptionToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deal option", err, infra.KindDBFailure)
	}
	return opt, nil
}
