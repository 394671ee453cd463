package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDealNotFound = errs.New("deal not found")
	ErrCacheMiss    = errors.New("cache miss")
)

type CatalogReadStore interface {
	ListActive(ctx context.Context, category *deal.Category, sort deal.SortOrder) ([]DealSummary, error)
	FindActiveBySlug(ctx context.Context, slug string) (*DealDetail, error)
	ListAll(ctx context.Context) ([]AdminDealView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AdminDealView, error)
	ListSitemap(ctx context.Context) ([]SitemapEntry, error)
}

// CatalogCache holds raw store results; time-dependent fields are derived on every read.
type CatalogCache interface {
	GetListing(ctx context.Context, category, sort string) ([]DealSummary, error)
	SetListing(ctx context.Context, category, sort string, deals []DealSummary) error
	GetDeal(ctx context.Context, slug string) (*DealDetail, error)
	SetDeal(ctx context.Context, slug string, detail *DealDetail) error
}

type CatalogQueries interface {
	ListDeals(ctx context.Context, category, sort string) ([]DealSummary, error)
	GetDeal(ctx context.Context, slug string) (*DealDetail, error)
	AdminListDeals(ctx context.Context) ([]AdminDealView, error)
	AdminGetDeal(ctx context.Context, id uuid.UUID) (*AdminDealView, error)
	Sitemap(ctx context.Context) ([]SitemapEntry, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	cache     CatalogCache
	clock     clock.Clock
}

func NewCatalogQueries(readStore CatalogReadStore, cache CatalogCache, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
		cache:     cache,
		clock:     clk,
	}
}

// ListDeals ignores unknown categories and falls back to popular for unknown sorts.
func (q *catalogQueriesImpl) ListDeals(ctx context.Context, category, sort string) ([]DealSummary, error) {
	var filter *deal.Category
	if c, err := deal.NewCategory(strings.TrimSpace(category)); err == nil {
		filter = &c
	}
	order := deal.ParseSortOrder(sort)

	categoryKey := ""
	if filter != nil {
		categoryKey = filter.String()
	}

	deals, err := q.cache.GetListing(ctx, categoryKey, string(order))
	if err != nil {
		logCacheErr("listing", err)
		deals, err = q.readStore.ListActive(ctx, filter, order)
		if err != nil {
			return nil, err
		}
		if setErr := q.cache.SetListing(ctx, categoryKey, string(order), deals); setErr != nil {
			slog.Warn("catalog cache write failed", "error", setErr.Error())
		}
	}

	for i := range deals {
		enrichSummary(&deals[i])
	}
	return deals, nil
}

func (q *catalogQueriesImpl) GetDeal(ctx context.Context, slug string) (*DealDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrDealNotFound
	}

	detail, err := q.cache.GetDeal(ctx, slug)
	if err != nil {
		logCacheErr("deal", err)
		detail, err = q.readStore.FindActiveBySlug(ctx, slug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrDealNotFound
			}
			return nil, err
		}
		if setErr := q.cache.SetDeal(ctx, slug, detail); setErr != nil {
			slog.Warn("catalog cache write failed", "error", setErr.Error())
		}
	}

	if detail.ImageURL == "" {
		detail.ImageURL = PlaceholderImageURL
	}
	detail.DiscountPercent = deal.DiscountPercent(detail.FromPriceCents, detail.ListPriceCents)
	detail.TimeLeftDays = deal.TimeLeftDays(detail.EndsAt, q.clock.Now())
	return detail, nil
}

func (q *catalogQueriesImpl) AdminListDeals(ctx context.Context) ([]AdminDealView, error) {
	return q.readStore.ListAll(ctx)
}

func (q *catalogQueriesImpl) AdminGetDeal(ctx context.Context, id uuid.UUID) (*AdminDealView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	return q.readStore.ListSitemap(ctx)
}

func enrichSummary(s *DealSummary) {
	if s.ImageURL == "" {
		s.ImageURL = PlaceholderImageURL
	}
	s.DiscountPercent = deal.DiscountPercent(s.FromPriceCents, s.ListPriceCents)
}

func logCacheErr(what string, err error) {
	if errors.Is(err, ErrCacheMiss) {
		return
	}
	slog.Warn("catalog cache read failed", "entry", what, "error", err.Error())
}
