//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-deals/internal/domain/deal"
	"travel-deals/internal/infra"
	"travel-deals/internal/pkg/clock"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/queries"
	"travel-deals/tests/common/builder"
	queriesmock "travel-deals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type CatalogQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockCatalogReadStore
	cache   *queriesmock.MockCatalogCache
	queries queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockCatalogReadStore(s.ctrl)
	s.cache = queriesmock.NewMockCatalogCache(s.ctrl)
	s.queries = queries.NewCatalogQueries(s.store, s.cache, clock.NewMockClock(testNow))
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestListDeals_CacheMiss() {
	summary := builder.NewDealBuilder().BuildSummary()
	hotel := deal.CategoryHotel

	gomock.InOrder(
		s.cache.EXPECT().GetListing(gomock.Any(), "hotel", "price").Return(nil, queries.ErrCacheMiss),
		s.store.EXPECT().ListActive(gomock.Any(), &hotel, deal.SortPrice).Return([]queries.DealSummary{summary}, nil),
		s.cache.EXPECT().SetListing(gomock.Any(), "hotel", "price", gomock.Len(1)).Return(nil),
	)

	deals, err := s.queries.ListDeals(context.Background(), " hotel ", "price")
	s.Require().NoError(err)
	s.Require().Len(deals, 1)
	s.Equal(queries.PlaceholderImageURL, deals[0].ImageURL)
	s.Require().NotNil(deals[0].DiscountPercent)
	s.Equal(50, *deals[0].DiscountPercent)
}

func (s *CatalogQueriesTestSuite) TestListDeals_CacheHit() {
	summary := builder.NewDealBuilder().BuildSummary()
	summary.ImageURL = "/uploads/cover.png"
	s.cache.EXPECT().GetListing(gomock.Any(), "", "popular").Return([]queries.DealSummary{summary}, nil)

	deals, err := s.queries.ListDeals(context.Background(), "", "")
	s.Require().NoError(err)
	s.Require().Len(deals, 1)
	s.Equal("/uploads/cover.png", deals[0].ImageURL)
	s.Equal(50, *deals[0].DiscountPercent)
}

func (s *CatalogQueriesTestSuite) TestListDeals_UnknownFiltersFallBack() {
	s.cache.EXPECT().GetListing(gomock.Any(), "", "popular").Return(nil, queries.ErrCacheMiss)
	s.store.EXPECT().ListActive(gomock.Any(), gomock.Nil(), deal.SortPopular).Return([]queries.DealSummary{}, nil)
	s.cache.EXPECT().SetListing(gomock.Any(), "", "popular", gomock.Any()).Return(nil)

	deals, err := s.queries.ListDeals(context.Background(), "cruise", "cheapest")
	s.Require().NoError(err)
	s.Empty(deals)
}

func (s *CatalogQueriesTestSuite) TestListDeals_CacheOutage() {
	s.cache.EXPECT().GetListing(gomock.Any(), "", "ending").Return(nil, errors.New("dial tcp: refused"))
	s.store.EXPECT().ListActive(gomock.Any(), gomock.Nil(), deal.SortEnding).
		Return([]queries.DealSummary{builder.NewDealBuilder().BuildSummary()}, nil)
	s.cache.EXPECT().SetListing(gomock.Any(), "", "ending", gomock.Any()).Return(errors.New("dial tcp: refused"))

	deals, err := s.queries.ListDeals(context.Background(), "", "ending")
	s.Require().NoError(err)
	s.Len(deals, 1)
}

func (s *CatalogQueriesTestSuite) TestListDeals_StoreError() {
	s.cache.EXPECT().GetListing(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrCacheMiss)
	s.store.EXPECT().ListActive(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	deals, err := s.queries.ListDeals(context.Background(), "", "")
	s.Nil(deals)
	s.Error(err)
}

func (s *CatalogQueriesTestSuite) TestGetDeal() {
	s.Run("Derives discount and days left", func() {
		detail := builder.NewDealBuilder().WithEndsAt(testNow.Add(36 * time.Hour)).BuildDetail()
		s.cache.EXPECT().GetDeal(gomock.Any(), "harbour-hotel-weekend").Return(nil, queries.ErrCacheMiss)
		s.store.EXPECT().FindActiveBySlug(gomock.Any(), "harbour-hotel-weekend").Return(detail, nil)
		s.cache.EXPECT().SetDeal(gomock.Any(), "harbour-hotel-weekend", detail).Return(nil)

		got, err := s.queries.GetDeal(context.Background(), "harbour-hotel-weekend")
		s.Require().NoError(err)
		s.Equal(queries.PlaceholderImageURL, got.ImageURL)
		s.Require().NotNil(got.DiscountPercent)
		s.Equal(50, *got.DiscountPercent)
		s.Require().NotNil(got.TimeLeftDays)
		s.Equal(2, *got.TimeLeftDays)
	})

	s.Run("Cached deal is recomputed against the clock", func() {
		detail := builder.NewDealBuilder().WithEndsAt(testNow.Add(-time.Hour)).BuildDetail()
		s.cache.EXPECT().GetDeal(gomock.Any(), "harbour-hotel-weekend").Return(detail, nil)

		got, err := s.queries.GetDeal(context.Background(), "harbour-hotel-weekend")
		s.Require().NoError(err)
		s.Nil(got.TimeLeftDays)
	})

	s.Run("Unknown slug", func() {
		s.cache.EXPECT().GetDeal(gomock.Any(), "nope").Return(nil, queries.ErrCacheMiss)
		s.store.EXPECT().FindActiveBySlug(gomock.Any(), "nope").
			Return(nil, infra.WrapRepoErr("deal not found", nil, infra.KindNotFound))

		_, err := s.queries.GetDeal(context.Background(), "nope")
		s.True(errs.Is(err, queries.ErrDealNotFound))
	})

	s.Run("Blank slug never reaches the store", func() {
		_, err := s.queries.GetDeal(context.Background(), "  ")
		s.True(errs.Is(err, queries.ErrDealNotFound))
	})
}

func (s *CatalogQueriesTestSuite) TestAdminGetDeal() {
	view := builder.NewDealBuilder().BuildAdminView()
	s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

	got, err := s.queries.AdminGetDeal(context.Background(), view.ID)
	s.Require().NoError(err)
	s.Equal(view, got)

	missing := uuid.New()
	s.store.EXPECT().FindByID(gomock.Any(), missing).Return(nil, infra.WrapRepoErr("deal not found", nil, infra.KindNotFound))
	_, err = s.queries.AdminGetDeal(context.Background(), missing)
	s.True(errs.Is(err, queries.ErrDealNotFound))
}
