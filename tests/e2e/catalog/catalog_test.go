//go:build e2e

package catalog_test

import (
	"net/http"
	"strings"
	"testing"

	"travel-deals/internal/handler/dto/response"
	"travel-deals/tests/common/authtest"
	"travel-deals/tests/common/dbtest"
	"travel-deals/tests/common/httptest"
	"travel-deals/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) createDeal(adminToken string, body map[string]any) response.CreatedDealResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/deals", body, adminToken)
	var created response.CreatedDealResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func (s *catalogSuite) listDeals(query string) response.DealListResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/deals"+query, nil, "")
	var res response.DealListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func slugs(deals []response.DealSummaryResponse) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.Slug)
	}
	return out
}

func (s *catalogSuite) TestAdminPublishesDeal() {
	s.Run("作成した案件が一覧と詳細に出る", func() {
		t := s.T()
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		created := s.createDeal(admin, map[string]any{
			"title":            "Harbour Hotel Weekend",
			"category":         "hotel",
			"teaser":           "Two nights by the water",
			"list_price_cents": 9000,
			"price_cents":      4500,
		})
		require.Equal(t, "harbour-hotel-weekend", created.Slug)

		list := s.listDeals("")
		require.Len(t, list.Deals, 1)
		summary := list.Deals[0]
		require.Equal(t, "harbour-hotel-weekend", summary.Slug)
		require.NotNil(t, summary.FromPriceCents)
		require.Equal(t, int64(4500), *summary.FromPriceCents)
		require.NotNil(t, summary.DiscountPercent)
		require.Equal(t, 50, *summary.DiscountPercent)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/deals/"+created.Slug, nil, "")
		var detail response.DealDetailResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, created.ID, detail.ID)
		require.Len(t, detail.Options, 1)
		require.NotNil(t, detail.MainOptionID)
		require.Equal(t, detail.Options[0].ID, *detail.MainOptionID)
	})

	s.Run("同じタイトルは連番付きスラッグ", func() {
		t := s.T()
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		first := s.createDeal(admin, map[string]any{"title": "Lakeside Spa", "category": "experience"})
		second := s.createDeal(admin, map[string]any{"title": "Lakeside Spa", "category": "experience"})
		require.Equal(t, "lakeside-spa", first.Slug)
		require.Equal(t, "lakeside-spa-1", second.Slug)
	})

	s.Run("必須項目なしは400", func() {
		t := s.T()
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/deals",
			map[string]any{"category": "hotel"}, admin)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing fields")
	})
}

func (s *catalogSuite) TestListingFilters() {
	s.Run("カテゴリで絞り込める", func() {
		t := s.T()
		dbtest.CreateTestDeal(t, s.DB, "quiet-inn", 5000)
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)
		s.createDeal(admin, map[string]any{"title": "Noodle Bar", "category": "restaurant", "price_cents": 1500})

		list := s.listDeals("?category=restaurant")
		require.Equal(t, []string{"noodle-bar"}, slugs(list.Deals))
		require.Equal(t, "restaurant", list.Category)

		// 未知のカテゴリは無視される
		list = s.listDeals("?category=spaceship")
		require.ElementsMatch(t, []string{"quiet-inn", "noodle-bar"}, slugs(list.Deals))
	})

	s.Run("おすすめ順は順位なしが最後", func() {
		t := s.T()
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)
		s.createDeal(admin, map[string]any{"title": "Far Ranked", "category": "hotel", "featured_rank": 10000, "price_cents": 1000})
		s.createDeal(admin, map[string]any{"title": "Top Ranked", "category": "hotel", "featured_rank": 1, "price_cents": 1000})
		s.createDeal(admin, map[string]any{"title": "Unranked", "category": "hotel", "price_cents": 1000})

		list := s.listDeals("?sort=popular")
		require.Equal(t, []string{"top-ranked", "far-ranked", "unranked"}, slugs(list.Deals))
	})

	s.Run("価格順", func() {
		t := s.T()
		dbtest.CreateTestDeal(t, s.DB, "pricey", 9000)
		dbtest.CreateTestDeal(t, s.DB, "cheap", 1000)

		list := s.listDeals("?sort=price")
		require.Equal(t, []string{"cheap", "pricey"}, slugs(list.Deals))
	})
}

func (s *catalogSuite) TestToggleHidesDeal() {
	s.Run("非公開にすると一覧と詳細から消える", func() {
		t := s.T()
		deal := dbtest.CreateTestDeal(t, s.DB, "sunset-cruise", 6000)
		admin := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		// 一覧をキャッシュに載せる
		require.Equal(t, []string{"sunset-cruise"}, slugs(s.listDeals("").Deals))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/deals/"+deal.DealID.String()+"/toggle", nil, admin)
		var toggled response.ToggleDealResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &toggled)
		require.False(t, toggled.IsActive)

		require.Empty(t, s.listDeals("").Deals)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/deals/sunset-cruise", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Deal not found")
	})

	s.Run("存在しない案件は404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/deals/no-such-deal", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Deal not found")
	})
}

func (s *catalogSuite) TestSEO() {
	s.Run("サイトマップは公開中の案件だけ", func() {
		t := s.T()
		dbtest.CreateTestDeal(t, s.DB, "open-deal", 2000)
		hidden := dbtest.CreateTestDeal(t, s.DB, "hidden-deal", 2000)
		dbtest.SetDealActive(t, s.DB, hidden.DealID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/sitemap.xml", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml"))

		body := w.Body.String()
		base := s.Config.Server.PublicBaseURL
		require.Contains(t, body, "<loc>"+base+"/deal/open-deal</loc>")
		require.NotContains(t, body, "hidden-deal")
	})

	s.Run("robots.txt", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/robots.txt", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Disallow: /admin")
		require.Contains(t, w.Body.String(), "Sitemap: "+s.Config.Server.PublicBaseURL+"/sitemap.xml")
	})
}
