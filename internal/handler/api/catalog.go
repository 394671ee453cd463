package api

import (
	"encoding/xml"
	"net/http"
	"strings"

	resdto "travel-deals/internal/handler/dto/response"
	"travel-deals/internal/handler/httperr"
	"travel-deals/internal/pkg/errs"
	"travel-deals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q             queries.CatalogQueries
	publicBaseURL string
}

func NewCatalogHandler(q queries.CatalogQueries, publicBaseURL string) *CatalogHandler {
	return &CatalogHandler{
		q:             q,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// @Summary List deals
// @Description Active deals, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "hotel, restaurant or experience"
// @Param sort query string false "popular, price or ending"
// @Success 200 {object} resdto.DealListResponse
// @Router /deals [get]
func (h *CatalogHandler) ListDeals(c *gin.Context) {
	category := c.Query("category")
	sort := c.DefaultQuery("sort", "popular")

	views, err := h.q.ListDeals(c.Request.Context(), category, sort)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	deals, err := resdto.FromDealSummaries(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DealListResponse{Deals: deals, Category: category, Sort: sort})
}

// @Summary Get deal
// @Description Deal detail with its active options
// @Tags catalog
// @Produce json
// @Param slug path string true "Deal slug"
// @Success 200 {object} resdto.DealDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /deals/{slug} [get]
func (h *CatalogHandler) GetDeal(c *gin.Context) {
	detail, err := h.q.GetDeal(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errs.Is(err, queries.ErrDealNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Deal not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out, err := resdto.FromDealDetail(detail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Robots(c *gin.Context) {
	body := "User-agent: *\nAllow: /\nDisallow: /admin\nDisallow: /account\nSitemap: " + h.publicBaseURL + "/sitemap.xml\n"
	c.String(http.StatusOK, body)
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *CatalogHandler) Sitemap(c *gin.Context) {
	entries, err := h.q.Sitemap(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: h.publicBaseURL + "/"}},
	}
	for _, e := range entries {
		u := sitemapURL{Loc: h.publicBaseURL + "/deal/" + e.Slug}
		if !e.UpdatedAt.IsZero() {
			u.LastMod = e.UpdatedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
