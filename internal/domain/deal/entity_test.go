//go:build unit

package deal_test

import (
	"testing"
	"time"

	"travel-deals/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
		err   error
	}{
		{title: "Harbour Hotel Weekend", want: "harbour-hotel-weekend"},
		{title: "  Spa & Dinner!! for 2 ", want: "spa-dinner-for-2"},
		{title: "---Already--dashed---", want: "already-dashed"},
		{title: "Café Crème", want: "caf-cr-me"},
		{title: "!!!", err: deal.ErrEmptySlug},
		{title: "", err: deal.ErrEmptySlug},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, err := deal.Slugify(tt.title)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("連番サフィックス", func(t *testing.T) {
		s, err := deal.Slugify("Harbour Hotel")
		require.NoError(t, err)
		assert.Equal(t, "harbour-hotel-2", s.WithSuffix(2).String())
		assert.Equal(t, "harbour-hotel", s.String())
	})

	_, err := deal.ParseSlug("  ")
	require.ErrorIs(t, err, deal.ErrEmptySlug)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name       string
		from, list *int64
		want       *int
	}{
		{name: "半額", from: ptr(int64(4500)), list: ptr(int64(9000)), want: ptr(50)},
		{name: "四捨五入", from: ptr(int64(2000)), list: ptr(int64(3000)), want: ptr(33)},
		{name: "切り上げ側", from: ptr(int64(1000)), list: ptr(int64(3000)), want: ptr(67)},
		{name: "同額は割引なし", from: ptr(int64(5000)), list: ptr(int64(5000))},
		{name: "定価の方が安い", from: ptr(int64(6000)), list: ptr(int64(5000))},
		{name: "定価なし", from: ptr(int64(4500))},
		{name: "価格なし", list: ptr(int64(9000))},
		{name: "ゼロ価格", from: ptr(int64(0)), list: ptr(int64(9000))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deal.DiscountPercent(tt.from, tt.list))
		})
	}
}

func TestTimeLeftDays(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		endsAt *time.Time
		want   *int
	}{
		{name: "期限なし"},
		{name: "1時間後は1日", endsAt: ptr(now.Add(time.Hour)), want: ptr(1)},
		{name: "ちょうど2日", endsAt: ptr(now.Add(48 * time.Hour)), want: ptr(2)},
		{name: "2日と1分は3日", endsAt: ptr(now.Add(48*time.Hour + time.Minute)), want: ptr(3)},
		{name: "終了済み", endsAt: ptr(now.Add(-time.Second))},
		{name: "ちょうど今", endsAt: ptr(now)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deal.TimeLeftDays(tt.endsAt, now))
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, deal.SortPrice, deal.ParseSortOrder("price"))
	assert.Equal(t, deal.SortPrice, deal.ParseSortOrder("priceAscending"))
	assert.Equal(t, deal.SortEnding, deal.ParseSortOrder("ending"))
	assert.Equal(t, deal.SortEnding, deal.ParseSortOrder("endingSoonest"))
	assert.Equal(t, deal.SortPopular, deal.ParseSortOrder(""))
	assert.Equal(t, deal.SortPopular, deal.ParseSortOrder("random"))
}

func TestNewDeal(t *testing.T) {
	slug, err := deal.Slugify("Harbour Hotel Weekend")
	require.NoError(t, err)

	t.Run("基本成功ケース", func(t *testing.T) {
		d, err := deal.NewDeal("  Harbour Hotel Weekend ", deal.CategoryHotel, slug, deal.Details{ListPriceCents: ptr(int64(9000))}, true)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, "Harbour Hotel Weekend", d.Title())
		assert.Equal(t, "harbour-hotel-weekend", d.Slug().String())
		assert.True(t, d.IsActive())

		d.ToggleActive()
		assert.False(t, d.IsActive())
	})

	t.Run("検証NG", func(t *testing.T) {
		cases := []struct {
			name     string
			title    string
			category deal.Category
			slug     deal.Slug
			details  deal.Details
			errIs    error
		}{
			{name: "タイトル空", title: " ", category: deal.CategoryHotel, slug: slug, errIs: deal.ErrEmptyTitle},
			{name: "カテゴリ不正", title: "x", category: "spa", slug: slug, errIs: deal.ErrInvalidCategory},
			{name: "スラッグ空", title: "x", category: deal.CategoryHotel, errIs: deal.ErrEmptySlug},
			{name: "定価ゼロ", title: "x", category: deal.CategoryHotel, slug: slug, details: deal.Details{ListPriceCents: ptr(int64(0))}, errIs: deal.ErrNonPositivePrice},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d, err := deal.NewDeal(c.title, c.category, c.slug, c.details, true)
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, d)
			})
		}
	})

	t.Run("改名してもスラッグは維持", func(t *testing.T) {
		d, err := deal.NewDeal("Harbour Hotel Weekend", deal.CategoryHotel, slug, deal.Details{}, true)
		require.NoError(t, err)
		require.NoError(t, d.Rename("Harbour Hotel Midweek"))
		assert.Equal(t, "harbour-hotel-weekend", d.Slug().String())
		require.ErrorIs(t, d.Rename(""), deal.ErrEmptyTitle)
		require.ErrorIs(t, d.ChangeCategory("spa"), deal.ErrInvalidCategory)
	})
}

func TestOption(t *testing.T) {
	dealID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		o, err := deal.NewOption(dealID, " Suite ", 12000, ptr(int64(20000)))
		require.NoError(t, err)
		assert.Equal(t, "Suite", o.Name())
		assert.Equal(t, dealID, o.DealID())
		assert.True(t, o.IsActive())
		assert.Equal(t, deal.OptionStatusActive, o.Status())
	})

	t.Run("検証NG", func(t *testing.T) {
		_, err := deal.NewOption(dealID, "", 100, nil)
		require.ErrorIs(t, err, deal.ErrEmptyOptionName)
		_, err = deal.NewOption(dealID, "Suite", 0, nil)
		require.ErrorIs(t, err, deal.ErrNonPositivePrice)
		_, err = deal.NewOption(dealID, "Suite", 100, ptr(int64(-1)))
		require.ErrorIs(t, err, deal.ErrNonPositivePrice)
	})

	t.Run("更新", func(t *testing.T) {
		o, err := deal.NewOption(dealID, deal.DefaultOptionName, 4500, nil)
		require.NoError(t, err)

		require.NoError(t, o.Reprice(3900, ptr(int64(9000))))
		assert.Equal(t, int64(3900), o.PriceCents())
		require.ErrorIs(t, o.Reprice(0, nil), deal.ErrNonPositivePrice)

		require.NoError(t, o.SetStock(10, 3))
		assert.Equal(t, int32(10), o.StockTotal())
		require.ErrorIs(t, o.SetStock(-1, 0), deal.ErrInvalidStock)

		require.NoError(t, o.SetStatus(deal.OptionStatusInactive))
		assert.False(t, o.IsActive())
		require.ErrorIs(t, o.SetStatus("archived"), deal.ErrInvalidOptionStatus)
	})
}
