package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogisaja/preset-store/internal/core/catalog"
	"github.com/yogisaja/preset-store/internal/core/domain"
)

// storefrontCatalog mirrors the eight fixture presets in catalog order.
func storefrontCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "STYLE HAPPY TEAM",
			Description:   "Preset cerah dan vibrant untuk foto grup.",
			OriginalPrice: 60000, DiscountedPrice: 50000, SoldCount: 128,
			Category: "Bright", Tags: []string{"cerah", "grup", "vibrant"},
			IsBestSeller: true,
		},
		{
			ID: 2, Name: "STYLE BANG WAY",
			Description:   "Preset dengan tone warm untuk street photography.",
			OriginalPrice: 80000, DiscountedPrice: 70000, SoldCount: 89,
			Category: "Portrait", Tags: []string{"warm", "portrait", "street"},
		},
		{
			ID: 3, Name: "STYLE TANTE V2 KHARIS SOPAN",
			Description:   "Preset elegant dengan tone soft untuk acara formal.",
			OriginalPrice: 80000, DiscountedPrice: 68000, SoldCount: 156,
			Category: "Vintage", Tags: []string{"elegant", "soft", "formal"},
			IsBestSeller: true,
		},
		{
			ID: 4, Name: "STYLE JDM GEN Z",
			Description:   "Preset dengan aesthetic JDM untuk foto otomotif.",
			OriginalPrice: 135000, DiscountedPrice: 105000, SoldCount: 234,
			Category: "Cinematic", Tags: []string{"JDM", "trending", "otomotif"},
			IsNew: true, IsBestSeller: true,
		},
		{
			ID: 5, Name: "STYLE CINEMATIC V1",
			Description:   "Preset film look untuk storytelling.",
			OriginalPrice: 95000, DiscountedPrice: 75000, SoldCount: 312,
			Category: "Cinematic", Tags: []string{"film", "cinematic", "storytelling"},
			IsBestSeller: true,
		},
		{
			ID: 6, Name: "STYLE MOODY DARK",
			Description:   "Preset dengan tone gelap dan moody untuk foto artistic.",
			OriginalPrice: 70000, DiscountedPrice: 55000, SoldCount: 178,
			Category: "Dark", Tags: []string{"moody", "dark", "artistic"},
		},
		{
			ID: 7, Name: "STYLE SUMMER VIBES",
			Description:   "Preset cerah untuk foto liburan dan pantai.",
			OriginalPrice: 55000, DiscountedPrice: 45000, SoldCount: 201,
			Category: "Bright", Tags: []string{"summer", "pantai", "liburan"},
			IsNew: true,
		},
		{
			ID: 8, Name: "STYLE RETRO 90s",
			Description:   "Preset dengan aesthetic 90s yang nostalgic.",
			OriginalPrice: 65000, DiscountedPrice: 52000, SoldCount: 145,
			Category: "Vintage", Tags: []string{"retro", "90s", "nostalgic"},
		},
	}
}

func ids(ps []domain.Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestQueryCategory(t *testing.T) {
	ps := storefrontCatalog()

	t.Run("AllKeepsEverything", func(t *testing.T) {
		got := catalog.Query(ps, domain.DefaultFilterParams())
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, ids(got))
	})

	t.Run("CategoryLabel", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Category = "bright"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{1, 7}, ids(got))
	})

	t.Run("TrendingMatchesByName", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Category = "trending"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{4, 5}, ids(got))
	})

	t.Run("FavoriteMatchesByName", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Category = "favorite"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{1, 3}, ids(got))
	})

	t.Run("UnknownIDKeepsEverything", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Category = "glitch"

		got := catalog.Query(ps, f)
		assert.Len(t, got, len(ps))
	})
}

func TestQuerySearch(t *testing.T) {
	ps := storefrontCatalog()

	t.Run("NameCaseInsensitive", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Query = "happy team"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{1}, ids(got))
	})

	t.Run("Tag", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Query = "jdm"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{4}, ids(got))
	})

	t.Run("Description", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Query = "liburan"

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{7}, ids(got))
	})

	t.Run("NoMatch", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Query = "watercolor"

		got := catalog.Query(ps, f)
		assert.Empty(t, got)
	})
}

func TestQueryPriceRange(t *testing.T) {
	ps := storefrontCatalog()

	t.Run("InclusiveBounds", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Price = domain.PriceRange{Min: 45000, Max: 105000}

		got := catalog.Query(ps, f)
		assert.Len(t, got, 8)
	})

	t.Run("Narrowed", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Price = domain.PriceRange{Min: 50000, Max: 70000}

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{1, 2, 3, 6, 8}, ids(got))
	})

	t.Run("InvertedRangeIsEmpty", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Price = domain.PriceRange{Min: 100000, Max: 50000}

		got := catalog.Query(ps, f)
		assert.Empty(t, got)
	})

	t.Run("NarrowingNeverGrowsResult", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Price = domain.PriceRange{Min: 0, Max: 500000}
		wide := len(catalog.Query(ps, f))

		for _, r := range []domain.PriceRange{
			{Min: 45000, Max: 105000},
			{Min: 50000, Max: 100000},
			{Min: 52000, Max: 75000},
			{Min: 55000, Max: 68000},
			{Min: 60000, Max: 60000},
		} {
			f.Price = r
			narrow := len(catalog.Query(ps, f))
			assert.LessOrEqual(t, narrow, wide, "range %+v", r)
			wide = narrow
		}
	})
}

func TestQuerySort(t *testing.T) {
	ps := storefrontCatalog()

	t.Run("PriceLow", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortPriceLow

		got := catalog.Query(ps, f)
		require.Len(t, got, 8)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(
				t, got[i-1].DiscountedPrice, got[i].DiscountedPrice,
			)
		}
		assert.Equal(t, []int64{7, 1, 8, 6, 3, 2, 5, 4}, ids(got))
	})

	t.Run("PriceHigh", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortPriceHigh

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{4, 5, 2, 3, 6, 8, 1, 7}, ids(got))
	})

	t.Run("NewestFirstStable", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortNewest

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{4, 7, 1, 2, 3, 5, 6, 8}, ids(got))
	})

	t.Run("BestSeller", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortBestSeller

		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{5, 4, 7, 6, 3, 8, 1, 2}, ids(got))
	})

	t.Run("PopularKeepsFilteredOrder", func(t *testing.T) {
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortPriceHigh
		catalog.Query(ps, f)

		f.Sort = domain.SortPopular
		got := catalog.Query(ps, f)
		assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, ids(got))
	})

	t.Run("StableOnPriceTies", func(t *testing.T) {
		tied := []domain.Product{
			{ID: 10, DiscountedPrice: 50000},
			{ID: 11, DiscountedPrice: 45000},
			{ID: 12, DiscountedPrice: 50000},
			{ID: 13, DiscountedPrice: 50000},
		}
		f := domain.DefaultFilterParams()
		f.Sort = domain.SortPriceLow

		got := catalog.Query(tied, f)
		assert.Equal(t, []int64{11, 10, 12, 13}, ids(got))
	})
}

func TestQueryPure(t *testing.T) {
	ps := storefrontCatalog()

	f := domain.DefaultFilterParams()
	f.Sort = domain.SortPriceHigh
	catalog.Query(ps, f)

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, ids(ps))
}
