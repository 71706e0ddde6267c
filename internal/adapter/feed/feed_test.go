package feed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogisaja/preset-store/internal/adapter/feed"
)

func writeCatalog(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadEmbeddedFixture(t *testing.T) {
	f, err := feed.Load("")
	require.NoError(t, err)

	ps := f.Products()
	require.Len(t, ps, 8)

	assert.Equal(t, int64(1), ps[0].ID)
	assert.Equal(t, "STYLE HAPPY TEAM", ps[0].Name)
	assert.Equal(t, int64(50000), ps[0].DiscountedPrice)
	assert.Equal(t, int64(60000), ps[0].OriginalPrice)
	assert.True(t, ps[0].IsBestSeller)

	assert.Equal(t, "STYLE JDM GEN Z", ps[3].Name)
	assert.True(t, ps[3].IsNew)
	assert.Equal(t, []string{"JDM", "trending", "otomotif"}, ps[3].Tags)
}

func TestLoadFile(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"id": 1, "name": "STYLE TEST",
			 "original_price": 10000, "discounted_price": 8000,
			 "category": "Bright", "tags": ["test"]}
		]`)

		f, err := feed.Load(path)
		require.NoError(t, err)

		ps := f.Products()
		require.Len(t, ps, 1)
		assert.Equal(t, "STYLE TEST", ps[0].Name)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := feed.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		path := writeCatalog(t, `{"not": "a list"`)

		_, err := feed.Load(path)
		require.Error(t, err)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Run("DuplicateID", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"id": 1, "name": "A", "original_price": 2, "discounted_price": 1},
			{"id": 1, "name": "B", "original_price": 2, "discounted_price": 1}
		]`)

		_, err := feed.Load(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("NonPositiveID", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"id": 0, "name": "A", "original_price": 2, "discounted_price": 1}
		]`)

		_, err := feed.Load(path)
		require.Error(t, err)
	})

	t.Run("DiscountAboveOriginal", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"id": 1, "name": "A", "original_price": 1, "discounted_price": 2}
		]`)

		_, err := feed.Load(path)
		require.Error(t, err)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"id": 1, "name": "A", "original_price": 2,
			 "discounted_price": 1, "rating": 5.5}
		]`)

		_, err := feed.Load(path)
		require.Error(t, err)
	})
}

func TestProductsReturnsCopy(t *testing.T) {
	f, err := feed.Load("")
	require.NoError(t, err)

	ps := f.Products()
	ps[0].Name = "MUTATED"

	assert.Equal(t, "STYLE HAPPY TEAM", f.Products()[0].Name)
}
