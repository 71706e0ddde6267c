package domain

type SortMode string

const (
	SortPopular    SortMode = "popular"
	SortNewest     SortMode = "newest"
	SortPriceLow   SortMode = "price-low"
	SortPriceHigh  SortMode = "price-high"
	SortBestSeller SortMode = "best-seller"
)

// ParseSortMode returns the matching sort mode,
// unrecognized values degrade to [SortPopular].
func ParseSortMode(s string) SortMode {
	switch m := SortMode(s); m {
	case SortNewest, SortPriceLow, SortPriceHigh, SortBestSeller:
		return m
	}
	return SortPopular
}

const CategoryAll = "all"

const (
	DefaultMinPrice int64 = 0
	DefaultMaxPrice int64 = 500_000
)

// A PriceRange is an inclusive [Min, Max] bound on the discounted price.
// Min above Max is an empty range, not an error.
type PriceRange struct {
	Min int64
	Max int64
}

func DefaultPriceRange() PriceRange {
	return PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
}

func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterParams is the shopper's current catalog selection.
type FilterParams struct {
	Category string
	Sort     SortMode
	Price    PriceRange
	Query    string
}

func DefaultFilterParams() FilterParams {
	return FilterParams{
		Category: CategoryAll,
		Sort:     SortPopular,
		Price:    DefaultPriceRange(),
	}
}

// categoryCriteria maps a storefront category id to its match terms.
// A product satisfies a term when its category label or its name
// contains the term. The "trending" and "favorite" entries match by
// style identifiers embedded in product names, the storefront behaves
// this way on purpose.
var categoryCriteria = map[string][]string{
	"bright":    {"Bright"},
	"dark":      {"Dark"},
	"vintage":   {"Vintage"},
	"cinematic": {"Cinematic"},
	"portrait":  {"Portrait"},
	"trending":  {"JDM GEN Z", "CINEMATIC V1"},
	"favorite":  {"HAPPY TEAM", "TANTE V2"},
}

// CategoryCriteria returns the match terms for the category id.
// The second value is false for "all" and for unknown ids, both mean
// no category narrowing.
func CategoryCriteria(id string) ([]string, bool) {
	terms, ok := categoryCriteria[id]
	return terms, ok
}
