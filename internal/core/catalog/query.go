// Package catalog derives the visible product list from the full
// catalog and the shopper's filter selection.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yogisaja/preset-store/internal/core/domain"
)

// Query applies the filter stages in fixed order: category criteria,
// free-text search, price range, then a stable sort per mode.
//
// Query is pure: the input slice is never mutated and the result is
// recomputed from scratch on every call.
func Query(ps []domain.Product, f domain.FilterParams) []domain.Product {
	out := filterCategory(ps, f.Category)
	out = filterQuery(out, f.Query)
	out = filterPrice(out, f.Price)
	sortProducts(out, f.Sort)
	return out
}

// filterCategory keeps products satisfying at least one match term for
// the selected category. "all" and unknown ids keep everything.
func filterCategory(ps []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(ps))

	terms, ok := domain.CategoryCriteria(category)
	if category == domain.CategoryAll || !ok {
		return append(out, ps...)
	}

	for _, p := range ps {
		if matchesAny(p, terms) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(p domain.Product, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(p.Category, term) || strings.Contains(p.Name, term) {
			return true
		}
	}
	return false
}

// filterQuery keeps products whose name, description or any tag
// contains the query, case-insensitively. An empty query keeps
// everything.
func filterQuery(ps []domain.Product, query string) []domain.Product {
	if query == "" {
		return ps
	}

	query = strings.ToLower(query)
	out := ps[:0]
	for _, p := range ps {
		if matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func filterPrice(ps []domain.Product, r domain.PriceRange) []domain.Product {
	out := ps[:0]
	for _, p := range ps {
		if r.Contains(p.DiscountedPrice) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the filtered sequence in place. Every mode uses
// a stable sort, ties keep their original catalog order. Popular is
// the default and leaves the filtered order untouched.
func sortProducts(ps []domain.Product, mode domain.SortMode) {
	switch mode {
	case domain.SortPriceLow:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmp.Compare(a.DiscountedPrice, b.DiscountedPrice)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmp.Compare(b.DiscountedPrice, a.DiscountedPrice)
		})
	case domain.SortNewest:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return newness(b) - newness(a)
		})
	case domain.SortBestSeller:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmp.Compare(b.SoldCount, a.SoldCount)
		})
	}
}

func newness(p domain.Product) int {
	if p.IsNew {
		return 1
	}
	return 0
}
