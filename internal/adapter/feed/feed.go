// Package feed supplies the immutable product catalog.
package feed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yogisaja/preset-store/internal/core/domain"
)

//go:embed fixture.json
var fixtureJSON []byte

type product struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	OriginalPrice   int64    `json:"original_price"`
	DiscountedPrice int64    `json:"discounted_price"`
	SoldCount       int      `json:"sold_count"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	IsNew           bool     `json:"is_new"`
	IsBestSeller    bool     `json:"is_best_seller"`
}

// A Feed holds the product list loaded once at startup.
type Feed struct {
	products []domain.Product
}

// Load reads the catalog from the given JSON file. An empty path
// loads the embedded storefront fixture.
func Load(path string) (Feed, error) {
	const op = "feed.Load"
	log := slog.With("op", op)

	r, err := open(path)
	if err != nil {
		return Feed{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := decode(r)
	if err != nil {
		return Feed{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := validate(ps); err != nil {
		return Feed{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog is loaded", "nProducts", len(ps))
	return Feed{products: ps}, nil
}

// Products returns a copy of the product list in catalog order.
func (f Feed) Products() []domain.Product {
	ps := make([]domain.Product, len(f.products))
	copy(ps, f.products)
	return ps
}

func open(path string) (io.Reader, error) {
	if path == "" {
		return bytes.NewReader(fixtureJSON), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return bytes.NewReader(b), nil
}

func decode(r io.Reader) ([]domain.Product, error) {
	var vs []product
	if err := json.NewDecoder(r).Decode(&vs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	ps := make([]domain.Product, 0, len(vs))
	for _, v := range vs {
		ps = append(ps, toDomain(v))
	}
	return ps, nil
}

func validate(ps []domain.Product) error {
	seen := make(map[int64]struct{}, len(ps))
	for _, p := range ps {
		if p.ID <= 0 {
			return fmt.Errorf("product %q: id must be positive", p.Name)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("product id %d: duplicate", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.DiscountedPrice > p.OriginalPrice {
			return fmt.Errorf(
				"product id %d: discounted price above original", p.ID,
			)
		}
		if p.SoldCount < 0 {
			return fmt.Errorf("product id %d: negative sold count", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("product id %d: rating out of range", p.ID)
		}
	}
	return nil
}

func toDomain(v product) domain.Product {
	return domain.Product{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		OriginalPrice:   v.OriginalPrice,
		DiscountedPrice: v.DiscountedPrice,
		SoldCount:       v.SoldCount,
		Rating:          v.Rating,
		ReviewCount:     v.ReviewCount,
		Image:           v.Image,
		Category:        v.Category,
		Tags:            v.Tags,
		IsNew:           v.IsNew,
		IsBestSeller:    v.IsBestSeller,
	}
}
