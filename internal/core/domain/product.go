package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// A Product is a single preset offer from the catalog feed.
//
// Prices are whole currency units. DiscountedPrice never exceeds
// OriginalPrice. Products are fixture data and never mutated.
type Product struct {
	ID              int64
	Name            string
	Description     string
	OriginalPrice   int64
	DiscountedPrice int64
	SoldCount       int
	Rating          float64
	ReviewCount     int
	Image           string
	Category        string
	Tags            []string
	IsNew           bool
	IsBestSeller    bool
}
