package httphandler

type (
	Product struct {
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

	CatalogPage struct {
		Total    int       `json:"total"`
		Products []Product `json:"products"`
	}
)

type (
	CartItem struct {
		ProductID     int64  `json:"product_id"`
		Name          string `json:"name"`
		Price         int64  `json:"price"`
		OriginalPrice int64  `json:"original_price"`
		Image         string `json:"image"`
		Quantity      int    `json:"quantity"`
	}

	CartView struct {
		Items      []CartItem `json:"items"`
		TotalItems int        `json:"total_items"`
		TotalPrice int64      `json:"total_price"`
		Open       bool       `json:"open"`
	}
)

type AddCartItem struct {
	ProductID int64 `json:"product_id"`
}

type SetCartQuantity struct {
	Quantity int `json:"quantity"`
}

type SetCartDrawer struct {
	Open bool `json:"open"`
}
