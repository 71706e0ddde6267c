package domain

// A CartItem is one basket line: a single product id with a quantity.
// Price is the discounted unit price captured at the time of adding.
type CartItem struct {
	ProductID     int64
	Name          string
	Price         int64
	OriginalPrice int64
	Image         string
	Quantity      int
}

// A CartView is a consistent read snapshot of the basket:
// the ordered lines, the derived totals and the drawer flag.
type CartView struct {
	Items      []CartItem
	TotalItems int
	TotalPrice int64
	Open       bool
}
