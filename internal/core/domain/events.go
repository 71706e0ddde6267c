package domain

type CartAction string

const (
	CartActionAdd         CartAction = "add"
	CartActionRemove      CartAction = "remove"
	CartActionSetQuantity CartAction = "set_quantity"
)

// A BrowseEvent describes one catalog query made by the shopper.
type BrowseEvent struct {
	Query    string
	Category string
	Sort     SortMode
	MinPrice int64
	MaxPrice int64
	Results  int
}

// A CartEvent describes one basket mutation.
// Quantity is the line quantity after the mutation, zero for removals.
type CartEvent struct {
	Action    CartAction
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}
