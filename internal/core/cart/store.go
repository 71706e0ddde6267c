// Package cart holds the single source of truth for the shopper's basket.
package cart

import (
	"sync"

	"github.com/yogisaja/preset-store/internal/core/domain"
)

// A Store keeps the basket lines in insertion order together with the
// cart drawer visibility flag.
//
// Invariants: one line per product id, every quantity is at least 1.
// All operations run under one mutex, so the derived totals never
// observe a partially applied mutation.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	open  bool
}

func NewStore() *Store {
	return &Store{}
}

// Add merges the product into the basket: an existing line gets its
// quantity incremented, otherwise a new line with quantity 1 is
// appended. Add never fails.
func (s *Store) Add(p domain.Product) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity++
		return s.items[i]
	}

	item := domain.CartItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.DiscountedPrice,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Quantity:      1,
	}
	s.items = append(s.items, item)
	return item
}

// Remove deletes the line with the given product id.
// An absent id is a no-op, not an error.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(productID)
}

// SetQuantity sets the line quantity. A quantity of zero or below
// deletes the line. An absent id is a no-op.
func (s *Store) SetQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(productID)
		return
	}

	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

// TotalItems returns the sum of quantities across all lines,
// not the count of distinct products.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalItems()
}

// TotalPrice returns the sum of unit price times quantity over all lines.
func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPrice()
}

// Items returns a copy of the basket lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// View returns the lines and both totals from one consistent snapshot.
func (s *Store) View() domain.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	return domain.CartView{
		Items:      items,
		TotalItems: s.totalItems(),
		TotalPrice: s.totalPrice(),
		Open:       s.open,
	}
}

// SetOpen sets the drawer visibility flag. The flag is UI state,
// it carries no business invariant.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Store) remove(productID int64) {
	if i := s.indexOf(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *Store) indexOf(productID int64) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) totalItems() (n int) {
	for _, item := range s.items {
		n += item.Quantity
	}
	return n
}

func (s *Store) totalPrice() (sum int64) {
	for _, item := range s.items {
		sum += item.Price * int64(item.Quantity)
	}
	return sum
}
