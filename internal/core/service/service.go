package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yogisaja/preset-store/internal/core/cart"
	"github.com/yogisaja/preset-store/internal/core/catalog"
	"github.com/yogisaja/preset-store/internal/core/domain"
	"github.com/yogisaja/preset-store/internal/core/port"
)

var _ port.CatalogBrowser = (*Service)(nil)
var _ port.CartAccessor = (*Service)(nil)

// Service composes the catalog feed, the cart store and the client
// events producers behind the inbound ports.
//
// Event production is best effort: producer errors are logged and
// never surfaced to the shopper path. Nil producers disable telemetry.
type Service struct {
	products       []domain.Product
	cart           *cart.Store
	browseProducer port.BrowseEventsProducer
	cartProducer   port.CartEventsProducer
}

func New(
	products []domain.Product,
	cartStore *cart.Store,
	browseProducer port.BrowseEventsProducer,
	cartProducer port.CartEventsProducer,
) Service {
	return Service{
		products:       products,
		cart:           cartStore,
		browseProducer: browseProducer,
		cartProducer:   cartProducer,
	}
}

// BrowseProducts derives the visible ordered product list for the
// given filter selection.
func (s Service) BrowseProducts(
	ctx context.Context, f domain.FilterParams,
) []domain.Product {
	ps := catalog.Query(s.products, f)

	s.emitBrowseEvent(ctx, domain.BrowseEvent{
		Query:    f.Query,
		Category: f.Category,
		Sort:     f.Sort,
		MinPrice: f.Price.Min,
		MaxPrice: f.Price.Max,
		Results:  len(ps),
	})

	return ps
}

// AddToCart merges the product with the given id into the basket.
// The id must exist in the catalog feed.
func (s Service) AddToCart(
	ctx context.Context, productID int64,
) (domain.CartItem, error) {
	const op = "Service.AddToCart"

	p, ok := s.productByID(productID)
	if !ok {
		return domain.CartItem{}, fmt.Errorf(
			"%s: id %d: %w", op, productID, domain.ErrProductNotFound,
		)
	}

	item := s.cart.Add(p)

	s.emitCartEvent(ctx, domain.CartEvent{
		Action:    domain.CartActionAdd,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.Price,
	})

	return item, nil
}

// RemoveFromCart deletes the basket line with the given product id.
// An absent id is a no-op.
func (s Service) RemoveFromCart(ctx context.Context, productID int64) {
	s.cart.Remove(productID)

	s.emitCartEvent(ctx, domain.CartEvent{
		Action:    domain.CartActionRemove,
		ProductID: productID,
	})
}

// SetCartQuantity sets the line quantity, a value of zero or below
// removes the line.
func (s Service) SetCartQuantity(
	ctx context.Context, productID int64, quantity int,
) {
	s.cart.SetQuantity(productID, quantity)

	if quantity < 0 {
		quantity = 0
	}
	s.emitCartEvent(ctx, domain.CartEvent{
		Action:    domain.CartActionSetQuantity,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (s Service) SetCartOpen(_ context.Context, open bool) {
	s.cart.SetOpen(open)
}

func (s Service) CartView(context.Context) domain.CartView {
	return s.cart.View()
}

func (s Service) productByID(id int64) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s Service) emitBrowseEvent(ctx context.Context, evt domain.BrowseEvent) {
	const op = "Service.emitBrowseEvent"

	if s.browseProducer == nil {
		return
	}
	if err := s.browseProducer.ProduceBrowseEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce browse event", "op", op, "err", err)
	}
}

func (s Service) emitCartEvent(ctx context.Context, evt domain.CartEvent) {
	const op = "Service.emitCartEvent"

	if s.cartProducer == nil {
		return
	}
	if err := s.cartProducer.ProduceCartEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce cart event", "op", op, "err", err)
	}
}
