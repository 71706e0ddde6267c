package port

import (
	"context"

	"github.com/yogisaja/preset-store/internal/core/domain"
)

type CatalogBrowser interface {
	BrowseProducts(context.Context, domain.FilterParams) []domain.Product
}

type CartAccessor interface {
	AddToCart(ctx context.Context, productID int64) (domain.CartItem, error)
	RemoveFromCart(ctx context.Context, productID int64)
	SetCartQuantity(ctx context.Context, productID int64, quantity int)
	SetCartOpen(ctx context.Context, open bool)
	CartView(context.Context) domain.CartView
}

type BrowseEventsProducer interface {
	ProduceBrowseEvent(context.Context, domain.BrowseEvent) error
}

type CartEventsProducer interface {
	ProduceCartEvent(context.Context, domain.CartEvent) error
}
