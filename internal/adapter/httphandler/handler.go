package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yogisaja/preset-store/internal/core/domain"
	"github.com/yogisaja/preset-store/internal/core/port"
)

// GET v1/catalog?category=&sort=&min_price=&max_price=&q= (200 OK)

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	f := parseFilterParams(r)
	ps := h.browser.BrowseProducts(r.Context(), f)

	page := CatalogPage{
		Total:    len(ps),
		Products: toProducts(ps),
	}
	writeJSON(w, log, http.StatusOK, page)
}

// parseFilterParams maps the query string onto [domain.FilterParams].
// Unrecognized values degrade to the permissive defaults: unknown sort
// is popular, a malformed price bound keeps the default bound.
func parseFilterParams(r *http.Request) domain.FilterParams {
	q := r.URL.Query()

	f := domain.DefaultFilterParams()
	if category := q.Get("category"); category != "" {
		f.Category = category
	}
	f.Sort = domain.ParseSortMode(q.Get("sort"))
	f.Query = q.Get("q")

	if v, err := strconv.ParseInt(q.Get("min_price"), 10, 64); err == nil {
		f.Price.Min = v
	}
	if v, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil {
		f.Price.Max = v
	}
	return f
}

// GET    v1/cart (200 OK)
// POST   v1/cart/items {"product_id"} (201 Created, 400, 404)
// PATCH  v1/cart/items/{id} {"quantity"} (200 OK, 400)
// DELETE v1/cart/items/{id} (200 OK, 400)
// PUT    v1/cart/drawer {"open"} (200 OK, 400)

type CartHandler struct {
	cart port.CartAccessor
}

func RegisterCart(mux *http.ServeMux, cart port.CartAccessor) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("PUT /v1/cart/drawer", h.PutDrawer)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	v := h.cart.CartView(r.Context())
	writeJSON(w, log, http.StatusOK, toCartView(v))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var body AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	item, err := h.cart.AddToCart(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		log.Error("failed to add item", "err", err)
		return
	}

	writeJSON(w, log, http.StatusCreated, toCartItem(item))
	log.Info("item added", "productID", item.ProductID, "quantity", item.Quantity)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	id, err := parseItemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var body SetCartQuantity
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.SetCartQuantity(r.Context(), id, body.Quantity)
	writeJSON(w, log, http.StatusOK, toCartView(h.cart.CartView(r.Context())))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id, err := parseItemID(r)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	h.cart.RemoveFromCart(r.Context(), id)
	writeJSON(w, log, http.StatusOK, toCartView(h.cart.CartView(r.Context())))
}

func (h CartHandler) PutDrawer(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutDrawer"
	log := slog.With("op", op)

	var body SetCartDrawer
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.SetCartOpen(r.Context(), body.Open)
	writeJSON(w, log, http.StatusOK, toCartView(h.cart.CartView(r.Context())))
}

func parseItemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func toProducts(ps []domain.Product) []Product {
	vs := make([]Product, 0, len(ps))
	for _, p := range ps {
		vs = append(vs, Product{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			OriginalPrice:   p.OriginalPrice,
			DiscountedPrice: p.DiscountedPrice,
			SoldCount:       p.SoldCount,
			Rating:          p.Rating,
			ReviewCount:     p.ReviewCount,
			Image:           p.Image,
			Category:        p.Category,
			Tags:            p.Tags,
			IsNew:           p.IsNew,
			IsBestSeller:    p.IsBestSeller,
		})
	}
	return vs
}

func toCartItem(v domain.CartItem) CartItem {
	return CartItem{
		ProductID:     v.ProductID,
		Name:          v.Name,
		Price:         v.Price,
		OriginalPrice: v.OriginalPrice,
		Image:         v.Image,
		Quantity:      v.Quantity,
	}
}

func toCartView(v domain.CartView) CartView {
	items := make([]CartItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, toCartItem(item))
	}
	return CartView{
		Items:      items,
		TotalItems: v.TotalItems,
		TotalPrice: v.TotalPrice,
		Open:       v.Open,
	}
}
