package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dieuclat/storefront/internal/catalog"
	"github.com/dieuclat/storefront/internal/entity"
	"github.com/dieuclat/storefront/internal/service"
)

// SessionHeader carries the shopper's session id. Responses always echo it.
const SessionHeader = "X-Session-ID"

const maxSessionIDLen = 128

// maxQuantityChange bounds a single add or quantity update.
const maxQuantityChange = 99

// Handler handles HTTP requests for the storefront.
type Handler struct {
	catalog  *catalog.Store
	sessions *service.SessionManager
}

func NewHandler(products *catalog.Store, sessions *service.SessionManager) *Handler {
	return &Handler{
		catalog:  products,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)

	mux.HandleFunc("GET /api/products", h.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("GET /api/products/{id}/related", h.handleRelatedProducts)
	mux.HandleFunc("GET /api/categories", h.handleCategories)

	mux.HandleFunc("GET /api/cart", h.withSession(h.handleGetCart))
	mux.HandleFunc("POST /api/cart/items", h.withSession(h.handleAddToCart))
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.withSession(h.handleUpdateQuantity))
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.withSession(h.handleRemoveFromCart))
	mux.HandleFunc("DELETE /api/cart", h.withSession(h.handleClearCart))

	mux.HandleFunc("GET /api/wishlist", h.withSession(h.handleGetWishlist))
	mux.HandleFunc("GET /api/wishlist/items/{id}", h.withSession(h.handleIsInWishlist))
	mux.HandleFunc("POST /api/wishlist/items", h.withSession(h.handleAddToWishlist))
	mux.HandleFunc("DELETE /api/wishlist/items/{id}", h.withSession(h.handleRemoveFromWishlist))
	mux.HandleFunc("DELETE /api/wishlist", h.withSession(h.handleClearWishlist))

	mux.HandleFunc("POST /api/checkout", h.handleCheckout)
	mux.HandleFunc("GET /api/orders", h.withSession(h.handleListOrders))
	mux.HandleFunc("GET /api/orders/{id}", h.withSession(h.handleGetOrder))
}

// withSession resolves the caller's session and holds its lock for the
// duration of next.
func (h *Handler) withSession(next func(w http.ResponseWriter, r *http.Request, s *service.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.openSession(w, r)
		if !ok {
			return
		}
		defer h.sessions.Release(s)
		s.Lock()
		defer s.Unlock()
		next(w, r, s)
	}
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) (*service.Session, bool) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	if len(id) > maxSessionIDLen {
		writeError(w, http.StatusBadRequest, "session id too long")
		return nil, false
	}
	w.Header().Set(SessionHeader, id)

	s, err := h.sessions.Open(r.Context(), id)
	if err != nil {
		slog.Error("Failed to open session", "session_id", id, "err", err)
		writeError(w, http.StatusServiceUnavailable, "session unavailable")
		return nil, false
	}
	return s, true
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Catalog ---

type productView struct {
	entity.Product
	PriceFormatted  string `json:"priceFormatted"`
	Savings         string `json:"savings"`
	DiscountPercent int    `json:"discountPercent"`
}

func newProductView(p entity.Product) productView {
	return productView{
		Product:         p,
		PriceFormatted:  p.Price.Format(),
		Savings:         p.Savings().Format(),
		DiscountPercent: p.DiscountPercent(),
	}
}

func newProductViews(products []entity.Product) []productView {
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = newProductView(p)
	}
	return out
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key, err := catalog.ParseSortKey(q.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := catalog.Filter{Category: q.Get("category")}
	if raw := q.Get("priceMax"); raw != "" {
		limit, err := entity.ParseMoney(raw, entity.DefaultCurrency)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid priceMax")
			return
		}
		f.PriceMax = catalog.PriceCap(limit.Amount)
	}

	products := catalog.FilterAndSort(h.catalog.FindAll(), f, key)
	writeJSON(w, http.StatusOK, map[string]any{
		"products": newProductViews(products),
		"count":    len(products),
	})
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.catalog.FindByID(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, newProductView(p))
}

func (h *Handler) handleRelatedProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	related, err := h.catalog.Related(id, catalog.DefaultRelatedLimit)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, newProductViews(related))
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := append([]string{catalog.AllCategories}, h.catalog.Categories()...)
	writeJSON(w, http.StatusOK, categories)
}

// --- Cart ---

type cartView struct {
	Items          []entity.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          entity.Money      `json:"total"`
	TotalFormatted string            `json:"totalFormatted"`
}

func newCartView(c *service.CartStore) cartView {
	total := c.Total()
	items := c.Items()
	if items == nil {
		items = []entity.CartItem{}
	}
	return cartView{
		Items:          items,
		Count:          c.Count(),
		Total:          total,
		TotalFormatted: total.Format(),
	}
}

type productRequest struct {
	ProductID int `json:"productId"`
	// Quantity is optional for the cart and defaults to 1.
	Quantity *int `json:"quantity,omitempty"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request, s *service.Session) {
	writeJSON(w, http.StatusOK, newCartView(s.Cart))
}

func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request, s *service.Session) {
	p, req, ok := h.requestedProduct(w, r)
	if !ok {
		return
	}
	n := 1
	if req.Quantity != nil {
		n = *req.Quantity
	}
	if n < 1 || n > maxQuantityChange {
		writeError(w, http.StatusBadRequest, "quantity must be between 1 and "+strconv.Itoa(maxQuantityChange))
		return
	}
	if err := s.Cart.AddQuantity(r.Context(), p, n); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(s.Cart))
}

func (h *Handler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request, s *service.Session) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Delta < -maxQuantityChange || req.Delta > maxQuantityChange {
		writeError(w, http.StatusBadRequest, "delta must be between -"+strconv.Itoa(maxQuantityChange)+" and "+strconv.Itoa(maxQuantityChange))
		return
	}
	if err := s.Cart.UpdateQuantity(r.Context(), id, req.Delta); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(s.Cart))
}

func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request, s *service.Session) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.Cart.RemoveFromCart(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(s.Cart))
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request, s *service.Session) {
	if err := s.Cart.ClearCart(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(s.Cart))
}

// --- Wishlist ---

type wishlistView struct {
	Items []entity.WishlistItem `json:"items"`
	Count int                   `json:"count"`
}

func newWishlistView(wl *service.WishlistStore) wishlistView {
	items := wl.Items()
	if items == nil {
		items = []entity.WishlistItem{}
	}
	return wishlistView{Items: items, Count: wl.Count()}
}

func (h *Handler) handleGetWishlist(w http.ResponseWriter, r *http.Request, s *service.Session) {
	writeJSON(w, http.StatusOK, newWishlistView(s.Wishlist))
}

func (h *Handler) handleIsInWishlist(w http.ResponseWriter, r *http.Request, s *service.Session) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"productId":  id,
		"inWishlist": s.Wishlist.IsInWishlist(id),
	})
}

func (h *Handler) handleAddToWishlist(w http.ResponseWriter, r *http.Request, s *service.Session) {
	p, _, ok := h.requestedProduct(w, r)
	if !ok {
		return
	}
	if err := s.Wishlist.AddToWishlist(r.Context(), p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWishlistView(s.Wishlist))
}

func (h *Handler) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request, s *service.Session) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.Wishlist.RemoveFromWishlist(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWishlistView(s.Wishlist))
}

func (h *Handler) handleClearWishlist(w http.ResponseWriter, r *http.Request, s *service.Session) {
	if err := s.Wishlist.ClearWishlist(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newWishlistView(s.Wishlist))
}

// --- Checkout & orders ---

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	s, ok := h.openSession(w, r)
	if !ok {
		return
	}
	defer h.sessions.Release(s)

	// A second submit for the same session is refused rather than queued
	// behind the session lock.
	if s.Checkout.State() == service.CheckoutSubmitting {
		writeServiceError(w, service.ErrCheckoutInProgress)
		return
	}

	var details entity.ShippingDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.Lock()
	defer s.Unlock()

	order, err := s.Checkout.Submit(r.Context(), details)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", "/api/orders/"+order.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"order": order,
		"next":  "/api/orders",
	})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request, s *service.Session) {
	writeJSON(w, http.StatusOK, s.Orders.List())
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request, s *service.Session) {
	order, err := s.Orders.FindOrder(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// --- Helpers ---

func (h *Handler) requestedProduct(w http.ResponseWriter, r *http.Request) (entity.Product, productRequest, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return entity.Product{}, req, false
	}
	p, err := h.catalog.FindByID(req.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return entity.Product{}, req, false
	}
	return p, req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []entity.FieldError `json:"fields,omitempty"`
	Back   string              `json:"back,omitempty"`
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	var perr *service.PersistenceError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid shipping details", Fields: verr.Fields})
	case errors.Is(err, service.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrCheckoutInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrPaymentDeclined):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, service.ErrPaymentFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "order not found", Back: "/api/orders"})
	case errors.As(err, &perr):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, "could not save your changes, please try again")
	default:
		slog.Error("Request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}

// EnableCORS is a middleware to allow the React frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+SessionHeader)
		w.Header().Set("Access-Control-Expose-Headers", SessionHeader+", Location")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
