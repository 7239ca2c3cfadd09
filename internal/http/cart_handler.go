package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Brandbong/Vedham/internal/cart"
	"github.com/Brandbong/Vedham/internal/contact"
	"github.com/Brandbong/Vedham/internal/domain"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponseDTO carries the cart plus the derived values every surface
// renders: totals for the summary box, item count for the header badge and
// the prefilled WhatsApp handoff link.
type CartResponseDTO struct {
	Lines        []domain.CartLine `json:"lines"`
	Subtotal     int64             `json:"subtotal"`
	Shipping     int64             `json:"shipping"`
	Total        int64             `json:"total"`
	ItemCount    int               `json:"item_count"`
	WhatsAppLink string            `json:"whatsapp_link"`
	SupportPhone string            `json:"support_phone"`
}

func cartResponse(c domain.Cart) CartResponseDTO {
	subtotal := domain.Subtotal(c)
	shipping := domain.ShippingFee(subtotal)
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponseDTO{
		Lines:        lines,
		Subtotal:     subtotal,
		Shipping:     shipping,
		Total:        subtotal + shipping,
		ItemCount:    domain.ItemCount(c),
		WhatsAppLink: contact.WhatsAppCartLink(subtotal + shipping),
		SupportPhone: contact.SupportPhone,
	}
}

// GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.store.Load(r.Context())
	respondJSON(w, http.StatusOK, cartResponse(c))
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	c, err := h.store.Add(r.Context(), req.ProductID, req.Quantity)
	if errors.Is(err, cart.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		// Persistence failed but the in-memory cart did change; serve it and
		// let the next load converge on durable state.
		log.Printf("add item persistence error (request %s): %v", getRequestID(r.Context()), err)
	}

	respondJSON(w, http.StatusCreated, cartResponse(c))
}

// PUT /api/cart/items/{productID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	// Zero or negative removes the line; an unknown product id is a no-op.
	c, err := h.store.SetQuantity(r.Context(), productID, req.Quantity)
	if err != nil {
		log.Printf("update quantity persistence error (request %s): %v", getRequestID(r.Context()), err)
	}

	respondJSON(w, http.StatusOK, cartResponse(c))
}

// DELETE /api/cart/items/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	c, err := h.store.Remove(r.Context(), productID)
	if err != nil {
		log.Printf("remove item persistence error (request %s): %v", getRequestID(r.Context()), err)
	}

	respondJSON(w, http.StatusOK, cartResponse(c))
}
