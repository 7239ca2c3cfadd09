package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"github.com/Brandbong/Vedham/internal/checkout"
	"github.com/Brandbong/Vedham/internal/domain"
)

var formDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

type CheckoutHandler struct {
	service *checkout.Service
	handoff *checkout.Handoff
}

func NewCheckoutHandler(service *checkout.Service, handoff *checkout.Handoff) *CheckoutHandler {
	return &CheckoutHandler{service: service, handoff: handoff}
}

type PlaceOrderResponseDTO struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// POST /api/checkout
//
// Accepts the browser's form post. The customer form is decoded with
// gorilla/schema; payment_method selects the dispatch branch.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid form body")
		return
	}

	var form domain.CustomerForm
	if err := formDecoder.Decode(&form, r.PostForm); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid form fields")
		return
	}

	method := domain.PaymentMethod(r.PostForm.Get("payment_method"))
	if method != domain.PaymentUPI && method != domain.PaymentCOD {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", "payment_method must be UPI or COD")
		return
	}

	result, err := h.service.Submit(r.Context(), form, method)
	switch {
	case err == nil:
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
		return
	case errors.Is(err, checkout.ErrDispatchFailed):
		respondError(w, http.StatusServiceUnavailable, "dispatch_failed", err.Error())
		return
	default:
		// First failing validation rule, surfaced one at a time
		respondError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
		return
	}

	resp := PlaceOrderResponseDTO{
		OrderID:     result.Order.OrderID,
		Status:      result.Status.String(),
		Total:       result.Order.Total,
		RedirectURL: result.RedirectURL,
	}

	if result.RedirectURL != "" {
		// Tell the browser to open the payment app; the confirmation view
		// claims the order afterwards.
		w.Header().Set("Location", result.RedirectURL)
		respondJSON(w, http.StatusSeeOther, resp)
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// GET /api/orders/{orderID}
//
// One-shot: the first read hands the order to the confirmation view and
// removes it; a repeat read reports it gone.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, ok := h.handoff.Claim(orderID)
	if !ok {
		respondError(w, http.StatusGone, "order_gone", "order already claimed or never placed")
		return
	}

	respondJSON(w, http.StatusOK, order)
}
