// Package http exposes the purchasing pipeline to the storefront's UI
// surfaces as a JSON/form API.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(products *ProductHandler, cart *CartHandler, checkout *CheckoutHandler, events *EventsHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.ListProducts)
		r.Get("/products/{productID}", products.GetProduct)

		r.Get("/cart", cart.GetCart)
		r.Get("/cart/events", events.Stream)
		r.Post("/cart/items", cart.AddItem)
		r.Put("/cart/items/{productID}", cart.UpdateQuantity)
		r.Delete("/cart/items/{productID}", cart.RemoveItem)

		r.Post("/checkout", checkout.PlaceOrder)
		r.Get("/orders/{orderID}", checkout.GetOrder)
	})

	return r
}
