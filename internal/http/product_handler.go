package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Brandbong/Vedham/internal/catalog"
	"github.com/Brandbong/Vedham/internal/domain"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(catalog *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /api/products?category=dosa
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var products []domain.Product
	if category != "" {
		products = h.catalog.FilterByCategory(domain.Category(category))
	} else {
		products = h.catalog.All()
	}

	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// GET /api/products/{productID}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, ok := h.catalog.FindByID(productID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}
