// Package catalog serves the static product range. Products are loaded from
// sqlite once at startup and never mutated afterwards; every consumer reads
// the same immutable snapshot.
package catalog

import (
	"context"
	"fmt"

	"github.com/Brandbong/Vedham/internal/domain"
)

type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// Load reads the full product list from the repository and builds the
// in-memory catalog.
func Load(ctx context.Context, repo *Repository) (*Catalog, error) {
	products, err := repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return New(products), nil
}

func New(products []domain.Product) *Catalog {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

func (c *Catalog) FindByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) FilterByCategory(category domain.Category) []domain.Product {
	var matched []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// All returns the products in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []domain.Product {
	return c.products
}
