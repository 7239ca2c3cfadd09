package http

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"

	"github.com/Brandbong/Vedham/internal/bus"
	"github.com/Brandbong/Vedham/internal/cache"
	"github.com/Brandbong/Vedham/internal/cart"
	"github.com/Brandbong/Vedham/internal/catalog"
	"github.com/Brandbong/Vedham/internal/checkout"
	"github.com/Brandbong/Vedham/internal/domain"
)

type memRepository struct {
	entries []domain.CartEntry
}

func (m *memRepository) Load(context.Context) ([]domain.CartEntry, error) {
	return m.entries, nil
}

func (m *memRepository) Save(_ context.Context, entries []domain.CartEntry) error {
	m.entries = entries
	return nil
}

type missCache struct{}

func (missCache) Get(context.Context) ([]domain.CartEntry, error) { return nil, cache.ErrCacheMiss }
func (missCache) Set(context.Context, []domain.CartEntry) error   { return nil }
func (missCache) Delete(context.Context) error                    { return nil }

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: "moringa-powder", Name: "Moringa Leaf Powder", Price: 150, Category: domain.CategoryPowder},
		{ID: "moringa-dosa-mix", Name: "Moringa Dosa Mix", Price: 120, Category: domain.CategoryDosa},
		{ID: "health-malt", Name: "Herbal Health Malt", Price: 320, Category: domain.CategoryMalt},
	})
}

type testServer struct {
	router  *chi.Mux
	store   *cart.Store
	bus     *bus.Bus
	handoff *checkout.Handoff
}

// newTestServer wires the whole pipeline over in-memory storage. navErr, when
// non-nil, makes every UPI dispatch fail.
func newTestServer(entries []domain.CartEntry, navErr error) *testServer {
	b := bus.New()
	store := cart.NewStore(&memRepository{entries: entries}, testCatalog(), missCache{}, b)
	handoff := checkout.NewHandoff()

	nav := checkout.NavigatorFunc(func(context.Context, string) error { return navErr })
	payee := checkout.UPIPayee{Address: "vijaya2015.ve@oksbi", Name: "Vedham Eldix"}
	service := checkout.NewService(store, nav, payee, handoff, false)

	router := NewRouter(
		NewProductHandler(testCatalog()),
		NewCartHandler(store),
		NewCheckoutHandler(service, handoff),
		NewEventsHandler(b),
	)

	return &testServer{router: router, store: store, bus: b, handoff: handoff}
}

var errNoNetwork = errors.New("no network")
