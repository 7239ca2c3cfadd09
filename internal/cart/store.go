// Package cart owns the persisted shopping cart. The Store is the single
// writer: every mutation persists the whole cart, invalidates the cache and
// then signals the notification bus as one logical step, so no surface can
// observe a persisted-but-unnotified state.
package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Brandbong/Vedham/internal/bus"
	"github.com/Brandbong/Vedham/internal/cache"
	"github.com/Brandbong/Vedham/internal/catalog"
	"github.com/Brandbong/Vedham/internal/domain"
)

var ErrProductNotFound = errors.New("product not found in catalog")

type Store struct {
	repo    Repository
	catalog *catalog.Catalog
	cache   cache.CartCache
	bus     *bus.Bus

	mu  sync.Mutex // serializes mutations so persist-then-notify stays one step
	sfg singleflight.Group
}

func NewStore(repo Repository, catalog *catalog.Catalog, cache cache.CartCache, bus *bus.Bus) *Store {
	return &Store{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		bus:     bus,
	}
}

// Load returns the current cart, re-joining persisted entries against the
// live catalog. Unreadable or unresolvable persisted state degrades to an
// empty cart rather than an error: shopping keeps working even when storage
// does not.
func (s *Store) Load(ctx context.Context) domain.Cart {
	// Use singleflight to prevent multiple concurrent cache misses
	v, _, _ := s.sfg.Do("cart", func() (interface{}, error) {
		entries, err := s.cache.Get(ctx)
		if err == nil {
			return s.resolve(entries), nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		entries, errLoad := s.repo.Load(ctx)
		if errLoad != nil {
			log.Printf("cart load error, falling back to empty cart: %v", errLoad)
			return domain.Cart{}, nil
		}

		// set cache
		go func() {
			if errSet := s.cache.Set(context.Background(), entries); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return s.resolve(entries), nil
	})

	return v.(domain.Cart)
}

// Add merges quantity into the existing line for the product, or appends a
// new line. The returned cart always reflects the intended new state; a
// non-nil error means persistence failed and other surfaces may not see it.
func (s *Store) Add(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return domain.Cart{}, ErrProductNotFound
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.current(ctx)
	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == productID {
			cart.Lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, domain.CartLine{Product: product, Quantity: quantity})
	}

	return cart, s.persist(ctx, cart)
}

// SetQuantity sets the line quantity exactly; zero or less removes the line.
// An unknown product id is a no-op.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.current(ctx)
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		} else {
			cart.Lines[i].Quantity = quantity
		}
		return cart, s.persist(ctx, cart)
	}

	return cart, nil
}

// Remove deletes the line if present; removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.current(ctx)
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return cart, s.persist(ctx, cart)
		}
	}

	return cart, nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := domain.Cart{}
	return cart, s.persist(ctx, cart)
}

// current reads the durable cart directly from the repository; mutations must
// not trust the cache.
func (s *Store) current(ctx context.Context) domain.Cart {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		log.Printf("cart load error, mutating from empty cart: %v", err)
		return domain.Cart{}
	}
	return s.resolve(entries)
}

// persist writes the cart, invalidates the cache and broadcasts the change.
// The bus fires even when the write failed: this caller's in-memory state did
// change, and surfaces that re-read will converge on the durable state.
func (s *Store) persist(ctx context.Context, cart domain.Cart) error {
	errSave := s.repo.Save(ctx, cart.Entries())
	if errSave != nil {
		log.Printf("cart save error: %v", errSave)
	}

	if err := s.cache.Delete(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}

	s.bus.Publish()
	return errSave
}

// resolve re-joins entries against the catalog. Entries for unknown products
// or with nonsense quantities are dropped silently; duplicated ids are merged
// into the first occurrence.
func (s *Store) resolve(entries []domain.CartEntry) domain.Cart {
	var cart domain.Cart
	seen := make(map[string]int, len(entries))

	for _, e := range entries {
		if e.Quantity < 1 {
			continue
		}
		product, ok := s.catalog.FindByID(e.ProductID)
		if !ok {
			continue
		}
		if i, dup := seen[e.ProductID]; dup {
			cart.Lines[i].Quantity += e.Quantity
			continue
		}
		seen[e.ProductID] = len(cart.Lines)
		cart.Lines = append(cart.Lines, domain.CartLine{Product: product, Quantity: e.Quantity})
	}

	return cart
}
