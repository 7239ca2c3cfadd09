package cache

import (
	"context"
	"errors"

	"github.com/Brandbong/Vedham/internal/domain"
)

// CartCache holds the persisted cart entries for fast reads. The sqlite
// repository stays the source of truth; the cache is invalidated on every
// mutation.
type CartCache interface {
	Get(ctx context.Context) ([]domain.CartEntry, error)
	Set(ctx context.Context, entries []domain.CartEntry) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
