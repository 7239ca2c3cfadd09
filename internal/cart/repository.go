package cart

import (
	"context"

	"github.com/Brandbong/Vedham/internal/domain"
)

// Repository persists the single device-local cart as an ordered list of
// product-id/quantity entries. The store defines this interface, not the
// sqlite implementation.
type Repository interface {
	Load(ctx context.Context) ([]domain.CartEntry, error)
	Save(ctx context.Context, entries []domain.CartEntry) error
}
