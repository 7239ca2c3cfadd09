package checkout

import (
	"sync"

	"github.com/Brandbong/Vedham/internal/domain"
)

// Handoff carries a dispatched order to the confirmation view exactly once.
// Orders are not persisted anywhere else, so a claimed order is gone for good.
type Handoff struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func NewHandoff() *Handoff {
	return &Handoff{orders: make(map[string]*domain.Order)}
}

func (h *Handoff) Put(order *domain.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders[order.OrderID] = order
}

// Claim removes and returns the order. The second claim for the same id
// reports absence.
func (h *Handoff) Claim(orderID string) (*domain.Order, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, ok := h.orders[orderID]
	if ok {
		delete(h.orders, orderID)
	}
	return order, ok
}
