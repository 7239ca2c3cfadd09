package domain

// CartLine is one product-and-quantity entry. Quantity is always >= 1;
// a line that would reach zero is removed from the cart instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered sequence of lines, insertion order = order first added.
// At most one line exists per product id.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartEntry is the persisted shape of a line: product identity and quantity
// only. Prices and other product fields are re-resolved from the catalog on
// load so they can never go stale.
type CartEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Entries strips a cart down to its persisted representation.
func (c Cart) Entries() []CartEntry {
	entries := make([]CartEntry, len(c.Lines))
	for i, line := range c.Lines {
		entries[i] = CartEntry{ProductID: line.Product.ID, Quantity: line.Quantity}
	}
	return entries
}
