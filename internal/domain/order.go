package domain

import "time"

type PaymentMethod string

const (
	PaymentUPI PaymentMethod = "UPI"
	PaymentCOD PaymentMethod = "COD"
)

// Order is an immutable snapshot assembled at checkout submission time.
// Totals are recomputed from the frozen cart, never taken from an earlier
// cached value. The UPI path is optimistic: a dispatched order does not mean
// a confirmed payment.
type Order struct {
	OrderID       string        `json:"order_id"`
	Items         Cart          `json:"items"`
	Customer      CustomerForm  `json:"customer"`
	Subtotal      int64         `json:"subtotal"`
	Shipping      int64         `json:"shipping"`
	Total         int64         `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PlacedAt      time.Time     `json:"placed_at"`
}
