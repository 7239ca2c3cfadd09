// Package checkout validates customer input, freezes the cart into an order
// and dispatches it to the chosen payment path.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Brandbong/Vedham/internal/cart"
	"github.com/Brandbong/Vedham/internal/domain"
)

var (
	ErrEmptyCart            = errors.New("cart is empty, nothing to checkout")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrIllegalTransition    = errors.New("illegal transition of checkout status")

	// ErrDispatchFailed is user-facing and retryable: the customer presses
	// submit again, nothing else retries on their behalf.
	ErrDispatchFailed = errors.New("Network error. Please check your connection.")
)

// Navigator hands a payment deep link to the environment. Dispatch is
// fire-and-forget: nobody waits for a payment confirmation callback.
type Navigator interface {
	Navigate(ctx context.Context, link string) error
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(ctx context.Context, link string) error

func (f NavigatorFunc) Navigate(ctx context.Context, link string) error {
	return f(ctx, link)
}

// Result is what a completed submission hands back: the frozen order, the
// terminal machine state and, for UPI, the link the environment was sent to.
type Result struct {
	Order       *domain.Order
	Status      Status
	RedirectURL string
}

type Service struct {
	store   *cart.Store
	nav     Navigator
	payee   UPIPayee
	handoff *Handoff

	// clearCartOnDispatch is the single policy switch for whether a
	// dispatched order empties the cart. The storefront historically kept
	// the cart until manual removal, so the default wiring is false.
	clearCartOnDispatch bool

	now func() time.Time
}

func NewService(store *cart.Store, nav Navigator, payee UPIPayee, handoff *Handoff, clearCartOnDispatch bool) *Service {
	return &Service{
		store:               store,
		nav:                 nav,
		payee:               payee,
		handoff:             handoff,
		clearCartOnDispatch: clearCartOnDispatch,
		now:                 time.Now,
	}
}

// Submit runs one checkout attempt: Idle -> Submitting -> Dispatched, or back
// to Idle with an error. Any returned error leaves no trace — a half-built
// order is discarded, never persisted or handed off.
func (s *Service) Submit(ctx context.Context, form domain.CustomerForm, method domain.PaymentMethod) (*Result, error) {
	// Reload rather than trusting any cart the caller saw earlier; the cart
	// may have changed between page load and submit.
	current := s.store.Load(ctx)
	if len(current.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	if err := Validate(form); err != nil {
		return nil, err
	}

	status := StatusSubmitting
	order := s.assemble(current, form, method)

	switch method {
	case domain.PaymentCOD:
		if !CanTransitionTo(status, StatusDispatchedCOD) {
			return nil, ErrIllegalTransition
		}
		status = StatusDispatchedCOD
		s.finish(ctx, order)
		return &Result{Order: order, Status: status}, nil

	case domain.PaymentUPI:
		link := BuildUPILink(s.payee, order)
		if err := s.nav.Navigate(ctx, link); err != nil {
			log.Printf("upi dispatch failed for order %s: %v", order.OrderID, err)
			return nil, ErrDispatchFailed
		}
		if !CanTransitionTo(status, StatusDispatchedUPI) {
			return nil, ErrIllegalTransition
		}
		status = StatusDispatchedUPI
		s.finish(ctx, order)
		return &Result{Order: order, Status: status, RedirectURL: link}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
	}
}

// assemble freezes the cart and form into an immutable order, recomputing the
// pricing breakdown from the frozen lines.
func (s *Service) assemble(current domain.Cart, form domain.CustomerForm, method domain.PaymentMethod) *domain.Order {
	subtotal := domain.Subtotal(current)
	shipping := domain.ShippingFee(subtotal)
	now := s.now()

	return &domain.Order{
		OrderID:       orderID(now),
		Items:         current,
		Customer:      form,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         subtotal + shipping,
		PaymentMethod: method,
		PlacedAt:      now,
	}
}

func (s *Service) finish(ctx context.Context, order *domain.Order) {
	s.handoff.Put(order)

	if s.clearCartOnDispatch {
		if _, err := s.store.Clear(ctx); err != nil {
			log.Printf("failed to clear cart after order %s: %v", order.OrderID, err)
		}
	}
}

// orderID is a short time-derived token, unique with high probability within
// one process lifetime. No server reconciles these ids, so collisions are not
// handled beyond the millisecond resolution.
func orderID(t time.Time) string {
	return fmt.Sprintf("VE%06d", t.UnixMilli()%1_000_000)
}
