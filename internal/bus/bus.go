// Package bus is the change-notification channel between the cart store (the
// single writer) and the UI surfaces that render it. Signals carry no payload
// and are not buffered: a subscriber that is not registered at publish time
// never learns of that change retroactively.
package bus

import "sync"

type Bus struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func New() *Bus {
	return &Bus{subs: make(map[int]func())}
}

// Subscribe registers fn to run on every subsequent Publish. The returned
// cancel func removes the subscription; calling it more than once is a no-op.
func (b *Bus) Subscribe(fn func()) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every live subscriber synchronously on the caller's
// goroutine. Subscribers must not block; anything slow should hand off to its
// own goroutine or channel.
func (b *Bus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
