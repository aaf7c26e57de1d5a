package splitex

import (
	"slices"
	"sync"
)

// bus is the change notification registry. Subscribers are invoked in
// subscription order, synchronously, with no payload: a callback is expected
// to re-pull whatever state it needs.
type bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func()
}

// subscribe registers a callback and returns a closure that deregisters it.
func (b *bus) subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.id == id })
		b.mu.Unlock()
	}
}

// notify invokes every subscriber in subscription order. The subscriber list
// is snapshotted first so callbacks may subscribe or unsubscribe freely.
func (b *bus) notify() {
	b.mu.Lock()
	subs := slices.Clone(b.subs)
	b.mu.Unlock()
	for _, s := range subs {
		s.fn()
	}
}
