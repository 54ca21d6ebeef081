package broadcast

import (
	"context"
	"sync"
)

// Hub fans values of type T out to any number of subscribers.
//
// Publishing never blocks: a subscriber whose buffer is full misses the value.
// That suits UI state streams, where only the latest snapshot matters and a
// dropped intermediate one is repaired by the next publish.
type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[*Subscription[T]]struct{}
	buffer int
	closed bool
}

// NewHub creates a hub whose subscribers buffer up to the given number of
// values. A minimum buffer of 1 is enforced so that sends are never
// unconditionally dropped.
func NewHub[T any](buffer int) *Hub[T] {
	return &Hub[T]{
		subs:   make(map[*Subscription[T]]struct{}),
		buffer: max(buffer, 1),
	}
}

// Subscribe registers a new subscriber. The subscription is removed
// automatically when ctx is cancelled; calling Close on it is also fine.
// Subscribing to a closed hub returns an already-closed subscription.
func (h *Hub[T]) Subscribe(ctx context.Context) *Subscription[T] {
	sub := &Subscription[T]{ch: make(chan T, h.buffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.Close()
		return sub
	}
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			h.remove(sub)
		}()
	}
	return sub
}

// Publish delivers v to every current subscriber, dropping it for those whose
// buffers are full. Publishing to a closed hub is a no-op.
func (h *Hub[T]) Publish(v T) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}
	for sub := range h.subs {
		sub.send(v)
	}
}

// Close shuts the hub down and closes all subscriptions. Idempotent.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		sub.Close()
		delete(h.subs, sub)
	}
}

// Len reports the number of active subscribers.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub[T]) remove(sub *Subscription[T]) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
	}
	h.mu.Unlock()
	sub.Close()
}

// Subscription receives values published to a Hub.
type Subscription[T any] struct {
	ch     chan T
	mu     sync.Mutex
	closed bool
}

// C returns the receive channel. It is closed when the subscription ends.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close ends the subscription and closes its channel. Idempotent.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func (s *Subscription[T]) send(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
