// Package observe provides subscribable containers used to publish engine
// state to presentation code without blocking the publisher.
package observe

import "sync"

// Value holds the latest value of T and pushes every change to subscribers.
// A slow subscriber only ever sees the most recent value.
type Value[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	nextID  int
	closed  bool
}

// NewValue creates a container holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{current: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (value *Value[T]) Get() T {
	value.mu.Lock()
	defer value.mu.Unlock()
	return value.current
}

// Set stores next and notifies subscribers.
func (value *Value[T]) Set(next T) {
	value.mu.Lock()
	defer value.mu.Unlock()
	if value.closed {
		return
	}
	value.current = next
	for _, ch := range value.subs {
		replace(ch, next)
	}
}

// Subscribe returns a channel that first receives the current value and
// then every update. The returned function cancels the subscription and
// closes the channel.
func (value *Value[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 1)
	value.mu.Lock()
	if value.closed {
		value.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := value.nextID
	value.nextID++
	value.subs[id] = ch
	ch <- value.current
	value.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			value.mu.Lock()
			defer value.mu.Unlock()
			if _, ok := value.subs[id]; ok {
				delete(value.subs, id)
				close(ch)
			}
		})
	}
}

// Close closes every subscriber channel. Later Set calls are ignored.
func (value *Value[T]) Close() {
	value.mu.Lock()
	defer value.mu.Unlock()
	if value.closed {
		return
	}
	value.closed = true
	for id, ch := range value.subs {
		close(ch)
		delete(value.subs, id)
	}
}

func replace[T any](ch chan T, next T) {
	for {
		select {
		case ch <- next:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
