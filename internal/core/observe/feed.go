package observe

import "sync"

// Feed fans transient events out to subscribers. Events are not retained
// and a full subscriber misses them.
type Feed[T any] struct {
	mu     sync.Mutex
	subs   map[int]chan T
	nextID int
	closed bool
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a new observer channel.
func (feed *Feed[T]) Subscribe(buffer int) (<-chan T, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan T, buffer)
	feed.mu.Lock()
	if feed.closed {
		feed.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := feed.nextID
	feed.nextID++
	feed.subs[id] = ch
	feed.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			feed.mu.Lock()
			defer feed.mu.Unlock()
			if _, ok := feed.subs[id]; ok {
				delete(feed.subs, id)
				close(ch)
			}
		})
	}
}

// Publish delivers event to every subscriber with room for it.
func (feed *Feed[T]) Publish(event T) {
	feed.mu.Lock()
	defer feed.mu.Unlock()
	for _, ch := range feed.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close closes all subscriber channels.
func (feed *Feed[T]) Close() {
	feed.mu.Lock()
	defer feed.mu.Unlock()
	if feed.closed {
		return
	}
	feed.closed = true
	for id, ch := range feed.subs {
		close(ch)
		delete(feed.subs, id)
	}
}
