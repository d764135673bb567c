package records

import "sync"

// Store is an ordered, mutex-guarded record sequence. Records are treated
// as immutable: every write replaces the backing slice, so snapshots handed
// out by All stay valid after later writes.
type Store[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	capacity int
}

// WithCapacity bounds the store to its first n records. Bounded stores are
// kept newest-first, so truncation always drops from the tail.
func WithCapacity(n int) Option {
	return func(o *storeOptions) {
		o.capacity = n
	}
}

// NewStore copies seed into a new store.
func NewStore[T any](seed []T, opts ...Option) *Store[T] {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}
	items := make([]T, len(seed))
	copy(items, seed)
	s := &Store[T]{items: items, capacity: o.capacity}
	s.items, _ = s.truncate(s.items)
	return s
}

// All returns a snapshot in store order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Prepend puts item first and returns how many records fell off the end.
func (s *Store[T]) Prepend(item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]T, 0, len(s.items)+1)
	next = append(next, item)
	next = append(next, s.items...)
	var dropped int
	s.items, dropped = s.truncate(next)
	return dropped
}

// Find returns the first record accepted by match.
func (s *Store[T]) Find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update derives the next sequence from the current one under the write
// lock. fn must not modify its argument in place.
func (s *Store[T]) Update(fn func(current []T) []T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dropped int
	s.items, dropped = s.truncate(fn(s.items))
	return dropped
}

func (s *Store[T]) truncate(items []T) ([]T, int) {
	if s.capacity <= 0 || len(items) <= s.capacity {
		return items, 0
	}
	return items[:s.capacity], len(items) - s.capacity
}
