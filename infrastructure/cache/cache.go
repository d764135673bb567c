package cache

import "sync"

// Map is a concurrency-safe map used for process-local lookups such as
// loaded sessions and open workspaces.
type Map[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{items: make(map[K]V)}
}

func (c *Map[K, V]) Add(key K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = v
}

func (c *Map[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// GetOrAdd returns the cached value for key, building and storing one with
// build when absent. build runs under the write lock.
func (c *Map[K, V]) GetOrAdd(key K, build func() V) (V, bool) {
	if v, ok := c.Get(key); ok {
		return v, true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.items[key]; ok {
		return v, true
	}
	v := build()
	c.items[key] = v
	return v, false
}

// Delete removes key and returns the value it held.
func (c *Map[K, V]) Delete(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	delete(c.items, key)
	return v, ok
}

func (c *Map[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the current keys in no particular order.
func (c *Map[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]K, 0, len(c.items))
	for k := range c.items {
		out = append(out, k)
	}
	return out
}
