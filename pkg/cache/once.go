package cache

import "sync"

type onceEntry[V any] struct {
	once  sync.Once
	done  bool
	value V
}

// Once is a populate-once map. The zero value is not usable, use NewOnce.
type Once[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*onceEntry[V]
	loads   int64
}

// NewOnce creates an empty Once map.
func NewOnce[K comparable, V any]() *Once[K, V] {
	return &Once[K, V]{
		entries: make(map[K]*onceEntry[V]),
	}
}

// Get returns the value stored under key, running load first if the key has
// never been populated. load runs at most once per key until Forget is called.
// If load panics, the panic reaches the caller and key stays populated with
// the zero value until Forget.
func (c *Once[K, V]) Get(key K, load func() V) V {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &onceEntry[V]{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		var v V
		defer func() {
			c.mu.Lock()
			e.value = v
			e.done = true
			c.loads++
			c.mu.Unlock()
		}()
		v = load()
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	return e.value
}

// Peek returns a populated value without triggering a load.
// Keys whose load is still running are reported as missing.
func (c *Once[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.done {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Forget drops key so the next Get loads it again. Callers already blocked
// on an in-flight load for key still receive that load's value.
func (c *Once[K, V]) Forget(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Len returns the number of populated keys.
func (c *Once[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.done {
			n++
		}
	}
	return n
}

// Keys returns the populated keys in no particular order.
func (c *Once[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for k, e := range c.entries {
		if e.done {
			keys = append(keys, k)
		}
	}
	return keys
}

// Loads returns how many times a loader has completed since creation.
func (c *Once[K, V]) Loads() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}
