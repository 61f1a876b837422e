// Package cache provides a generic in-memory TTL cache.
package cache

import (
	"sync"
	"time"
)

// item holds a cached value with its expiration time.
type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a generic TTL cache with mutex protection. The SSH server
// shares one instance across sessions, so every catalog fetch benefits.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	items   map[K]item[V]
	ttl     time.Duration
	nowFunc func() time.Time // injectable clock for tests
}

// New creates a new cache with the specified TTL.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		items:   make(map[K]item[V]),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get retrieves a value from the cache. Returns the value and true if
// present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[key]
	if !ok || c.nowFunc().After(it.expiresAt) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores a value in the cache with the configured TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[V]{
		value:     value,
		expiresAt: c.nowFunc().Add(c.ttl),
	}
}

// Delete removes a value from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Clear removes all items from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]item[V])
}

// Purge removes expired entries. Can be called periodically to free
// memory; Get never returns expired values regardless.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFunc()
	for key, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, key)
		}
	}
}

// Len returns the number of items in the cache (including expired ones).
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
