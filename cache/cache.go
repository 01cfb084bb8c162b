// Package cache provides the in-process read-model cache used by the
// catalog, order and dashboard endpoints, together with the key builders
// and the invalidation coordinator that keep it consistent with the store.
package cache

import (
	"encoding/json"
	"sync"
)

// Cache is a process-wide key/value store holding serialized read models.
// Entries never expire; they are dropped explicitly by Invalidate after a
// write touches the domain they were derived from. A single instance is
// constructed in main and injected into every consumer.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

// Has reports whether a value is cached under key.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the serialized value cached under key.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set stores value under key, overwriting any previous entry.
func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// DeleteMany removes every given key. Absent keys are a no-op, which makes
// repeated invalidation with the same descriptor harmless.
func (c *Cache) DeleteMany(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetJSON looks up key and unmarshals the cached value into T.
func GetJSON[T any](c *Cache, key string) (T, bool) {
	var v T
	raw, ok := c.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}
	return v, true
}

// SetJSON marshals v and stores it under key. The whole object is cached
// as one entry so it can be dropped as one entry.
func SetJSON[T any](c *Cache, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.Set(key, raw)
	return nil
}
