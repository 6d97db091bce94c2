// Package cache provides the in-process listing cache.
package cache

import (
	"context"
	"sync"
)

// Memory is a small mutex-guarded cache for aggregate listing payloads.
// It satisfies the listing-cache port used by the creation flow.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Set stores a payload under the given key.
func (c *Memory) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Get returns the payload stored under the key, if any.
func (c *Memory) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Evict removes the entry for the key. Evicting a missing key is not an
// error.
func (c *Memory) Evict(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
