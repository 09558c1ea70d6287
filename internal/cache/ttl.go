package cache

import (
	"sync"
	"time"
)

// TTL is a process-wide cache with per-entry expiry. It lives for the whole
// process and is shared across requests; the policy stays out of the
// normalization pipeline, which only sees its results.
type TTL struct {
	mu   sync.RWMutex
	data map[string]entry
}

type entry struct {
	value    interface{}
	deadline time.Time
}

// NewTTL creates an empty cache.
func NewTTL() *TTL {
	return &TTL{data: make(map[string]entry)}
}

// Get returns the cached value for key, or false when absent or expired.
func (c *TTL) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.deadline) {
		c.mu.Lock()
		if current, still := c.data[key]; still && current.deadline.Equal(e.deadline) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. Non-positive ttl stores nothing.
func (c *TTL) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.data[key] = entry{value: value, deadline: time.Now().Add(ttl)}
	c.mu.Unlock()
}
