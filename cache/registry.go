// Package cache is a response-revalidation registry. Read handlers cache the
// rendered payload for a path; mutations invalidate the paths whose data they
// changed. Invalidation is fire-and-forget and not transactional with the
// mutation, so a reader may observe at most one stale response between a
// successful write and the invalidation landing.
package cache

import (
	"strings"
	"sync"
	"time"
)

// Invalidator marks a cached read path stale so the next read re-fetches.
type Invalidator interface {
	Invalidate(path string)
}

type entry struct {
	payload  []byte
	storedAt time.Time
}

// Registry caches rendered responses keyed by path, with a TTL backstop for
// paths no mutation ever invalidates.
type Registry struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

// NewRegistry builds a registry. A zero ttl disables expiry.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get returns the cached payload for path, or false on a miss or an expired
// entry.
func (r *Registry) Get(path string) ([]byte, bool) {
	r.mu.RLock()
	e, ok := r.entries[path]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if r.ttl > 0 && time.Since(e.storedAt) > r.ttl {
		r.Invalidate(path)
		return nil, false
	}
	return e.payload, true
}

// Put stores the rendered payload for path.
func (r *Registry) Put(path string, payload []byte) {
	r.mu.Lock()
	r.entries[path] = entry{payload: payload, storedAt: time.Now()}
	r.mu.Unlock()
}

// Invalidate drops the entry for path. Invalidating a path that was never
// cached is a no-op.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	delete(r.entries, path)
	r.mu.Unlock()
}

// InvalidatePrefix drops every entry whose path starts with prefix. Routes
// cached per user store one entry per variant; a mutation clears them all.
func (r *Registry) InvalidatePrefix(prefix string) {
	r.mu.Lock()
	for path := range r.entries {
		if strings.HasPrefix(path, prefix) {
			delete(r.entries, path)
		}
	}
	r.mu.Unlock()
}

// PrefixInvalidator adapts a Registry so a single invalidation clears every
// cached variant of a path.
type PrefixInvalidator struct {
	Registry *Registry
}

func (p PrefixInvalidator) Invalidate(path string) {
	p.Registry.InvalidatePrefix(path)
}
