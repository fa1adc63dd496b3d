// Package handlecache implements the Handle Cache: a
// weak-valued identity map from a canonical resource-path string to the one
// live handle for that resource. It is the Go realization of the Design
// Notes' guidance to use the host language's weak references, driven by the
// garbage collector rather than an explicit release call.
package handlecache

import (
	"sync"
	"weak"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// Cache is a per-concrete-handle-type cache table, keyed by canonical
// resource-path string. T is typically a handle struct (e.g. model.Rosette).
// Cache is safe for concurrent use; weak-reference collection races safely
// against lookup because every read re-checks the pointer under the lock.
type Cache[T any] struct {
	mu sync.Mutex
	m  map[string]weak.Pointer[T]
}

// New creates an empty cache table.
func New[T any]() *Cache[T] {
	return &Cache[T]{m: make(map[string]weak.Pointer[T])}
}

// Lookup returns the live handle for key, if one is currently cached and has
// not yet been garbage collected.
func (c *Cache[T]) Lookup(key string) (*T, bool) {
	if key == "" {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(key)
}

func (c *Cache[T]) lookupLocked(key string) (*T, bool) {
	wp, ok := c.m[key]
	if !ok {
		return nil, false
	}
	v := wp.Value()
	if v == nil {
		delete(c.m, key)
		return nil, false
	}
	return v, true
}

// FromObjectInfo implements the "from object-info" entry point: key is
// derived from the object's embedded resource path. An empty key (an
// unstored object-info, which should not normally reach this path) bypasses
// the cache entirely rather than raising.
func (c *Cache[T]) FromObjectInfo(key string, construct func() *T) *T {
	if key == "" {
		return construct()
	}
	return c.getOrCreate(key, construct)
}

// FromResourcePath implements the "from resource path" entry point: the
// caller supplies the path explicitly, and an empty key is a programmer
// error.
func (c *Cache[T]) FromResourcePath(key string, construct func() *T) (*T, error) {
	if key == "" {
		return nil, apperror.New(apperror.KindInvalidArgument, "handlecache: resource path must not be empty")
	}
	return c.getOrCreate(key, construct), nil
}

func (c *Cache[T]) getOrCreate(key string, construct func() *T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.lookupLocked(key); ok {
		return v
	}
	v := construct()
	c.m[key] = weak.Make(v)
	return v
}

// Evict removes key from the table outright (used when a handle is
// deleted and must not be resurrected by a later weak lookup racing the
// collector).
func (c *Cache[T]) Evict(key string) {
	if key == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, key)
}

// Len reports the number of live (non-collected) entries. It is intended
// for tests and diagnostics, not hot-path use, since it must touch every
// weak pointer to prune dead entries.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key, wp := range c.m {
		if wp.Value() == nil {
			delete(c.m, key)
			continue
		}
		n++
	}
	return n
}
