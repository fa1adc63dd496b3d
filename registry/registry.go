// Package registry implements the polymorphic object registry: resolving a
// resource path to the concrete, typed handle for the entity it names,
// dispatching purely on the path's collection label.
//
// Every entity that can appear as the target of a polymorphic link or a
// heterogeneous collection (selection rules, for instance) registers a
// constructor for its collection label in an init function. registry itself
// has no knowledge of any concrete entity type; it resolves to `any`, and
// callers type-assert to the interface they expect (e.g. model.SelectionRule).
package registry

import (
	"fmt"
	"sync"

	"github.com/ansys/acp-client-go/handlecache"
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

// Constructor builds the typed handle for a stored object at path, given the
// server wrapper it should be bound to. Constructors are not expected to
// perform any RPC themselves: the handle starts with only Info.ResourcePath
// populated and is lazily refreshed on first property access, exactly like
// any other stored handle.
type Constructor func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error)

var (
	mu           sync.RWMutex
	constructors = map[string]Constructor{}
)

// Register associates collectionLabel (e.g. "rosettes", "parallel_selection_rules")
// with a constructor. Calling Register twice for the same label is a
// programmer error and panics at init time, matching the source library's
// module-load-time registration.
func Register(collectionLabel string, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := constructors[collectionLabel]; exists {
		panic(fmt.Sprintf("registry: collection label %q already registered", collectionLabel))
	}
	constructors[collectionLabel] = ctor
}

// Resolve builds the concrete handle for path by dispatching on its
// collection label. It raises KindRuntime if no entity has registered that
// label (the object_registry miss in the source library, surfaced as a
// value_error there and as a generic runtime error here since there is no
// precise distinction between "server sent an unknown type" and "client is
// stale relative to the server").
func Resolve(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
	label := path.CollectionLabel()
	mu.RLock()
	ctor, ok := constructors[label]
	mu.RUnlock()
	if !ok {
		return nil, apperror.Newf(apperror.KindRuntime, "no registered object type for collection %q (path %q)", label, path.String())
	}
	return ctor(path, server)
}

// ResolveAs is Resolve followed by a type assertion to T, returning
// KindRuntime if the resolved object does not implement T (e.g. a selection
// rule link unexpectedly resolving to a non-selection-rule entity).
func ResolveAs[T any](path resourcepath.Path, server *treeobject.ServerWrapper) (T, error) {
	var zero T
	obj, err := Resolve(path, server)
	if err != nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, apperror.Newf(apperror.KindRuntime, "object at %q does not implement the expected type", path.String())
	}
	return typed, nil
}

// Registered reports whether collectionLabel currently has a constructor,
// for diagnostics and tests.
func Registered(collectionLabel string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := constructors[collectionLabel]
	return ok
}

var (
	handleCachesMu sync.Mutex
	handleCaches   = map[*treeobject.ServerWrapper]map[string]any{}
)

// cacheFor returns the shared handlecache.Cache[T] for collectionLabel
// against server, creating it on first use.
func cacheFor[T any](server *treeobject.ServerWrapper, collectionLabel string) *handlecache.Cache[T] {
	handleCachesMu.Lock()
	defer handleCachesMu.Unlock()

	byLabel, ok := handleCaches[server]
	if !ok {
		byLabel = map[string]any{}
		handleCaches[server] = byLabel
	}
	if c, ok := byLabel[collectionLabel]; ok {
		return c.(*handlecache.Cache[T])
	}
	c := handlecache.New[T]()
	byLabel[collectionLabel] = c
	return c
}

// CachedConstructor wraps a by-path constructor with the server's shared
// identity cache for collectionLabel, so that resolving the same resource
// path twice against the same server (whether through polymorphic link
// resolution or direct path reconstruction) returns the identical handle,
// for as long as some caller still holds a reference to it. Every
// registry.Register call should wrap its constructor with this. It goes
// through Cache.FromResourcePath rather than FromObjectInfo, since the path
// here is always caller-supplied rather than freshly read off the wire.
func CachedConstructor[T any](collectionLabel string, ctor func(path resourcepath.Path, server *treeobject.ServerWrapper) *T) Constructor {
	return func(path resourcepath.Path, server *treeobject.ServerWrapper) (any, error) {
		cache := cacheFor[T](server, collectionLabel)
		return cache.FromResourcePath(path.String(), func() *T { return ctor(path, server) })
	}
}
