// Package mapping implements the Collection Mapping: a typed,
// keyed view over a server collection scoped to a parent resource path. A
// Mapping never holds a local copy; every read issues a List RPC and
// reconstructs handles through the Handle Cache, so two Mapping values over
// the same collection always observe the same live handles.
package mapping

import (
	"context"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/treeobject"
)

// Mapping is a read-through, keyed view over a single server collection. V
// is the entity handle type (e.g. *model.Rosette); it must expose its
// resource path so Mapping can derive each entry's key.
type Mapping[V interface{ ResourcePath() resourcepath.Path }] struct {
	list   func(ctx context.Context) ([]V, error)
	delete func(ctx context.Context, key string) error
}

// New builds a Mapping. list fetches and reconstructs every current member
// of the collection (normally a thin wrapper around a Lister call plus
// handlecache.FromObjectInfo per entry); delete issues the Delete RPC for
// the member keyed by key.
func New[V interface{ ResourcePath() resourcepath.Path }](
	list func(ctx context.Context) ([]V, error),
	delete func(ctx context.Context, key string) error,
) *Mapping[V] {
	return &Mapping[V]{list: list, delete: delete}
}

// Len returns the current member count.
func (m *Mapping[V]) Len(ctx context.Context) (int, error) {
	values, err := m.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return len(values), nil
}

// Keys returns every member's resource id, in server order.
func (m *Mapping[V]) Keys(ctx context.Context) ([]string, error) {
	values, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = v.ResourcePath().UID()
	}
	return keys, nil
}

// Values returns every member handle, in server order.
func (m *Mapping[V]) Values(ctx context.Context) ([]V, error) {
	return m.snapshot(ctx)
}

// Items returns every (key, value) pair, in server order.
func (m *Mapping[V]) Items(ctx context.Context) ([]Item[V], error) {
	values, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]Item[V], len(values))
	for i, v := range values {
		items[i] = Item[V]{Key: v.ResourcePath().UID(), Value: v}
	}
	return items, nil
}

// Item is a single (key, value) pair as returned by Items.
type Item[V any] struct {
	Key   string
	Value V
}

// Get returns the member keyed by key, and false if no such member exists.
func (m *Mapping[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	values, err := m.snapshot(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, v := range values {
		if v.ResourcePath().UID() == key {
			return v, true, nil
		}
	}
	return zero, false, nil
}

// Contains reports whether key is currently a member.
func (m *Mapping[V]) Contains(ctx context.Context, key string) (bool, error) {
	_, ok, err := m.Get(ctx, key)
	return ok, err
}

// Delete removes the member keyed by key from the server. The underlying
// handle remains in the handle cache, but any further operation on it
// surfaces not-found via the error translator.
func (m *Mapping[V]) Delete(ctx context.Context, key string) error {
	if ok, err := m.Contains(ctx, key); err != nil {
		return err
	} else if !ok {
		return apperror.Newf(apperror.KindNotFound, "no object with id %q in this collection", key)
	}
	return m.delete(ctx, key)
}

// Clear deletes every current member.
func (m *Mapping[V]) Clear(ctx context.Context) error {
	values, err := m.snapshot(ctx)
	if err != nil {
		return err
	}
	for _, v := range values {
		if err := m.delete(ctx, v.ResourcePath().UID()); err != nil {
			return err
		}
	}
	return nil
}

// Pop removes and returns the member keyed by key.
func (m *Mapping[V]) Pop(ctx context.Context, key string) (V, error) {
	value, ok, err := m.Get(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}
	if !ok {
		var zero V
		return zero, apperror.Newf(apperror.KindNotFound, "no object with id %q in this collection", key)
	}
	if err := m.delete(ctx, key); err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}

// PopItem removes and returns an arbitrary (key, value) pair, in practice
// the first in server order, raising KindNotFound if the collection is
// empty.
func (m *Mapping[V]) PopItem(ctx context.Context) (Item[V], error) {
	items, err := m.Items(ctx)
	if err != nil {
		return Item[V]{}, err
	}
	if len(items) == 0 {
		return Item[V]{}, apperror.New(apperror.KindNotFound, "collection is empty")
	}
	first := items[0]
	if err := m.delete(ctx, first.Key); err != nil {
		return Item[V]{}, err
	}
	return first, nil
}

func (m *Mapping[V]) snapshot(ctx context.Context) ([]V, error) {
	values, err := m.list(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		key := v.ResourcePath().UID()
		if _, dup := seen[key]; dup {
			return nil, apperror.Newf(apperror.KindRuntime, "server listed duplicate id %q in collection", key)
		}
		seen[key] = struct{}{}
	}
	return values, nil
}

// ListObjectInfos is a convenience adapter used by generated list closures:
// it drives a treeobject.Lister and reconstructs each entry via construct,
// which is expected to close over the owning handle cache.
func ListObjectInfos[P treeobject.Properties, V any](
	ctx context.Context,
	stub treeobject.Lister[P],
	collectionPath resourcepath.Path,
	construct func(treeobject.ObjectInfo[P]) V,
) ([]V, error) {
	infos, err := stub.List(ctx, collectionPath)
	if err != nil {
		return nil, err
	}
	values := make([]V, len(infos))
	for i, info := range infos {
		values[i] = construct(info)
	}
	return values, nil
}
