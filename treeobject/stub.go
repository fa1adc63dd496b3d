package treeobject

import (
	"context"

	"github.com/ansys/acp-client-go/resourcepath"
)

// Reader is the transport surface for fetching a single object's current
// state by resource path.
type Reader[P Properties] interface {
	Get(ctx context.Context, path resourcepath.Path) (ObjectInfo[P], error)
}

// Writer is the transport surface for writing a single object's full state
// back, enforcing optimistic concurrency via Info.Version.
type Writer[P Properties] interface {
	Put(ctx context.Context, object ObjectInfo[P]) (ObjectInfo[P], error)
}

// Deleter is the transport surface for removing an object.
type Deleter interface {
	Delete(ctx context.Context, path resourcepath.Path, version int64) error
}

// Lister is the transport surface for enumerating every object directly
// under a collection; the Collection Mapping reads through this to build
// its snapshot.
type Lister[P Properties] interface {
	List(ctx context.Context, collectionPath resourcepath.Path) ([]ObjectInfo[P], error)
}

// Creator is the transport surface for storing a previously-unstored object
// under a parent path and collection.
type Creator[P Properties] interface {
	Create(ctx context.Context, parentPath resourcepath.Path, collectionLabel string, object ObjectInfo[P]) (ObjectInfo[P], error)
}

// ReadWriteStub is the combination needed by a read-write property setter:
// each setter re-fetches current state before deciding whether a write is
// needed.
type ReadWriteStub[P Properties] interface {
	Reader[P]
	Writer[P]
}

// FullStub is the combination needed by a "creatable, editable, readable"
// entity: one that can be fetched, mutated, deleted, listed, and created.
type FullStub[P Properties] interface {
	Reader[P]
	Writer[P]
	Deleter
	Lister[P]
	Creator[P]
}
