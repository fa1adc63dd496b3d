// Package stubstore implements the Stub Store: a lazy,
// per-handle factory for the transport stub of a resource type, created on
// first use once the handle is stored and a channel is available.
package stubstore

import (
	"sync"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// Store lazily creates and caches a single stub instance of type S.
type Store[S any] struct {
	once    sync.Once
	stub    S
	newStub func() S
}

// New builds a Store that will call newStub exactly once, on the first call
// to Get after the handle becomes stored.
func New[S any](newStub func() S) *Store[S] {
	return &Store[S]{newStub: newStub}
}

// Get returns the stored stub, creating it on first use. isStored must
// reflect the owning handle's current lifecycle state; calling Get on an
// unstored handle is a programmer error surfaced as KindRuntime, mirroring
// the source library's "server connection is uninitialized" guard.
func (s *Store[S]) Get(isStored bool) (S, error) {
	var zero S
	if !isStored {
		return zero, apperror.New(apperror.KindRuntime, "the server connection is uninitialized")
	}
	s.once.Do(func() {
		s.stub = s.newStub()
	})
	return s.stub, nil
}
