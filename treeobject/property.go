package treeobject

import (
	"context"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
	"github.com/ansys/acp-client-go/versiongate"
)

// GetScalar implements a read-only or read-write scalar property getter:
// gate the operation against minVersion, refresh from the server if
// stored, and read the current value out of the properties struct.
// minVersion may be "" for an ungated property.
func GetScalar[P Properties, V any](
	ctx context.Context,
	b *Base[P],
	stub Reader[P],
	minVersion string,
	operationName string,
	get func(P) V,
) (V, error) {
	var zero V
	if err := versiongate.Check(b.ServerVersion(), minVersion, operationName); err != nil {
		return zero, err
	}
	if err := b.Get(ctx, stub); err != nil {
		return zero, err
	}
	return get(b.properties), nil
}

// SetScalar implements a read-write scalar property setter: gate, refresh,
// compare the new value against the current one via equal,
// and only issue a Put when the value actually changes. equal is invoked
// defensively: if it panics (e.g. comparing incomparable NaN-laden floats),
// the value is treated as changed rather than propagating the panic.
func SetScalar[P Properties, V any](
	ctx context.Context,
	b *Base[P],
	stub ReadWriteStub[P],
	minVersion string,
	operationName string,
	get func(P) V,
	set func(P, V),
	equal func(a, b V) bool,
	value V,
) error {
	if err := versiongate.Check(b.ServerVersion(), minVersion, operationName); err != nil {
		return err
	}
	if err := b.Get(ctx, stub); err != nil {
		return err
	}
	if safeEqual(equal, get(b.properties), value) {
		return nil
	}
	set(b.properties, value)
	return b.Put(ctx, stub)
}

func safeEqual[V any](equal func(a, b V) bool, a, b V) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return equal(a, b)
}

// GetLinkPath implements a read-only or read-write link-field getter at
// the raw resource-path level; the caller (normally a generated entity
// method) resolves the returned path into a typed handle via the registry
// package.
func GetLinkPath[P Properties](
	ctx context.Context,
	b *Base[P],
	stub Reader[P],
	minVersion string,
	operationName string,
	get func(P) resourcepath.Path,
) (resourcepath.Path, error) {
	if err := versiongate.Check(b.ServerVersion(), minVersion, operationName); err != nil {
		return resourcepath.Empty, err
	}
	if err := b.Get(ctx, stub); err != nil {
		return resourcepath.Empty, err
	}
	return get(b.properties), nil
}

// SetLinkPath implements a read-write link-field setter.
// target is nil to clear the link; otherwise it must already be stored, or
// LinkPathOf returns KindInvalidArgument before any RPC is attempted. When
// allowedCollectionLabels is non-empty, target's collection label is
// checked against it, raising KindInvalidArgument on a mismatch (the
// statically-typed-in-Python, runtime-checked-in-Go equivalent of the
// source library's per-setter type assertion).
func SetLinkPath[P Properties](
	ctx context.Context,
	b *Base[P],
	stub ReadWriteStub[P],
	minVersion string,
	operationName string,
	get func(P) resourcepath.Path,
	set func(P, resourcepath.Path),
	target Linkable,
	allowedCollectionLabels ...string,
) error {
	path, err := LinkPathOf(target)
	if err != nil {
		return err
	}
	if !path.IsEmpty() && len(allowedCollectionLabels) > 0 {
		label := path.CollectionLabel()
		ok := false
		for _, allowed := range allowedCollectionLabels {
			if allowed == label {
				ok = true
				break
			}
		}
		if !ok {
			return apperror.Newf(apperror.KindInvalidArgument, "%s: object of collection %q is not a valid link target here", operationName, label)
		}
	}
	if err := versiongate.Check(b.ServerVersion(), minVersion, operationName); err != nil {
		return err
	}
	if err := b.Get(ctx, stub); err != nil {
		return err
	}
	if get(b.properties).Equal(path) {
		return nil
	}
	set(b.properties, path)
	return b.Put(ctx, stub)
}
