// Package orderedlist implements the ordered, index-addressable list
// property descriptors. In the model package it backs the linked-object
// lists (e.g. an oriented selection set's element sets and rosettes, a
// modeling ply's oriented selection sets); edge-property lists such as a
// ply's selection rules are read and written there as whole slices instead.
// The type is a List[S, T]: S is the raw element type stored on the
// wire (a resource path for a linked-object list, a value struct for an
// edge-property list) and T is the element type handed to callers (a typed
// handle for a linked-object list, normally equal to S for an edge list).
//
// Every method re-fetches the owning object before reading or writing,
// mirroring the scalar property discipline in treeobject/property.go: a list
// property is just a property whose value happens to be a slice.
package orderedlist

import (
	"context"
	"sort"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// List is a generic ordered collection property. Construct one with New,
// supplying closures that know how to read and write the raw slice through
// the owning object's properties struct, and how to convert between the raw
// element type S and the caller-facing type T.
type List[S any, T any] struct {
	get     func(ctx context.Context) ([]S, error)
	set     func(ctx context.Context, values []S) error
	toRaw   func(value T) (S, error)
	fromRaw func(raw S) (T, error)
	equal   func(a, b S) bool
}

// New builds a List. get/set bind to a specific property on a specific
// owning object (typically closures over a *treeobject.Base and a stub).
// toRaw validates and converts a caller-supplied T into the raw S stored in
// the slice; fromRaw does the reverse for reads. equal compares two raw
// elements, used by Contains/Count/Remove/IndexOf.
func New[S any, T any](
	get func(ctx context.Context) ([]S, error),
	set func(ctx context.Context, values []S) error,
	toRaw func(value T) (S, error),
	fromRaw func(raw S) (T, error),
	equal func(a, b S) bool,
) *List[S, T] {
	return &List[S, T]{get: get, set: set, toRaw: toRaw, fromRaw: fromRaw, equal: equal}
}

// Len returns the current element count.
func (l *List[S, T]) Len(ctx context.Context) (int, error) {
	raw, err := l.get(ctx)
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

// All materializes every element, in order.
func (l *List[S, T]) All(ctx context.Context) ([]T, error) {
	raw, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(raw))
	for i, r := range raw {
		v, err := l.fromRaw(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// At returns the element at index i (supporting Python-style negative
// indices counting from the end).
func (l *List[S, T]) At(ctx context.Context, i int) (T, error) {
	var zero T
	raw, err := l.get(ctx)
	if err != nil {
		return zero, err
	}
	idx, err := resolveIndex(i, len(raw))
	if err != nil {
		return zero, err
	}
	return l.fromRaw(raw[idx])
}

// SetAt overwrites the element at index i.
func (l *List[S, T]) SetAt(ctx context.Context, i int, value T) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	idx, err := resolveIndex(i, len(raw))
	if err != nil {
		return err
	}
	r, err := l.toRaw(value)
	if err != nil {
		return err
	}
	raw[idx] = r
	return l.set(ctx, raw)
}

// Append adds value to the end of the list.
func (l *List[S, T]) Append(ctx context.Context, value T) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	r, err := l.toRaw(value)
	if err != nil {
		return err
	}
	return l.set(ctx, append(raw, r))
}

// Extend appends every element of values, in order.
func (l *List[S, T]) Extend(ctx context.Context, values []T) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	for _, value := range values {
		r, err := l.toRaw(value)
		if err != nil {
			return err
		}
		raw = append(raw, r)
	}
	return l.set(ctx, raw)
}

// Insert places value at index i, shifting later elements back.
func (l *List[S, T]) Insert(ctx context.Context, i int, value T) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	idx := clampInsertIndex(i, len(raw))
	r, err := l.toRaw(value)
	if err != nil {
		return err
	}
	raw = append(raw, r)
	copy(raw[idx+1:], raw[idx:])
	raw[idx] = r
	return l.set(ctx, raw)
}

// RemoveAt deletes the element at index i.
func (l *List[S, T]) RemoveAt(ctx context.Context, i int) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	idx, err := resolveIndex(i, len(raw))
	if err != nil {
		return err
	}
	raw = append(raw[:idx], raw[idx+1:]...)
	return l.set(ctx, raw)
}

// Pop removes and returns the element at index i, defaulting to the last
// element when i is not supplied.
func (l *List[S, T]) Pop(ctx context.Context, i ...int) (T, error) {
	var zero T
	idxArg := -1
	if len(i) > 0 {
		idxArg = i[0]
	}
	raw, err := l.get(ctx)
	if err != nil {
		return zero, err
	}
	idx, err := resolveIndex(idxArg, len(raw))
	if err != nil {
		return zero, err
	}
	value, err := l.fromRaw(raw[idx])
	if err != nil {
		return zero, err
	}
	raw = append(raw[:idx], raw[idx+1:]...)
	if err := l.set(ctx, raw); err != nil {
		return zero, err
	}
	return value, nil
}

// Remove deletes the first element equal to value, raising KindNotFound if
// absent.
func (l *List[S, T]) Remove(ctx context.Context, value T) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	r, err := l.toRaw(value)
	if err != nil {
		return err
	}
	for idx, existing := range raw {
		if l.equal(existing, r) {
			raw = append(raw[:idx], raw[idx+1:]...)
			return l.set(ctx, raw)
		}
	}
	return apperror.New(apperror.KindNotFound, "value not found in list")
}

// Reverse reverses element order in place.
func (l *List[S, T]) Reverse(ctx context.Context) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	return l.set(ctx, raw)
}

// SortBy reorders elements by the key extracted via keyOf, ascending unless
// reverse is true. Ties preserve original relative order (stable sort).
func (l *List[S, T]) SortBy(ctx context.Context, keyOf func(T) string, reverse bool) error {
	raw, err := l.get(ctx)
	if err != nil {
		return err
	}
	values := make([]T, len(raw))
	for i, r := range raw {
		v, err := l.fromRaw(r)
		if err != nil {
			return err
		}
		values[i] = v
	}
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = keyOf(v)
	}
	idx := make([]int, len(raw))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if reverse {
			return keys[idx[a]] > keys[idx[b]]
		}
		return keys[idx[a]] < keys[idx[b]]
	})
	sorted := make([]S, len(raw))
	for newPos, oldPos := range idx {
		sorted[newPos] = raw[oldPos]
	}
	return l.set(ctx, sorted)
}

// Contains reports whether value is present.
func (l *List[S, T]) Contains(ctx context.Context, value T) (bool, error) {
	idx, err := l.IndexOf(ctx, value)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return false, nil
		}
		return false, err
	}
	return idx >= 0, nil
}

// Count returns the number of elements equal to value.
func (l *List[S, T]) Count(ctx context.Context, value T) (int, error) {
	raw, err := l.get(ctx)
	if err != nil {
		return 0, err
	}
	r, err := l.toRaw(value)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, existing := range raw {
		if l.equal(existing, r) {
			n++
		}
	}
	return n, nil
}

// IndexOf returns the index of the first element equal to value, raising
// KindNotFound if absent.
func (l *List[S, T]) IndexOf(ctx context.Context, value T) (int, error) {
	raw, err := l.get(ctx)
	if err != nil {
		return -1, err
	}
	r, err := l.toRaw(value)
	if err != nil {
		return -1, err
	}
	for idx, existing := range raw {
		if l.equal(existing, r) {
			return idx, nil
		}
	}
	return -1, apperror.New(apperror.KindNotFound, "value not found in list")
}

func resolveIndex(i, length int) (int, error) {
	idx := i
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, apperror.Newf(apperror.KindInvalidArgument, "index %d out of range for list of length %d", i, length)
	}
	return idx, nil
}

func clampInsertIndex(i, length int) int {
	idx := i
	if idx < 0 {
		idx += length
		if idx < 0 {
			idx = 0
		}
	}
	if idx > length {
		idx = length
	}
	return idx
}
