// Package resourcepath implements the resource path value type: the
// server-stable identifier of a tree object, an ordered sequence of
// (collection label, uid) pairs with a canonical slash-joined string form.
package resourcepath

import (
	"fmt"
	"strings"
)

// Separator joins parts in the canonical wire string: "c1/u1/c2/u2/...".
const Separator = "/"

// Path is the identity of a server-resident resource. The zero value is the
// empty path, meaning "unset" wherever a link field may be absent.
type Path struct {
	value string
}

// Empty is the unset path.
var Empty = Path{}

// FromParts builds a Path from an ordered (collection, uid) part list. len(parts)
// must be even; it panics otherwise, since this is a programmer error (callers
// supply parts in matched pairs, never user input).
func FromParts(parts ...string) Path {
	if len(parts)%2 != 0 {
		panic(fmt.Sprintf("resourcepath: odd number of parts %v", parts))
	}
	return Path{value: strings.Join(parts, Separator)}
}

// FromString wraps an already-canonical wire string. It does not validate
// that the string has an even number of segments; use Parts to validate
// lazily, mirroring the source library's permissive constructor.
func FromString(value string) Path {
	return Path{value: value}
}

// String returns the canonical wire form.
func (p Path) String() string {
	return p.value
}

// IsEmpty reports whether the path denotes "unset".
func (p Path) IsEmpty() bool {
	return p.value == ""
}

// Parts splits the canonical string back into its (collection, uid) segments.
func (p Path) Parts() []string {
	if p.value == "" {
		return nil
	}
	return strings.Split(p.value, Separator)
}

// Join appends a (collection, uid) pair (or several) to p and returns the result.
func (p Path) Join(parts ...string) Path {
	if len(parts) == 0 {
		return p
	}
	if p.value == "" {
		return FromParts(parts...)
	}
	return Path{value: p.value + Separator + strings.Join(parts, Separator)}
}

// Parent returns the path with its last (collection, uid) pair removed. It
// returns Empty if p has one or zero pairs.
func (p Path) Parent() Path {
	parts := p.Parts()
	if len(parts) < 2 {
		return Empty
	}
	return FromParts(parts[:len(parts)-2]...)
}

// CollectionLabel returns the last collection label in the path, or "" if p
// is empty.
func (p Path) CollectionLabel() string {
	parts := p.Parts()
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-2]
}

// UID returns the uid half of the last (collection, uid) pair, or "" if p is
// empty.
func (p Path) UID() string {
	parts := p.Parts()
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// Equal reports whether two paths have the same canonical string.
func (p Path) Equal(other Path) bool {
	return p.value == other.value
}

// SharesModel reports whether a and b agree on the first (collection,
// uid) pair, i.e. both belong to the same model.
func SharesModel(a, b Path) bool {
	ap, bp := a.Parts(), b.Parts()
	if len(ap) < 2 || len(bp) < 2 {
		return false
	}
	return ap[0] == bp[0] && ap[1] == bp[1]
}

// CommonPrefix returns the longest shared leading-parts prefix of the given
// paths, as a joined Path. Empty or single-input returns Empty and the sole
// path respectively unless there's nothing shared.
func CommonPrefix(paths ...Path) Path {
	nonEmpty := make([][]string, 0, len(paths))
	for _, p := range paths {
		if !p.IsEmpty() {
			nonEmpty = append(nonEmpty, p.Parts())
		}
	}
	if len(nonEmpty) == 0 {
		return Empty
	}
	shortest := nonEmpty[0]
	for _, parts := range nonEmpty[1:] {
		if len(parts) < len(shortest) {
			shortest = parts
		}
	}
	n := 0
	for ; n+1 < len(shortest); n += 2 {
		for _, parts := range nonEmpty {
			if parts[n] != shortest[n] || parts[n+1] != shortest[n+1] {
				return FromParts(shortest[:n]...)
			}
		}
	}
	return FromParts(shortest[:n]...)
}
