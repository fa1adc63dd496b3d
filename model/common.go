// Package model implements the domain entities: one file per
// entity, each a thin, essentially declarative layer over the generic
// engine in treeobject, orderedlist, mapping, and recursiveclone.
package model

import (
	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/recursiveclone"
)

// Vector3 is a three-component coordinate or direction vector, used for
// origins, directions, and orientation points throughout the model.
type Vector3 = [3]float64

// PlyType enumerates a material's role in a layup: a
// string-valued enum with a fixed set of known values.
type PlyType string

const (
	PlyTypeUndefined     PlyType = "undefined"
	PlyTypeRegular       PlyType = "regular"
	PlyTypeCore          PlyType = "core"
	PlyTypeUnidirectional PlyType = "unidirectional"
	PlyTypeWoven         PlyType = "woven"
	PlyTypeHoneycomb     PlyType = "honeycomb"
	PlyTypeAdhesive      PlyType = "adhesive"
)

var validPlyTypes = map[PlyType]struct{}{
	PlyTypeUndefined: {}, PlyTypeRegular: {}, PlyTypeCore: {},
	PlyTypeUnidirectional: {}, PlyTypeWoven: {}, PlyTypeHoneycomb: {}, PlyTypeAdhesive: {},
}

// ValidatePlyType raises KindInvalidArgument for any value outside the
// known enum set, mirroring the dictionary-based wire/enum lookup the
// server side uses.
func ValidatePlyType(v PlyType) error {
	if _, ok := validPlyTypes[v]; !ok {
		return apperror.Newf(apperror.KindInvalidArgument, "unknown ply type %q", v)
	}
	return nil
}

// Status reports a server-computed validity state for an entity.
type Status string

const (
	StatusNotUpToDate Status = "not_up_to_date"
	StatusUpToDate    Status = "up_to_date"
	StatusRunning     Status = "running"
	StatusFailed      Status = "failed"
	StatusLocked      Status = "locked"
)

// RosetteSelectionMethod selects how an oriented selection set resolves
// multiple candidate rosettes per element.
type RosetteSelectionMethod string

const (
	RosetteSelectionMinimumAngle RosetteSelectionMethod = "minimum_angle"
	RosetteSelectionMinimumDistance RosetteSelectionMethod = "minimum_distance"
	RosetteSelectionPerElementUniform RosetteSelectionMethod = "per_element_uniform"
)

// cloneFloat64Slice deep-copies a []float64, returning nil for a nil input.
func cloneFloat64Slice(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func cloneIntSlice(s []int32) []int32 {
	if s == nil {
		return nil
	}
	out := make([]int32, len(s))
	copy(out, s)
	return out
}

// apperrorInvalidParent builds the error recursiveclone.Node.Store
// implementations return when asked to store themselves under a parent of
// the wrong concrete type.
func apperrorInvalidParent(kind string, parent recursiveclone.Node) error {
	return apperror.Newf(apperror.KindInvalidArgument, "cannot store a %s under %T", kind, parent)
}

// apperrorRange builds the error a setter returns when a caller-supplied
// value falls outside its documented valid range.
func apperrorRange(field string, value float64) error {
	return apperror.Newf(apperror.KindInvalidArgument, "%s: value %g is out of the allowed range", field, value)
}

// apperrorInvalidLinkType builds the error a polymorphic link setter returns
// when given a target of a type it does not accept.
func apperrorInvalidLinkType(target any) error {
	return apperror.Newf(apperror.KindInvalidArgument, "%T is not a valid link target here", target)
}
