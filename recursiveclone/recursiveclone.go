// Package recursiveclone implements the recursive multi-object clone
// algorithm: given a set of source objects, it clones every
// object reachable through child and link edges, rewrites every link through
// a replacement map (seeded by the caller's own old-parent/new-parent
// pairs), and stores each clone under its already-cloned new parent.
package recursiveclone

import (
	"context"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/resourcepath"
)

// Node is implemented by every entity handle that can participate in a
// recursive clone. Child/link discovery and link rewriting are expressed
// through closures so that recursiveclone needs no knowledge of any
// concrete entity's properties layout.
type Node interface {
	ResourcePath() resourcepath.Path
	ParentPath() resourcepath.Path

	// Clone returns a new, unstored Node of the same concrete type carrying
	// a deep copy of this node's properties (its links still point at the
	// *original* targets; RewriteLinks below retargets them).
	Clone() Node

	// ChildObjects lists this node's direct children that are themselves
	// cloneable, discovering child-collection elements.
	ChildObjects() []Node

	// DirectLinks lists every single-valued link field this node carries.
	DirectLinks() []DirectLink

	// LinkedObjectLists lists every ordered link-list field this node
	// carries.
	LinkedObjectLists() []LinkedObjectList

	// EdgePropertyLists lists every edge-property-list field this node
	// carries.
	EdgePropertyLists() []EdgePropertyList

	// Store creates this (unstored) node under parent.
	Store(ctx context.Context, parent Node) error
}

// DirectLink is a single link field, read from and written to a clone.
type DirectLink struct {
	Target Node // nil if unset
	Set    func(ctx context.Context, newTarget Node) error
}

// LinkedObjectList is an ordered link-list field, read from and written to
// a clone in one shot: every mutation republishes the whole list.
type LinkedObjectList struct {
	Targets []Node
	Set     func(ctx context.Context, newTargets []Node) error
}

// EdgePropertyList is an edge-property-list field. Clear empties it ahead
// of Store (new edges cannot reference not-yet-stored objects); Restore
// republishes it once every link target in the replacement map has been
// cloned and stored, using resolve to turn an original link target's path
// into its already-cloned replacement.
type EdgePropertyList struct {
	LinkedTargetPaths []resourcepath.Path
	Clear             func(ctx context.Context) error
	Restore           func(ctx context.Context, resolve func(resourcepath.Path) (Node, error)) error
}

// ParentMapping seeds the replacement map with a pre-existing
// (original-parent, new-parent) pair, for a clone whose destination parent
// is a node the caller already created (e.g. cloning into a different
// model).
type ParentMapping struct {
	Original Node
	New      Node
}

// Copy performs the recursive clone. sourceObjects are the roots to copy;
// parentMapping seeds replacements for nodes (typically parents) that
// already exist on the destination side. It returns the newly created
// clones in the order they were stored, which is dependency order: every
// parent and link target comes before the nodes that depend on it.
func Copy(ctx context.Context, sourceObjects []Node, parentMapping []ParentMapping) ([]Node, error) {
	visited := map[string]Node{}
	graph := newGraph()
	for _, n := range sourceObjects {
		walk(n, graph, visited)
	}

	replacement := make(map[string]Node, len(parentMapping))
	for _, pm := range parentMapping {
		replacement[pm.Original.ResourcePath().String()] = pm.New
	}

	order, err := graph.topologicalOrder()
	if err != nil {
		return nil, err
	}

	var created []Node
	// Process in reverse topological order: edges point
	// "child -> parent" and "linker -> link target", so a plain
	// topological order has children and linkers first; reversing it
	// yields parents and link targets first, which is the order we need
	// to already have a replacement on hand for every rewrite below.
	for i := len(order) - 1; i >= 0; i-- {
		key := order[i]
		if _, already := replacement[key]; already {
			continue
		}
		source := visited[key]
		clone := source.Clone()

		// Read link structure off source (the original), but write the
		// rewritten links onto clone: clone.Clone() starts as a deep copy
		// still pointing at the *original* targets, and every Set call
		// below retargets the corresponding field on clone, in the same
		// declaration order source and clone report their links in.
		sourceLinks, cloneLinks := source.DirectLinks(), clone.DirectLinks()
		for linkIdx, link := range sourceLinks {
			if link.Target == nil {
				continue
			}
			newTarget, ok := replacement[link.Target.ResourcePath().String()]
			if !ok {
				return nil, apperror.Newf(apperror.KindRuntime, "recursive clone: no replacement found for linked object %q", link.Target.ResourcePath().String())
			}
			if err := cloneLinks[linkIdx].Set(ctx, newTarget); err != nil {
				return nil, err
			}
		}

		sourceLists, cloneLists := source.LinkedObjectLists(), clone.LinkedObjectLists()
		for listIdx, list := range sourceLists {
			newTargets := make([]Node, len(list.Targets))
			for j, target := range list.Targets {
				newTarget, ok := replacement[target.ResourcePath().String()]
				if !ok {
					return nil, apperror.Newf(apperror.KindRuntime, "recursive clone: no replacement found for linked object %q", target.ResourcePath().String())
				}
				newTargets[j] = newTarget
			}
			if err := cloneLists[listIdx].Set(ctx, newTargets); err != nil {
				return nil, err
			}
		}

		cloneEdgeLists := clone.EdgePropertyLists()
		for _, edges := range cloneEdgeLists {
			if err := edges.Clear(ctx); err != nil {
				return nil, err
			}
		}

		newParent, ok := replacement[source.ParentPath().String()]
		if !ok {
			return nil, apperror.Newf(apperror.KindRuntime, "recursive clone: no replacement found for parent %q", source.ParentPath().String())
		}
		if err := clone.Store(ctx, newParent); err != nil {
			return nil, err
		}

		resolve := func(path resourcepath.Path) (Node, error) {
			newTarget, ok := replacement[path.String()]
			if !ok {
				return nil, apperror.Newf(apperror.KindRuntime, "recursive clone: no replacement found for edge link target %q", path.String())
			}
			return newTarget, nil
		}
		for _, edges := range cloneEdgeLists {
			// Restore rebuilds the clone's edge list from the edges it
			// already carries (copied by Clone, cleared above only on the
			// wire), retargeting each edge's links through resolve.
			if err := edges.Restore(ctx, resolve); err != nil {
				return nil, err
			}
		}

		replacement[key] = clone
		created = append(created, clone)
	}

	return created, nil
}

func walk(n Node, g *graph, visited map[string]Node) {
	key := n.ResourcePath().String()
	if _, ok := visited[key]; ok {
		return
	}
	visited[key] = n
	g.addNode(key)

	for _, child := range n.ChildObjects() {
		g.addEdge(child.ResourcePath().String(), key)
		walk(child, g, visited)
	}
	for _, link := range n.DirectLinks() {
		if link.Target == nil {
			continue
		}
		g.addEdge(key, link.Target.ResourcePath().String())
		walk(link.Target, g, visited)
	}
	for _, list := range n.LinkedObjectLists() {
		for _, target := range list.Targets {
			g.addEdge(key, target.ResourcePath().String())
			walk(target, g, visited)
		}
	}
	for _, edges := range n.EdgePropertyLists() {
		for _, path := range edges.LinkedTargetPaths {
			g.addEdge(key, path.String())
		}
	}
}
