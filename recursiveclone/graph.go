package recursiveclone

import "github.com/ansys/acp-client-go/pkg/apperror"

// graph is a minimal directed-acyclic-graph over string keys, just enough
// to support Kahn's algorithm. There is no topological-sort library in the
// dependency pack suited to this narrow need, so it is hand-rolled
// (justified in DESIGN.md).
type graph struct {
	nodes       map[string]struct{}
	insertOrder []string
	// outEdges[u] = the set of v such that there is an edge u -> v.
	outEdges map[string]map[string]struct{}
	inDegree map[string]int
}

func newGraph() *graph {
	return &graph{
		nodes:    map[string]struct{}{},
		outEdges: map[string]map[string]struct{}{},
		inDegree: map[string]int{},
	}
}

func (g *graph) addNode(key string) {
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = struct{}{}
	g.insertOrder = append(g.insertOrder, key)
	g.outEdges[key] = map[string]struct{}{}
	g.inDegree[key] = 0
}

func (g *graph) addEdge(from, to string) {
	g.addNode(from)
	g.addNode(to)
	if _, exists := g.outEdges[from][to]; exists {
		return
	}
	g.outEdges[from][to] = struct{}{}
	g.inDegree[to]++
}

// topologicalOrder returns nodes such that every edge u->v has u appearing
// before v, using insertion order as a deterministic tiebreak among nodes
// with equal in-degree (plain Kahn's algorithm has no inherent order
// guarantee otherwise).
func (g *graph) topologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.inDegree))
	for k, v := range g.inDegree {
		inDegree[k] = v
	}

	order := make([]string, 0, len(g.nodes))
	visitOrder := g.insertionOrder()

	ready := make([]string, 0, len(g.nodes))
	for _, key := range visitOrder {
		if inDegree[key] == 0 {
			ready = append(ready, key)
		}
	}

	for len(ready) > 0 {
		key := ready[0]
		ready = ready[1:]
		order = append(order, key)
		for to := range g.outEdges[key] {
			inDegree[to]--
			if inDegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, apperror.New(apperror.KindRuntime, "recursive clone: dependency graph contains a cycle")
	}
	return order, nil
}

func (g *graph) insertionOrder() []string {
	return g.insertOrder
}
