package airwire

import (
	"slices"

	"github.com/edalab/ratsnest/pkg/geom"
)

// forest is a disjoint-set over point ids with union by size and path
// compression. Each set corresponds to one component: a maximal group of
// points mutually reachable through known edges and accepted air wires.
type forest struct {
	parent []int
	size   []int
}

func newForest(n int) *forest {
	f := &forest{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}
	return f
}

func (f *forest) find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		f.parent[x], x = root, f.parent[x]
	}
	return root
}

// union merges the sets containing a and b and reports whether they were
// separate. The smaller tree is attached under the larger one.
func (f *forest) union(a, b int) bool {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	return true
}

// selectWires runs the Kruskal reduction: known edges merge components
// first and for free, then candidates in ascending weight order, emitting
// a wire exactly when a candidate merges two still separate components.
// Ties between equal weights keep the candidate generation order, which
// makes the selection deterministic for a deterministic generator but is
// not a guarantee about wire identity.
func selectWires(points []geom.Point, known, candidates []Edge) []Wire {
	if len(points) == 0 {
		return nil
	}

	f := newForest(len(points))
	remaining := len(points) - 1

	for _, e := range known {
		if f.union(e.A, e.B) {
			remaining--
		}
	}

	slices.SortStableFunc(candidates, func(a, b Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})

	var wires []Wire
	for _, e := range candidates {
		if remaining == 0 {
			break
		}
		if f.union(e.A, e.B) {
			wires = append(wires, Wire{A: points[e.A], B: points[e.B]})
			remaining--
		}
	}
	return wires
}
