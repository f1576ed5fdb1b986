package triangulate

import (
	"github.com/dhconnelly/rtreego"

	"github.com/edalab/ratsnest/pkg/geom"
)

// DefaultNeighbors is the neighbor count used by [Nearest] when K is not
// set. Three neighbors per point keeps the candidate set about as dense as
// a triangulation on evenly distributed nets.
const DefaultNeighbors = 3

// Nearest generates candidate edges by connecting each point to its K
// nearest neighbors, found through an R-tree.
//
// Unlike [Delaunay], the resulting edge set is not guaranteed to connect
// the point set: a tight cluster can exhaust its K neighbors internally
// and stay detached from the rest of the net. Callers that need the full
// spanning guarantee must use [Delaunay]; Nearest trades that guarantee
// for speed on very large nets.
type Nearest struct {
	// K is the number of neighbors per point. Values below 1 select
	// DefaultNeighbors.
	K int
}

type pointEntry struct {
	id   int
	rect rtreego.Rect
}

func (e *pointEntry) Bounds() rtreego.Rect { return e.rect }

// Generate implements the candidate generator contract.
func (g Nearest) Generate(points []geom.Point) [][2]int {
	switch len(points) {
	case 0, 1:
		return nil
	case 2:
		return [][2]int{{0, 1}}
	}

	k := g.K
	if k < 1 {
		k = DefaultNeighbors
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i, p := range points {
		rect, err := rtreego.NewRect(
			rtreego.Point{float64(p.X), float64(p.Y)},
			[]float64{1, 1}, // a point occupies one 1 nm cell
		)
		if err != nil {
			continue
		}
		tree.Insert(&pointEntry{id: i, rect: rect})
	}

	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for i, p := range points {
		at := rtreego.Point{float64(p.X), float64(p.Y)}
		// Ask for one extra neighbor since the query point is indexed too.
		for _, item := range tree.NearestNeighbors(k+1, at) {
			if item == nil {
				break
			}
			j := item.(*pointEntry).id
			if j == i {
				continue
			}
			key := pairKey(i, j)
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	return pairs
}
