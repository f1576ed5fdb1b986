package triangulate

import (
	"math"
	"slices"

	"github.com/edalab/ratsnest/pkg/geom"
)

// Delaunay generates candidate edges from a planar Delaunay triangulation
// of the point set.
//
// Inputs a triangulation cannot express are handled explicitly:
//
//   - 0 or 1 points: no candidates.
//   - exactly 2 points: one direct edge.
//   - coincident points: collapsed to one representative each before
//     triangulating, with a zero-length edge stitching every duplicate to
//     its representative.
//   - 3 or more collinear points: a path over the points sorted along the
//     line, since a triangulation of a zero-area set is undefined.
//
// The returned edge set always connects the point set.
type Delaunay struct{}

// Generate implements the candidate generator contract.
func (Delaunay) Generate(points []geom.Point) [][2]int {
	switch len(points) {
	case 0, 1:
		return nil
	case 2:
		return [][2]int{{0, 1}}
	}

	unique, rep, pairs := dedupe(points)

	switch {
	case len(unique) == 1:
		// All points coincide; the zero-length stitches already connect them.
	case len(unique) == 2:
		pairs = append(pairs, [2]int{rep[0], rep[1]})
	case geom.Collinear(unique):
		pairs = append(pairs, pathPairs(unique, rep)...)
	default:
		edges := bowyerWatson(unique)
		if edges == nil {
			// Numerically degenerate despite the collinearity check.
			// Connectivity beats sparsity: fall back to the complete graph.
			edges = completePairs(len(unique))
		}
		for _, e := range edges {
			pairs = append(pairs, [2]int{rep[e[0]], rep[e[1]]})
		}
	}
	return pairs
}

// dedupe collapses points with identical coordinates. It returns the
// unique points, the original id of each unique point, and a zero-length
// pair linking every dropped duplicate to its representative.
func dedupe(points []geom.Point) (unique []geom.Point, rep []int, stitches [][2]int) {
	index := make(map[geom.Point]int, len(points))
	for i, p := range points {
		if j, ok := index[p]; ok {
			stitches = append(stitches, [2]int{j, i})
			continue
		}
		index[p] = i
		unique = append(unique, p)
		rep = append(rep, i)
	}
	return unique, rep, stitches
}

// pathPairs connects consecutive points of a collinear set, ordered by X
// with Y as tie-break so vertical runs still form a path.
func pathPairs(unique []geom.Point, rep []int) [][2]int {
	order := make([]int, len(unique))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return geom.Compare(unique[a], unique[b])
	})

	pairs := make([][2]int, 0, len(order)-1)
	for i := 1; i < len(order); i++ {
		pairs = append(pairs, [2]int{rep[order[i-1]], rep[order[i]]})
	}
	return pairs
}

// completePairs returns every unordered index pair of an n-point set.
func completePairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// vertex is a point lifted to float64 for the triangulation only. Edge
// weights are recomputed from the exact integer coordinates afterwards,
// so float rounding here can at worst produce slightly suboptimal
// candidates, never wrong weights.
type vertex struct {
	x, y float64
}

type triangle struct {
	a, b, c int
}

// pairKey normalizes an index pair for use as a map key or output edge.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (t triangle) edges() [3][2]int {
	return [3][2]int{
		pairKey(t.a, t.b),
		pairKey(t.b, t.c),
		pairKey(t.c, t.a),
	}
}

// bowyerWatson triangulates a non-degenerate point set incrementally and
// returns the unique edges as index pairs. It returns nil if insertion
// ever fails, which only happens on inputs the collinearity pre-check was
// supposed to divert.
func bowyerWatson(points []geom.Point) [][2]int {
	n := len(points)
	verts := make([]vertex, n, n+3)
	for i, p := range points {
		verts[i] = vertex{float64(p.X), float64(p.Y)}
	}

	// Super-triangle comfortably enclosing the bounding box. Its vertices
	// get indices n, n+1, n+2 and are stripped at the end.
	minX, minY := verts[0].x, verts[0].y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.x)
		minY = math.Min(minY, v.y)
		maxX = math.Max(maxX, v.x)
		maxY = math.Max(maxY, v.y)
	}
	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		return nil
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	verts = append(verts,
		vertex{midX - 20*span, midY - span},
		vertex{midX, midY + 20*span},
		vertex{midX + 20*span, midY - span},
	)

	tris := []triangle{{n, n + 1, n + 2}}

	for i := 0; i < n; i++ {
		// Collect the triangles whose circumcircle contains the new point
		// and the boundary polygon of the cavity they form.
		var kept []triangle
		var cavity [][2]int
		count := make(map[[2]int]int)
		for _, t := range tris {
			if inCircumcircle(verts[t.a], verts[t.b], verts[t.c], verts[i]) {
				for _, e := range t.edges() {
					if count[e] == 0 {
						cavity = append(cavity, e)
					}
					count[e]++
				}
			} else {
				kept = append(kept, t)
			}
		}
		if len(cavity) == 0 {
			return nil
		}
		tris = kept
		for _, e := range cavity {
			if count[e] == 1 {
				tris = append(tris, triangle{e[0], e[1], i})
			}
		}
	}

	seen := make(map[[2]int]bool)
	var pairs [][2]int
	for _, t := range tris {
		for _, e := range t.edges() {
			if e[0] >= n || e[1] >= n {
				continue
			}
			if !seen[e] {
				seen[e] = true
				pairs = append(pairs, e)
			}
		}
	}
	return pairs
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of triangle abc, independent of the triangle's winding.
func inCircumcircle(a, b, c, p vertex) bool {
	ax, ay := a.x-p.x, a.y-p.y
	bx, by := b.x-p.x, b.y-p.y
	cx, cy := c.x-p.x, c.y-p.y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	if orient(a, b, c) < 0 {
		return det < 0
	}
	return det > 0
}

// orient returns twice the signed area of triangle abc.
func orient(a, b, c vertex) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}
