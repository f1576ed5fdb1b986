// Package airwire computes the ratsnest of an electrical net: the minimal
// set of extra straight-line connections ("air wires") needed so that every
// point of the net is reachable from every other, given the connections
// that already exist physically.
//
// # Model
//
// The caller registers the net's points (pads, vias, junctions; the
// package does not care) and the pairs among them that are already
// connected by traces. A candidate generator proposes a sparse set of
// geometrically reasonable extra edges, by default a Delaunay triangulation
// of the point set. A Kruskal-style reduction over a disjoint-set forest
// then merges components: known edges first and for free, candidates in
// ascending squared-distance order. A candidate that merges two still
// separate components becomes an air wire; candidates inside one component
// are discarded.
//
// For P registered points the builder emits exactly C-1 air wires, where C
// is the number of connected components induced by the known edges alone,
// as long as the candidate set connects those components. The default
// generator guarantees that by construction.
//
// # Usage
//
//	b := airwire.New(nil) // nil selects the Delaunay generator
//	a := b.AddPoint(geom.Point{X: 0, Y: 0})
//	c := b.AddPoint(geom.Point{X: 2_000_000, Y: 0})
//	b.AddPoint(geom.Point{X: 0, Y: 2_000_000})
//	if err := b.AddEdge(a, c); err != nil {
//	    return err
//	}
//	wires := b.Build()
//
// A Builder serves exactly one computation. It holds no state across
// invocations and is not safe for concurrent use; concurrent computations
// for different nets need independent builders.
//
// When several minimum forests exist (duplicate candidate weights), the
// total weight and the wire count are stable but the identity of the
// chosen wires is unspecified. Use [Sorted] to normalize results before
// comparing them.
package airwire
