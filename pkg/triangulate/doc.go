// Package triangulate provides candidate-edge generators for the air-wire
// builder.
//
// A generator turns a point set into a sparse list of index pairs worth
// considering as potential air wires, so the minimum-forest selection does
// not have to look at all O(P²) pairs. Generators are plain values behind
// the narrow Generate(points) contract, so the selection logic is
// independent of how the candidates were produced.
//
// Two implementations are provided:
//
//   - [Delaunay] triangulates the point set and uses the triangulation's
//     edge set. Degenerate inputs (fewer than three points, coincident
//     points, collinear sets) are handled by explicit constructions. The
//     resulting edge set always connects the point set, which the spanning
//     guarantee of the selector depends on. This is the default.
//
//   - [Nearest] connects each point to its k nearest neighbors via an
//     R-tree. It is cheaper on very large nets but its edge set is not
//     guaranteed to be connected, so the builder may leave components
//     unbridged. Use it only where an approximate ratsnest is acceptable.
package triangulate
