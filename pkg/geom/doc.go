// Package geom provides fixed-point 2D geometry primitives for board
// coordinates.
//
// All coordinates are signed integers at nanometer resolution. Integer
// arithmetic keeps equality checks and squared-distance comparisons exact
// and reproducible across platforms, which the air-wire selector relies on
// when ordering candidate edges by weight.
//
// # Units
//
// The canonical unit is the nanometer. Helpers convert from coarser units
// without going through floating point:
//
//	p := geom.Point{X: geom.FromMillimeters(2), Y: geom.FromMicrometers(500)}
//
// # Collinearity
//
// [Collinear] classifies a point set as lying on a single line. It is used
// to detect degenerate (zero-area) inputs on which a planar triangulation
// is undefined, so callers can fall back to an explicit path construction.
package geom
