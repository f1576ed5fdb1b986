package geom

import "math"

// Unit scale factors relative to the canonical nanometer unit.
const (
	Nanometer  int64 = 1
	Micrometer int64 = 1_000
	Millimeter int64 = 1_000_000
)

// FromMicrometers converts a micrometer value to nanometers.
func FromMicrometers(v int64) int64 { return v * Micrometer }

// FromMillimeters converts a millimeter value to nanometers.
func FromMillimeters(v int64) int64 { return v * Millimeter }

// Point is a location on the board in nanometer coordinates.
// Points are value types and compare with ==.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// SquaredDistance returns the squared Euclidean distance between p and q
// in nm², computed in exact integer arithmetic.
func SquaredDistance(p, q Point) int64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return dx*dx + dy*dy
}

// Compare orders points by X, then Y. It returns -1, 0, or 1 in the manner
// of cmp.Compare and is suitable for slices.SortFunc.
func Compare(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

const (
	// collinearMinDist2 is the squared distance below which a point is too
	// close to the reference point for a stable direction angle: 1e6 nm²,
	// i.e. anything within 1 µm is skipped.
	collinearMinDist2 int64 = 1_000_000

	// collinearAngleTol is the absolute direction-angle tolerance in
	// radians for the collinearity classification.
	collinearAngleTol = 1e-6
)

// Collinear reports whether all points lie on a single line. Fewer than
// three points are trivially collinear.
//
// The test takes the direction angle of the vector between the first two
// points as reference and requires every further point to see the first
// point under the same angle, within [collinearAngleTol]. Points within
// 1 µm of the first point are skipped since their angle is unstable.
// Direction angles are undirected, so angles differing by a half turn
// count as equal.
func Collinear(points []Point) bool {
	if len(points) < 3 {
		return true
	}
	p0 := points[0]
	ref := halfTurnAngle(points[1].X-p0.X, points[1].Y-p0.Y)
	for _, p := range points[2:] {
		dx := p.X - p0.X
		dy := p.Y - p0.Y
		if dx*dx+dy*dy <= collinearMinDist2 {
			continue
		}
		d := math.Abs(halfTurnAngle(dx, dy) - ref)
		if d > math.Pi/2 {
			d = math.Pi - d
		}
		if d > collinearAngleTol {
			return false
		}
	}
	return true
}

// halfTurnAngle returns the direction angle of (dx, dy) normalized into
// [0, π]. A vector and its negation map to the same angle up to the
// wraparound at 0/π, which Collinear compensates for.
func halfTurnAngle(dx, dy int64) float64 {
	a := math.Atan2(float64(dy), float64(dx))
	if a < 0 {
		a += math.Pi
	}
	return a
}
