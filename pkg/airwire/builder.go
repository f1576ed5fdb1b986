package airwire

import (
	"errors"
	"fmt"
	"slices"

	"github.com/edalab/ratsnest/pkg/geom"
	"github.com/edalab/ratsnest/pkg/triangulate"
)

// ErrUnknownPoint is returned by [Builder.AddEdge] when an endpoint id was
// never returned by [Builder.AddPoint]. Passing such an id is a contract
// violation by the caller, not a recoverable runtime condition.
var ErrUnknownPoint = errors.New("unknown point id")

// CandidateGenerator proposes extra edges between registered points to be
// considered as potential air wires. Generate receives the full point set
// and returns index pairs into it. Implementations must handle degenerate
// inputs (fewer than three points, collinear sets) themselves.
//
// The selector only guarantees a spanning result if the returned edge set
// connects the point set; see [github.com/edalab/ratsnest/pkg/triangulate]
// for implementations.
type CandidateGenerator interface {
	Generate(points []geom.Point) [][2]int
}

// EdgeKind distinguishes connections that already exist physically from
// candidates proposed by the generator. An explicit kind replaces the
// classic negative-weight sentinel encoding, which is ambiguous once
// zero-length candidates enter the picture.
type EdgeKind int

const (
	// EdgeKnown marks a caller-declared existing connection. Known edges
	// are free to traverse and never become air wires.
	EdgeKnown EdgeKind = iota

	// EdgeCandidate marks a potential air wire, weighted by the squared
	// distance between its endpoints.
	EdgeCandidate
)

// Edge connects two registered points by id. Weight is the squared
// distance in nm² and is meaningful only for EdgeCandidate edges.
type Edge struct {
	A, B   int
	Kind   EdgeKind
	Weight int64
}

// Wire is one emitted air wire: a pair of net points that should be shown
// as still unconnected. The pair is unordered; [Sorted] normalizes wires
// for comparison.
type Wire struct {
	A geom.Point `json:"a"`
	B geom.Point `json:"b"`
}

// Builder accumulates the points and known connections of one net and
// computes its air wires. The zero value is not usable; call [New].
type Builder struct {
	gen    CandidateGenerator
	points []geom.Point
	known  []Edge
}

// New returns a builder that uses gen to propose candidate edges. A nil
// gen selects [triangulate.Delaunay], which is the right choice unless the
// caller has a reason to trade candidate quality for speed.
func New(gen CandidateGenerator) *Builder {
	if gen == nil {
		gen = triangulate.Delaunay{}
	}
	return &Builder{gen: gen}
}

// AddPoint registers a point and returns its id. Ids are sequential from
// zero. There is no duplicate detection: two points with identical
// coordinates are distinct and, if unconnected, yield a zero-length wire.
func (b *Builder) AddPoint(p geom.Point) int {
	id := len(b.points)
	b.points = append(b.points, p)
	return id
}

// AddEdge registers a known connection between two previously registered
// points. Self-edges and duplicate edges are legal and absorbed as no-op
// merges. Endpoints that were never registered fail fast with
// [ErrUnknownPoint].
func (b *Builder) AddEdge(p1, p2 int) error {
	if p1 < 0 || p1 >= len(b.points) {
		return fmt.Errorf("edge endpoint %d: %w", p1, ErrUnknownPoint)
	}
	if p2 < 0 || p2 >= len(b.points) {
		return fmt.Errorf("edge endpoint %d: %w", p2, ErrUnknownPoint)
	}
	b.known = append(b.known, Edge{A: p1, B: p2, Kind: EdgeKnown})
	return nil
}

// PointCount returns the number of registered points.
func (b *Builder) PointCount() int { return len(b.points) }

// Build computes the air wires for the registered points and known
// connections. It runs synchronously, performs no I/O, and returns the
// result by value; the builder should be discarded afterwards.
func (b *Builder) Build() []Wire {
	var candidates []Edge
	for _, pair := range b.gen.Generate(b.points) {
		candidates = append(candidates, Edge{
			A:      pair[0],
			B:      pair[1],
			Kind:   EdgeCandidate,
			Weight: geom.SquaredDistance(b.points[pair[0]], b.points[pair[1]]),
		})
	}
	return selectWires(b.points, b.known, candidates)
}

// Sorted returns a copy of wires with each pair ordered by [geom.Compare]
// and the list sorted, so that results from runs with different candidate
// orderings compare equal when they describe the same connections.
func Sorted(wires []Wire) []Wire {
	out := make([]Wire, len(wires))
	for i, w := range wires {
		if geom.Compare(w.B, w.A) < 0 {
			w.A, w.B = w.B, w.A
		}
		out[i] = w
	}
	slices.SortFunc(out, func(a, b Wire) int {
		if c := geom.Compare(a.A, b.A); c != 0 {
			return c
		}
		return geom.Compare(a.B, b.B)
	})
	return out
}
