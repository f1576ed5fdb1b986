// Package pkg provides the core libraries for ratsnest air-wire computation.
//
// # Overview
//
// Ratsnest computes the shortest set of air wires needed to complete the
// unrouted nets of a circuit board. The pkg directory is organized into
// four main areas:
//
//  1. [geom] - Fixed-point board geometry (nanometer coordinates, exact distances)
//  2. [airwire] - The air-wire builder (point registry, known edges, minimum forest)
//  3. [triangulate] - Candidate edge generators (Delaunay, k-nearest)
//  4. [netlist] - Netlist model and codecs (JSON, TOML)
//
// # Architecture
//
// The typical data flow through ratsnest:
//
//	Netlist file (JSON/TOML)
//	         ↓
//	    [netlist] package (decode + validate)
//	         ↓
//	    [triangulate] package (candidate edges)
//	         ↓
//	    [airwire] package (minimum forest over candidates)
//	         ↓
//	    Air wires (endpoint pairs)
//
// # Quick Start
//
// Compute air wires for a small net:
//
//	import (
//	    "github.com/edalab/ratsnest/pkg/airwire"
//	    "github.com/edalab/ratsnest/pkg/geom"
//	)
//
//	b := airwire.New(nil) // nil selects the Delaunay generator
//	b.AddPoint(geom.Point{X: 0, Y: 0})
//	b.AddPoint(geom.Point{X: geom.FromMillimeters(3), Y: 0})
//	wires := b.Build()
//
// Or start from a netlist file:
//
//	nl, _ := netlist.Import("board.toml")
//	for i := range nl.Nets {
//	    wires, _ := nl.Nets[i].AirWires(nil)
//	    // ...
//	}
//
// # Supporting Packages
//
// [errors] - Coded errors with stable machine-readable codes and
// user-friendly messages.
//
// [observability] - Optional build hooks for instrumenting per-net runs
// without coupling the library to a logging or metrics framework.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/airwire/...  # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/geom
// [airwire]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/airwire
// [triangulate]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/triangulate
// [netlist]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/netlist
// [errors]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/errors
// [observability]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/edalab/ratsnest/pkg/buildinfo
package pkg
