package airwire_test

import (
	"fmt"

	"github.com/edalab/ratsnest/pkg/airwire"
	"github.com/edalab/ratsnest/pkg/geom"
)

func ExampleBuilder() {
	// Three pads of one net; the first two are already joined by a trace.
	b := airwire.New(nil)
	p0 := b.AddPoint(geom.Point{X: 0, Y: 0})
	p1 := b.AddPoint(geom.Point{X: geom.FromMillimeters(2), Y: 0})
	b.AddPoint(geom.Point{X: 0, Y: geom.FromMillimeters(3)})

	if err := b.AddEdge(p0, p1); err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, w := range airwire.Sorted(b.Build()) {
		fmt.Printf("air wire (%d, %d) - (%d, %d)\n", w.A.X, w.A.Y, w.B.X, w.B.Y)
	}
	// Output:
	// air wire (0, 0) - (0, 3000000)
}
