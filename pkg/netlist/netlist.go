package netlist

import (
	"github.com/edalab/ratsnest/pkg/airwire"
	"github.com/edalab/ratsnest/pkg/errors"
	"github.com/edalab/ratsnest/pkg/geom"
)

// TerminalKind classifies what a terminal is on the board. The air-wire
// computation ignores the kind; it is carried for the caller's benefit
// (display, filtering).
type TerminalKind string

// Terminal kinds.
const (
	TerminalPad      TerminalKind = "pad"
	TerminalVia      TerminalKind = "via"
	TerminalJunction TerminalKind = "junction"
)

// Terminal is one connectable point of a net at nanometer coordinates.
type Terminal struct {
	Name string       `json:"name,omitempty"`
	Kind TerminalKind `json:"kind,omitempty"`
	X    int64        `json:"x"`
	Y    int64        `json:"y"`
}

// Point returns the terminal's board location.
func (t Terminal) Point() geom.Point { return geom.Point{X: t.X, Y: t.Y} }

// Connection declares that two terminals of a net, addressed by their
// index in the net's terminal list, are already connected by copper.
type Connection struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Net is one electrical net: its terminals and the known connections
// among them.
type Net struct {
	Name        string       `json:"name"`
	Terminals   []Terminal   `json:"terminals"`
	Connections []Connection `json:"connections,omitempty"`
}

// Validate checks the net's internal consistency: a legal name and
// connection indices that address existing terminals.
func (n *Net) Validate() error {
	if err := errors.ValidateNetName(n.Name); err != nil {
		return err
	}
	for _, c := range n.Connections {
		if c.From < 0 || c.From >= len(n.Terminals) {
			return errors.New(errors.ErrCodeInvalidTerminal,
				"net %q: connection references terminal %d of %d", n.Name, c.From, len(n.Terminals))
		}
		if c.To < 0 || c.To >= len(n.Terminals) {
			return errors.New(errors.ErrCodeInvalidTerminal,
				"net %q: connection references terminal %d of %d", n.Name, c.To, len(n.Terminals))
		}
	}
	return nil
}

// AirWires computes the net's air wires. gen selects the candidate
// generator; nil uses the default Delaunay triangulation. The net is
// validated first, so connection indices from untrusted files fail with a
// coded error instead of violating the builder's contract.
func (n *Net) AirWires(gen airwire.CandidateGenerator) ([]airwire.Wire, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	b := airwire.New(gen)
	for _, t := range n.Terminals {
		b.AddPoint(t.Point())
	}
	for _, c := range n.Connections {
		if err := b.AddEdge(c.From, c.To); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "net %q", n.Name)
		}
	}
	return b.Build(), nil
}

// Netlist is a collection of nets, typically one board's worth.
type Netlist struct {
	Name string `json:"name,omitempty"`
	Nets []Net  `json:"nets"`
}

// Validate checks every net and rejects duplicate net names.
func (nl *Netlist) Validate() error {
	seen := make(map[string]bool, len(nl.Nets))
	for i := range nl.Nets {
		n := &nl.Nets[i]
		if err := n.Validate(); err != nil {
			return err
		}
		if seen[n.Name] {
			return errors.New(errors.ErrCodeInvalidNet, "duplicate net name %q", n.Name)
		}
		seen[n.Name] = true
	}
	return nil
}

// Net returns the net with the given name.
func (nl *Netlist) Net(name string) (*Net, error) {
	for i := range nl.Nets {
		if nl.Nets[i].Name == name {
			return &nl.Nets[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeNetNotFound, "net %q not found", name)
}
