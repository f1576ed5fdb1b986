package netlist

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/edalab/ratsnest/pkg/errors"
	"github.com/edalab/ratsnest/pkg/geom"
)

// tomlFile mirrors the on-disk TOML structure:
//
//	name = "board"
//	unit = "mm"
//
//	[[net]]
//	name = "GND"
//
//	  [[net.terminal]]
//	  name = "R1.1"
//	  kind = "pad"
//	  x = 2
//	  y = 3
//
//	  [[net.connection]]
//	  from = 0
//	  to = 1
type tomlFile struct {
	Name string    `toml:"name"`
	Unit string    `toml:"unit"`
	Nets []tomlNet `toml:"net"`
}

type tomlNet struct {
	Name        string           `toml:"name"`
	Terminals   []tomlTerminal   `toml:"terminal"`
	Connections []tomlConnection `toml:"connection"`
}

type tomlTerminal struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`
	X    int64  `toml:"x"`
	Y    int64  `toml:"y"`
}

type tomlConnection struct {
	From int `toml:"from"`
	To   int `toml:"to"`
}

// unitScale maps the declared coordinate unit to its nanometer factor.
// An absent unit means nanometers.
func unitScale(unit string) (int64, error) {
	switch unit {
	case "", "nm":
		return geom.Nanometer, nil
	case "um":
		return geom.Micrometer, nil
	case "mm":
		return geom.Millimeter, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidUnit, "unknown coordinate unit %q (want nm, um, or mm)", unit)
}

// writeTOML encodes nl in the on-disk TOML structure. Coordinates are
// written in nanometers so no precision is lost.
func writeTOML(nl *Netlist, w io.Writer) error {
	f := tomlFile{Name: nl.Name, Unit: "nm", Nets: make([]tomlNet, len(nl.Nets))}
	for i := range nl.Nets {
		net := &nl.Nets[i]
		tn := tomlNet{Name: net.Name}
		for _, t := range net.Terminals {
			tn.Terminals = append(tn.Terminals, tomlTerminal{
				Name: t.Name,
				Kind: string(t.Kind),
				X:    t.X,
				Y:    t.Y,
			})
		}
		for _, c := range net.Connections {
			tn.Connections = append(tn.Connections, tomlConnection{From: c.From, To: c.To})
		}
		f.Nets[i] = tn
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode netlist")
	}
	return nil
}

// ParseTOML decodes a TOML netlist, scales coordinates to nanometers, and
// validates the result. Coordinates are integers in the declared unit so
// the scaling stays exact.
func ParseTOML(data []byte) (*Netlist, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode netlist")
	}

	scale, err := unitScale(f.Unit)
	if err != nil {
		return nil, err
	}

	nl := &Netlist{Name: f.Name, Nets: make([]Net, len(f.Nets))}
	for i, tn := range f.Nets {
		net := Net{Name: tn.Name}
		for _, tt := range tn.Terminals {
			net.Terminals = append(net.Terminals, Terminal{
				Name: tt.Name,
				Kind: TerminalKind(tt.Kind),
				X:    tt.X * scale,
				Y:    tt.Y * scale,
			})
		}
		for _, tc := range tn.Connections {
			net.Connections = append(net.Connections, Connection{From: tc.From, To: tc.To})
		}
		nl.Nets[i] = net
	}

	if err := nl.Validate(); err != nil {
		return nil, err
	}
	return nl, nil
}
