// Package netlist models the per-net connectivity input for the air-wire
// builder: named nets, their terminals (pads, vias, junctions) at
// nanometer board coordinates, and the connections among terminals that
// already exist physically.
//
// The package is deliberately thin. It knows which terminals belong to a
// net and which of them are already joined, and it can hand a net to an
// [github.com/edalab/ratsnest/pkg/airwire.Builder]; it does not model
// components, copper geometry, or design rules.
//
// # File formats
//
// Netlists can be read from JSON (interchange, see [ReadJSON]) or from
// TOML (hand-written files, see [ParseTOML]). TOML files may declare a
// coordinate unit of "nm", "um", or "mm"; coordinates are integer values
// in that unit and are scaled to nanometers on load, so no floating point
// enters the data path.
package netlist
