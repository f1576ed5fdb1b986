package netlist

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/edalab/ratsnest/pkg/errors"
)

// ReadJSON decodes a JSON netlist from r and validates it.
//
// The input must be a JSON object with a "nets" array:
//
//	{
//	  "name": "board",
//	  "nets": [
//	    {
//	      "name": "GND",
//	      "terminals": [{"name": "R1.1", "kind": "pad", "x": 0, "y": 0}],
//	      "connections": [{"from": 0, "to": 1}]
//	    }
//	  ]
//	}
//
// Coordinates are nanometers. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Netlist, error) {
	var nl Netlist
	if err := json.NewDecoder(r).Decode(&nl); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode netlist")
	}
	if err := nl.Validate(); err != nil {
		return nil, err
	}
	return &nl, nil
}

// WriteJSON writes nl as indented JSON to w. The output round-trips
// through [ReadJSON].
func WriteJSON(nl *Netlist, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nl); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode netlist")
	}
	return nil
}

// Export writes nl to path, selecting the codec by file extension:
// ".json" or ".toml". The written file round-trips through [Import].
func Export(nl *Netlist, path string) error {
	var buf strings.Builder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := WriteJSON(nl, &buf); err != nil {
			return err
		}
	case ".toml":
		if err := writeTOML(nl, &buf); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported netlist format %q", filepath.Ext(path))
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Import reads a netlist file, selecting the codec by file extension:
// ".json" or ".toml".
func Import(path string) (*Netlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(strings.NewReader(string(data)))
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported netlist format %q", filepath.Ext(path))
	}
}
