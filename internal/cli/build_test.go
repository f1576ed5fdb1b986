package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edalab/ratsnest/pkg/errors"
	"github.com/edalab/ratsnest/pkg/triangulate"
)

// writeFixture writes a netlist file into a temp dir and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const fixtureTOML = `name = "demo"
unit = "mm"

[[net]]
name = "CLK"

  [[net.terminal]]
  name = "U1.3"
  kind = "pad"
  x = 0
  y = 0

  [[net.terminal]]
  name = "U2.7"
  kind = "pad"
  x = 0
  y = 3

[[net]]
name = "GND"

  [[net.terminal]]
  name = "U1.4"
  kind = "pad"
  x = 1
  y = 1
`

// runCommand executes the build command against a fresh root and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newBuildCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestBuildCommandSummary(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	out, err := runCommand(t, path)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !strings.Contains(out, "CLK") {
		t.Errorf("output should mention net CLK, got:\n%s", out)
	}
	if !strings.Contains(out, "GND") {
		t.Errorf("output should mention net GND, got:\n%s", out)
	}
	// Two 3 mm apart pads need exactly one wire.
	if !strings.Contains(out, "(1 air wires)") {
		t.Errorf("CLK should need one air wire, got:\n%s", out)
	}
}

func TestBuildCommandJSON(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	out, err := runCommand(t, path, "--json")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var results []netResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(results) != 2 {
		t.Fatalf("got %d nets, want 2", len(results))
	}
	if results[0].Net != "CLK" || len(results[0].Wires) != 1 {
		t.Errorf("CLK = %+v, want one wire", results[0])
	}
	w := results[0].Wires[0]
	if w.A.X != 0 || w.A.Y != 0 || w.B.X != 0 || w.B.Y != 3_000_000 {
		t.Errorf("CLK wire = %+v, want (0,0)-(0,3000000)", w)
	}
	if results[1].Net != "GND" || len(results[1].Wires) != 0 {
		t.Errorf("GND = %+v, want no wires", results[1])
	}
}

func TestBuildCommandNetFilter(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	out, err := runCommand(t, path, "--json", "--net", "GND")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var results []netResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0].Net != "GND" {
		t.Errorf("got %+v, want only GND", results)
	}
}

func TestBuildCommandUnknownNet(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	_, err := runCommand(t, path, "--net", "VCC")
	if err == nil {
		t.Fatal("expected error for unknown net")
	}
	if errors.GetCode(err) != errors.ErrCodeNetNotFound {
		t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeNetNotFound)
	}
}

func TestBuildCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestBuildCommandNearestGenerator(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	out, err := runCommand(t, path, "--json", "--generator", "nearest", "--k", "4")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	var results []netResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if len(results[0].Wires) != 1 {
		t.Errorf("CLK with nearest generator = %+v, want one wire", results[0])
	}
}

func TestBuildCommandBadGenerator(t *testing.T) {
	path := writeFixture(t, "board.toml", fixtureTOML)

	_, err := runCommand(t, path, "--generator", "quadtree")
	if err == nil {
		t.Fatal("expected error for unknown generator")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("GetCode(err) = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestCandidateGeneratorDefaults(t *testing.T) {
	opts := buildOpts{generator: "nearest", neighbors: triangulate.DefaultNeighbors}
	gen, err := opts.candidateGenerator()
	if err != nil {
		t.Fatalf("candidateGenerator() error: %v", err)
	}
	if _, ok := gen.(triangulate.Nearest); !ok {
		t.Errorf("got %T, want triangulate.Nearest", gen)
	}

	opts = buildOpts{generator: "nearest", neighbors: 0}
	if _, err := opts.candidateGenerator(); err == nil {
		t.Error("expected error for non-positive neighbor count")
	}
}
