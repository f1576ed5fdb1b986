package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edalab/ratsnest/pkg/airwire"
	"github.com/edalab/ratsnest/pkg/errors"
	"github.com/edalab/ratsnest/pkg/geom"
	"github.com/edalab/ratsnest/pkg/netlist"
	"github.com/edalab/ratsnest/pkg/observability"
	"github.com/edalab/ratsnest/pkg/triangulate"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	net       string // restrict the build to a single net (all nets if empty)
	jsonOut   bool   // emit machine-readable JSON instead of the styled summary
	generator string // candidate generator name ("delaunay" or "nearest")
	neighbors int    // neighbor count for the nearest generator
}

// netResult is the JSON shape of one net's computed air wires.
type netResult struct {
	Net   string         `json:"net"`
	Wires []airwire.Wire `json:"wires"`
}

// candidateGenerator maps the --generator flag to a concrete generator.
func (o *buildOpts) candidateGenerator() (airwire.CandidateGenerator, error) {
	switch o.generator {
	case "delaunay":
		return triangulate.Delaunay{}, nil
	case "nearest":
		if o.neighbors < 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "neighbor count must be positive, got %d", o.neighbors)
		}
		return triangulate.Nearest{K: o.neighbors}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown generator %q (want delaunay or nearest)", o.generator)
	}
}

// newBuildCmd creates the build command.
// It reads a netlist file, computes air wires for each net, and prints
// the result either as a styled summary or as JSON.
func newBuildCmd() *cobra.Command {
	opts := buildOpts{generator: "delaunay", neighbors: triangulate.DefaultNeighbors}

	cmd := &cobra.Command{
		Use:   "build <netlist>",
		Short: "Compute air wires for the nets in a netlist file",
		Long: `Compute air wires for the nets in a netlist file.

The netlist format is detected from the file extension (.json or .toml).
Each net's terminals and already-routed connections are fed to the air-wire
builder, which returns the shortest set of wires completing the net.

Examples:
  ratsnest build board.toml                      # All nets, styled summary
  ratsnest build board.json --net GND            # Single net
  ratsnest build board.toml --json               # Machine-readable output
  ratsnest build board.toml --generator nearest  # k-nearest candidates`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.net, "net", "", "compute only the named net")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit JSON instead of a styled summary")
	cmd.Flags().StringVar(&opts.generator, "generator", opts.generator, "candidate generator (delaunay or nearest)")
	cmd.Flags().IntVar(&opts.neighbors, "k", opts.neighbors, "neighbor count for the nearest generator")

	return cmd
}

// runBuild loads the netlist and computes air wires for the selected nets.
func runBuild(cmd *cobra.Command, path string, opts *buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx).With("run", uuid.NewString())
	logger.Debug("Loading netlist", "path", path)

	gen, err := opts.candidateGenerator()
	if err != nil {
		return err
	}

	nl, err := netlist.Import(path)
	if err != nil {
		return err
	}

	nets := make([]*netlist.Net, 0, len(nl.Nets))
	if opts.net != "" {
		only, err := nl.Net(opts.net)
		if err != nil {
			return err
		}
		nets = append(nets, only)
	} else {
		for i := range nl.Nets {
			nets = append(nets, &nl.Nets[i])
		}
	}

	prog := newProgress(logger)
	results := make([]netResult, 0, len(nets))
	total := 0
	for _, net := range nets {
		start := time.Now()
		observability.Build().OnBuildStart(ctx, net.Name, len(net.Terminals))
		wires, err := net.AirWires(gen)
		observability.Build().OnBuildComplete(ctx, net.Name, len(wires), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("net %s: %w", net.Name, err)
		}
		logger.Debug("Net complete", "net", net.Name, "terminals", len(net.Terminals), "wires", len(wires))
		results = append(results, netResult{Net: net.Name, Wires: airwire.Sorted(wires)})
		total += len(wires)
	}
	prog.done(fmt.Sprintf("Built %d air wire(s) across %d net(s)", total, len(results)))

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, res := range results {
		printNetHeader(out, res.Net, len(res.Wires))
		for _, w := range res.Wires {
			printWireLine(out, formatPoint(w.A), formatPoint(w.B))
		}
	}
	if total == 0 {
		printSuccess(out, "All nets fully routed")
	} else {
		printDetail(out, "%d air wire(s) remaining", total)
	}
	return nil
}

// formatPoint renders a point's nanometer coordinates for terminal output.
func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
