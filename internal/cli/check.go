package cli

import (
	"github.com/spf13/cobra"

	"github.com/edalab/ratsnest/pkg/netlist"
)

// newCheckCmd creates the check command.
// It validates a netlist file without computing anything and prints
// per-net statistics, which is useful for catching malformed input
// before a build.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <netlist>",
		Short: "Validate a netlist file and report per-net statistics",
		Long: `Validate a netlist file and report per-net statistics.

The netlist format is detected from the file extension (.json or .toml).
Validation covers net names, terminal references in connections, and
duplicate net names. No air wires are computed.

Examples:
  ratsnest check board.toml
  ratsnest check board.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
	return cmd
}

// runCheck imports the netlist (which validates it) and prints a summary.
func runCheck(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("Validating netlist", "path", path)

	nl, err := netlist.Import(path)
	if err != nil {
		printError(cmd.OutOrStdout(), "%s is not a valid netlist", path)
		return err
	}

	out := cmd.OutOrStdout()
	terminals := 0
	for i := range nl.Nets {
		net := &nl.Nets[i]
		terminals += len(net.Terminals)
		printDetail(out, "%s: %d terminal(s), %d connection(s)", net.Name, len(net.Terminals), len(net.Connections))
		if len(net.Terminals) == 0 {
			printWarning(out, "net %s has no terminals", net.Name)
		}
	}
	printSuccess(out, "%s: %d net(s), %d terminal(s)", path, len(nl.Nets), terminals)
	return nil
}
