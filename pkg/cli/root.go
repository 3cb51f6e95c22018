package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the cellgraph command tree.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "cellgraph",
		Short: "Analyze spreadsheet formulas",
		Long: `cellgraph tokenizes spreadsheet formulas, builds their expression trees, lists the
cells they reference and detects circular references across a dataset of cells.

Set DEBUG=* (or a namespace such as DEBUG=depgraph:*) to print debug logs to stderr.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Print additional progress information")

	root.AddCommand(
		NewTokenizeCommand(),
		NewParseCommand(),
		NewDepsCommand(),
		NewCheckCommand(),
		NewOrderCommand(),
		NewScanCommand(),
		NewWatchCommand(),
		NewMCPServerCommand(version),
	)

	return root
}
