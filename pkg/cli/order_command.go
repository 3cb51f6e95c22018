package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/spf13/cobra"
)

var orderLog = logger.New("cli:order_command")

// OrderConfig holds configuration for the order command.
type OrderConfig struct {
	Dataset    string
	JSONOutput bool
	Verbose    bool
}

// NewOrderCommand creates the order command.
func NewOrderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the evaluation order of a dataset",
		Long: `Print the cells of a dataset so that every cell comes after the cells it
references. Cells that could be evaluated at the same point are listed alphabetically.

A dataset with a circular reference has no evaluation order; the cycle is reported.

Examples:
  cellgraph order --dataset cells.txt
  cellgraph order --dataset cells.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetPath, _ := cmd.Flags().GetString("dataset")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			return RunOrder(OrderConfig{Dataset: datasetPath, JSONOutput: jsonOutput, Verbose: isVerbose(cmd)}, cmd.OutOrStdout())
		},
	}

	addDatasetFlag(cmd)
	addJSONFlag(cmd)

	return cmd
}

// RunOrder executes the order command.
func RunOrder(config OrderConfig, out io.Writer) error {
	ds, err := loadDataset(config.Dataset, config.Verbose)
	if err != nil {
		return err
	}

	g, err := depgraph.BuildGraph(ds)
	if err != nil {
		return formatAnalysisError(err)
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		return formatAnalysisError(err)
	}
	orderLog.Printf("Evaluation order of %d cells: %v", len(order), order)

	if config.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(order); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}

	for _, cell := range order {
		fmt.Fprintln(out, cell)
	}
	return nil
}
