package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/spf13/cobra"
)

var checkLog = logger.New("cli:check_command")

// CheckConfig holds configuration for the check command.
type CheckConfig struct {
	Formula    string
	Cell       string
	Dataset    string
	JSONOutput bool
	Verbose    bool
}

// CheckResult is the outcome of a circular reference check.
type CheckResult struct {
	Target   string   `json:"target"`
	Circular bool     `json:"circular"`
	Chain    []string `json:"chain,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [formula]",
		Short: "Check a formula or a cell for circular references",
		Long: `Check whether a formula, or a cell of the dataset, leads back to itself through
the cells it references. When it does, the chain of cells is printed.

Examples:
  cellgraph check "=A1+52*2/(B2+B3)" --dataset cells.txt
  cellgraph check --cell A1 --dataset cells.yaml
  cellgraph check --cell A1 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, _ := cmd.Flags().GetString("cell")
			datasetPath, _ := cmd.Flags().GetString("dataset")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			config := CheckConfig{
				Cell:       cell,
				Dataset:    datasetPath,
				JSONOutput: jsonOutput,
				Verbose:    isVerbose(cmd),
			}
			if len(args) == 1 {
				config.Formula = args[0]
			}
			return RunCheck(config, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("cell", "", "Check a cell of the dataset instead of a formula")
	addDatasetFlag(cmd)
	addJSONFlag(cmd)

	return cmd
}

// RunCheck executes the check command. A circular reference is reported, not
// returned as an error.
func RunCheck(config CheckConfig, out io.Writer) error {
	if (config.Formula == "") == (config.Cell == "") {
		return errors.New(console.FormatErrorWithSuggestions(
			"give either a formula or --cell",
			[]string{
				"cellgraph check \"=A1+B2\" --dataset cells.txt",
				"cellgraph check --cell A1 --dataset cells.txt",
			},
		))
	}

	ds, err := loadDataset(config.Dataset, config.Verbose)
	if err != nil {
		return err
	}

	result, err := CheckCircular(ds, config.Formula, config.Cell)
	if err != nil {
		return err
	}
	checkLog.Printf("Check of %s: circular=%v", result.Target, result.Circular)

	if config.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}

	if result.Circular {
		fmt.Fprintln(out, console.FormatErrorMessage(fmt.Sprintf("%s has a circular reference: %s", result.Target, strings.Join(result.Chain, " -> "))))
		return nil
	}
	fmt.Fprintln(out, console.FormatSuccessMessage(fmt.Sprintf("%s has no circular references", result.Target)))
	return nil
}

// CheckCircular checks cell when it is set and formula otherwise.
func CheckCircular(ds depgraph.Lookup, f, cell string) (*CheckResult, error) {
	if cell != "" {
		chain, err := depgraph.FindCircularReference(cell, ds)
		if err != nil {
			return nil, formatAnalysisError(err)
		}
		return &CheckResult{Target: cell, Circular: chain != nil, Chain: chain}, nil
	}

	// Parse first so syntax errors point into the formula itself
	if _, err := depgraph.FindDependencies(f); err != nil {
		return nil, formatFormulaError(f, err)
	}
	chain, err := depgraph.FindCircularDependency(f, ds)
	if err != nil {
		return nil, formatAnalysisError(err)
	}
	return &CheckResult{Target: f, Circular: chain != nil, Chain: chain}, nil
}
