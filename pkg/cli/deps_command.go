package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/tty"
	"github.com/spf13/cobra"
)

var depsLog = logger.New("cli:deps_command")

// DepsConfig holds configuration for the deps command.
type DepsConfig struct {
	Formula    string
	JSONOutput bool
}

// DepsResult is the JSON output of the deps command.
type DepsResult struct {
	Formula      string   `json:"formula"`
	Dependencies []string `json:"dependencies"`
}

// NewDepsCommand creates the deps command.
func NewDepsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [formula]",
		Short: "List the cells a formula references",
		Long: `List the distinct cells a formula references, in breadth-first order of its
expression tree.

Without an argument the formula is prompted for when a terminal is attached.

Examples:
  cellgraph deps "=A1+52*2/(B2+B3)"   # A1, B2, B3
  cellgraph deps "=A1+A1" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			config := DepsConfig{JSONOutput: jsonOutput}
			if len(args) == 1 {
				config.Formula = args[0]
			}
			return RunDeps(config, cmd.OutOrStdout())
		},
	}

	addJSONFlag(cmd)

	return cmd
}

// RunDeps prints the dependencies of config.Formula, prompting for it when empty.
func RunDeps(config DepsConfig, out io.Writer) error {
	if config.Formula == "" {
		f, err := promptFormula()
		if err != nil {
			return err
		}
		config.Formula = f
	}
	depsLog.Printf("Finding dependencies of %q", config.Formula)

	deps, err := depgraph.FindDependencies(config.Formula)
	if err != nil {
		return formatFormulaError(config.Formula, err)
	}

	if config.JSONOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(DepsResult{Formula: config.Formula, Dependencies: deps}); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}

	for _, dep := range deps {
		fmt.Fprintln(out, dep)
	}
	return nil
}

func promptFormula() (string, error) {
	if !tty.IsStdinTerminal() {
		return "", errors.New(console.FormatErrorWithSuggestions(
			"no formula given",
			[]string{"Pass the formula as an argument, e.g. cellgraph deps \"=A1+B2\""},
		))
	}
	return console.PromptInput("Formula", "Cells referenced by this formula will be listed", "=A1+B2*2", func(s string) error {
		_, err := formula.Parse(s)
		return err
	})
}
