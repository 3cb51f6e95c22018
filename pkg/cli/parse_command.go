package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/dataset"
	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/sliceutil"
	"github.com/spf13/cobra"
)

var parseLog = logger.New("cli:parse_command")

// Tree styles accepted by --style.
const (
	StylePlain = "plain"
	StyleTree  = "tree"
)

// ParseConfig holds configuration for the parse command.
type ParseConfig struct {
	Formulas []string
	File     string
	Style    string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [formula...]",
		Short: "Show the expression tree of formulas",
		Long: `Build the expression tree of each formula and print it.

The plain style prints one node per line, indented three spaces per level with the
left operand before the right one. The tree style draws branches.

Examples:
  cellgraph parse "=A1+52*2/(B2+B3)"
  cellgraph parse --file formulas.txt
  cellgraph parse "(A1+2)*3" --style tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			style, _ := cmd.Flags().GetString("style")
			return RunParse(ParseConfig{Formulas: args, File: file, Style: style}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read formulas from a file, one per line")
	cmd.Flags().String("style", StylePlain, "Output style: plain or tree")

	return cmd
}

// RunParse prints the tree of every formula given as an argument or read from
// config.File. All formulas are attempted; the first failure is returned at the end.
func RunParse(config ParseConfig, out io.Writer) error {
	if !sliceutil.Contains([]string{StylePlain, StyleTree}, config.Style) {
		return fmt.Errorf("unknown style %q (expected %s or %s)", config.Style, StylePlain, StyleTree)
	}

	formulas := config.Formulas
	if config.File != "" {
		fromFile, err := readFormulaFile(config.File)
		if err != nil {
			return err
		}
		formulas = append(formulas, fromFile...)
	}
	if len(formulas) == 0 {
		return errors.New(console.FormatErrorWithSuggestions(
			"no formulas to parse",
			[]string{"Pass formulas as arguments", "Use --file to read them from a file"},
		))
	}
	parseLog.Printf("Parsing %d formulas with style %s", len(formulas), config.Style)

	var failed []error
	for i, f := range formulas {
		if i > 0 {
			fmt.Fprintln(out)
		}
		tree, err := formula.Parse(f)
		if err != nil {
			formatted := formatFormulaError(f, err)
			fmt.Fprintln(os.Stderr, formatted)
			failed = append(failed, err)
			continue
		}

		fmt.Fprintln(out, f)
		if config.Style == StyleTree {
			fmt.Fprint(out, console.RenderTree(toTreeNode(tree)))
		} else {
			fmt.Fprint(out, formula.Display(tree))
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d formulas failed to parse: %w", len(failed), len(formulas), failed[0])
	}
	return nil
}

func readFormulaFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open formula file: %w", err)
	}
	defer f.Close()
	return dataset.ReadFormulas(f)
}
