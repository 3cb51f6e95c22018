package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/cellgraph/cellgraph/pkg/console"
	"github.com/cellgraph/cellgraph/pkg/dataset"
	"github.com/cellgraph/cellgraph/pkg/depgraph"
	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/cellgraph/cellgraph/pkg/logger"
)

var helpersLog = logger.New("cli:helpers")

// loadDataset loads the dataset named by --dataset.
func loadDataset(path string, verbose bool) (depgraph.Dataset, error) {
	if path == "" {
		return nil, errors.New(console.FormatErrorWithSuggestions(
			"no dataset given",
			[]string{
				"Pass the dataset file with --dataset FILE",
				"Set " + datasetEnvVar + " to the dataset file",
			},
		))
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(fmt.Sprintf("Loaded %d cells from %s", len(ds), path)))
	}
	helpersLog.Printf("Loaded dataset %s with %d cells", path, len(ds))
	return ds, nil
}

// formatFormulaError renders a parse failure of f with a caret under the offending
// symbol. Other errors are returned unchanged.
func formatFormulaError(f string, err error) error {
	var syntaxErr *formula.SyntaxError
	if errors.As(err, &syntaxErr) {
		column := syntaxErr.Symbol.Offset + 1
		if syntaxErr.AtEnd {
			column = len(f) + 1
		}
		return errors.New(console.FormatError(console.CompilerError{
			Position: console.ErrorPosition{File: "formula", Line: 1, Column: column},
			Type:     "error",
			Message:  err.Error(),
			Context:  []string{f},
		}))
	}

	if errors.Is(err, formula.ErrEmptyFormula) {
		return errors.New(console.FormatErrorWithSuggestions(
			"formula is empty",
			[]string{"Enter a formula such as =A1+B2*2"},
		))
	}
	return err
}

// formatAnalysisError adds suggestions to dataset traversal failures.
func formatAnalysisError(err error) error {
	var missing *depgraph.MissingCellError
	if errors.As(err, &missing) {
		return errors.New(console.FormatErrorWithSuggestions(
			err.Error(),
			[]string{
				"Add " + missing.Cell + " to the dataset",
				"Check the formulas for a misspelled cell reference",
			},
		))
	}

	var cycle *depgraph.CircularReferenceError
	if errors.As(err, &cycle) {
		return errors.New(console.FormatErrorWithSuggestions(
			err.Error(),
			[]string{"Run 'cellgraph scan' to list every cell on a circular reference"},
		))
	}
	return err
}

// toTreeNode converts an expression tree for console.RenderTree, with an explicit stack.
func toTreeNode(n formula.Node) console.TreeNode {
	type frame struct {
		src formula.Node
		dst *console.TreeNode
	}

	var root console.TreeNode
	stack := []frame{{src: n, dst: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.dst.Value = f.src.Value().Text
		children := formula.Children(f.src)
		if len(children) == 0 {
			continue
		}
		// Sized once, so pointers into it stay valid.
		f.dst.Children = make([]console.TreeNode, len(children))
		for i, child := range children {
			stack = append(stack, frame{src: child, dst: &f.dst.Children[i]})
		}
	}
	return root
}
