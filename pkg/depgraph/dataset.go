// Package depgraph extracts cell dependencies from formulas and detects circular
// references across a dataset of cell formulas.
//
// The package is organized in focused files:
//   - dependencies.go: breadth-first dependency extraction from a formula tree
//   - circular.go: circular reference detection starting from a cell or a formula
//   - graph.go: the direct dependency graph of a whole dataset
//   - topological.go: evaluation order with Kahn's algorithm
//   - cycle.go: cycle path reconstruction for error reporting
package depgraph

import (
	"maps"
	"slices"
)

// Lookup resolves a cell id to its defining formula.
type Lookup interface {
	Formula(cell string) (string, bool)
}

// Dataset maps cell ids to formulas. Values may be bare literals ("3"), bare
// references ("B3") or formulas with a leading "=".
type Dataset map[string]string

// Formula implements Lookup.
func (d Dataset) Formula(cell string) (string, bool) {
	f, ok := d[cell]
	return f, ok
}

// Cells returns the cell ids in lexical order.
func (d Dataset) Cells() []string {
	return slices.Sorted(maps.Keys(d))
}

// lookupFormula returns the formula of cell or a MissingCellError.
func lookupFormula(ds Lookup, cell string) (string, error) {
	f, ok := ds.Formula(cell)
	if !ok {
		return "", &MissingCellError{Cell: cell}
	}
	return f, nil
}
