package depgraph

import (
	"fmt"

	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/sliceutil"
	"github.com/cellgraph/cellgraph/pkg/stringutil"
)

var dependenciesLog = logger.New("depgraph:dependencies")

// FindDependencies returns the distinct cells referenced by formula, in the order a
// breadth-first walk of its expression tree first meets them.
func FindDependencies(f string) ([]string, error) {
	tree, err := formula.Parse(f)
	if err != nil {
		return nil, err
	}

	var refs []string
	queue := []formula.Node{tree}
	for len(queue) > 0 {
		// Dequeue first node (FIFO for BFS)
		node := queue[0]
		queue = queue[1:]

		if value := node.Value().Text; stringutil.IsCellReference(value) {
			refs = append(refs, value)
		}
		queue = append(queue, formula.Children(node)...)
	}

	deps := sliceutil.Deduplicate(refs)
	dependenciesLog.Printf("Formula %q depends on %v", f, deps)
	return deps, nil
}

// cellDependencies looks up the formula of cell and extracts its dependencies.
func cellDependencies(ds Lookup, cell string) ([]string, error) {
	f, err := lookupFormula(ds, cell)
	if err != nil {
		return nil, err
	}
	deps, err := FindDependencies(f)
	if err != nil {
		return nil, fmt.Errorf("cell %s: %w", cell, err)
	}
	return deps, nil
}
