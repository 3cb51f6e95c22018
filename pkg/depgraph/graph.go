package depgraph

import (
	"slices"

	"github.com/cellgraph/cellgraph/pkg/logger"
)

var graphLog = logger.New("depgraph:graph")

// Graph holds the direct dependencies of every cell in a dataset.
type Graph struct {
	cells        []string
	dependencies map[string][]string
	dependents   map[string][]string
}

// BuildGraph parses every formula of ds and records its direct dependencies. A
// reference to a cell outside ds returns a *MissingCellError.
func BuildGraph(ds Dataset) (*Graph, error) {
	cells := ds.Cells()
	graphLog.Printf("Building dependency graph for %d cells", len(cells))

	g := &Graph{
		cells:        cells,
		dependencies: make(map[string][]string, len(cells)),
		dependents:   make(map[string][]string),
	}
	for _, cell := range cells {
		deps, err := cellDependencies(ds, cell)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if _, ok := ds[dep]; !ok {
				return nil, &MissingCellError{Cell: dep}
			}
			g.dependents[dep] = append(g.dependents[dep], cell)
		}
		g.dependencies[cell] = deps
	}
	for cell := range g.dependents {
		slices.Sort(g.dependents[cell])
	}
	return g, nil
}

// Cells returns the cells of the graph in lexical order.
func (g *Graph) Cells() []string {
	return slices.Clone(g.cells)
}

// Dependencies returns the cells that cell references directly.
func (g *Graph) Dependencies(cell string) []string {
	return slices.Clone(g.dependencies[cell])
}

// Dependents returns the cells that reference cell directly, sorted.
func (g *Graph) Dependents(cell string) []string {
	return slices.Clone(g.dependents[cell])
}
