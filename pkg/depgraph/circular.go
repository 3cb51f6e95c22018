package depgraph

import (
	"github.com/cellgraph/cellgraph/pkg/logger"
)

var circularLog = logger.New("depgraph:circular")

// hop is one step of a reference chain; prev points back towards the starting cell.
type hop struct {
	cell string
	prev *hop
}

func (h *hop) chain() []string {
	var reversed []string
	for n := h; n != nil; n = n.prev {
		reversed = append(reversed, n.cell)
	}
	chain := make([]string, len(reversed))
	for i, c := range reversed {
		chain[len(reversed)-1-i] = c
	}
	return chain
}

// HasCircularReference reports whether following the references of cell through ds
// ever leads back to cell. Every cell met on the way must be defined in ds, otherwise
// a *MissingCellError is returned.
func HasCircularReference(cell string, ds Lookup) (bool, error) {
	chain, err := FindCircularReference(cell, ds)
	if err != nil {
		return false, err
	}
	return chain != nil, nil
}

// FindCircularReference walks the references of cell breadth-first and returns the
// first chain that leads back to it, e.g. [A1 A2 B3 A1], or nil if there is none.
func FindCircularReference(cell string, ds Lookup) ([]string, error) {
	circularLog.Printf("Checking %s for circular references", cell)

	deps, err := cellDependencies(ds, cell)
	if err != nil {
		return nil, err
	}

	// Seed the queue with the direct dependencies of cell
	origin := &hop{cell: cell}
	queue := make([]*hop, 0, len(deps))
	for _, dep := range deps {
		queue = append(queue, &hop{cell: dep, prev: origin})
	}
	visited := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.cell == cell {
			chain := current.chain()
			circularLog.Printf("Circular reference found: %v", chain)
			return chain, nil
		}
		if visited[current.cell] {
			continue
		}
		visited[current.cell] = true

		next, err := cellDependencies(ds, current.cell)
		if err != nil {
			return nil, err
		}
		for _, dep := range next {
			if !visited[dep] {
				queue = append(queue, &hop{cell: dep, prev: current})
			}
		}
	}

	circularLog.Printf("No circular reference for %s after visiting %d cells", cell, len(visited))
	return nil, nil
}

// HasCircularDependency reports whether any cell referenced by formula has a circular
// reference in ds. It stops at the first one found.
func HasCircularDependency(f string, ds Lookup) (bool, error) {
	chain, err := FindCircularDependency(f, ds)
	if err != nil {
		return false, err
	}
	return chain != nil, nil
}

// FindCircularDependency returns the chain of the first cell referenced by formula
// that has a circular reference, or nil if none does.
func FindCircularDependency(f string, ds Lookup) ([]string, error) {
	deps, err := FindDependencies(f)
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		chain, err := FindCircularReference(dep, ds)
		if err != nil {
			return nil, err
		}
		if chain != nil {
			return chain, nil
		}
	}
	return nil, nil
}
