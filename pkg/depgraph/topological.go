package depgraph

import (
	"slices"
)

// TopologicalOrder returns the cells so that every cell comes after the cells it
// references. Cells that become ready together are taken in lexical order. If the
// graph has a cycle a *CircularReferenceError describing one of them is returned.
func (g *Graph) TopologicalOrder() ([]string, error) {
	// Kahn's algorithm: in-degree is the number of distinct cells a cell references
	inDegree := make(map[string]int, len(g.cells))
	for _, cell := range g.cells {
		inDegree[cell] = len(g.dependencies[cell])
	}

	var queue []string
	for _, cell := range g.cells {
		if inDegree[cell] == 0 {
			queue = append(queue, cell)
		}
	}

	result := make([]string, 0, len(g.cells))
	for len(queue) > 0 {
		// Sort queue for deterministic output when several cells are ready
		slices.Sort(queue)
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, dependent := range g.dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	graphLog.Printf("Topological order: %v", result)

	if len(result) < len(g.cells) {
		unresolved := make(map[string]bool)
		for _, cell := range g.cells {
			if inDegree[cell] > 0 {
				unresolved[cell] = true
			}
		}
		graphLog.Printf("Cycle detected: ordered %d/%d cells", len(result), len(g.cells))
		return nil, &CircularReferenceError{Chain: findCyclePath(unresolved, g.dependencies)}
	}
	return result, nil
}
