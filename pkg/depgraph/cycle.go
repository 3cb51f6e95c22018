package depgraph

import (
	"slices"
)

// findCyclePath returns a cycle among the unresolved cells, including the closing
// edge, e.g. [A1 A2 B3 A1]. Starting cells are tried in lexical order since an
// unresolved cell may only depend on a cycle without being part of one.
func findCyclePath(unresolved map[string]bool, dependencies map[string][]string) []string {
	starts := make([]string, 0, len(unresolved))
	for cell := range unresolved {
		starts = append(starts, cell)
	}
	slices.Sort(starts)

	for _, start := range starts {
		visited := make(map[string]bool)
		var path []string
		if dfsForCycle(start, start, unresolved, dependencies, visited, &path) {
			graphLog.Printf("Cycle path found: %v", path)
			return path
		}
	}

	graphLog.Print("No cycle path could be constructed")
	return nil
}

func dfsForCycle(current, target string, unresolved map[string]bool, dependencies map[string][]string, visited map[string]bool, path *[]string) bool {
	*path = append(*path, current)
	visited[current] = true

	var next []string
	for _, dep := range dependencies[current] {
		if unresolved[dep] {
			next = append(next, dep)
		}
	}
	slices.Sort(next)

	for _, dep := range next {
		if dep == target {
			*path = append(*path, dep)
			return true
		}
		if !visited[dep] && dfsForCycle(dep, target, unresolved, dependencies, visited, path) {
			return true
		}
	}

	// Backtrack
	*path = (*path)[:len(*path)-1]
	return false
}
