//go:build !integration

package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	g, err := BuildGraph(dataset2)
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "A2", "A3", "B1", "B2", "B3"}, g.Cells())
	assert.Equal(t, []string{"A1", "B1"}, g.Dependencies("A2"))
	assert.Equal(t, []string{"A2"}, g.Dependents("A1"))
	assert.Equal(t, []string{"A2"}, g.Dependents("B1"))
	assert.Equal(t, []string{"B1"}, g.Dependents("B3"))
	assert.Empty(t, g.Dependents("A3"))
}

func TestBuildGraph_MissingCell(t *testing.T) {
	_, err := BuildGraph(Dataset{"A1": "=B1+C1", "B1": "1"})
	var missing *MissingCellError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "C1", missing.Cell)
}

func TestTopologicalOrder(t *testing.T) {
	tests := []struct {
		name     string
		ds       Dataset
		expected []string
	}{
		{name: "dataset2", ds: dataset2, expected: []string{"A1", "A3", "B2", "B3", "B1", "A2"}},
		{name: "dataset3", ds: dataset3, expected: []string{"A3", "B3", "B2", "A2", "B1", "A1"}},
		{name: "empty", ds: Dataset{}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.ds)
			require.NoError(t, err)
			order, err := g.TopologicalOrder()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)

			// Every dependency precedes its dependent
			position := make(map[string]int, len(order))
			for i, cell := range order {
				position[cell] = i
			}
			for _, cell := range order {
				for _, dep := range g.Dependencies(cell) {
					assert.Less(t, position[dep], position[cell], "%s must come before %s", dep, cell)
				}
			}
		})
	}
}

func TestTopologicalOrder_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		ds    Dataset
		chain []string
	}{
		{name: "dataset1", ds: dataset1, chain: []string{"A1", "A2", "B3", "A1"}},
		{name: "self reference", ds: Dataset{"A1": "=A1+1"}, chain: []string{"A1", "A1"}},
		{
			name:  "cell depending on a cycle",
			ds:    Dataset{"A1": "=B1", "B1": "=C1", "C1": "=B1*2"},
			chain: []string{"B1", "C1", "B1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := BuildGraph(tt.ds)
			require.NoError(t, err)
			order, err := g.TopologicalOrder()
			assert.Nil(t, order)

			var cycle *CircularReferenceError
			require.ErrorAs(t, err, &cycle)
			assert.Equal(t, tt.chain, cycle.Chain)
		})
	}
}
