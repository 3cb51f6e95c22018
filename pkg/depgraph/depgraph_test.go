//go:build !integration

package depgraph

import (
	"errors"
	"testing"

	"github.com/cellgraph/cellgraph/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dataset1 = Dataset{"A1": "=A2*2", "A2": "=B3", "A3": "2", "B1": "4", "B2": "3", "B3": "=A1+B2"}
	dataset2 = Dataset{"A1": "3", "A2": "=A1+B1", "A3": "1", "B1": "B3", "B2": "2", "B3": "3"}
	dataset3 = Dataset{"A1": "=A2/(A2*B1)", "A2": "=A3+B2", "A3": "3", "B1": "A2*B2", "B2": "B3", "B3": "1"}
)

func TestFindDependencies(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		expected []string
	}{
		{name: "mixed references and numbers", formula: "=A1+52*2/(B2+B3)", expected: []string{"A1", "B2", "B3"}},
		{name: "breadth first order", formula: "=A2/(A2*B1)", expected: []string{"A2", "B1"}},
		{name: "duplicates removed", formula: "A1+A1*A1", expected: []string{"A1"}},
		{name: "single reference", formula: "B3", expected: []string{"B3"}},
		{name: "literal only", formula: "42", expected: []string{}},
		{name: "numbers only", formula: "=1+2*3", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, err := FindDependencies(tt.formula)
			require.NoError(t, err, "FindDependencies(%q)", tt.formula)
			assert.Equal(t, tt.expected, deps, "dependencies of %q", tt.formula)
		})
	}
}

func TestFindDependencies_Malformed(t *testing.T) {
	_, err := FindDependencies("=A1+")
	require.Error(t, err)
	assert.ErrorIs(t, err, formula.ErrMalformedFormula)

	_, err = FindDependencies("")
	assert.ErrorIs(t, err, formula.ErrEmptyFormula)
}

func TestHasCircularReference(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		ds       Dataset
		expected bool
	}{
		{name: "dataset1 A1 cycles", cell: "A1", ds: dataset1, expected: true},
		{name: "dataset1 A2 cycles", cell: "A2", ds: dataset1, expected: true},
		{name: "dataset1 B3 cycles", cell: "B3", ds: dataset1, expected: true},
		{name: "dataset1 literal", cell: "B2", ds: dataset1, expected: false},
		{name: "dataset2 A2", cell: "A2", ds: dataset2, expected: false},
		{name: "dataset2 bare reference", cell: "B1", ds: dataset2, expected: false},
		{name: "dataset3 A1", cell: "A1", ds: dataset3, expected: false},
		{name: "self reference", cell: "A1", ds: Dataset{"A1": "=A1+1"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasCircularReference(tt.cell, tt.ds)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got, "HasCircularReference(%q)", tt.cell)
		})
	}
}

func TestHasCircularReference_MissingCell(t *testing.T) {
	t.Run("origin not in dataset", func(t *testing.T) {
		got, err := HasCircularReference("X9", dataset1)
		require.Error(t, err)
		assert.False(t, got)

		var missing *MissingCellError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "X9", missing.Cell)
		assert.Equal(t, "cell X9 is not defined in the dataset", err.Error())
	})

	t.Run("reference not in dataset", func(t *testing.T) {
		_, err := HasCircularReference("A1", Dataset{"A1": "=A2+1", "A2": "=Z1"})
		var missing *MissingCellError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Z1", missing.Cell)
	})
}

func TestHasCircularReference_MalformedCellFormula(t *testing.T) {
	_, err := HasCircularReference("A1", Dataset{"A1": "=A2", "A2": "=1+"})
	require.Error(t, err)
	assert.ErrorIs(t, err, formula.ErrMalformedFormula)
	assert.Contains(t, err.Error(), "cell A2:")
}

func TestHasCircularReference_Idempotent(t *testing.T) {
	first, err := HasCircularReference("A1", dataset1)
	require.NoError(t, err)
	second, err := HasCircularReference("A1", dataset1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindCircularReference(t *testing.T) {
	chain, err := FindCircularReference("A1", dataset1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "B3", "A1"}, chain)

	chain, err = FindCircularReference("B3", dataset1)
	require.NoError(t, err)
	assert.Equal(t, []string{"B3", "A1", "A2", "B3"}, chain)

	chain, err = FindCircularReference("A2", dataset2)
	require.NoError(t, err)
	assert.Nil(t, chain)
}

func TestHasCircularDependency(t *testing.T) {
	const f = "=A1+52*2/(B2+B3)"
	tests := []struct {
		name     string
		ds       Dataset
		expected bool
	}{
		{name: "dataset1", ds: dataset1, expected: true},
		{name: "dataset2", ds: dataset2, expected: false},
		{name: "dataset3", ds: dataset3, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HasCircularDependency(f, tt.ds)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFindCircularDependency(t *testing.T) {
	chain, err := FindCircularDependency("=B2+A2", dataset1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A2", "B3", "A1", "A2"}, chain)

	chain, err = FindCircularDependency("=1+2", dataset1)
	require.NoError(t, err)
	assert.Nil(t, chain)

	_, err = FindCircularDependency("=X9", dataset1)
	var missing *MissingCellError
	assert.True(t, errors.As(err, &missing), "expected MissingCellError, got %v", err)
}

func TestCircularReferenceError(t *testing.T) {
	err := &CircularReferenceError{Chain: []string{"A1", "A2", "B3", "A1"}}
	assert.Equal(t, "circular reference: A1 -> A2 -> B3 -> A1", err.Error())
}
