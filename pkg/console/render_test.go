//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	output := RenderTable(TableConfig{
		Title:   "Circular references",
		Headers: []string{"Cell", "Formula", "Circular"},
		Rows: [][]string{
			{"A1", "=A2*2", "yes"},
			{"B2", "3", "no"},
		},
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", "", "1"},
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, "Circular references", lines[0], "title should be the first line")
	for _, want := range []string{"Cell", "Formula", "Circular", "=A2*2", "B2", "TOTAL"} {
		assert.Contains(t, output, want)
	}
	assert.Less(t, strings.Index(output, "A1"), strings.Index(output, "B2"), "rows keep their order")
	assert.Less(t, strings.Index(output, "B2"), strings.Index(output, "TOTAL"), "total row comes last")
	assert.NotContains(t, output, "\x1b[", "no ANSI codes without a terminal")
}

func TestRenderTable_DoesNotModifyRows(t *testing.T) {
	rows := make([][]string, 1, 4)
	rows[0] = []string{"A1", "1"}
	RenderTable(TableConfig{Headers: []string{"Cell", "Value"}, Rows: rows, ShowTotal: true, TotalRow: []string{"TOTAL", "1"}})
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[:2][1], "backing array must not receive the total row")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{}))
}

func TestRenderTree(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	output := RenderTree(TreeNode{
		Value: "+",
		Children: []TreeNode{
			{Value: "A1"},
			{Value: "*", Children: []TreeNode{{Value: "2"}, {Value: "3"}}},
		},
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, "+", lines[0])
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[1], "A1")
	assert.Contains(t, lines[2], "*")
	assert.Contains(t, lines[3], "2")
	assert.Contains(t, lines[4], "3")
	// Nested children are indented further than their parent
	assert.Greater(t, strings.Index(lines[3], "2"), strings.Index(lines[2], "*"))
}

func TestRenderTree_Leaf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "A1\n", RenderTree(TreeNode{Value: "A1"}))
}
