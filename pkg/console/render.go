package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
)

// RenderTable renders rows under headers with a border. The total row, when enabled,
// is appended as the last row. An empty config renders as an empty string.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 && len(config.Rows) == 0 {
		return ""
	}

	rows := config.Rows
	if config.ShowTotal && len(config.TotalRow) > 0 {
		rows = append(rows[:len(rows):len(rows)], config.TotalRow)
	}

	styled := isTTY()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(config.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			if !styled {
				return cell
			}
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if config.ShowTotal && row == len(rows)-1 {
				return cell.Bold(true)
			}
			return cell
		})
	if styled {
		t = t.BorderStyle(borderStyle)
	}

	var b strings.Builder
	if config.Title != "" {
		b.WriteString(applyStyle(headerStyle, config.Title))
		b.WriteString("\n")
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// RenderTree renders root and its descendants with box-drawing branches.
func RenderTree(root TreeNode) string {
	t := buildTree(root)
	if isTTY() {
		t = t.EnumeratorStyle(borderStyle).RootStyle(headerStyle)
	}
	return t.String() + "\n"
}

func buildTree(node TreeNode) *tree.Tree {
	t := tree.Root(node.Value)
	for _, child := range node.Children {
		if len(child.Children) == 0 {
			t.Child(child.Value)
			continue
		}
		t.Child(buildTree(child))
	}
	return t
}
