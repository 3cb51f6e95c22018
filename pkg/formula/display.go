package formula

import "strings"

const displayIndent = "   "

// Display renders a tree with one node per line, children indented three spaces below
// their parent and the left child listed first:
//
//	+
//	   A1
//	   *
//	      2
//	      3
func Display(root Node) string {
	type entry struct {
		node   Node
		indent string
	}

	var sb strings.Builder
	stack := []entry{{node: root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(e.indent)
		sb.WriteString(e.node.Value().Text)
		sb.WriteString("\n")

		if b, ok := e.node.(*BinaryExpr); ok {
			child := e.indent + displayIndent
			stack = append(stack, entry{node: b.Right, indent: child}, entry{node: b.Left, indent: child})
		}
	}
	return sb.String()
}
