package formula

import "strings"

// Node is a finished expression tree node: either an *Operand leaf or a *BinaryExpr.
type Node interface {
	// Value returns the operand or operator symbol held by the node.
	Value() Symbol
	// String renders the subtree fully parenthesized, e.g. "(A1+(2*3))".
	String() string

	node()
}

// Operand is a leaf holding a number or a cell reference.
type Operand struct {
	Symbol Symbol
}

// BinaryExpr applies Op to Left and Right. Both children are always present.
type BinaryExpr struct {
	Op    Symbol
	Left  Node
	Right Node
}

func (o *Operand) Value() Symbol    { return o.Symbol }
func (b *BinaryExpr) Value() Symbol { return b.Op }

func (o *Operand) String() string    { return Infix(o) }
func (b *BinaryExpr) String() string { return Infix(b) }

func (*Operand) node()    {}
func (*BinaryExpr) node() {}

// Children returns the left and right children of n, or nil for a leaf.
func Children(n Node) []Node {
	if b, ok := n.(*BinaryExpr); ok {
		return []Node{b.Left, b.Right}
	}
	return nil
}

// Infix renders a tree fully parenthesized.
func Infix(root Node) string {
	type item struct {
		node Node
		text string
	}

	var sb strings.Builder
	stack := []item{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := it.node.(type) {
		case nil:
			sb.WriteString(it.text)
		case *Operand:
			sb.WriteString(n.Symbol.Text)
		case *BinaryExpr:
			sb.WriteString("(")
			stack = append(stack,
				item{text: ")"},
				item{node: n.Right},
				item{text: n.Op.Text},
				item{node: n.Left},
			)
		}
	}
	return sb.String()
}
