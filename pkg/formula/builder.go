package formula

import (
	"fmt"

	"github.com/cellgraph/cellgraph/pkg/logger"
)

var builderLog = logger.New("formula:builder")

// buildNode is a tree node under construction. A node with no value is a placeholder
// that a later symbol fills in; finished trees never contain one.
type buildNode struct {
	value *Symbol
	left  *buildNode
	right *buildNode

	// grouped marks the node that an opening parenthesis descended from. It is the
	// root of the parenthesized group until the matching close.
	grouped bool
}

// builder holds the shift/reduce state: the node being filled and the stack of its
// ancestors.
type builder struct {
	current *buildNode
	stack   []*buildNode
}

// Build assembles symbols into an expression tree.
//
// The tree is built left to right with an explicit stack instead of recursion. An
// operator either claims an empty node, becomes the parent of an existing subtree whose
// operator binds at least as tightly, or takes over the right operand of an operator
// that binds more loosely.
func Build(symbols []Symbol) (Node, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyFormula
	}
	if err := validate(symbols); err != nil {
		builderLog.Printf("Rejected symbol sequence: %v", err)
		return nil, err
	}
	if len(symbols) == 1 {
		return &Operand{Symbol: symbols[0]}, nil
	}

	root := &buildNode{left: &buildNode{}}
	b := &builder{current: root.left, stack: []*buildNode{root}}

	for _, sym := range symbols {
		var err error
		switch sym.Kind {
		case SymbolOpenParen:
			b.openGroup()
		case SymbolCloseParen:
			err = b.closeGroup()
		case SymbolOperator:
			err = b.placeOperator(sym)
		default:
			err = b.placeOperand(sym)
		}
		if err != nil {
			return nil, err
		}
	}

	tree, err := root.finish()
	if err != nil {
		return nil, err
	}
	builderLog.Printf("Built tree %s from %d symbols", tree, len(symbols))
	return tree, nil
}

func (b *builder) push(n *buildNode) {
	b.stack = append(b.stack, n)
}

func (b *builder) pop() (*buildNode, error) {
	if len(b.stack) == 0 {
		return nil, fmt.Errorf("%w: unbalanced expression", ErrMalformedFormula)
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n, nil
}

func (b *builder) top() *buildNode {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// openGroup descends into a fresh left child that will hold the group's contents.
func (b *builder) openGroup() {
	b.current.grouped = true
	b.push(b.current)
	b.current.left = &buildNode{}
	b.current = b.current.left
}

// closeGroup climbs back to the group root and then to the node enclosing the group.
func (b *builder) closeGroup() error {
	for !b.current.grouped {
		n, err := b.pop()
		if err != nil {
			return err
		}
		b.current = n
	}
	n, err := b.pop()
	if err != nil {
		return err
	}
	b.current = n
	return nil
}

func (b *builder) placeOperator(op Symbol) error {
	cur := b.current

	// First operator at this level becomes its root.
	if cur.value == nil {
		cur.value = &op
		b.push(cur)
		cur.right = &buildNode{}
		b.current = cur.right
		return nil
	}

	if cur.value.Kind != SymbolOperator {
		return syntaxErrorAt(op, "missing operand before operator")
	}

	incoming := op.Precedence()
	if cur.value.Precedence() >= incoming {
		// Climb to the outermost ancestor in the same group that binds at least as
		// tightly; the incoming operator becomes the parent of that whole subtree.
		for !cur.grouped {
			parent := b.top()
			if parent == nil || parent.value == nil || parent.value.Precedence() < incoming {
				break
			}
			n, err := b.pop()
			if err != nil {
				return err
			}
			cur = n
		}

		cur.left = cur.demote()
		cur.value = &op
		b.push(cur)
		cur.right = &buildNode{}
		b.current = cur.right
		return nil
	}

	// The incoming operator binds tighter: it takes the existing right operand.
	bound := &buildNode{value: &op, left: cur.right}
	cur.right = bound
	b.push(cur)
	b.push(bound)
	bound.right = &buildNode{}
	b.current = bound.right
	return nil
}

func (b *builder) placeOperand(operand Symbol) error {
	b.current.value = &operand
	n, err := b.pop()
	if err != nil {
		return err
	}
	b.current = n
	return nil
}

// demote moves n's operator and operands into a new node that becomes n's left child.
// The new node takes over the existing children, which n drops right after; it is
// never a group root, n keeps that role.
func (n *buildNode) demote() *buildNode {
	return &buildNode{value: n.value, left: n.left, right: n.right}
}

// unwrap skips the empty nodes that parentheses around a lone operand leave behind.
func (n *buildNode) unwrap() *buildNode {
	for n.value == nil && n.left != nil && n.right == nil {
		n = n.left
	}
	return n
}

// finish converts the construction tree into Nodes, post-order with an explicit stack.
func (n *buildNode) finish() (Node, error) {
	type frame struct {
		node     *buildNode
		expanded bool
	}

	var out []Node
	work := []frame{{node: n}}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]
		cur := f.node.unwrap()

		switch {
		case cur.value == nil:
			return nil, syntaxErrorAtEnd("incomplete expression")
		case cur.value.Kind != SymbolOperator:
			if cur.left != nil || cur.right != nil {
				return nil, syntaxErrorAt(*cur.value, "operand with children")
			}
			out = append(out, &Operand{Symbol: *cur.value})
		case !f.expanded:
			if cur.left == nil || cur.right == nil {
				return nil, syntaxErrorAt(*cur.value, "operator without two operands")
			}
			work = append(work,
				frame{node: cur, expanded: true},
				frame{node: cur.right},
				frame{node: cur.left},
			)
		default:
			left, right := out[len(out)-2], out[len(out)-1]
			out = out[:len(out)-2]
			out = append(out, &BinaryExpr{Op: *cur.value, Left: left, Right: right})
		}
	}

	if len(out) != 1 {
		return nil, syntaxErrorAtEnd("incomplete expression")
	}
	return out[0], nil
}
