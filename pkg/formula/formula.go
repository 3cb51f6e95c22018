// Package formula turns spreadsheet formula strings into expression trees.
//
// A formula such as "=A1+2*(B2-3)/C1" is first split into symbols by Tokenize and
// then assembled by Build into a binary tree that honors operator precedence,
// left associativity and parentheses:
//
//	tree, err := formula.Parse("=A1+2*3")
//	// tree is (A1+(2*3))
//
// Both steps are iterative; neither recurses on the depth of the formula.
package formula

// Parse tokenizes and builds a formula in one step.
func Parse(formula string) (Node, error) {
	symbols, err := Tokenize(formula)
	if err != nil {
		return nil, err
	}
	return Build(symbols)
}
