package formula

import "fmt"

// SymbolKind tags the lexical class of a Symbol.
type SymbolKind int

const (
	// SymbolNumber is a numeric literal such as "2" or "3.5".
	SymbolNumber SymbolKind = iota
	// SymbolCellRef is a cell identifier such as "A1" or "B12".
	SymbolCellRef
	// SymbolOperator is one of + - * /.
	SymbolOperator
	// SymbolOpenParen is "(".
	SymbolOpenParen
	// SymbolCloseParen is ")".
	SymbolCloseParen
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolNumber:
		return "number"
	case SymbolCellRef:
		return "cell"
	case SymbolOperator:
		return "operator"
	case SymbolOpenParen:
		return "open-paren"
	case SymbolCloseParen:
		return "close-paren"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// Symbol is a single lexical unit of a formula. Offset is the byte offset of the
// symbol in the formula it was read from.
type Symbol struct {
	Kind   SymbolKind
	Text   string
	Offset int
}

// IsOperand reports whether the symbol is a number or a cell reference.
func (s Symbol) IsOperand() bool {
	return s.Kind == SymbolNumber || s.Kind == SymbolCellRef
}

// Precedence returns the binding tier of an operator symbol (higher binds tighter),
// or -1 for anything that is not an operator.
func (s Symbol) Precedence() int {
	if s.Kind != SymbolOperator {
		return -1
	}
	tier, ok := Precedence(s.Text)
	if !ok {
		return -1
	}
	return tier
}

func (s Symbol) String() string {
	return s.Text
}

// Precedence returns the tier of a binary operator: 0 for + and -, 1 for * and /.
func Precedence(op string) (int, bool) {
	switch op {
	case "+", "-":
		return 0, true
	case "*", "/":
		return 1, true
	default:
		return 0, false
	}
}

// Texts returns the text of each symbol, in order.
func Texts(symbols []Symbol) []string {
	texts := make([]string, len(symbols))
	for i, s := range symbols {
		texts[i] = s.Text
	}
	return texts
}
