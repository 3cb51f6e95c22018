package formula

// validate checks that symbols alternate between operands and binary operators, with
// balanced, non-empty parentheses. The tree builder relies on this shape.
func validate(symbols []Symbol) error {
	var open []Symbol
	expectOperand := true
	var prev *Symbol

	for i := range symbols {
		sym := symbols[i]
		switch sym.Kind {
		case SymbolOpenParen:
			if !expectOperand {
				return syntaxErrorAt(sym, "missing operator before parenthesis")
			}
			open = append(open, sym)
		case SymbolCloseParen:
			if expectOperand {
				if prev != nil && prev.Kind == SymbolOpenParen {
					return syntaxErrorAt(sym, "empty parentheses")
				}
				return syntaxErrorAt(sym, "missing operand before closing parenthesis")
			}
			if len(open) == 0 {
				return syntaxErrorAt(sym, "unmatched closing parenthesis")
			}
			open = open[:len(open)-1]
		case SymbolOperator:
			if expectOperand {
				return syntaxErrorAt(sym, "missing operand before operator")
			}
			expectOperand = true
		default:
			if !expectOperand {
				return syntaxErrorAt(sym, "missing operator between operands")
			}
			expectOperand = false
		}
		prev = &symbols[i]
	}

	if len(open) > 0 {
		return syntaxErrorAt(open[len(open)-1], "unclosed parenthesis")
	}
	if expectOperand {
		return syntaxErrorAtEnd("missing operand")
	}
	return nil
}
