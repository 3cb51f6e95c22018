package formula

import (
	"errors"
	"fmt"
)

// ErrEmptyFormula is returned when a formula contains no symbols.
var ErrEmptyFormula = errors.New("empty formula")

// ErrMalformedFormula is wrapped by every SyntaxError.
var ErrMalformedFormula = errors.New("malformed formula")

// SyntaxError describes where a symbol sequence stops following the formula grammar.
// Symbol is the offending symbol; it is the zero Symbol when the formula ended early.
type SyntaxError struct {
	Symbol Symbol
	AtEnd  bool
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("%s: %s at end of formula", ErrMalformedFormula, e.Reason)
	}
	return fmt.Sprintf("%s: %s at offset %d (%q)", ErrMalformedFormula, e.Reason, e.Symbol.Offset, e.Symbol.Text)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedFormula }

func syntaxErrorAt(sym Symbol, reason string) error {
	return &SyntaxError{Symbol: sym, Reason: reason}
}

func syntaxErrorAtEnd(reason string) error {
	return &SyntaxError{AtEnd: true, Reason: reason}
}
