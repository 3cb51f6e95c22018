// Package stringutil provides string helpers shared by the formula and rendering code.
package stringutil

import (
	"unicode"
	"unicode/utf8"
)

// IsCellReference reports whether an operand names a cell, i.e. it starts with a letter.
// Numeric literals such as "52" or "3.5" are not cell references.
func IsCellReference(operand string) bool {
	r, size := utf8.DecodeRuneInString(operand)
	if size == 0 {
		return false
	}
	return unicode.IsLetter(r)
}

// IsCellID reports whether s is a well-formed cell identifier for a dataset key:
// a letter followed by letters, digits or underscores.
func IsCellID(s string) bool {
	if !IsCellReference(s) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, replacing the tail with "...".
// A maxLen of zero or less returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
