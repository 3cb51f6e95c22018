package formula

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cellgraph/cellgraph/pkg/logger"
	"github.com/cellgraph/cellgraph/pkg/stringutil"
)

var tokenizerLog = logger.New("formula:tokenizer")

// formulaLexer splits a formula into delimiters, parentheses, operators and operands.
// The rules cover every possible character: whatever is not a delimiter, a parenthesis
// or an operator is part of an operand, which keeps "3.5" and "B12" in one piece.
var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Delimiter", Pattern: `[\s\v\p{Z}=]+`},
	{Name: "OpenParen", Pattern: `\(`},
	{Name: "CloseParen", Pattern: `\)`},
	{Name: "Operator", Pattern: `[-+*/]`},
	{Name: "Operand", Pattern: `[^\s\v\p{Z}=()*/+-]+`},
})

var (
	lexerSymbols   = formulaLexer.Symbols()
	delimiterType  = lexerSymbols["Delimiter"]
	openParenType  = lexerSymbols["OpenParen"]
	closeParenType = lexerSymbols["CloseParen"]
	operatorType   = lexerSymbols["Operator"]
)

// Tokenize converts a formula into its symbols, dropping whitespace and "=".
func Tokenize(formula string) ([]Symbol, error) {
	lex, err := formulaLexer.LexString("", formula)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize formula %q: %w", formula, err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize formula %q: %w", formula, err)
	}

	symbols := make([]Symbol, 0, len(tokens))
	for _, tok := range tokens {
		if tok.EOF() {
			break
		}

		var kind SymbolKind
		switch tok.Type {
		case delimiterType:
			continue
		case openParenType:
			kind = SymbolOpenParen
		case closeParenType:
			kind = SymbolCloseParen
		case operatorType:
			kind = SymbolOperator
		default:
			kind = SymbolNumber
			if stringutil.IsCellReference(tok.Value) {
				kind = SymbolCellRef
			}
		}
		symbols = append(symbols, Symbol{Kind: kind, Text: tok.Value, Offset: tok.Pos.Offset})
	}

	tokenizerLog.Printf("Tokenized %q into %d symbols", formula, len(symbols))
	if tokenizerLog.Enabled() {
		tokenizerLog.Printf("Symbols: %s", strings.Join(Texts(symbols), " "))
	}
	return symbols, nil
}
