// Package lexer implements the Ripple incremental lexical analyzer. Source
// text is pushed in arbitrarily-sized chunks and tokens are pulled back
// independently; a token whose text spans a chunk boundary is completed
// seamlessly once enough input has arrived.
package lexer

import "fmt"

// Kind identifies the type of a token.
type Kind int

// Token kinds.
const (
	KindLine Kind = iota
	KindLeftParen
	KindRightParen
	KindLeftBracket
	KindRightBracket
	KindLeftBrace
	KindRightBrace
	KindDot
	KindColon
	KindDecimalNumber
	KindHexNumber
	KindFractionalNumber
	KindSymbol
	KindText
)

// kindNames provides string representations for token kinds.
var kindNames = map[Kind]string{
	KindLine:             "LINE",
	KindLeftParen:        "LPAREN",
	KindRightParen:       "RPAREN",
	KindLeftBracket:      "LBRACKET",
	KindRightBracket:     "RBRACKET",
	KindLeftBrace:        "LBRACE",
	KindRightBrace:       "RBRACE",
	KindDot:              "DOT",
	KindColon:            "COLON",
	KindDecimalNumber:    "DECIMAL",
	KindHexNumber:        "HEX",
	KindFractionalNumber: "FRACTIONAL",
	KindSymbol:           "SYMBOL",
	KindText:             "TEXT",
}

// String returns a string representation of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// singleCharKinds maps the fixed single-character codepoints to their kinds.
// These tokens start and complete in the same scanning step.
var singleCharKinds = map[rune]Kind{
	'(': KindLeftParen,
	')': KindRightParen,
	'[': KindLeftBracket,
	']': KindRightBracket,
	'{': KindLeftBrace,
	'}': KindRightBrace,
	'.': KindDot,
	':': KindColon,
}

// Token is a lexical token with the position of its first character.
// Offset, Line and Column are zero-based and count over the entire input
// seen so far; they are never reset between chunks.
//
// Text carries the captured value for KindSymbol, the number kinds and
// KindText. Indent carries the value of a KindLine token: the number of
// space characters following the line break. The punctuation kinds carry
// no value. A Token is never mutated after being returned.
type Token struct {
	Kind   Kind
	Text   string
	Indent int
	Offset int
	Line   int
	Column int
}

// String returns a string representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindLine:
		return fmt.Sprintf("{Kind: %s, Indent: %d, Offset: %d, Line: %d, Column: %d}",
			t.Kind, t.Indent, t.Offset, t.Line, t.Column)
	case KindSymbol, KindDecimalNumber, KindHexNumber, KindFractionalNumber, KindText:
		return fmt.Sprintf("{Kind: %s, Text: %q, Offset: %d, Line: %d, Column: %d}",
			t.Kind, t.Text, t.Offset, t.Line, t.Column)
	}
	return fmt.Sprintf("{Kind: %s, Offset: %d, Line: %d, Column: %d}",
		t.Kind, t.Offset, t.Line, t.Column)
}
