package lexer

import "fmt"

// Category classifies fatal lexical errors.
type Category int

const (
	// CategoryUnexpectedChar: a codepoint fits no starter classification
	// while no token is in progress.
	CategoryUnexpectedChar Category = iota

	// CategoryMalformedHexPrefix: 'x' appears in a decimal literal without
	// an immediately preceding, sole, leading '0'.
	CategoryMalformedHexPrefix

	// CategoryUnterminatedText: end of input inside a text literal.
	CategoryUnterminatedText

	// CategoryInternal: a token kind with no continuation rule was reached.
	// Unreachable if the state machine is correct.
	CategoryInternal
)

// errorCodes assigns a stable code to each category for tooling.
var errorCodes = map[Category]string{
	CategoryUnexpectedChar:     "L001",
	CategoryMalformedHexPrefix: "L002",
	CategoryUnterminatedText:   "L003",
	CategoryInternal:           "L999",
}

// Error is a fatal lexical error. All lexical errors are unrecoverable: the
// lexer does not resynchronize or skip, and its state after raising one is
// undefined. Absence of a token is not an error; Next signals it with a
// false ok result instead.
type Error struct {
	Category Category
	Message  string
	Offset   int
	Line     int
	Column   int
}

// Code returns the stable error code for the category.
func (e *Error) Code() string {
	if code, ok := errorCodes[e.Category]; ok {
		return code
	}
	return "L999"
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at offset %d (line %d, column %d)",
		e.Code(), e.Message, e.Offset, e.Line, e.Column)
}

// errorf builds a fatal error at the lexer's current scan position.
func (l *Lexer) errorf(cat Category, format string, args ...any) *Error {
	return &Error{
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
		Offset:   l.pos.offset,
		Line:     l.pos.line,
		Column:   l.pos.column,
	}
}
