// Package runeclass provides the codepoint classification predicates used by
// the lexer. All functions are pure and operate on a single codepoint.
package runeclass

import "fmt"

// IsSpace reports whether r is a horizontal space character. Line breaks are
// not spaces; see IsLineBreak.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsLineBreak reports whether r terminates a line.
func IsLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// IsWhitespace reports whether r is a space or a line break.
func IsWhitespace(r rune) bool {
	return IsSpace(r) || IsLineBreak(r)
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsHexDigit reports whether r is a hexadecimal digit.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// IsSymbolChar reports whether r may appear in a symbol: any printable,
// non-whitespace codepoint that is not a backslash, a DEL or Latin-1 control
// character, or one of the fixed single-character tokens.
func IsSymbolChar(r rune) bool {
	if r <= ' ' || r == 0x7F || (0x80 <= r && r <= 0x9F) {
		return false
	}
	switch r {
	case '\\', '(', ')', '[', ']', '{', '}', '.', ':':
		return false
	}
	return true
}

// Format renders r in U+XXXX notation for diagnostics.
func Format(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}
