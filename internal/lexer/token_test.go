package lexer

import (
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLine, "LINE"},
		{KindLeftParen, "LPAREN"},
		{KindDot, "DOT"},
		{KindColon, "COLON"},
		{KindDecimalNumber, "DECIMAL"},
		{KindHexNumber, "HEX"},
		{KindFractionalNumber, "FRACTIONAL"},
		{KindSymbol, "SYMBOL"},
		{KindText, "TEXT"},
	}

	for i, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Fatalf("tests[%d] - name wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}

	if got := Kind(99).String(); got != "UNKNOWN(99)" {
		t.Fatalf("unknown kind name wrong. got=%q", got)
	}
}

func TestTokenString(t *testing.T) {
	sym := Token{Kind: KindSymbol, Text: "foo", Offset: 4, Line: 1, Column: 2}
	if s := sym.String(); !strings.Contains(s, "SYMBOL") || !strings.Contains(s, `"foo"`) {
		t.Fatalf("symbol string wrong. got=%q", s)
	}

	line := Token{Kind: KindLine, Indent: 3}
	if s := line.String(); !strings.Contains(s, "LINE") || !strings.Contains(s, "Indent: 3") {
		t.Fatalf("line string wrong. got=%q", s)
	}

	punct := Token{Kind: KindDot, Offset: 7}
	if s := punct.String(); !strings.Contains(s, "DOT") || strings.Contains(s, "Text") {
		t.Fatalf("punctuation string wrong. got=%q", s)
	}
}
