package runeclass

import "testing"

func TestClassification(t *testing.T) {
	tests := []struct {
		r          rune
		space      bool
		lineBreak  bool
		digit      bool
		hexDigit   bool
		symbolChar bool
	}{
		{' ', true, false, false, false, false},
		{'\t', true, false, false, false, false},
		{'\n', false, true, false, false, false},
		{'\r', false, true, false, false, false},
		{'0', false, false, true, true, true},
		{'9', false, false, true, true, true},
		{'a', false, false, false, true, true},
		{'F', false, false, false, true, true},
		{'g', false, false, false, false, true},
		{'(', false, false, false, false, false},
		{'.', false, false, false, false, false},
		{':', false, false, false, false, false},
		{'\\', false, false, false, false, false},
		{'\'', false, false, false, false, true},
		{'+', false, false, false, false, true},
		{0x7F, false, false, false, false, false},
		{0x85, false, false, false, false, false},
		{'é', false, false, false, false, true},
		{'→', false, false, false, false, true},
	}

	for i, tt := range tests {
		if got := IsSpace(tt.r); got != tt.space {
			t.Fatalf("tests[%d] - IsSpace(%q) wrong. expected=%v, got=%v", i, tt.r, tt.space, got)
		}
		if got := IsLineBreak(tt.r); got != tt.lineBreak {
			t.Fatalf("tests[%d] - IsLineBreak(%q) wrong. expected=%v, got=%v", i, tt.r, tt.lineBreak, got)
		}
		if got := IsDigit(tt.r); got != tt.digit {
			t.Fatalf("tests[%d] - IsDigit(%q) wrong. expected=%v, got=%v", i, tt.r, tt.digit, got)
		}
		if got := IsHexDigit(tt.r); got != tt.hexDigit {
			t.Fatalf("tests[%d] - IsHexDigit(%q) wrong. expected=%v, got=%v", i, tt.r, tt.hexDigit, got)
		}
		if got := IsSymbolChar(tt.r); got != tt.symbolChar {
			t.Fatalf("tests[%d] - IsSymbolChar(%q) wrong. expected=%v, got=%v", i, tt.r, tt.symbolChar, got)
		}
		wantWS := tt.space || tt.lineBreak
		if got := IsWhitespace(tt.r); got != wantWS {
			t.Fatalf("tests[%d] - IsWhitespace(%q) wrong. expected=%v, got=%v", i, tt.r, wantWS, got)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		r        rune
		expected string
	}{
		{'A', "U+0041"},
		{'\n', "U+000A"},
		{'→', "U+2192"},
		{0x1F600, "U+1F600"},
	}

	for i, tt := range tests {
		if got := Format(tt.r); got != tt.expected {
			t.Fatalf("tests[%d] - Format wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}
