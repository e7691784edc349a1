package lexer

import (
	"reflect"
	"testing"
)

// collect drains a lexer that has already received all of its input.
func collect(t *testing.T, l *Lexer) []Token {
	t.Helper()

	var tokens []Token
	for {
		tok, ok, err := l.Next(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestSymbolAcrossChunks(t *testing.T) {
	l := New()
	l.AppendSource("fo")
	l.AppendSource("o bar")

	tok, ok, err := l.Next(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a token, got none")
	}
	if tok.Kind != KindSymbol || tok.Text != "foo" {
		t.Fatalf("token wrong. expected=SYMBOL %q, got=%q %q", "foo", tok.Kind, tok.Text)
	}

	// "bar" is still in progress: without end of input there is no token
	// yet, and nothing buffered is discarded.
	_, ok, err = l.Next(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no token before end of input")
	}

	tok, ok, err = l.Next(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || tok.Kind != KindSymbol || tok.Text != "bar" {
		t.Fatalf("token wrong. expected=SYMBOL %q, got=%v ok=%v", "bar", tok, ok)
	}
}

// TestChunkBoundaryTransparency feeds the same source through every possible
// two-way split and expects the token sequence of the unsplit source.
func TestChunkBoundaryTransparency(t *testing.T) {
	inputs := []string{
		"foo 0x1A (bar.baz):12.5",
		"\n   abc def\n\t9",
		"sym1'two words'42",
		"0x. {a}[b]",
		`('hello world') 42`,
		`'esc \' ape' x`,
	}

	for _, input := range inputs {
		whole, err := Tokenize(input)
		if err != nil {
			t.Fatalf("input %q - unexpected error: %v", input, err)
		}

		runes := []rune(input)
		for cut := 1; cut < len(runes); cut++ {
			l := New()
			l.AppendSource(string(runes[:cut]))
			l.AppendSource(string(runes[cut:]))

			split := collect(t, l)
			if !reflect.DeepEqual(whole, split) {
				t.Fatalf("input %q cut at %d - token sequences differ.\nwhole=%v\nsplit=%v",
					input, cut, whole, split)
			}
		}
	}
}

// TestManyChunks splits the source into single-codepoint chunks.
func TestManyChunks(t *testing.T) {
	input := "alpha 0.5 (beta):\n  0xFF"
	whole, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l := New()
	for _, r := range input {
		l.AppendSource(string(r))
	}

	split := collect(t, l)
	if !reflect.DeepEqual(whole, split) {
		t.Fatalf("token sequences differ.\nwhole=%v\nsplit=%v", whole, split)
	}
}

func TestIdempotentResumability(t *testing.T) {
	l := New()
	l.AppendSource("incomple")

	// Repeated calls without end of input keep reporting no token and keep
	// the in-progress state intact.
	for i := 0; i < 5; i++ {
		_, ok, err := l.Next(false)
		if err != nil {
			t.Fatalf("calls[%d] - unexpected error: %v", i, err)
		}
		if ok {
			t.Fatalf("calls[%d] - expected no token yet", i)
		}
	}

	l.AppendSource("te done")

	tok, ok, err := l.Next(false)
	if err != nil || !ok {
		t.Fatalf("expected a token, got ok=%v err=%v", ok, err)
	}
	if tok.Text != "incomplete" {
		t.Fatalf("text wrong. expected=%q, got=%q", "incomplete", tok.Text)
	}

	tok, ok, err = l.Next(true)
	if err != nil || !ok {
		t.Fatalf("expected a token, got ok=%v err=%v", ok, err)
	}
	if tok.Text != "done" || tok.Offset != 11 {
		t.Fatalf("token wrong. got=%v", tok)
	}
}

func TestLineSplitInLeadingSpaces(t *testing.T) {
	l := New()
	l.AppendSource("\n  ")
	l.AppendSource("  four")

	tok, ok, err := l.Next(true)
	if err != nil || !ok {
		t.Fatalf("expected a token, got ok=%v err=%v", ok, err)
	}
	if tok.Kind != KindLine || tok.Indent != 4 {
		t.Fatalf("token wrong. expected=LINE indent 4, got=%v", tok)
	}
}

func TestNumberSplitAtHexBoundary(t *testing.T) {
	l := New()
	l.AppendSource("0")
	l.AppendSource("x")
	l.AppendSource("1A")

	tok, ok, err := l.Next(true)
	if err != nil || !ok {
		t.Fatalf("expected a token, got ok=%v err=%v", ok, err)
	}
	if tok.Kind != KindHexNumber || tok.Text != "0x1A" {
		t.Fatalf("token wrong. expected=HEX %q, got=%v", "0x1A", tok)
	}
}

func TestEndOfInputFlush(t *testing.T) {
	l := New()
	l.AppendSource("123")

	// Without the end-of-input signal the trailing number stays pending.
	_, ok, err := l.Next(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no token before end of input")
	}

	tok, ok, err := l.Next(true)
	if err != nil || !ok {
		t.Fatalf("expected a token, got ok=%v err=%v", ok, err)
	}
	if tok.Kind != KindDecimalNumber || tok.Text != "123" {
		t.Fatalf("token wrong. got=%v", tok)
	}
}
