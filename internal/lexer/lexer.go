package lexer

import (
	"github.com/ripple-lang/ripple/internal/runeclass"
)

// position is the scan position of the next codepoint to consume. The
// offset advances by exactly one per codepoint; line advances and column
// resets exactly when a line break is consumed.
type position struct {
	offset int
	line   int
	column int
}

// captureMode selects how an in-progress token's value is being captured.
type captureMode int

const (
	// captureNone: the value is computed arithmetically at flush (Line).
	captureNone captureMode = iota

	// captureSlice: only the start offset within the head chunk is
	// remembered; the value is extracted as a single substring once the
	// token's end is known. Valid only while the token stays within the
	// chunk it started in.
	captureSlice

	// captureBuffer: codepoints are appended to an accumulator, either
	// because the token's text crossed a chunk boundary or because an
	// escape sequence made the value diverge from the source text.
	captureBuffer
)

// capture holds an in-progress token's value-capture state. The transition
// from captureSlice to captureBuffer is one-way.
type capture struct {
	mode  captureMode
	start int // captureSlice: rune offset into the head chunk
	buf   []rune
}

// pending is the state of a partially-read token. It exists only between
// the classification of the token's first character and its flush.
type pending struct {
	kind   Kind
	offset int // position of the token's first character
	line   int
	column int
	cap    capture
	length int  // codepoints consumed into the token so far
	zero   bool // number kinds: the first codepoint was '0'
	escape bool // text: the previous codepoint was an escape backslash
}

// Lexer is the incremental tokenizer. Chunks are pushed with AppendSource
// and tokens pulled with Next; the two are independent, and a Next call
// with insufficient buffered input simply reports no token yet.
//
// A Lexer is a strictly sequential, single-consumer state machine; it does
// not support concurrent use without external synchronization. After Next
// returns a non-nil error the lexer's state is undefined and no further
// calls should be made.
type Lexer struct {
	queue chunkQueue
	pos   position
	pend  *pending
}

// New creates an empty lexer.
func New() *Lexer {
	return &Lexer{}
}

// AppendSource enqueues a chunk of source text. No scanning is performed;
// the chunk is consumed by later Next calls. Empty chunks are ignored.
func (l *Lexer) AppendSource(src string) {
	if src == "" {
		return
	}
	l.queue.append(chunk{runes: []rune(src)})
}

// Next advances through the queued chunks until it completes a token,
// exhausts the available input, or detects a lexical error.
//
// The ok result is false when not enough input is buffered to complete a
// token; nothing queued is discarded, and calling Next again after more
// AppendSource calls resumes seamlessly. Pass endOfInput on the call after
// the last chunk has been appended: it acts as an implicit terminator for
// a trailing in-progress token.
func (l *Lexer) Next(endOfInput bool) (Token, bool, error) {
	for !l.queue.empty() {
		c, ok := l.queue.current()
		if !ok {
			// Head chunk exhausted. A deferred-slice capture can no longer
			// reference it, so copy the scanned text into an accumulator
			// before dropping the chunk.
			if l.pend != nil && l.pend.cap.mode == captureSlice {
				head := l.queue.head()
				l.pend.cap.buf = append([]rune(nil), head.runes[l.pend.cap.start:]...)
				l.pend.cap.mode = captureBuffer
			}
			l.queue.advanceChunk()
			continue
		}

		var tok *Token
		var err *Error
		if l.pend == nil {
			tok, err = l.startToken(c)
		} else {
			tok, err = l.continueToken(c)
		}
		if err != nil {
			return Token{}, false, err
		}
		if tok != nil {
			return *tok, true, nil
		}
	}

	if l.pend == nil || !endOfInput {
		return Token{}, false, nil
	}
	return l.flushAtEnd()
}

// consume advances the scan position past c.
func (l *Lexer) consume(c rune) {
	l.queue.local++
	l.pos.offset++
	if runeclass.IsLineBreak(c) {
		l.pos.line++
		l.pos.column = 0
	} else {
		l.pos.column++
	}
}

// take consumes c as part of the in-progress token.
func (l *Lexer) take(c rune) {
	if l.pend.cap.mode == captureBuffer {
		l.pend.cap.buf = append(l.pend.cap.buf, c)
	}
	l.pend.length++
	l.consume(c)
}

// start records a new in-progress token beginning at the current position.
func (l *Lexer) start(kind Kind, cp capture) {
	l.pend = &pending{
		kind:   kind,
		offset: l.pos.offset,
		line:   l.pos.line,
		column: l.pos.column,
		cap:    cp,
	}
}

// startToken classifies c with no token in progress. It returns a token
// only for the fixed single-character kinds, which complete in the same
// step that starts them.
func (l *Lexer) startToken(c rune) (*Token, *Error) {
	if kind, ok := singleCharKinds[c]; ok {
		tok := &Token{Kind: kind, Offset: l.pos.offset, Line: l.pos.line, Column: l.pos.column}
		l.consume(c)
		return tok, nil
	}

	switch {
	case runeclass.IsLineBreak(c):
		// The value is computed arithmetically at flush; no capture.
		l.start(KindLine, capture{mode: captureNone})
		l.consume(c)

	case c == '\'':
		// Capture starts after the opening apostrophe; the delimiters are
		// not part of the value.
		l.start(KindText, capture{mode: captureSlice, start: l.queue.local + 1})
		l.consume(c)
		l.pend.length = 1

	case runeclass.IsDigit(c):
		l.start(KindDecimalNumber, capture{mode: captureSlice, start: l.queue.local})
		l.pend.zero = c == '0'
		l.take(c)

	case runeclass.IsSymbolChar(c):
		l.start(KindSymbol, capture{mode: captureSlice, start: l.queue.local})
		l.take(c)

	case runeclass.IsWhitespace(c):
		// Plain whitespace is discarded, except at the very start of the
		// input, where it opens an implicit leading line.
		if l.pos.offset == 0 {
			l.start(KindLine, capture{mode: captureNone})
		}
		l.consume(c)

	default:
		return nil, l.errorf(CategoryUnexpectedChar,
			"unexpected character %s", runeclass.Format(c))
	}
	return nil, nil
}

// continueToken dispatches c against the in-progress token. A terminating
// codepoint is not consumed (except the closing apostrophe of a text
// literal); it is re-examined as the start of the next token.
func (l *Lexer) continueToken(c rune) (*Token, *Error) {
	switch l.pend.kind {
	case KindSymbol:
		if runeclass.IsSymbolChar(c) {
			l.take(c)
			return nil, nil
		}
		return l.flush(), nil

	case KindDecimalNumber:
		switch {
		case runeclass.IsDigit(c):
			l.take(c)
		case c == '.':
			l.pend.kind = KindFractionalNumber
			l.take(c)
		case c == 'x':
			// A hex literal requires a sole leading zero before the 'x'.
			if l.pend.length != 1 || !l.pend.zero {
				return nil, l.errorf(CategoryMalformedHexPrefix,
					"'x' in decimal literal without sole leading '0'")
			}
			l.pend.kind = KindHexNumber
			l.take(c)
		default:
			return l.flush(), nil
		}
		return nil, nil

	case KindHexNumber:
		if runeclass.IsHexDigit(c) {
			l.take(c)
			return nil, nil
		}
		return l.flush(), nil

	case KindFractionalNumber:
		// Only character-class membership is checked here; the grammar of
		// the literal is the consumer's concern.
		if runeclass.IsDigit(c) || c == '.' || c == '+' || c == 'E' || c == 'e' {
			l.take(c)
			return nil, nil
		}
		return l.flush(), nil

	case KindLine:
		if runeclass.IsSpace(c) {
			l.consume(c)
			return nil, nil
		}
		return l.flush(), nil

	case KindText:
		return l.continueText(c)
	}

	return nil, l.errorf(CategoryInternal,
		"no continuation rule for token kind %s", l.pend.kind)
}

// continueText scans the body of a text literal. A backslash escapes the
// closing apostrophe, itself, and the n/t/r shorthands; the token value is
// the decoded body, so the first escape forces the switch to buffered
// capture.
func (l *Lexer) continueText(c rune) (*Token, *Error) {
	p := l.pend

	if p.escape {
		var decoded rune
		switch c {
		case '\'', '\\':
			decoded = c
		case 'n':
			decoded = '\n'
		case 't':
			decoded = '\t'
		case 'r':
			decoded = '\r'
		default:
			return nil, l.errorf(CategoryUnexpectedChar,
				"invalid escape \\%s in text literal", string(c))
		}
		p.cap.buf = append(p.cap.buf, decoded)
		p.escape = false
		l.consume(c)
		return nil, nil
	}

	switch c {
	case '\\':
		if p.cap.mode == captureSlice {
			head := l.queue.head()
			p.cap.buf = append([]rune(nil), head.runes[p.cap.start:l.queue.local]...)
			p.cap.mode = captureBuffer
		}
		p.escape = true
		l.consume(c)
	case '\'':
		tok := l.flush()
		l.consume(c)
		return tok, nil
	default:
		if p.cap.mode == captureBuffer {
			p.cap.buf = append(p.cap.buf, c)
		}
		l.consume(c)
	}
	return nil, nil
}

// flush finalizes the in-progress token's value and clears the pending
// state. For deferred-slice captures the value is a single substring
// extraction from the head chunk, valid because a token in slice mode has
// never outlived the chunk it started in.
func (l *Lexer) flush() *Token {
	p := l.pend
	l.pend = nil
	tok := &Token{Kind: p.kind, Offset: p.offset, Line: p.line, Column: p.column}

	switch p.cap.mode {
	case captureNone:
		tok.Indent = l.pos.offset - p.offset - 1
	case captureSlice:
		tok.Text = l.queue.head().slice(p.cap.start, l.queue.local)
	case captureBuffer:
		tok.Text = string(p.cap.buf)
	}
	return tok
}

// flushAtEnd treats signaled end of input as the implicit terminator for a
// trailing in-progress token. The queue is empty here, so any text-carrying
// capture has already been converted to buffered form.
func (l *Lexer) flushAtEnd() (Token, bool, error) {
	if l.pend.kind == KindText {
		return Token{}, false, l.errorf(CategoryUnterminatedText,
			"unterminated text literal")
	}
	return *l.flush(), true, nil
}

// Tokenize lexes src as a single chunk through to end of input. It is a
// convenience for callers that have the whole source up front.
func Tokenize(src string) ([]Token, error) {
	l := New()
	l.AppendSource(src)

	var tokens []Token
	for {
		tok, ok, err := l.Next(true)
		if err != nil {
			return tokens, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
