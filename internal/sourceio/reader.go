// Package sourceio turns byte streams into lexer-ready source chunks. A
// chunk handed to the lexer must hold whole codepoints, so readers here
// carry any incomplete trailing UTF-8 sequence over into the next chunk.
package sourceio

import (
	"io"
	"unicode/utf8"
)

// DefaultChunkSize is the read size used when none is configured.
const DefaultChunkSize = 4096

// ChunkReader reads fixed-size byte chunks from an io.Reader and yields
// them as rune-complete strings.
type ChunkReader struct {
	r     io.Reader
	buf   []byte
	carry []byte
}

// NewChunkReader creates a reader producing chunks of roughly size bytes.
// A non-positive size selects DefaultChunkSize.
func NewChunkReader(r io.Reader, size int) *ChunkReader {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &ChunkReader{r: r, buf: make([]byte, size)}
}

// Next returns the next chunk. It returns io.EOF after the final chunk has
// been delivered; a trailing incomplete UTF-8 sequence at end of input is
// returned as-is rather than silently dropped.
func (cr *ChunkReader) Next() (string, error) {
	n, err := cr.r.Read(cr.buf)
	if n > 0 {
		data := append(cr.carry, cr.buf[:n]...)
		complete, rest := SplitCompleteRunes(data)
		cr.carry = append([]byte(nil), rest...)
		if len(complete) > 0 {
			return string(complete), nil
		}
		if err == nil {
			return "", nil
		}
	}
	if err != nil {
		if len(cr.carry) > 0 {
			tail := string(cr.carry)
			cr.carry = nil
			return tail, nil
		}
		return "", err
	}
	return "", nil
}

// SplitCompleteRunes splits b into a prefix of whole UTF-8 sequences and a
// remainder holding an incomplete trailing sequence, if any. Invalid bytes
// are left in the prefix: they decode to U+FFFD, and carrying them would
// stall the stream.
func SplitCompleteRunes(b []byte) (complete, rest []byte) {
	for i := len(b) - 1; i >= 0 && len(b)-i < utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i], b[i:]
			}
			break
		}
	}
	return b, nil
}
