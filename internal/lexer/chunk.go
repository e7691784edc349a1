package lexer

// chunk is one immutable run of codepoints appended by the caller. Chunks
// are owned exclusively by the queue and dropped the instant the scan
// position passes their end; the state machine never looks backward across
// a chunk boundary.
type chunk struct {
	runes []rune
}

// at returns the codepoint at i, or false past the chunk's end. Out-of-range
// access is a normal result, not a failure.
func (c chunk) at(i int) (rune, bool) {
	if i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// slice extracts the codepoints in [from, to) as an independent string.
func (c chunk) slice(from, to int) string {
	return string(c.runes[from:to])
}

// chunkQueue holds the pending source chunks in arrival order. Chunks are
// consumed strictly front to back.
type chunkQueue struct {
	chunks []chunk
	local  int // rune offset into the head chunk
}

// append adds a chunk to the tail.
func (q *chunkQueue) append(c chunk) {
	q.chunks = append(q.chunks, c)
}

// empty reports whether no chunk remains.
func (q *chunkQueue) empty() bool {
	return len(q.chunks) == 0
}

// head returns the current head chunk. Only valid when the queue is
// non-empty.
func (q *chunkQueue) head() chunk {
	return q.chunks[0]
}

// current returns the codepoint at the local offset within the head chunk,
// or false when the head is exhausted or the queue is empty.
func (q *chunkQueue) current() (rune, bool) {
	if q.empty() {
		return 0, false
	}
	return q.head().at(q.local)
}

// advanceChunk drops the exhausted head and resets the local offset.
func (q *chunkQueue) advanceChunk() {
	q.chunks = q.chunks[1:]
	q.local = 0
}
