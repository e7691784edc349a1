// Package watch follows a growing source file and delivers appended text as
// lexer-ready chunks, using fsnotify for OS-native change notifications.
package watch

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/ripple-lang/ripple/internal/sourceio"
)

// Tail streams the contents of a file as it grows. Existing content is
// delivered first, then each write to the file produces further chunks.
// Chunks always hold whole codepoints: a rune split across two writes is
// held back until the write that completes it.
type Tail struct {
	w      *fsnotify.Watcher
	f      *os.File
	buf    []byte
	carry  []byte
	chunks chan string
	errs   chan error
	done   chan struct{}
}

// NewTail opens path and begins following it. A non-positive chunkSize
// selects the sourceio default.
func NewTail(path string, chunkSize int) (*Tail, error) {
	if chunkSize <= 0 {
		chunkSize = sourceio.DefaultChunkSize
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		f.Close()
		return nil, err
	}

	t := &Tail{
		w:      w,
		f:      f,
		buf:    make([]byte, chunkSize),
		chunks: make(chan string, 128),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
	go t.loop()
	return t, nil
}

// Chunks returns the channel of appended source chunks.
func (t *Tail) Chunks() <-chan string { return t.chunks }

// Errors returns the channel of follow errors. An error ends the tail.
func (t *Tail) Errors() <-chan error { return t.errs }

// Close stops following and releases the watcher and file.
func (t *Tail) Close() error {
	close(t.done)
	err := t.w.Close()
	if cerr := t.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (t *Tail) loop() {
	// Deliver whatever the file already contains.
	if !t.drain() {
		return
	}

	for {
		select {
		case <-t.done:
			return
		case ev, ok := <-t.w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Write != 0 {
				if !t.drain() {
					return
				}
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				t.fail(fmt.Errorf("followed file is gone: %s", ev.Name))
				return
			}
		case err, ok := <-t.w.Errors:
			if !ok {
				return
			}
			t.fail(err)
			return
		}
	}
}

// drain reads the file to its current end, emitting chunks. Reaching the
// end is not an error: more content may be appended later, and an
// incomplete trailing rune stays in the carry until then. It reports false
// when the tail should stop.
func (t *Tail) drain() bool {
	for {
		n, err := t.f.Read(t.buf)
		if n > 0 {
			data := append(t.carry, t.buf[:n]...)
			complete, rest := sourceio.SplitCompleteRunes(data)
			t.carry = append([]byte(nil), rest...)
			if len(complete) > 0 {
				select {
				case t.chunks <- string(complete):
				case <-t.done:
					return false
				}
			}
		}
		if err != nil {
			return true
		}
	}
}

func (t *Tail) fail(err error) {
	select {
	case t.errs <- err:
	default:
	}
}
