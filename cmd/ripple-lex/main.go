// Package main provides the ripple-lex command line tool. It lexes Ripple
// source incrementally from a file or stdin and prints the token stream;
// with -follow it keeps lexing as the file grows.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ripple-lang/ripple/internal/lexer"
	"github.com/ripple-lang/ripple/internal/sourceio"
	"github.com/ripple-lang/ripple/internal/streamwire"
	"github.com/ripple-lang/ripple/internal/term"
	"github.com/ripple-lang/ripple/internal/watch"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOut     = flag.Bool("json", false, "emit tokens as JSON lines")
		chunkSize   = flag.Int("chunk", sourceio.DefaultChunkSize, "read size in bytes per source chunk")
		follow      = flag.Bool("follow", false, "keep lexing as the file grows (file argument required)")
		noColor     = flag.Bool("no-color", false, "disable colored output")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("ripple-lex v%s (%s)\n", version, commit)
		return
	}

	log.SetFlags(0)
	log.SetPrefix("ripple-lex: ")

	out := newPrinter(os.Stdout, *jsonOut, !*noColor && term.IsTerminal(os.Stdout.Fd()))

	args := flag.Args()
	switch {
	case *follow:
		if len(args) != 1 {
			log.Fatal("-follow requires exactly one file argument")
		}
		if err := followFile(args[0], *chunkSize, out); err != nil {
			log.Fatal(err)
		}
	case len(args) == 0:
		if err := lexReader(os.Stdin, *chunkSize, out); err != nil {
			log.Fatal(err)
		}
	case len(args) == 1:
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := lexReader(f, *chunkSize, out); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `ripple-lex - incremental lexer for Ripple source

Usage:
  ripple-lex [options] [file]

Reads from stdin when no file is given. Options:
`)
	flag.PrintDefaults()
}

// lexReader feeds r through the lexer chunk by chunk, printing tokens as
// soon as they complete rather than waiting for the whole input.
func lexReader(r io.Reader, chunkSize int, out *printer) error {
	l := lexer.New()
	cr := sourceio.NewChunkReader(r, chunkSize)

	for {
		chunk, err := cr.Next()
		if err == io.EOF {
			return out.drain(l, true)
		}
		if err != nil {
			return err
		}
		l.AppendSource(chunk)
		if err := out.drain(l, false); err != nil {
			return err
		}
	}
}

// followFile tails path and lexes appended content until interrupted or the
// file goes away. End of input is never signaled: a trailing token stays
// pending until more text completes it.
func followFile(path string, chunkSize int, out *printer) error {
	tail, err := watch.NewTail(path, chunkSize)
	if err != nil {
		return err
	}
	defer tail.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	l := lexer.New()
	for {
		select {
		case chunk := <-tail.Chunks():
			l.AppendSource(chunk)
			if err := out.drain(l, false); err != nil {
				return err
			}
		case err := <-tail.Errors():
			return err
		case <-interrupt:
			return out.drain(l, true)
		}
	}
}

// printer renders tokens either as colored/plain text lines or JSON lines.
type printer struct {
	w     io.Writer
	json  bool
	color bool
	enc   *json.Encoder
}

func newPrinter(w io.Writer, jsonOut, color bool) *printer {
	p := &printer{w: w, json: jsonOut, color: color}
	if jsonOut {
		p.enc = json.NewEncoder(w)
	}
	return p
}

// drain prints every token currently completable.
func (p *printer) drain(l *lexer.Lexer, endOfInput bool) error {
	for {
		tok, ok, err := l.Next(endOfInput)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := p.print(tok); err != nil {
			return err
		}
	}
}

const (
	colorKind  = "\x1b[36m"
	colorReset = "\x1b[0m"
)

func (p *printer) print(tok lexer.Token) error {
	if p.json {
		return p.enc.Encode(streamwire.EncodeToken(tok))
	}

	kind := tok.Kind.String()
	if p.color {
		kind = colorKind + kind + colorReset
	}

	switch tok.Kind {
	case lexer.KindLine:
		_, err := fmt.Fprintf(p.w, "%d:%d:%d\t%s\t%d\n",
			tok.Offset, tok.Line, tok.Column, kind, tok.Indent)
		return err
	case lexer.KindSymbol, lexer.KindDecimalNumber, lexer.KindHexNumber,
		lexer.KindFractionalNumber, lexer.KindText:
		_, err := fmt.Fprintf(p.w, "%d:%d:%d\t%s\t%q\n",
			tok.Offset, tok.Line, tok.Column, kind, tok.Text)
		return err
	}
	_, err := fmt.Fprintf(p.w, "%d:%d:%d\t%s\n", tok.Offset, tok.Line, tok.Column, kind)
	return err
}
