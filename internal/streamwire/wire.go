// Package streamwire defines the newline-delimited JSON protocol spoken by
// the remote lexing service. A session is one lexing run: the client pushes
// source chunks as they become available and receives the completed tokens
// back as they are recognized.
package streamwire

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/ripple-lang/ripple/internal/lexer"
)

// ProtocolVersion is the protocol version this build speaks.
const ProtocolVersion = "1.0.0"

// versionConstraint accepts any client of the same major version.
const versionConstraint = "^1"

// Request operations, client to server.
const (
	OpHello = "hello" // opens the session; carries the client's version
	OpChunk = "chunk" // appends a source chunk
	OpEOF   = "eof"   // signals end of input; flushes trailing state
)

// Response operations, server to client.
const (
	OpAck   = "ack"   // hello accepted; carries the server's version
	OpToken = "token" // one completed token
	OpDone  = "done"  // end of the token stream
	OpError = "error" // fatal lexical or protocol error; closes the session
)

// Request is a client message.
type Request struct {
	Op      string `json:"op"`
	Version string `json:"version,omitempty"`
	Data    string `json:"data,omitempty"`
}

// Response is a server message.
type Response struct {
	Op      string    `json:"op"`
	Version string    `json:"version,omitempty"`
	Token   *TokenMsg `json:"token,omitempty"`
	Error   string    `json:"error,omitempty"`
	Code    string    `json:"code,omitempty"`
}

// TokenMsg is the wire form of a token.
type TokenMsg struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Indent int    `json:"indent,omitempty"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// EncodeToken converts a token to its wire form.
func EncodeToken(t lexer.Token) TokenMsg {
	return TokenMsg{
		Kind:   t.Kind.String(),
		Text:   t.Text,
		Indent: t.Indent,
		Offset: t.Offset,
		Line:   t.Line,
		Column: t.Column,
	}
}

// CheckVersion validates a client's protocol version against the server's
// compatibility constraint.
func CheckVersion(version string) error {
	sv, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid protocol version %q: %w", version, err)
	}
	con, err := semver.NewConstraint(versionConstraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", versionConstraint, err)
	}
	if !con.Check(sv) {
		return fmt.Errorf("protocol version %s incompatible with %s", version, versionConstraint)
	}
	return nil
}
