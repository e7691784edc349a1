package streamwire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ripple-lang/ripple/internal/lexer"
)

// Session serves one lexing run over a bidirectional byte stream. It is
// transport-agnostic: the QUIC service hands it streams, tests hand it
// in-memory pipes. Each session owns its own Lexer, so sessions are
// independent even though a single Lexer is not safe for concurrent use.
type Session struct {
	lex *lexer.Lexer
	dec *json.Decoder
	enc *json.Encoder
}

// NewSession creates a session over rw.
func NewSession(rw io.ReadWriter) *Session {
	return &Session{
		lex: lexer.New(),
		dec: json.NewDecoder(rw),
		enc: json.NewEncoder(rw),
	}
}

// Serve runs the session until the client signals end of input, the
// transport closes, or an error ends the stream. Protocol and lexical
// errors are reported to the client before returning.
func (s *Session) Serve() error {
	if err := s.handshake(); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				// Client went away without signaling end of input; the
				// retained in-progress state is simply dropped.
				return nil
			}
			return err
		}

		switch req.Op {
		case OpChunk:
			s.lex.AppendSource(req.Data)
			if err := s.pump(false); err != nil {
				return err
			}
		case OpEOF:
			if err := s.pump(true); err != nil {
				return err
			}
			return s.enc.Encode(Response{Op: OpDone})
		default:
			err := fmt.Errorf("unexpected operation %q", req.Op)
			_ = s.enc.Encode(Response{Op: OpError, Error: err.Error()})
			return err
		}
	}
}

// handshake reads the hello and validates the client's protocol version.
func (s *Session) handshake() error {
	var req Request
	if err := s.dec.Decode(&req); err != nil {
		return err
	}
	if req.Op != OpHello {
		err := fmt.Errorf("expected %q, got %q", OpHello, req.Op)
		_ = s.enc.Encode(Response{Op: OpError, Error: err.Error()})
		return err
	}
	if err := CheckVersion(req.Version); err != nil {
		_ = s.enc.Encode(Response{Op: OpError, Error: err.Error()})
		return err
	}
	return s.enc.Encode(Response{Op: OpAck, Version: ProtocolVersion})
}

// pump drains every token currently completable and sends it to the client.
func (s *Session) pump(endOfInput bool) error {
	for {
		tok, ok, err := s.lex.Next(endOfInput)
		if err != nil {
			resp := Response{Op: OpError, Error: err.Error()}
			var lexErr *lexer.Error
			if errors.As(err, &lexErr) {
				resp.Code = lexErr.Code()
			}
			_ = s.enc.Encode(resp)
			return err
		}
		if !ok {
			return nil
		}
		msg := EncodeToken(tok)
		if err := s.enc.Encode(Response{Op: OpToken, Token: &msg}); err != nil {
			return err
		}
	}
}
