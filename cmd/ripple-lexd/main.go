// Package main provides ripple-lexd, a QUIC service for remote lexing
// sessions. Each QUIC stream carries one session: the client pushes source
// chunks as they become available and receives completed tokens back, so a
// token split across two network writes is completed seamlessly.
package main

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/quic-go/quic-go"

	"github.com/ripple-lang/ripple/internal/streamwire"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// alpn is the application protocol negotiated over TLS.
const alpn = "ripple-lex/1"

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		addr        = flag.String("addr", "localhost:4843", "UDP address to listen on")
		certFile    = flag.String("cert", "", "TLS certificate file (self-signed when empty)")
		keyFile     = flag.String("key", "", "TLS key file (self-signed when empty)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ripple-lexd v%s (%s), protocol %s\n", version, commit, streamwire.ProtocolVersion)
		return
	}

	log.SetFlags(log.LstdFlags)
	log.SetPrefix("ripple-lexd: ")

	tlsConf, err := loadTLSConfig(*certFile, *keyFile)
	if err != nil {
		log.Fatalf("tls: %v", err)
	}

	ln, err := quic.ListenAddr(*addr, tlsConf, nil)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	log.Printf("listening on %s (protocol %s)", *addr, streamwire.ProtocolVersion)

	for {
		conn, err := ln.Accept(context.Background())
		if err != nil {
			log.Fatalf("accept: %v", err)
		}
		go serveConn(conn)
	}
}

// serveConn accepts the connection's streams and runs one lexing session
// per stream. Sessions are independent: each has its own lexer.
func serveConn(conn *quic.Conn) {
	defer conn.CloseWithError(0, "")

	for {
		stream, err := conn.AcceptStream(context.Background())
		if err != nil {
			return
		}
		go serveStream(stream)
	}
}

func serveStream(stream io.ReadWriteCloser) {
	defer stream.Close()
	if err := streamwire.NewSession(stream).Serve(); err != nil {
		log.Printf("session: %v", err)
	}
}

// loadTLSConfig loads the given certificate pair, or generates an ephemeral
// self-signed one when none is configured.
func loadTLSConfig(certFile, keyFile string) (*tls.Config, error) {
	var cert tls.Certificate
	var err error

	if certFile != "" || keyFile != "" {
		cert, err = tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return nil, err
		}
	} else {
		cert, err = selfSignedCert()
		if err != nil {
			return nil, err
		}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{alpn},
		MinVersion:   tls.VersionTLS13,
	}, nil
}

func selfSignedCert() (tls.Certificate, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return tls.Certificate{}, err
	}

	host, _ := os.Hostname()
	template := x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: "ripple-lexd"},
		DNSNames:     []string{"localhost", host},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:     x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return tls.Certificate{}, err
	}

	return tls.Certificate{
		Certificate: [][]byte{der},
		PrivateKey:  key,
	}, nil
}
