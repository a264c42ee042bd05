// Package transport provides the byte-oriented bulk endpoint abstraction
// that the framing and session layers are built on. It assumes an
// already-claimed USB Accessory (AOA) bulk endpoint pair: enumeration,
// the vendor accessory-mode switch, and kernel driver detach all happen
// before a Bulk reaches this package.
package transport

import (
	"io"
	"sync"
	"time"

	"github.com/pion/logging"
)

// MaxBulkRead is the largest single bulk transfer this core ever issues,
// matching the AOA accessory endpoint's maximum transfer size.
const MaxBulkRead = 128 * 1024

// DefaultWriteTimeout bounds a single blocking WriteRaw call.
const DefaultWriteTimeout = 1 * time.Second

// Bulk is a half-duplex-ish bulk endpoint pair. Implementations back it
// with a real USB accessory connection, a TCP test fixture, or (for
// unit tests) an in-memory Pipe.
type Bulk interface {
	// ReadRaw reads up to len(buf) bytes. It returns (0, nil) on a short
	// poll timeout with no data available yet — the caller is expected
	// to retry, not treat this as an error. Any other failure is one of
	// ErrTimeout, ErrDisconnected, ErrPipe, or ErrOther.
	ReadRaw(buf []byte) (int, error)

	// WriteRaw blocks until buf is fully accepted by the bulk endpoint
	// or DefaultWriteTimeout elapses. Partial writes are never surfaced:
	// the underlying bulk write either takes the whole buffer or fails.
	WriteRaw(buf []byte) error

	// FinishHandshake is a one-shot transition flag. Before it is
	// called the stream is a plain framed channel; afterwards it is the
	// ciphertext carrier for TLS. Implementations only need to track
	// the flag — the framing/TLS split is owned by higher layers.
	FinishHandshake()
}

// Config configures a Buffered transport.
type Config struct {
	// Conn is the underlying byte stream (a USB accessory file, a TCP
	// test connection, or any other io.ReadWriter).
	Conn io.ReadWriter

	// WriteTimeout bounds WriteRaw. Defaults to DefaultWriteTimeout.
	WriteTimeout time.Duration

	// LoggerFactory builds the logger used for read/write tracing. If
	// nil, pion's default logger factory is used.
	LoggerFactory logging.LoggerFactory
}

// deadliner is satisfied by connections that support write deadlines
// (such as net.Conn). Conns that don't implement
// it simply never time out a write.
type deadliner interface {
	SetWriteDeadline(t time.Time) error
}

// Buffered wraps any io.ReadWriter as a Bulk, adding the raw-in buffer
// (bytes read off the wire but not yet consumed by the frame codec) and
// the handshake-finished flag the protocol needs. It does not buffer
// writes beyond what WriteRaw's single call does — on this transport a
// "write staging buffer" is owned by the TLS adapter (§4.3), not here.
type Buffered struct {
	conn         io.ReadWriter
	writeTimeout time.Duration
	log          logging.LeveledLogger

	mu               sync.Mutex
	handshakeFinished bool
}

// New wraps conn as a Buffered Bulk transport.
func New(cfg Config) *Buffered {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}

	var log logging.LeveledLogger
	if cfg.LoggerFactory != nil {
		log = cfg.LoggerFactory.NewLogger("transport")
	} else {
		log = logging.NewDefaultLoggerFactory().NewLogger("transport")
	}

	return &Buffered{
		conn:         cfg.Conn,
		writeTimeout: timeout,
		log:          log,
	}
}

// ReadRaw reads up to len(buf) bytes from the underlying connection. A
// short-poll timeout is reported as (0, nil) — "no data yet, try
// again" — per §7's propagation policy; it never reaches the caller as
// an error.
func (b *Buffered) ReadRaw(buf []byte) (int, error) {
	n, err := b.conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return 0, nil
		}
		return n, classifyReadErr(err)
	}
	b.log.Tracef("read %d bytes", n)
	return n, nil
}

// WriteRaw writes buf in full, applying the configured write timeout
// when the underlying connection supports deadlines.
func (b *Buffered) WriteRaw(buf []byte) error {
	if dl, ok := b.conn.(deadliner); ok {
		_ = dl.SetWriteDeadline(time.Now().Add(b.writeTimeout))
		defer dl.SetWriteDeadline(time.Time{})
	}

	n, err := b.conn.Write(buf)
	if err != nil {
		return classifyWriteErr(err)
	}
	if n != len(buf) {
		// The bulk contract promises atomic writes; a short write here
		// means the carrier broke that contract.
		return ErrPipe
	}
	b.log.Tracef("wrote %d bytes", n)
	return nil
}

// FinishHandshake marks the transition from plain framed channel to
// TLS ciphertext carrier. It is a one-shot flag; subsequent calls are a
// no-op.
func (b *Buffered) FinishHandshake() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.handshakeFinished {
		b.handshakeFinished = true
		b.log.Debug("handshake finished, switching to ciphertext carrier")
	}
}

// HandshakeFinished reports whether FinishHandshake has been called.
func (b *Buffered) HandshakeFinished() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handshakeFinished
}

func classifyReadErr(err error) error {
	if err == io.EOF {
		return ErrDisconnected
	}
	return ErrOther
}

func classifyWriteErr(err error) error {
	switch {
	case err == io.ErrClosedPipe:
		return ErrPipe
	case isTimeout(err):
		return ErrTimeout
	default:
		return ErrOther
	}
}

type timeoutError interface {
	Timeout() bool
}

func isTimeout(err error) bool {
	te, ok := err.(timeoutError)
	return ok && te.Timeout()
}

var _ Bulk = (*Buffered)(nil)
