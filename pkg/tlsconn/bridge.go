package tlsconn

import (
	"io"
	"sync"
)

// bridge is the io.ReadWriter crypto/tls.Client is built on. It has no
// notion of a real socket: bytes written by the TLS engine queue up as
// discrete chunks for the caller to drain and wrap in frames; bytes fed
// in by the caller become available to the TLS engine's next Read.
//
// This is the seam that makes handshake-over-frames and ciphertext-in-
// frames the same mechanism: whether the chunk ends up wrapped in an
// unencrypted Handshake control frame or an encrypted data frame is a
// decision made entirely outside the bridge.
type bridge struct {
	mu     sync.Mutex
	cond   *sync.Cond
	inbuf  []byte
	outbuf [][]byte
	closed bool
}

func newBridge() *bridge {
	b := &bridge{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Read implements io.Reader, blocking until bytes are fed or the bridge
// is closed. Every call that reaches a Read on the underlying tls.Conn
// is expected to already have its data fed in first (see Adapter); the
// wait here only spans the instant between feed and read in the same
// goroutine's call sequence, never a real network round trip.
func (b *bridge) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.inbuf) == 0 && !b.closed {
		b.cond.Wait()
	}
	if len(b.inbuf) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.inbuf)
	b.inbuf = b.inbuf[n:]
	return n, nil
}

// Write implements io.Writer, queuing a copy of p as one outbound chunk.
func (b *bridge) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, io.ErrClosedPipe
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	b.outbuf = append(b.outbuf, cp)
	b.cond.Broadcast()
	return len(p), nil
}

// feed appends bytes arriving off the wire (frame payload bytes, either
// handshake records or ciphertext) to the inbound queue.
func (b *bridge) feed(p []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inbuf = append(b.inbuf, p...)
	b.cond.Broadcast()
}

// drainOutbound returns and clears the queued outbound chunks, in the
// order the TLS engine produced them.
func (b *bridge) drainOutbound() [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.outbuf
	b.outbuf = nil
	return out
}

// close unblocks any pending Read with io.EOF.
func (b *bridge) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.cond.Broadcast()
}
