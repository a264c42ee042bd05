package transport

import (
	"bytes"
	"testing"
	"time"
)

func TestBufferedWriteReadRoundTrip(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()

	a, b := pipe.Endpoints()
	bufA := New(Config{Conn: rwAdapter{a}})
	bufB := New(Config{Conn: rwAdapter{b}})

	want := []byte("hello bulk endpoint")
	if err := bufA.WriteRaw(want); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	got := make([]byte, len(want))
	n := 0
	deadline := time.Now().Add(time.Second)
	for n < len(want) && time.Now().Before(deadline) {
		nn, err := bufB.ReadRaw(got[n:])
		if err != nil {
			t.Fatalf("ReadRaw: %v", err)
		}
		n += nn
	}

	if !bytes.Equal(got[:n], want) {
		t.Fatalf("got %q, want %q", got[:n], want)
	}
}

func TestReadRawTimeoutReturnsZeroNil(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()

	a, _ := pipe.Endpoints()
	buf := New(Config{Conn: rwAdapter{a}})

	n, err := buf.ReadRaw(make([]byte, 16))
	if err != nil {
		t.Fatalf("expected no error on idle read, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes on idle read, got %d", n)
	}
}

func TestFinishHandshakeIsOneShot(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()

	a, _ := pipe.Endpoints()
	buf := New(Config{Conn: rwAdapter{a}})

	if buf.HandshakeFinished() {
		t.Fatal("expected handshake not finished initially")
	}
	buf.FinishHandshake()
	buf.FinishHandshake()
	if !buf.HandshakeFinished() {
		t.Fatal("expected handshake finished after call")
	}
}

// rwAdapter lifts a Bulk (used directly by the Pipe test double) to the
// io.ReadWriter Buffered expects, for tests that want Buffered's extra
// bookkeeping on top of a Pipe endpoint.
type rwAdapter struct {
	b Bulk
}

func (r rwAdapter) Read(p []byte) (int, error) {
	for {
		n, err := r.b.ReadRaw(p)
		if err != nil {
			return n, err
		}
		if n > 0 {
			return n, nil
		}
	}
}

func (r rwAdapter) Write(p []byte) (int, error) {
	if err := r.b.WriteRaw(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
