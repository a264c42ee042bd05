package transport

import (
	"bytes"
	"testing"
	"time"
)

func TestPipeEndpointsRoundTrip(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()

	a, b := pipe.Endpoints()

	want := []byte{0x00, 0x03, 0x00, 0x06, 0x00, 0x01, 0x00, 0x01, 0x00, 0x07}
	if err := a.WriteRaw(want); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	got := readAllWithin(t, b, len(want), time.Second)
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestPipeEndpointReadRawTimesOutCleanly(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()

	a, _ := pipe.Endpoints()
	n, err := a.ReadRaw(make([]byte, 8))
	if err != nil {
		t.Fatalf("expected nil error on idle read, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes, got %d", n)
	}
}

func TestPipeDropRateDropsAllWrites(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()
	pipe.SetCondition(NetworkCondition{DropRate: 1.0})

	a, b := pipe.Endpoints()
	if err := a.WriteRaw([]byte("dropped")); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}

	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		n, err := b.ReadRaw(make([]byte, 32))
		if err != nil {
			t.Fatalf("ReadRaw: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected write to be dropped, but %d bytes arrived", n)
		}
	}
}

func TestPipeDelayDefersDelivery(t *testing.T) {
	pipe := NewPipe()
	defer pipe.Close()
	pipe.SetCondition(NetworkCondition{DelayMin: 30 * time.Millisecond, DelayMax: 40 * time.Millisecond})

	a, b := pipe.Endpoints()
	start := time.Now()
	if err := a.WriteRaw([]byte("delayed")); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	elapsedAtReturn := time.Since(start)
	if elapsedAtReturn < 30*time.Millisecond {
		t.Fatalf("expected WriteRaw to block for the configured delay, returned after %s", elapsedAtReturn)
	}

	got := readAllWithin(t, b, len("delayed"), time.Second)
	if string(got) != "delayed" {
		t.Fatalf("got %q, want %q", got, "delayed")
	}
}

func readAllWithin(t *testing.T, b Bulk, want int, timeout time.Duration) []byte {
	t.Helper()
	got := make([]byte, want)
	n := 0
	deadline := time.Now().Add(timeout)
	for n < want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out after reading %d/%d bytes", n, want)
		}
		nn, err := b.ReadRaw(got[n:])
		if err != nil {
			t.Fatalf("ReadRaw: %v", err)
		}
		n += nn
	}
	return got
}
