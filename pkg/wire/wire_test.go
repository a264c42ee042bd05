package wire

import (
	"bytes"
	"testing"
)

func TestRoundTripStructWithMixedFields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.StartStructure(Anonymous()); err != nil {
		t.Fatalf("StartStructure: %v", err)
	}
	if err := w.PutUint(ContextTag(1), 8); err != nil {
		t.Fatalf("PutUint id: %v", err)
	}
	if err := w.PutString(ContextTag(2), "video"); err != nil {
		t.Fatalf("PutString name: %v", err)
	}
	if err := w.PutBool(ContextTag(3), true); err != nil {
		t.Fatalf("PutBool available: %v", err)
	}
	if err := w.EndContainer(); err != nil {
		t.Fatalf("EndContainer: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatalf("Next (structure): %v", err)
	}
	if err := r.EnterContainer(); err != nil {
		t.Fatalf("EnterContainer: %v", err)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next (id): %v", err)
	}
	id, err := r.Uint()
	if err != nil {
		t.Fatalf("Uint: %v", err)
	}
	if id != 8 {
		t.Fatalf("id = %d, want 8", id)
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next (name): %v", err)
	}
	name, err := r.String()
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if name != "video" {
		t.Fatalf("name = %q, want %q", name, "video")
	}

	if err := r.Next(); err != nil {
		t.Fatalf("Next (available): %v", err)
	}
	available, err := r.Bool()
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if !available {
		t.Fatal("available = false, want true")
	}

	if err := r.ExitContainer(); err != nil {
		t.Fatalf("ExitContainer: %v", err)
	}
}

func TestRoundTripArrayOfBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.StartArray(ContextTag(4)); err != nil {
		t.Fatalf("StartArray: %v", err)
	}
	entries := [][]byte{{0x01, 0x02}, {0x03}, {}}
	for _, e := range entries {
		if err := w.PutBytes(Anonymous(), e); err != nil {
			t.Fatalf("PutBytes: %v", err)
		}
	}
	if err := w.EndContainer(); err != nil {
		t.Fatalf("EndContainer: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatalf("Next (array): %v", err)
	}
	if err := r.EnterContainer(); err != nil {
		t.Fatalf("EnterContainer: %v", err)
	}
	for i, want := range entries {
		if err := r.Next(); err != nil {
			t.Fatalf("Next (entry %d): %v", i, err)
		}
		got, err := r.Bytes()
		if err != nil {
			t.Fatalf("Bytes (entry %d): %v", i, err)
		}
		if !bytes.Equal(got, want) && !(len(got) == 0 && len(want) == 0) {
			t.Fatalf("entry %d = % x, want % x", i, got, want)
		}
	}
	if err := r.ExitContainer(); err != nil {
		t.Fatalf("ExitContainer: %v", err)
	}
}

func TestTypeMismatchIsRejected(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.PutString(Anonymous(), "not a number"); err != nil {
		t.Fatalf("PutString: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if err := r.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := r.Int(); err == nil {
		t.Fatal("expected type mismatch reading an int from a string element")
	}
}
