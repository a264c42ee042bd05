package message

import (
	"bytes"
	"testing"

	"github.com/aaphost/aapcore/pkg/frame"
)

func TestMessageFragmentAndReassembleRoundTrip(t *testing.T) {
	m := New(2, false, true, uint16(MediaSetupRequest), []byte{1, 2, 3, 4, 5, 6, 7, 8})

	frames := m.Fragment(4)
	if len(frames) < 2 {
		t.Fatalf("expected fragmentation at chunk size 4, got %d frame(s)", len(frames))
	}

	r := frame.NewReassembler()
	var got frame.Reassembled
	var done bool
	var err error
	for _, f := range frames {
		got, done, err = r.Push(f)
		if err != nil {
			t.Fatalf("push: %v", err)
		}
	}
	if !done {
		t.Fatal("expected reassembly to complete")
	}

	out := FromReassembled(got)
	if out.ChannelID != m.ChannelID {
		t.Fatalf("channel = %d, want %d", out.ChannelID, m.ChannelID)
	}
	if out.MsgType != m.MsgType {
		t.Fatalf("msg_type = %#x, want %#x", out.MsgType, m.MsgType)
	}
	if !bytes.Equal(out.Payload, m.Payload) {
		t.Fatalf("payload = % x, want % x", out.Payload, m.Payload)
	}
	if !out.Encrypted {
		t.Fatal("expected Encrypted to survive the round trip")
	}
}

func TestControlTagRecognition(t *testing.T) {
	if !ControlServiceDiscoveryRequest.Recognized() {
		t.Fatal("expected ServiceDiscoveryRequest to be recognized")
	}
	if ControlTag(0x99).Recognized() {
		t.Fatal("expected 0x99 to be unrecognized")
	}
}

func TestMediaTagString(t *testing.T) {
	if MediaVideoFocusNotification.String() != "VideoFocusNotification" {
		t.Fatalf("got %q", MediaVideoFocusNotification.String())
	}
	if MediaTag(0x1234).String() != "Unknown" {
		t.Fatalf("got %q, want Unknown", MediaTag(0x1234).String())
	}
}
