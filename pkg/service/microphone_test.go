package service

import (
	"testing"

	"github.com/aaphost/aapcore/pkg/message"
)

func TestMicrophonePushOnlyWhileOpen(t *testing.T) {
	p := newTestPair()
	_, m := NewMicrophoneChannel(7, 16000, 16, 1)

	if err := m.Push(p.ctx, p.cc, []byte{1, 2, 3}); err != nil {
		t.Fatalf("Push before start: %v", err)
	}
	p.expectNone(t, 50_000_000) // 50ms

	p.deliver(t, m, message.New(7, false, true, uint16(message.MediaStartRequest), nil))
	if err := m.Push(p.ctx, p.cc, []byte{4, 5, 6}); err != nil {
		t.Fatalf("Push after start: %v", err)
	}
	out := p.next(t, testTimeout)
	if message.MediaTag(out.Message.MsgType) != message.MediaData {
		t.Fatalf("msg type = %#x, want MediaData", out.Message.MsgType)
	}

	p.deliver(t, m, message.New(7, false, true, uint16(message.MediaStopRequest), nil))
	if err := m.Push(p.ctx, p.cc, []byte{7, 8, 9}); err != nil {
		t.Fatalf("Push after stop: %v", err)
	}
	p.expectNone(t, 50_000_000)
}
