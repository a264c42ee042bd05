package service

import (
	"context"
	"testing"
	"time"

	"github.com/aaphost/aapcore/pkg/channel"
	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
)

// testPair is a minimal stand-in for the teacher's
// exchange.TestManagerPair: instead of wiring two managers over a
// virtual transport pipe, it drives a single channel.Delegate
// directly against a connctx.Context and lets the test observe
// everything the delegate posts back. That is enough to exercise a
// worker's request/response and data/ack behavior without a
// transport, frame codec, or session loop in the way.
type testPair struct {
	ctx context.Context
	cc  *connctx.Context
}

func newTestPair() *testPair {
	return &testPair{
		ctx: context.Background(),
		cc:  connctx.New(16),
	}
}

// deliver drives msg through delegate.OnMessage as if it had just
// arrived from the session's mux loop.
func (p *testPair) deliver(t *testing.T, d channel.Delegate, msg message.Message) {
	t.Helper()
	if err := d.OnMessage(p.ctx, p.cc, msg); err != nil {
		t.Fatalf("OnMessage: %v", err)
	}
}

// next waits for the next outbound message posted to cc.Commands.
func (p *testPair) next(t *testing.T, timeout time.Duration) connctx.Outbound {
	t.Helper()
	select {
	case out := <-p.cc.Commands:
		return out
	case <-time.After(timeout):
		t.Fatal("timed out waiting for outbound message")
		return connctx.Outbound{}
	}
}

// expectNone asserts no message is posted within the given window.
func (p *testPair) expectNone(t *testing.T, window time.Duration) {
	t.Helper()
	select {
	case out := <-p.cc.Commands:
		t.Fatalf("unexpected outbound message, msg_type=%#x", out.Message.MsgType)
	case <-time.After(window):
	}
}

const testTimeout = time.Second
