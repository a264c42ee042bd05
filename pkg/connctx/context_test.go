package connctx

import (
	"context"
	"testing"
	"time"

	"github.com/aaphost/aapcore/pkg/message"
)

type vehicleIdentity struct {
	VIN string
}

func TestSetGetRoundtrip(t *testing.T) {
	c := New(1)
	if _, ok := Get[vehicleIdentity](c); ok {
		t.Fatal("expected no value before Set")
	}
	Set(c, vehicleIdentity{VIN: "1HGCM82633A004352"})
	got, ok := Get[vehicleIdentity](c)
	if !ok {
		t.Fatal("expected value after Set")
	}
	if got.VIN != "1HGCM82633A004352" {
		t.Fatalf("got %+v", got)
	}
}

func TestPostDeliversToCommands(t *testing.T) {
	c := New(1)
	ctx := context.Background()
	msg := message.New(2, false, false, 0x8000, []byte("frame"))
	if err := c.Post(ctx, msg, false); err != nil {
		t.Fatalf("Post: %v", err)
	}
	select {
	case out := <-c.Commands:
		if out.Message.ChannelID != 2 {
			t.Fatalf("channel = %d, want 2", out.Message.ChannelID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for command")
	}
}

func TestPostRespectsContextCancellation(t *testing.T) {
	c := New(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	msg := message.New(1, false, false, 0, nil)
	if err := c.Post(ctx, msg, false); err == nil {
		t.Fatal("expected error posting with a cancelled context")
	}
}
