package channel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

type recordingDelegate struct {
	received chan message.Message
	err      error
}

func (d *recordingDelegate) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	d.received <- msg
	return d.err
}

func TestChannelDeliversToDelegate(t *testing.T) {
	delegate := &recordingDelegate{received: make(chan message.Message, 1)}
	ch := New(3, schema.Service{ID: 3}, delegate, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cc := connctx.New(4)
	go ch.Run(ctx, cc, nil)

	in := message.New(3, false, false, 0x8001, []byte{1, 2, 3})
	if err := ch.Deliver(ctx, in); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	select {
	case got := <-delegate.received:
		if got.MsgType != 0x8001 {
			t.Fatalf("MsgType = %#x, want 0x8001", got.MsgType)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delegate")
	}
}

func TestChannelSurfacesDelegateErrorsWithoutStopping(t *testing.T) {
	wantErr := errors.New("boom")
	delegate := &recordingDelegate{received: make(chan message.Message, 2), err: wantErr}
	ch := New(4, schema.Service{ID: 4}, delegate, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cc := connctx.New(4)

	var gotErr error
	errc := make(chan struct{}, 2)
	go ch.Run(ctx, cc, func(channelID uint8, err error) {
		gotErr = err
		errc <- struct{}{}
	})

	if err := ch.Deliver(ctx, message.New(4, false, false, 0, nil)); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	<-errc
	if gotErr != wantErr {
		t.Fatalf("onErr = %v, want %v", gotErr, wantErr)
	}

	// The channel keeps running after an error.
	if err := ch.Deliver(ctx, message.New(4, false, false, 0, nil)); err != nil {
		t.Fatalf("second Deliver: %v", err)
	}
	<-errc
}

func TestTableLookup(t *testing.T) {
	delegate := &recordingDelegate{received: make(chan message.Message, 1)}
	ch1 := New(1, schema.Service{ID: 1}, delegate, 1)
	ch2 := New(2, schema.Service{ID: 2}, delegate, 1)
	table := NewTable(ch1, ch2)

	if got, ok := table.Lookup(2); !ok || got != ch2 {
		t.Fatalf("Lookup(2) = %v, %v", got, ok)
	}
	if _, ok := table.Lookup(9); ok {
		t.Fatal("expected channel 9 to be absent")
	}
	if len(table.All()) != 2 {
		t.Fatalf("All() len = %d, want 2", len(table.All()))
	}
}
