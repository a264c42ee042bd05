// Package channel multiplexes reassembled messages onto the per-role
// workers registered against a session: one Channel per advertised
// service, each fed from its own inbound queue so a slow worker never
// stalls delivery to the others.
package channel

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// Delegate handles messages delivered to a single channel. Workers
// implement this and are driven entirely by Channel.Run; they reply
// by posting to Commands on the shared connctx.Context, never by
// writing to the transport themselves.
type Delegate interface {
	// OnMessage handles one inbound message for this channel.
	OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error
}

// Channel binds one advertised service descriptor to the delegate that
// implements it.
type Channel struct {
	ID       uint8
	Service  schema.Service
	Delegate Delegate

	inbound chan message.Message
}

// New creates a Channel with the given inbound queue depth.
func New(id uint8, svc schema.Service, delegate Delegate, bufSize int) *Channel {
	return &Channel{
		ID:       id,
		Service:  svc,
		Delegate: delegate,
		inbound:  make(chan message.Message, bufSize),
	}
}

// Descriptor returns the service descriptor to advertise for this
// channel during discovery.
func (c *Channel) Descriptor() schema.Service {
	return c.Service
}

// Deliver enqueues msg for this channel's worker. It never blocks the
// mux loop indefinitely: ctx cancellation (e.g. session shutdown)
// unblocks a full queue.
func (c *Channel) Deliver(ctx context.Context, msg message.Message) error {
	select {
	case c.inbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the channel's inbound queue into its delegate until ctx
// is cancelled. Per §7, a SchemaError from the delegate is logged by
// the caller's error handling and the channel keeps running; Run
// itself only returns on context cancellation.
func (c *Channel) Run(ctx context.Context, cc *connctx.Context, onErr func(channelID uint8, err error)) {
	for {
		select {
		case msg := <-c.inbound:
			if err := c.Delegate.OnMessage(ctx, cc, msg); err != nil && onErr != nil {
				onErr(c.ID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}
