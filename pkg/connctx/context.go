// Package connctx holds the per-connection state shared across a
// session's channel workers: the outbound command bus and a small
// typed registry for application data that does not belong to any
// single channel.
package connctx

import (
	"context"
	"reflect"
	"sync"

	"github.com/aaphost/aapcore/pkg/message"
)

// Outbound is one message queued for the session's mux loop to frame
// and write to the transport.
type Outbound struct {
	Message   message.Message
	Encrypted bool
}

// Context is shared by every channel worker of a single AAP session.
// Workers never write to the transport directly: they post to
// Commands and the session's mux loop drains it.
type Context struct {
	Commands chan Outbound

	mu   sync.RWMutex
	data map[reflect.Type]any
}

// New creates a Context with the given outbound command buffer depth.
func New(bufSize int) *Context {
	return &Context{
		Commands: make(chan Outbound, bufSize),
		data:     make(map[reflect.Type]any),
	}
}

// Post queues an outbound message. It blocks until the mux loop has
// room, or ctx is done.
func (c *Context) Post(ctx context.Context, msg message.Message, encrypted bool) error {
	select {
	case c.Commands <- Outbound{Message: msg, Encrypted: encrypted}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting further commands.
func (c *Context) Close() {
	close(c.Commands)
}

// Set stores v under its own type, overwriting any previous value of
// the same type.
func Set[T any](c *Context, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[reflect.TypeOf(v)] = v
}

// Get retrieves the value previously stored for T, if any.
func Get[T any](c *Context) (T, bool) {
	var zero T
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}
