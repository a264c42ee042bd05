package transport

import "errors"

// Transport errors, per the §7 error taxonomy: a short-poll timeout is
// swallowed by the caller and never reaches this list; everything here
// is surfaced to the session loop.
var (
	// ErrTimeout is returned by WriteRaw when the write deadline expires
	// before the underlying connection accepts the buffer. ReadRaw never
	// returns it: a read timeout is reported as a zero-length read.
	ErrTimeout = errors.New("transport: io timeout")

	// ErrDisconnected is returned when the peer has gone away (closed
	// pipe, device unplugged). Fatal: the session terminates.
	ErrDisconnected = errors.New("transport: io disconnected")

	// ErrPipe is returned on a broken-pipe style write failure. Fatal.
	ErrPipe = errors.New("transport: io pipe")

	// ErrOther wraps any other I/O failure the bulk endpoint reports.
	ErrOther = errors.New("transport: io other")

	// ErrClosed is returned when an operation is attempted on a closed
	// transport.
	ErrClosed = errors.New("transport: closed")
)
