package tlsconn

import "errors"

var (
	// ErrUnexpectedFrame is returned when a frame arriving during the
	// handshake phase is not an unencrypted control-message Handshake
	// frame on channel 0. Per §7 this is a ProtocolViolation and fatal.
	ErrUnexpectedFrame = errors.New("tlsconn: unexpected frame during handshake")
)
