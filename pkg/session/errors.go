package session

import "errors"

var (
	// ErrWrongPhase is returned when an operation is attempted in a
	// phase that does not permit it.
	ErrWrongPhase = errors.New("session: operation not valid in current phase")

	// ErrVersionMismatch is returned when the phone's VersionResponse
	// rejects every version the head unit offered.
	ErrVersionMismatch = errors.New("session: no compatible protocol version")

	// ErrUnknownChannel is returned when a frame or message targets a
	// channel ID with no registered delegate.
	ErrUnknownChannel = errors.New("session: unknown channel")

	// ErrTerminated is returned by the control-channel handler after it
	// has answered a ByeByeRequest.
	ErrTerminated = errors.New("session: terminated")
)
