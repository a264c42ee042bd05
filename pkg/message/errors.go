package message

import "errors"

var (
	// ErrSchemaUnknownTag is returned when a msg_type has no registered
	// tag on the given channel's enum. Per §7 this is logged and the
	// message is dropped, never fatal.
	ErrSchemaUnknownTag = errors.New("message: unknown msg_type for channel")
)
