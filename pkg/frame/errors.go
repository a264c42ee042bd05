package frame

import "errors"

// Framing errors, surfaced to the session loop per the §7 taxonomy: a
// FramingError is always fatal to the session.
var (
	// ErrShortHeader is returned when fewer than HeaderSize bytes are
	// available to decode a frame header.
	ErrShortHeader = errors.New("frame: short header")

	// ErrShortFirstLength is returned when a First frame's header is
	// present but the 4-byte reassembled-total-length prefix is not.
	ErrShortFirstLength = errors.New("frame: short first-frame length prefix")

	// ErrShortPayload is returned when fewer bytes are available than
	// the header's declared length.
	ErrShortPayload = errors.New("frame: short payload")

	// ErrUnknownKind is returned when the 2-bit frame_kind field decodes
	// to a value outside {Single, First, Middle, Last}. The field is
	// only 2 bits wide so this can never actually happen from a real
	// header, but Kind.valid guards it defensively for callers building
	// headers by hand.
	ErrUnknownKind = errors.New("frame: unknown frame kind")

	// ErrReservedBitsSet is returned when any of the reserved flag bits
	// 4..7 are non-zero on a decoded header.
	ErrReservedBitsSet = errors.New("frame: reserved flag bits set")

	// ErrOutOfOrder is returned by the Reassembler when a Middle or Last
	// frame arrives for a channel with no open First frame, or when a
	// First frame arrives for a channel that already has one open.
	ErrOutOfOrder = errors.New("frame: out-of-order fragment")

	// ErrTooShortForMsgType is returned when a Single or First frame's
	// payload is too short to carry the 2-byte msg_type prefix.
	ErrTooShortForMsgType = errors.New("frame: payload too short for msg_type")
)
