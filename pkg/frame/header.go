// Package frame implements the on-wire framing codec: a fixed 4-byte
// header plus payload, fragmentation of oversized messages into
// First/Middle/Last frames, and per-channel reassembly back into whole
// messages. It sits directly on top of the transport package and knows
// nothing about TLS, sessions, or message semantics above the 2-byte
// msg_type prefix it carries for Single/First frames.
package frame

import "encoding/binary"

// HeaderSize is the fixed header length: channel_id(1) | flags(1) |
// length(2, big-endian).
const HeaderSize = 4

// FirstLengthSize is the size of the reassembled-total-length prefix
// that follows the header on a First frame only.
const FirstLengthSize = 4

// MsgTypeSize is the width of the msg_type prefix carried by Single and
// First frame payloads.
const MsgTypeSize = 2

// DefaultChunkSize bounds outbound fragmentation: a wire payload larger
// than this is split into First/Middle/Last fragments instead of being
// sent as one Single frame.
const DefaultChunkSize = 16 * 1024

// Kind is the frame_kind field packed into flags bits 0..1.
type Kind uint8

const (
	KindMiddle Kind = 0
	KindFirst  Kind = 1
	KindLast   Kind = 2
	KindSingle Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindMiddle:
		return "Middle"
	case KindFirst:
		return "First"
	case KindLast:
		return "Last"
	case KindSingle:
		return "Single"
	default:
		return "Unknown"
	}
}

func (k Kind) valid() bool {
	return k <= KindSingle
}

const (
	flagKindMask      = 0x03
	flagControlBit    = 1 << 2
	flagEncryptedBit  = 1 << 3
	flagReservedMask  = 0xF0
)

// Header is the fixed 4-byte frame header, plus the First-frame-only
// reassembled length prefix folded in as an optional field.
type Header struct {
	ChannelID uint8
	Kind      Kind
	Control   bool
	Encrypted bool
	// Length is the number of on-wire payload bytes that follow the
	// header (and, for a First frame, the length prefix).
	Length uint16
	// TotalLength is only meaningful when Kind == KindFirst: the
	// declared size of the fully reassembled payload. It is decoded but
	// never validated against the sum of fragment lengths, by design.
	TotalLength uint32
}

func (h Header) flags() byte {
	var f byte
	f |= byte(h.Kind) & flagKindMask
	if h.Control {
		f |= flagControlBit
	}
	if h.Encrypted {
		f |= flagEncryptedBit
	}
	return f
}

// EncodedSize returns the number of header bytes this frame occupies on
// the wire, including the First-frame length prefix when applicable.
func (h Header) EncodedSize() int {
	if h.Kind == KindFirst {
		return HeaderSize + FirstLengthSize
	}
	return HeaderSize
}

// Encode writes the header (and, for First frames, the length prefix)
// into buf, which must be at least h.EncodedSize() bytes.
func (h Header) Encode(buf []byte) int {
	buf[0] = h.ChannelID
	buf[1] = h.flags()
	binary.BigEndian.PutUint16(buf[2:4], h.Length)
	if h.Kind == KindFirst {
		binary.BigEndian.PutUint32(buf[4:8], h.TotalLength)
		return HeaderSize + FirstLengthSize
	}
	return HeaderSize
}

// DecodeHeader parses the fixed 4-byte header from buf. It does not
// consume the First-frame length prefix; callers check Kind and call
// DecodeFirstLength separately, mirroring how a streaming reader only
// has the fixed header available up front.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	flags := buf[1]
	if flags&flagReservedMask != 0 {
		return Header{}, ErrReservedBitsSet
	}
	kind := Kind(flags & flagKindMask)
	if !kind.valid() {
		return Header{}, ErrUnknownKind
	}
	return Header{
		ChannelID: buf[0],
		Kind:      kind,
		Control:   flags&flagControlBit != 0,
		Encrypted: flags&flagEncryptedBit != 0,
		Length:    binary.BigEndian.Uint16(buf[2:4]),
	}, nil
}

// DecodeFirstLength parses the 4-byte reassembled-total-length prefix
// that follows a First frame's header.
func DecodeFirstLength(buf []byte) (uint32, error) {
	if len(buf) < FirstLengthSize {
		return 0, ErrShortFirstLength
	}
	return binary.BigEndian.Uint32(buf[:FirstLengthSize]), nil
}
