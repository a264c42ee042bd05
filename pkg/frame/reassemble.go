package frame

// Reassembled is a fully reassembled logical message: the msg_type
// prefix has already been split off the wire payload.
type Reassembled struct {
	ChannelID uint8
	Control   bool
	Encrypted bool
	MsgType   uint16
	Payload   []byte
}

type pending struct {
	control     bool
	encrypted   bool
	total       uint32
	buf         []byte
}

// Reassembler reconstructs whole messages from a sequence of frames,
// keyed per channel id so that interleaved fragments on different
// channels never collide. The wire never actually interleaves
// fragments of different logical messages on the same channel (the
// session loop's single writer keeps fragments contiguous), but a
// channel's own First/Middle/Last sequence can span many reads.
type Reassembler struct {
	inProgress map[uint8]*pending
}

// NewReassembler returns an empty Reassembler.
func NewReassembler() *Reassembler {
	return &Reassembler{inProgress: make(map[uint8]*pending)}
}

// Push feeds one decoded frame into the reassembler. It returns a
// Reassembled message when f completes one (Single always completes
// immediately; First/Middle do not; Last does).
func (r *Reassembler) Push(f Frame) (Reassembled, bool, error) {
	switch f.Header.Kind {
	case KindSingle:
		return splitMsgType(f.Header, f.Payload)

	case KindFirst:
		if _, exists := r.inProgress[f.Header.ChannelID]; exists {
			return Reassembled{}, false, ErrOutOfOrder
		}
		size := int(f.Header.TotalLength)
		if size < len(f.Payload) {
			size = len(f.Payload)
		}
		buf := make([]byte, len(f.Payload), size)
		copy(buf, f.Payload)
		r.inProgress[f.Header.ChannelID] = &pending{
			control:   f.Header.Control,
			encrypted: f.Header.Encrypted,
			total:     f.Header.TotalLength,
			buf:       buf,
		}
		return Reassembled{}, false, nil

	case KindMiddle:
		p, exists := r.inProgress[f.Header.ChannelID]
		if !exists {
			return Reassembled{}, false, ErrOutOfOrder
		}
		p.buf = append(p.buf, f.Payload...)
		return Reassembled{}, false, nil

	case KindLast:
		p, exists := r.inProgress[f.Header.ChannelID]
		if !exists {
			return Reassembled{}, false, ErrOutOfOrder
		}
		p.buf = append(p.buf, f.Payload...)
		delete(r.inProgress, f.Header.ChannelID)

		hdr := Header{ChannelID: f.Header.ChannelID, Control: p.control, Encrypted: p.encrypted}
		return splitMsgType(hdr, p.buf)

	default:
		return Reassembled{}, false, ErrUnknownKind
	}
}

// Abandon discards any in-progress reassembly for channelID, used when
// a channel is closed or the session terminates mid-fragment.
func (r *Reassembler) Abandon(channelID uint8) {
	delete(r.inProgress, channelID)
}

func splitMsgType(hdr Header, wire []byte) (Reassembled, bool, error) {
	if len(wire) < MsgTypeSize {
		return Reassembled{}, false, ErrTooShortForMsgType
	}
	msgType := uint16(wire[0])<<8 | uint16(wire[1])
	payload := make([]byte, len(wire)-MsgTypeSize)
	copy(payload, wire[MsgTypeSize:])
	return Reassembled{
		ChannelID: hdr.ChannelID,
		Control:   hdr.Control,
		Encrypted: hdr.Encrypted,
		MsgType:   msgType,
		Payload:   payload,
	}, true, nil
}
