package frame

// Fragment splits a logical (channel, control, encrypted, msgType,
// payload) message into one or more wire frames. When the combined
// msg_type-prefixed payload fits within chunkSize it emits a single
// Single frame; otherwise it splits into First + Middle* + Last.
//
// chunkSize <= 0 selects DefaultChunkSize.
func Fragment(channelID uint8, control, encrypted bool, msgType uint16, payload []byte, chunkSize int) []Frame {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	wire := make([]byte, MsgTypeSize+len(payload))
	wire[0] = byte(msgType >> 8)
	wire[1] = byte(msgType)
	copy(wire[MsgTypeSize:], payload)

	if len(wire) <= chunkSize {
		return []Frame{{
			Header: Header{
				ChannelID: channelID,
				Kind:      KindSingle,
				Control:   control,
				Encrypted: encrypted,
				Length:    uint16(len(wire)),
			},
			Payload: wire,
		}}
	}

	var frames []Frame
	total := uint32(len(wire))
	for offset := 0; offset < len(wire); offset += chunkSize {
		end := offset + chunkSize
		if end > len(wire) {
			end = len(wire)
		}
		chunk := wire[offset:end]

		var kind Kind
		switch {
		case offset == 0:
			kind = KindFirst
		case end == len(wire):
			kind = KindLast
		default:
			kind = KindMiddle
		}

		h := Header{
			ChannelID: channelID,
			Kind:      kind,
			Control:   control,
			Encrypted: encrypted,
			Length:    uint16(len(chunk)),
		}
		if kind == KindFirst {
			h.TotalLength = total
		}
		frames = append(frames, Frame{Header: h, Payload: chunk})
	}
	return frames
}
