package frame

// Frame is one complete on-wire unit: a header plus the payload bytes
// that follow it (the length prefix, when present, is folded into
// Header.TotalLength rather than kept as raw bytes).
type Frame struct {
	Header  Header
	Payload []byte
}

// Encode serializes f as it would appear on the wire.
func (f Frame) Encode() []byte {
	buf := make([]byte, f.Header.EncodedSize()+len(f.Payload))
	n := f.Header.Encode(buf)
	copy(buf[n:], f.Payload)
	return buf
}

// Decode parses one complete frame from buf, returning the frame and
// the number of bytes consumed. buf must already contain the whole
// frame; partial frames are the caller's concern (see Scanner).
func Decode(buf []byte) (Frame, int, error) {
	hdr, err := DecodeHeader(buf)
	if err != nil {
		return Frame{}, 0, err
	}
	offset := HeaderSize
	if hdr.Kind == KindFirst {
		total, err := DecodeFirstLength(buf[offset:])
		if err != nil {
			return Frame{}, 0, err
		}
		hdr.TotalLength = total
		offset += FirstLengthSize
	}
	if len(buf[offset:]) < int(hdr.Length) {
		return Frame{}, 0, ErrShortPayload
	}
	payload := buf[offset : offset+int(hdr.Length)]
	return Frame{Header: hdr, Payload: payload}, offset + int(hdr.Length), nil
}

// Scanner incrementally decodes frames out of a growing byte buffer fed
// by the transport's raw-in buffer, yielding one Frame per call to Next
// once enough bytes have accumulated.
type Scanner struct {
	buf []byte
}

// Feed appends newly read bytes to the scanner's internal buffer.
func (s *Scanner) Feed(b []byte) {
	s.buf = append(s.buf, b...)
}

// Next attempts to decode one frame from the buffered bytes. It returns
// ok=false (with a nil error) when the buffer does not yet hold a
// complete frame.
func (s *Scanner) Next() (f Frame, ok bool, err error) {
	if len(s.buf) < HeaderSize {
		return Frame{}, false, nil
	}
	hdr, err := DecodeHeader(s.buf)
	if err != nil {
		return Frame{}, false, err
	}
	need := HeaderSize
	if hdr.Kind == KindFirst {
		need += FirstLengthSize
	}
	if len(s.buf) < need {
		return Frame{}, false, nil
	}
	need += int(hdr.Length)
	if len(s.buf) < need {
		return Frame{}, false, nil
	}

	decoded, n, err := Decode(s.buf)
	if err != nil {
		return Frame{}, false, err
	}
	// Copy the payload out before advancing the buffer, since Decode's
	// payload slice aliases s.buf.
	payload := make([]byte, len(decoded.Payload))
	copy(payload, decoded.Payload)
	decoded.Payload = payload

	s.buf = s.buf[n:]
	return decoded, true, nil
}
