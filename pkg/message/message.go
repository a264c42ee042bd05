// Package message sits directly above the frame package: it turns a
// frame.Reassembled into a typed Message carrying one of the
// per-channel tag enums defined in enums.go, and turns an outbound
// Message back into frames for the transport to write.
package message

import "github.com/aaphost/aapcore/pkg/frame"

// Message is the logical unit exchanged between the session loop and
// channel workers, after frame reassembly and msg_type extraction.
type Message struct {
	ChannelID uint8
	Control   bool
	Encrypted bool
	MsgType   uint16
	Payload   []byte
}

// FromReassembled lifts a fully reassembled frame into a Message.
func FromReassembled(r frame.Reassembled) Message {
	return Message{
		ChannelID: r.ChannelID,
		Control:   r.Control,
		Encrypted: r.Encrypted,
		MsgType:   r.MsgType,
		Payload:   r.Payload,
	}
}

// Fragment splits m into the wire frames the transport should write,
// using chunkSize as the outbound fragmentation threshold (<=0 selects
// frame.DefaultChunkSize).
func (m Message) Fragment(chunkSize int) []frame.Frame {
	return frame.Fragment(m.ChannelID, m.Control, m.Encrypted, m.MsgType, m.Payload, chunkSize)
}

// New builds a Message bound for channelID with the given control/
// encrypted flags, tag, and payload.
func New(channelID uint8, control, encrypted bool, msgType uint16, payload []byte) Message {
	return Message{
		ChannelID: channelID,
		Control:   control,
		Encrypted: encrypted,
		MsgType:   msgType,
		Payload:   payload,
	}
}
