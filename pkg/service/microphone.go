package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// Microphone is the sole media source channel: the phone starts it to
// pull PCM samples captured by the vehicle's microphone. Capturing
// real audio is out of scope; Push lets the embedding application
// supply samples while the channel is open.
type Microphone struct {
	ChannelID uint8
	open      bool
}

// NewMicrophoneChannel builds the advertised microphone descriptor
// and its delegate for the given PCM format.
func NewMicrophoneChannel(channelID uint8, sampleRate, bits, channels int32) (schema.Service, *Microphone) {
	svc := schema.Service{
		ID: uint32(channelID),
		MediaSource: &schema.MediaSourceService{
			Type: schema.MediaCodecAudioPCM,
			AudioConfig: schema.AudioConfiguration{
				SampleRate: sampleRate, NumberOfBits: bits, NumberOfChannels: channels,
			},
		},
	}
	return svc, &Microphone{ChannelID: channelID}
}

func (m *Microphone) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.MediaTag(msg.MsgType) {
	case message.MediaStartRequest:
		m.open = true
		return nil
	case message.MediaStopRequest:
		m.open = false
		return nil
	default:
		return nil
	}
}

// Push sends one batch of captured PCM samples upstream, if the
// channel is currently open.
func (m *Microphone) Push(ctx context.Context, cc *connctx.Context, pcm []byte) error {
	if !m.open {
		return nil
	}
	out := message.New(m.ChannelID, false, true, uint16(message.MediaData), pcm)
	return cc.Post(ctx, out, true)
}
