package service

import (
	"context"

	"github.com/aaphost/aapcore/pkg/connctx"
	"github.com/aaphost/aapcore/pkg/message"
	"github.com/aaphost/aapcore/pkg/schema"
)

// AudioFrameHandler receives decoded PCM samples as they arrive on an
// audio sink channel. Actual playback is out of scope.
type AudioFrameHandler func(data []byte)

// Audio answers the setup/start handshake shared by the three PCM
// sink channels (speech, system, media), acknowledges each data
// message and forwards samples to an external handler. It does not
// handle focus requests. The stream type is the only thing that
// distinguishes one instance from another.
type Audio struct {
	ChannelID uint8
	OnFrame   AudioFrameHandler
	session   int32
}

// NewAudioChannel builds the advertised audio-sink descriptor and its
// delegate for the given stream role and PCM format.
func NewAudioChannel(channelID uint8, stream schema.AudioStreamType, sampleRate, bits, channels int32, onFrame AudioFrameHandler) (schema.Service, *Audio) {
	svc := schema.Service{
		ID: uint32(channelID),
		MediaSink: &schema.MediaSinkService{
			AvailableType: schema.MediaCodecAudioPCM,
			AudioType:     stream,
			AudioConfigs: []schema.AudioConfiguration{
				{SampleRate: sampleRate, NumberOfBits: bits, NumberOfChannels: channels},
			},
		},
	}
	return svc, &Audio{ChannelID: channelID, OnFrame: onFrame}
}

func (a *Audio) OnMessage(ctx context.Context, cc *connctx.Context, msg message.Message) error {
	switch message.MediaTag(msg.MsgType) {
	case message.MediaSetupRequest:
		cfg := schema.Config{Status: schema.ConfigStatusHeadUnit, MaxUnacked: 1, ConfigurationIndices: []int32{0}}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		out := message.New(a.ChannelID, false, true, uint16(message.MediaConfigResponse), data)
		return cc.Post(ctx, out, true)

	case message.MediaStartRequest:
		var start schema.Start
		if err := start.Unmarshal(msg.Payload); err != nil {
			return err
		}
		a.session = start.SessionID
		return nil

	case message.MediaData:
		if a.OnFrame != nil {
			a.OnFrame(msg.Payload)
		}
		ack := schema.Ack{SessionID: a.session, Ack: int32(len(msg.Payload))}
		data, err := ack.Marshal()
		if err != nil {
			return err
		}
		out := message.New(a.ChannelID, false, true, uint16(message.MediaAck), data)
		return cc.Post(ctx, out, true)

	default:
		return nil
	}
}
